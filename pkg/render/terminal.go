// pkg/render/terminal.go
package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const lineRune = '·'

// TerminalSurface draws line segments into terminal cells using tcell.
// One cell is one "pixel"; the camera viewport should be sized to the
// terminal's columns and rows.
type TerminalSurface struct {
	screen tcell.Screen
}

// NewTerminalSurface allocates and initializes a real terminal screen
func NewTerminalSurface() (*TerminalSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.HideCursor()
	return &TerminalSurface{screen: screen}, nil
}

// NewTerminalSurfaceFrom wraps an existing screen. Tests pass a
// tcell.SimulationScreen here.
func NewTerminalSurfaceFrom(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

// Size implements Surface, in terminal cells
func (s *TerminalSurface) Size() (int, int) {
	return s.screen.Size()
}

// Clear implements Surface
func (s *TerminalSurface) Clear() {
	s.screen.Clear()
}

// DrawLine implements Surface; cells outside the terminal are clipped
func (s *TerminalSurface) DrawLine(from, to ScreenPoint, lineColor color.RGBA) {
	width, height := s.screen.Size()
	style := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(lineColor.R), int32(lineColor.G), int32(lineColor.B)))

	plotLine(from, to, func(x, y int) {
		if x >= 0 && x < width && y >= 0 && y < height {
			s.screen.SetContent(x, y, lineRune, nil, style)
		}
	})
}

// Present implements Surface
func (s *TerminalSurface) Present() {
	s.screen.Show()
}

// DrawText writes a HUD line starting at the given cell
func (s *TerminalSurface) DrawText(x, y int, text string, textColor color.RGBA) {
	width, height := s.screen.Size()
	if y < 0 || y >= height {
		return
	}
	style := tcell.StyleDefault.Foreground(
		tcell.NewRGBColor(int32(textColor.R), int32(textColor.G), int32(textColor.B)))
	for i, r := range text {
		if x+i >= width {
			break
		}
		if x+i >= 0 {
			s.screen.SetContent(x+i, y, r, nil, style)
		}
	}
}

// Screen exposes the underlying tcell screen for event polling
func (s *TerminalSurface) Screen() tcell.Screen {
	return s.screen
}

// Fini restores the terminal
func (s *TerminalSurface) Fini() {
	s.screen.Fini()
}
