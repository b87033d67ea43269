// Package raylibview is the raylib frontend: a native window for both
// the race and the course designer. It owns the window loop and feeds
// keyboard, gamepad and mouse state into the engine and designer.
package raylibview

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/opd-ai/go-spacerace/pkg/render"
)

var background = rl.NewColor(10, 10, 15, 255)

// WindowSurface implements render.Surface inside an open raylib
// window. Drawing must happen between BeginDrawing and EndDrawing,
// which the run loops guarantee.
type WindowSurface struct {
	width  int
	height int
}

// NewWindowSurface wraps the current window
func NewWindowSurface(width, height int) *WindowSurface {
	return &WindowSurface{width: width, height: height}
}

// Size implements render.Surface
func (s *WindowSurface) Size() (int, int) {
	return s.width, s.height
}

// Clear implements render.Surface
func (s *WindowSurface) Clear() {
	rl.ClearBackground(background)
}

// DrawLine implements render.Surface
func (s *WindowSurface) DrawLine(from, to render.ScreenPoint, lineColor color.RGBA) {
	rl.DrawLineV(
		rl.NewVector2(float32(from.X), float32(from.Y)),
		rl.NewVector2(float32(to.X), float32(to.Y)),
		rl.NewColor(lineColor.R, lineColor.G, lineColor.B, lineColor.A),
	)
}

// Present implements render.Surface; raylib presents in EndDrawing
func (s *WindowSurface) Present() {}
