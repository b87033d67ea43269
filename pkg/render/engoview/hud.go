// pkg/render/engoview/hud.go
package engoview

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacerace/pkg/engine"
)

const hudFontURL = "fonts/hud.ttf"

// hudLine is one positioned text entity, updated in place each frame
type hudLine struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// HUD shows race status: gate progress, elapsed time and the state
// line. Without a loadable font it silently shows nothing.
type HUD struct {
	renderSystem *common.RenderSystem
	font         *common.Font
	lines        []*hudLine
	hudColor     color.RGBA
}

// NewHUD creates the HUD; the font may be nil when loading failed
func NewHUD(renderSystem *common.RenderSystem, font *common.Font) *HUD {
	return &HUD{
		renderSystem: renderSystem,
		font:         font,
		hudColor:     color.RGBA{R: 0, G: 255, B: 100, A: 255},
	}
}

// LoadHUDFont preloads and creates the HUD font. Returns nil when the
// asset is missing, which disables HUD text.
func LoadHUDFont() *common.Font {
	if err := engo.Files.Load(hudFontURL); err != nil {
		return nil
	}
	font := &common.Font{
		URL:  hudFontURL,
		FG:   color.RGBA{R: 0, G: 255, B: 100, A: 255},
		Size: 16,
	}
	if err := font.CreatePreloaded(); err != nil {
		return nil
	}
	return font
}

// Update rewrites the HUD lines from the current game state
func (h *HUD) Update(game *engine.Game) {
	if h.font == nil {
		return
	}

	status := fmt.Sprintf("%s  |  %s", game.Config.PlayerName, game.Status)
	progress := fmt.Sprintf("Gate %d/%d", game.GatesPassed(), len(game.Course.Gates))
	clock := fmt.Sprintf("%6.1fs", game.Elapsed)

	h.setLine(0, status, 10, 10)
	h.setLine(1, progress, 10, 30)
	h.setLine(2, clock, 10, 50)

	switch game.Status {
	case engine.GameStatusCrashed:
		h.setLine(3, "CRASHED - press R to restart", 10, 80)
	case engine.GameStatusFinished:
		h.setLine(3, fmt.Sprintf("FINISHED in %.1fs - press R to race again", game.Elapsed), 10, 80)
	default:
		h.setLine(3, "", 10, 80)
	}
}

func (h *HUD) setLine(index int, text string, x, y float32) {
	for len(h.lines) <= index {
		line := &hudLine{basic: ecs.NewBasic()}
		line.render = common.RenderComponent{
			Drawable: common.Text{Font: h.font, Text: ""},
			Color:    h.hudColor,
		}
		line.space = common.SpaceComponent{
			Position: engo.Point{X: x, Y: y},
			Width:    400,
			Height:   20,
		}
		h.renderSystem.Add(&line.basic, &line.render, &line.space)
		h.lines = append(h.lines, line)
	}

	line := h.lines[index]
	line.space.Position = engo.Point{X: x, Y: y}
	line.render.Drawable = common.Text{Font: h.font, Text: text}
	line.render.Hidden = text == ""
}
