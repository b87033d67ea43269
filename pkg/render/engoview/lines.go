// Package engoview is the windowed frontend: it runs the race inside
// an Engo scene, drawing the projected wireframes with pooled
// rectangle entities and the HUD with Engo text.
package engoview

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacerace/pkg/render"
)

// lineEntity is one pooled drawable line segment
type lineEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

// LineSurface implements render.Surface on top of Engo's render
// system. Engo has no immediate-mode line drawing, so each segment is
// a 1px-high rectangle rotated into place. Entities are pooled across
// frames; unused ones are hidden rather than removed.
type LineSurface struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	pool         []*lineEntity
	used         int
	width        int
	height       int
}

// NewLineSurface creates a surface drawing into the given world
func NewLineSurface(world *ecs.World, renderSystem *common.RenderSystem, width, height int) *LineSurface {
	return &LineSurface{
		world:        world,
		renderSystem: renderSystem,
		width:        width,
		height:       height,
	}
}

// Size implements render.Surface
func (s *LineSurface) Size() (int, int) {
	return s.width, s.height
}

// Clear implements render.Surface: returns every pooled line to the
// hidden state for reuse this frame.
func (s *LineSurface) Clear() {
	for _, line := range s.pool {
		line.render.Hidden = true
	}
	s.used = 0
}

// DrawLine implements render.Surface
func (s *LineSurface) DrawLine(from, to render.ScreenPoint, lineColor color.RGBA) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length < 0.5 {
		return
	}

	line := s.takeLine()
	line.space.Position = engo.Point{X: float32(from.X), Y: float32(from.Y)}
	line.space.Width = float32(length)
	line.space.Height = 1
	line.space.Rotation = float32(math.Atan2(dy, dx) * 180 / math.Pi)
	line.render.Color = lineColor
	line.render.Hidden = false
}

// Present implements render.Surface; Engo presents on its own
func (s *LineSurface) Present() {}

func (s *LineSurface) takeLine() *lineEntity {
	if s.used < len(s.pool) {
		line := s.pool[s.used]
		s.used++
		return line
	}

	line := &lineEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		space: common.SpaceComponent{
			Width:  1,
			Height: 1,
		},
	}
	s.renderSystem.Add(&line.basic, &line.render, &line.space)
	s.pool = append(s.pool, line)
	s.used++
	return line
}
