// pkg/render/wireframe.go
package render

import (
	"image/color"

	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// Palette holds the line colors for each kind of course object
type Palette struct {
	Ship       color.RGBA
	Gate       color.RGBA
	GateNext   color.RGBA
	GatePassed color.RGBA
	Asteroid   color.RGBA
	Boundary   color.RGBA
	Grid       color.RGBA
	Selected   color.RGBA
}

// DefaultPalette returns the stock colors
func DefaultPalette() Palette {
	return Palette{
		Ship:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Gate:       color.RGBA{B: 255, G: 100, A: 255},
		GateNext:   color.RGBA{G: 255, A: 255},
		GatePassed: color.RGBA{R: 255, A: 255},
		Asteroid:   color.RGBA{R: 160, G: 82, B: 45, A: 255},
		Boundary:   color.RGBA{R: 60, G: 60, B: 70, A: 255},
		Grid:       color.RGBA{R: 50, G: 50, B: 60, A: 255},
		Selected:   color.RGBA{R: 255, G: 255, A: 255},
	}
}

var boundaryEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe implements entity.Renderer by transforming local-space
// meshes to world space, projecting through a camera and emitting line
// segments onto a surface. Edges with either endpoint in front of the
// near plane are skipped whole; there is no partial-segment clipping,
// no z-buffering and no occlusion.
type Wireframe struct {
	Camera  *Camera
	Palette Palette

	surface Surface
}

// NewWireframe creates a wireframe renderer over a camera and surface
func NewWireframe(camera *Camera, surface Surface) *Wireframe {
	return &Wireframe{
		Camera:  camera,
		Palette: DefaultPalette(),
		surface: surface,
	}
}

// Clear implements entity.Renderer
func (w *Wireframe) Clear() {
	w.surface.Clear()
}

// Present implements entity.Renderer
func (w *Wireframe) Present() {
	w.surface.Present()
}

// DrawWireframe draws any wireframe object: local vertices rotated by
// orientation, translated to position, projected and connected by edges.
func (w *Wireframe) DrawWireframe(position physics.Vector3, orientation physics.Quaternion,
	vertices []physics.Vector3, edges [][2]int, lineColor color.RGBA,
) {
	points := make([]ScreenPoint, len(vertices))
	visible := make([]bool, len(vertices))
	for i, v := range vertices {
		world := orientation.Rotate(v).Add(position)
		points[i], visible[i] = w.Camera.ProjectPoint(world)
	}

	for _, edge := range edges {
		if visible[edge[0]] && visible[edge[1]] {
			w.surface.DrawLine(points[edge[0]], points[edge[1]], lineColor)
		}
	}
}

// RenderShip implements entity.Renderer
func (w *Wireframe) RenderShip(ship *entity.Ship) {
	w.DrawWireframe(ship.Body.Position, ship.Body.Orientation,
		entity.ShipVertices, entity.ShipEdges, w.Palette.Ship)
}

// RenderGate implements entity.Renderer, coloring by gate state
func (w *Wireframe) RenderGate(gate *entity.Gate) {
	lineColor := w.Palette.Gate
	switch {
	case gate.Passed:
		lineColor = w.Palette.GatePassed
	case gate.Next:
		lineColor = w.Palette.GateNext
	}
	w.DrawWireframe(gate.Position, gate.Orientation, gate.Vertices(), gate.Edges(), lineColor)
}

// RenderAsteroid implements entity.Renderer
func (w *Wireframe) RenderAsteroid(asteroid *entity.Asteroid) {
	w.DrawWireframe(asteroid.Position, asteroid.Orientation,
		asteroid.Vertices(), asteroid.Edges(), w.Palette.Asteroid)
}

// DrawBoundary draws the playable volume as an axis-aligned box
// centered on the origin.
func (w *Wireframe) DrawBoundary(width, height, depth float64) {
	x, y, z := width/2, height/2, depth/2
	vertices := []physics.Vector3{
		{X: -x, Y: -y, Z: -z}, {X: x, Y: -y, Z: -z}, {X: x, Y: y, Z: -z}, {X: -x, Y: y, Z: -z},
		{X: -x, Y: -y, Z: z}, {X: x, Y: -y, Z: z}, {X: x, Y: y, Z: z}, {X: -x, Y: y, Z: z},
	}
	w.DrawWireframe(physics.Vector3{}, physics.IdentityQuaternion(),
		vertices, boundaryEdges, w.Palette.Boundary)
}

// DrawGrid draws a ground-plane reference grid for the designer view
func (w *Wireframe) DrawGrid(halfSize, step float64) {
	for i := -halfSize; i <= halfSize; i += step {
		w.drawWorldLine(
			physics.Vector3{X: -halfSize, Z: i},
			physics.Vector3{X: halfSize, Z: i},
		)
		w.drawWorldLine(
			physics.Vector3{X: i, Z: -halfSize},
			physics.Vector3{X: i, Z: halfSize},
		)
	}
}

func (w *Wireframe) drawWorldLine(from, to physics.Vector3) {
	p1, ok1 := w.Camera.ProjectPoint(from)
	p2, ok2 := w.Camera.ProjectPoint(to)
	if ok1 && ok2 {
		w.surface.DrawLine(p1, p2, w.Palette.Grid)
	}
}
