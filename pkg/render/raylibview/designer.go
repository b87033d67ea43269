// pkg/render/raylibview/designer.go
package raylibview

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/opd-ai/go-spacerace/pkg/course"
	"github.com/opd-ai/go-spacerace/pkg/designer"
	"github.com/opd-ai/go-spacerace/pkg/physics"
	"github.com/opd-ai/go-spacerace/pkg/render"
)

// Designer edit tuning
const (
	orbitSpeed  = 0.005 // radians per pixel of mouse drag
	panSpeed    = 10.0  // world units per pixel
	zoomSpeed   = 800.0 // world units per wheel notch
	moveStep    = 100.0 // world units per keypress
	rotateStep  = math.Pi / 24
	statusDelay = 3 * time.Second
)

// RunDesigner opens the course editor window. The scene is edited in
// place; Ctrl+S writes it back to path.
func RunDesigner(ctx context.Context, scene *designer.Scene, path string) {
	width := scene.Camera.Width
	height := scene.Camera.Height
	rl.InitWindow(int32(width), int32(height), "spacerace designer")
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	surface := NewWindowSurface(width, height)
	wireframe := render.NewWireframe(scene.Camera, surface)

	var status string
	var statusUntil time.Time
	note := func(format string, args ...any) {
		status = fmt.Sprintf(format, args...)
		statusUntil = time.Now().Add(statusDelay)
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			if !scene.Dirty {
				return
			}
			note("unsaved changes - Ctrl+S to save, Esc again to discard")
			scene.Dirty = false
		}

		handleCamera(scene)
		handleEdits(ctx, scene, path, note)

		rl.BeginDrawing()
		wireframe.Clear()
		bounds := scene.Course.Boundaries
		wireframe.DrawBoundary(bounds.Width, bounds.Height, bounds.Depth)
		wireframe.DrawGrid(bounds.Width/2, designer.BoundaryStep)
		for _, gate := range scene.Course.Gates {
			wireframe.RenderGate(gate)
		}
		for _, asteroid := range scene.Course.Asteroids {
			wireframe.RenderAsteroid(asteroid)
		}
		drawSelectionMarker(scene)
		drawDesignerHUD(scene, status, statusUntil)
		rl.EndDrawing()
	}
}

// handleCamera applies mouse orbit, pan and zoom
func handleCamera(scene *designer.Scene) {
	delta := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		scene.Camera.Orbit(float64(delta.X)*orbitSpeed, float64(-delta.Y)*orbitSpeed)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		scene.Camera.Pan(float64(-delta.X)*panSpeed, float64(delta.Y)*panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		scene.Camera.Zoom(float64(wheel) * zoomSpeed)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		scene.Pick(float64(mouse.X), float64(mouse.Y))
	}
}

// handleEdits applies keyboard edit operations to the selection
func handleEdits(ctx context.Context, scene *designer.Scene, path string, note func(string, ...any)) {
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	switch {
	case ctrl && rl.IsKeyPressed(rl.KeyS):
		if err := scene.Save(ctx, path); err != nil {
			note("save failed: %v", err)
		} else {
			note("saved %s", path)
		}
		return
	case rl.IsKeyPressed(rl.KeyG):
		scene.AddGate(scene.Camera.Target)
		note("gate added")
	case rl.IsKeyPressed(rl.KeyO):
		scene.AddAsteroid(scene.Camera.Target)
		note("asteroid added")
	case rl.IsKeyPressed(rl.KeyP):
		scene.Populate(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
			course.DefaultGeneratorOptions())
		note("asteroid field regenerated")
	case rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyX):
		scene.Delete()
		note("deleted")
	case rl.IsKeyPressed(rl.KeyM):
		scene.CycleModel()
	case rl.IsKeyPressed(rl.KeyEqual):
		scene.Resize(true)
	case rl.IsKeyPressed(rl.KeyMinus):
		scene.Resize(false)
	case rl.IsKeyPressed(rl.KeyRightBracket):
		scene.ResizeBoundary(true)
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		scene.ResizeBoundary(false)
	case rl.IsKeyPressed(rl.KeyF12):
		snapshotPath := strings.TrimSuffix(path, ".json") + ".webp"
		if err := scene.Snapshot(ctx, snapshotPath); err != nil {
			note("snapshot failed: %v", err)
		} else {
			note("snapshot saved %s", snapshotPath)
		}
	}

	handleMoveKeys(scene)
	handleRotateKeys(scene, ctrl)
}

// handleMoveKeys nudges the selection along the world axes
func handleMoveKeys(scene *designer.Scene) {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	var delta physics.Vector3
	if rl.IsKeyDown(rl.KeyLeft) {
		delta.X -= moveStep
	}
	if rl.IsKeyDown(rl.KeyRight) {
		delta.X += moveStep
	}
	if shift {
		// Shift switches vertical movement onto the up/down keys.
		if rl.IsKeyDown(rl.KeyUp) {
			delta.Y += moveStep
		}
		if rl.IsKeyDown(rl.KeyDown) {
			delta.Y -= moveStep
		}
	} else {
		if rl.IsKeyDown(rl.KeyUp) {
			delta.Z += moveStep
		}
		if rl.IsKeyDown(rl.KeyDown) {
			delta.Z -= moveStep
		}
	}
	if delta != (physics.Vector3{}) {
		scene.Move(delta)
	}
}

// handleRotateKeys spins the selection about world axes
func handleRotateKeys(scene *designer.Scene, ctrl bool) {
	if ctrl {
		return // Ctrl combinations are shortcuts, not rotation
	}
	if rl.IsKeyDown(rl.KeyJ) {
		scene.Rotate(physics.Vector3{Y: 1}, -rotateStep)
	}
	if rl.IsKeyDown(rl.KeyL) {
		scene.Rotate(physics.Vector3{Y: 1}, rotateStep)
	}
	if rl.IsKeyDown(rl.KeyI) {
		scene.Rotate(physics.Vector3{X: 1}, rotateStep)
	}
	if rl.IsKeyDown(rl.KeyK) {
		scene.Rotate(physics.Vector3{X: 1}, -rotateStep)
	}
}

// drawSelectionMarker highlights the selected object
func drawSelectionMarker(scene *designer.Scene) {
	if scene.Selected.None() {
		return
	}
	var position physics.Vector3
	found := false
	for _, gate := range scene.Course.Gates {
		if uint64(gate.ID) == scene.Selected.ID {
			position, found = gate.Position, true
		}
	}
	for _, asteroid := range scene.Course.Asteroids {
		if uint64(asteroid.ID) == scene.Selected.ID {
			position, found = asteroid.Position, true
		}
	}
	if !found {
		return
	}
	if point, visible := scene.Camera.ProjectPoint(position); visible {
		rl.DrawCircleLines(int32(point.X), int32(point.Y), 24, rl.Yellow)
	}
}

func drawDesignerHUD(scene *designer.Scene, status string, statusUntil time.Time) {
	title := scene.Course.Name
	if scene.Dirty {
		title += " *"
	}
	rl.DrawText(title, 10, 10, 18, hudColor)
	rl.DrawText(fmt.Sprintf("gates %d  asteroids %d  selected %s",
		len(scene.Course.Gates), len(scene.Course.Asteroids), scene.Selected.Kind),
		10, 34, 18, hudColor)

	if status != "" && time.Now().Before(statusUntil) {
		rl.DrawText(status, 10, int32(scene.Camera.Height-30), 18, rl.Yellow)
	}
}
