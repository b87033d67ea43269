// pkg/render/raylibview/play.go
package raylibview

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/opd-ai/go-spacerace/pkg/engine"
	"github.com/opd-ai/go-spacerace/pkg/render"
)

var hudColor = rl.NewColor(0, 255, 100, 255)

// Run opens a window and races until the player quits or closes it
func Run(ctx context.Context, game *engine.Game) {
	width := game.Config.Screen.Width
	height := game.Config.Screen.Height
	if game.Config.Screen.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	}
	rl.InitWindow(int32(width), int32(height), "spacerace - "+game.Course.Name)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // quit is handled through ControlState
	rl.SetTargetFPS(60)

	surface := NewWindowSurface(width, height)
	camera := render.NewCamera(width, height, game.Config.FOV)
	wireframe := render.NewWireframe(camera, surface)

	game.Start(ctx)

	for !rl.WindowShouldClose() {
		deltaTime := float64(rl.GetFrameTime())
		in := PollControls(game.Config.Joystick)
		if in.Quit {
			return
		}

		game.Update(ctx, deltaTime, in)
		camera.Follow(game.Ship.Body,
			game.Config.Camera.BackOffset, game.Config.Camera.UpOffset)

		rl.BeginDrawing()
		wireframe.Clear()
		bounds := game.Course.Boundaries
		wireframe.DrawBoundary(bounds.Width, bounds.Height, bounds.Depth)
		game.Render(wireframe)
		drawHUD(game)
		rl.EndDrawing()
	}
}

func drawHUD(game *engine.Game) {
	rl.DrawText(fmt.Sprintf("%s  |  %s", game.Config.PlayerName, game.Status),
		10, 10, 18, hudColor)
	rl.DrawText(fmt.Sprintf("Gate %d/%d", game.GatesPassed(), len(game.Course.Gates)),
		10, 34, 18, hudColor)
	rl.DrawText(fmt.Sprintf("%6.1fs", game.Elapsed), 10, 58, 18, hudColor)

	switch game.Status {
	case engine.GameStatusCrashed:
		rl.DrawText("CRASHED - press R to restart", 10, 90, 22, rl.Red)
	case engine.GameStatusFinished:
		rl.DrawText(fmt.Sprintf("FINISHED in %.1fs - press R to race again", game.Elapsed),
			10, 90, 22, rl.Green)
	}
}
