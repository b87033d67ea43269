// pkg/render/engoview/scene.go
package engoview

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacerace/pkg/engine"
	"github.com/opd-ai/go-spacerace/pkg/render"
)

// PlayScene runs a race inside an Engo window
type PlayScene struct {
	ctx  context.Context
	game *engine.Game

	world     *ecs.World
	wireframe *render.Wireframe
	hud       *HUD
}

// NewPlayScene creates the scene around an already-built game
func NewPlayScene(ctx context.Context, game *engine.Game) *PlayScene {
	return &PlayScene{ctx: ctx, game: game}
}

// Type returns the scene type (required by Engo)
func (scene *PlayScene) Type() string {
	return "PlayScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *PlayScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *PlayScene) Setup(u engo.Updater) {
	scene.world, _ = u.(*ecs.World)

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	SetupInputBindings()

	width := scene.game.Config.Screen.Width
	height := scene.game.Config.Screen.Height
	surface := NewLineSurface(scene.world, renderSystem, width, height)
	camera := render.NewCamera(width, height, scene.game.Config.FOV)
	scene.wireframe = render.NewWireframe(camera, surface)
	scene.hud = NewHUD(renderSystem, LoadHUDFont())

	scene.world.AddSystem(&raceSystem{scene: scene})

	scene.game.Start(scene.ctx)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *PlayScene) Exit() {}

// raceSystem drives the game from Engo's update loop: one system
// update is one frame of input, physics and drawing.
type raceSystem struct {
	scene *PlayScene
}

// Remove satisfies the ecs.System interface
func (rs *raceSystem) Remove(basic ecs.BasicEntity) {}

// Update advances and draws one frame
func (rs *raceSystem) Update(dt float32) {
	scene := rs.scene
	game := scene.game

	in := PollControls()
	if in.Quit {
		engo.Exit()
		return
	}

	game.Update(scene.ctx, float64(dt), in)

	camera := scene.wireframe.Camera
	camera.Follow(game.Ship.Body,
		game.Config.Camera.BackOffset, game.Config.Camera.UpOffset)

	scene.wireframe.Clear()
	bounds := game.Course.Boundaries
	scene.wireframe.DrawBoundary(bounds.Width, bounds.Height, bounds.Depth)
	game.Render(scene.wireframe)
	scene.wireframe.Present()

	scene.hud.Update(game)
}

// Run opens the window and blocks until the player quits
func Run(ctx context.Context, game *engine.Game) {
	opts := engo.RunOptions{
		Title:      "spacerace - " + game.Course.Name,
		Width:      game.Config.Screen.Width,
		Height:     game.Config.Screen.Height,
		Fullscreen: game.Config.Screen.Fullscreen,
	}
	engo.Run(opts, NewPlayScene(ctx, game))
}
