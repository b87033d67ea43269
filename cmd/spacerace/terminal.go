// cmd/spacerace/terminal.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-spacerace/pkg/engine"
	"github.com/opd-ai/go-spacerace/pkg/render"
)

const terminalFrameRate = 30

// terminal cells are roughly twice as tall as wide; squash the
// vertical field of view so shapes look right.
const terminalFOVScale = 0.5

// runTerminal races in the current terminal using tcell. Terminals
// deliver key presses without releases, so each press steers for a
// single frame; holding a key autorepeats into continuous input.
func runTerminal(ctx context.Context, game *engine.Game) error {
	surface, err := render.NewTerminalSurface()
	if err != nil {
		return err
	}
	defer surface.Fini()

	width, height := surface.Size()
	camera := render.NewCamera(width, height, game.Config.FOV*terminalFOVScale)
	wireframe := render.NewWireframe(camera, surface)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := surface.Screen().PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	game.Start(ctx)

	ticker := time.NewTicker(time.Second / terminalFrameRate)
	defer ticker.Stop()
	last := time.Now()

	for {
		var in engine.ControlState
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				switch ev := ev.(type) {
				case *tcell.EventResize:
					camera.Width, camera.Height = surface.Size()
				case *tcell.EventKey:
					if applyKey(ev, &in) {
						return nil
					}
				}
			default:
				break drain
			}
		}

		now := <-ticker.C
		deltaTime := now.Sub(last).Seconds()
		last = now

		game.Update(ctx, deltaTime, in)
		camera.Follow(game.Ship.Body,
			game.Config.Camera.BackOffset, game.Config.Camera.UpOffset)

		wireframe.Clear()
		bounds := game.Course.Boundaries
		wireframe.DrawBoundary(bounds.Width, bounds.Height, bounds.Depth)
		game.Render(wireframe)
		drawTerminalHUD(surface, game)
		wireframe.Present()
	}
}

// applyKey folds one key event into the frame's controls; returns true
// on quit.
func applyKey(ev *tcell.EventKey, in *engine.ControlState) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		in.Pitch += 1
	case tcell.KeyDown:
		in.Pitch -= 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			in.Thrust += 1
		case 's':
			in.Thrust -= 1
		case 'a':
			in.Yaw -= 1
		case 'd':
			in.Yaw += 1
		case 'q':
			in.Roll -= 1
		case 'e':
			in.Roll += 1
		case 'r':
			in.Reset = true
		}
	}
	return false
}

func drawTerminalHUD(surface *render.TerminalSurface, game *engine.Game) {
	hud := render.DefaultPalette().GateNext
	surface.DrawText(1, 0, fmt.Sprintf("%s | %s | gate %d/%d | %6.1fs",
		game.Config.PlayerName, game.Status,
		game.GatesPassed(), len(game.Course.Gates), game.Elapsed), hud)

	switch game.Status {
	case engine.GameStatusCrashed:
		surface.DrawText(1, 1, "CRASHED - press r to restart", hud)
	case engine.GameStatusFinished:
		surface.DrawText(1, 1, "FINISHED - press r to race again", hud)
	}
}
