// pkg/render/raylibview/input.go
package raylibview

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/opd-ai/go-spacerace/pkg/config"
	"github.com/opd-ai/go-spacerace/pkg/engine"
)

// PollControls samples keyboard and, when configured, the first
// gamepad into one frame of control input.
func PollControls(joystick config.JoystickConfig) engine.ControlState {
	var in engine.ControlState

	if rl.IsKeyDown(rl.KeyW) {
		in.Thrust += 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Thrust -= 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Yaw -= 1
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Yaw += 1
	}
	if rl.IsKeyDown(rl.KeyUp) {
		in.Pitch += 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		in.Pitch -= 1
	}
	if rl.IsKeyDown(rl.KeyQ) {
		in.Roll -= 1
	}
	if rl.IsKeyDown(rl.KeyE) {
		in.Roll += 1
	}
	in.Reset = rl.IsKeyPressed(rl.KeyR)
	in.Quit = rl.IsKeyPressed(rl.KeyEscape)

	if joystick.Enabled && rl.IsGamepadAvailable(0) {
		applyGamepad(&in, joystick)
	}

	return in
}

// applyGamepad overlays analog axes on top of the keyboard state.
// Axes inside the deadzone contribute nothing, so keyboard input wins
// on an idle stick.
func applyGamepad(in *engine.ControlState, joystick config.JoystickConfig) {
	axis := func(index int) float64 {
		value := float64(rl.GetGamepadAxisMovement(0, int32(index)))
		if math.Abs(value) < joystick.Deadzone {
			return 0
		}
		return value
	}

	if yaw := axis(joystick.YawAxis); yaw != 0 {
		in.Yaw = yaw
	}
	if pitch := axis(joystick.PitchAxis); pitch != 0 {
		if joystick.InvertPitch {
			pitch = -pitch
		}
		in.Pitch = pitch
	}
	if roll := axis(joystick.RollAxis); roll != 0 {
		in.Roll = roll
	}
	if thrust := axis(joystick.ThrustAxis); thrust != 0 {
		// Trigger-style axes push forward; pull back to reverse.
		in.Thrust = -thrust
	}
}
