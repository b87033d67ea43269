// pkg/render/engoview/input.go
package engoview

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacerace/pkg/engine"
)

// SetupInputBindings sets up the key bindings for flight
func SetupInputBindings() {
	engo.Input.RegisterButton("thrustForward", engo.KeyW)
	engo.Input.RegisterButton("thrustReverse", engo.KeyS)
	engo.Input.RegisterButton("yawLeft", engo.KeyA)
	engo.Input.RegisterButton("yawRight", engo.KeyD)
	engo.Input.RegisterButton("pitchUp", engo.KeyArrowUp)
	engo.Input.RegisterButton("pitchDown", engo.KeyArrowDown)
	engo.Input.RegisterButton("rollLeft", engo.KeyQ)
	engo.Input.RegisterButton("rollRight", engo.KeyE)
	engo.Input.RegisterButton("reset", engo.KeyR)
	engo.Input.RegisterButton("quit", engo.KeyEscape)
}

// PollControls samples the keyboard into one frame of control input.
// Keys are digital, so each axis is -1, 0 or +1.
func PollControls() engine.ControlState {
	var in engine.ControlState

	if engo.Input.Button("thrustForward").Down() {
		in.Thrust += 1
	}
	if engo.Input.Button("thrustReverse").Down() {
		in.Thrust -= 1
	}
	if engo.Input.Button("yawLeft").Down() {
		in.Yaw -= 1
	}
	if engo.Input.Button("yawRight").Down() {
		in.Yaw += 1
	}
	if engo.Input.Button("pitchUp").Down() {
		in.Pitch += 1
	}
	if engo.Input.Button("pitchDown").Down() {
		in.Pitch -= 1
	}
	if engo.Input.Button("rollLeft").Down() {
		in.Roll -= 1
	}
	if engo.Input.Button("rollRight").Down() {
		in.Roll += 1
	}
	in.Reset = engo.Input.Button("reset").JustPressed()
	in.Quit = engo.Input.Button("quit").JustPressed()

	return in
}
