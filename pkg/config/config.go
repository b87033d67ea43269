// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-spacerace/pkg/entity"
	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// GameConfig contains configuration for a race session
type GameConfig struct {
	PlayerName string         `json:"playerName"`
	Screen     ScreenConfig   `json:"screen"`
	FOV        float64        `json:"fov"`
	Ship       ShipConfig     `json:"ship"`
	Joystick   JoystickConfig `json:"joystick"`
	Camera     CameraConfig   `json:"camera"`
}

// ScreenConfig contains display configuration
type ScreenConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Fullscreen bool `json:"fullscreen"`
}

// ShipConfig contains the player ship's physical parameters. Mass and
// StartPosition keep their textual config form: mass may carry a unit
// suffix ("1000 kg") and the start position is a tuple literal
// ("(0, 0, -5000)"), both parsed on demand.
type ShipConfig struct {
	Mass          string  `json:"mass"`
	StartPosition string  `json:"startPosition"`
	ForwardThrust float64 `json:"forwardThrust"`
	ReverseThrust float64 `json:"reverseThrust"`
	YawTorque     float64 `json:"yawTorque"`
	PitchTorque   float64 `json:"pitchTorque"`
	RollTorque    float64 `json:"rollTorque"`
}

// JoystickConfig contains analog input configuration
type JoystickConfig struct {
	Enabled     bool    `json:"enabled"`
	YawAxis     int     `json:"yawAxis"`
	PitchAxis   int     `json:"pitchAxis"`
	RollAxis    int     `json:"rollAxis"`
	ThrustAxis  int     `json:"thrustAxis"`
	Deadzone    float64 `json:"deadzone"`
	InvertPitch bool    `json:"invertPitch"`
}

// CameraConfig contains chase camera offsets
type CameraConfig struct {
	BackOffset float64 `json:"backOffset"`
	UpOffset   float64 `json:"upOffset"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	stats := entity.DefaultShipStats()
	return &GameConfig{
		PlayerName: "Pilot",
		Screen: ScreenConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
		},
		FOV: 75,
		Ship: ShipConfig{
			Mass:          "1000 kg",
			StartPosition: "(0, 0, -5000)",
			ForwardThrust: stats.ForwardThrust,
			ReverseThrust: stats.ReverseThrust,
			YawTorque:     stats.YawTorque,
			PitchTorque:   stats.PitchTorque,
			RollTorque:    stats.RollTorque,
		},
		Joystick: JoystickConfig{
			Enabled:     false,
			YawAxis:     0,
			PitchAxis:   1,
			RollAxis:    2,
			ThrustAxis:  3,
			Deadzone:    0.15,
			InvertPitch: false,
		},
		Camera: CameraConfig{
			BackOffset: 60,
			UpOffset:   20,
		},
	}
}

// ValidateConfig checks the loaded values for ranges the game cannot
// run with.
func ValidateConfig(config *GameConfig) error {
	if config.Screen.Width <= 0 || config.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", config.Screen.Width, config.Screen.Height)
	}
	if config.FOV <= 0 || config.FOV >= 180 {
		return fmt.Errorf("invalid field of view %f: must be in (0, 180)", config.FOV)
	}
	if config.Joystick.Deadzone < 0 || config.Joystick.Deadzone >= 1 {
		return fmt.Errorf("invalid joystick deadzone %f: must be in [0, 1)", config.Joystick.Deadzone)
	}
	if _, err := config.Ship.MassKilograms(); err != nil {
		return err
	}
	if _, err := config.Ship.StartVector(); err != nil {
		return err
	}
	return nil
}

// MassKilograms parses the ship mass, stripping any unit suffix
func (s *ShipConfig) MassKilograms() (float64, error) {
	mass, err := ParseQuantity(s.Mass)
	if err != nil {
		return 0, fmt.Errorf("invalid ship mass %q: %w", s.Mass, err)
	}
	if mass <= 0 {
		return 0, fmt.Errorf("invalid ship mass %q: must be positive", s.Mass)
	}
	return mass, nil
}

// StartVector parses the ship start position tuple
func (s *ShipConfig) StartVector() (physics.Vector3, error) {
	position, err := ParseTuple(s.StartPosition)
	if err != nil {
		return physics.Vector3{}, fmt.Errorf("invalid start position %q: %w", s.StartPosition, err)
	}
	return position, nil
}

// ShipStats builds the typed ship parameters the engine consumes
func (s *ShipConfig) ShipStats() (entity.ShipStats, error) {
	mass, err := s.MassKilograms()
	if err != nil {
		return entity.ShipStats{}, err
	}
	stats := entity.DefaultShipStats()
	stats.Mass = mass
	stats.ForwardThrust = s.ForwardThrust
	stats.ReverseThrust = s.ReverseThrust
	stats.YawTorque = s.YawTorque
	stats.PitchTorque = s.PitchTorque
	stats.RollTorque = s.RollTorque
	return stats, nil
}
