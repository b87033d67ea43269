package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/opd-ai/go-spacerace/pkg/physics"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1000 kg", 1000, false},
		{"1000kg", 1000, false},
		{"15m", 15, false},
		{"42.5", 42.5, false},
		{"  250 kg  ", 250, false},
		{"heavy", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuantity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ParseQuantity(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTuple(t *testing.T) {
	tests := []struct {
		input   string
		want    physics.Vector3
		wantErr bool
	}{
		{"(0, 0, -5000)", physics.Vector3{Z: -5000}, false},
		{"(1.5, -2, 3)", physics.Vector3{X: 1.5, Y: -2, Z: 3}, false},
		{"0, 0, 100", physics.Vector3{Z: 100}, false},
		{"(1, 2)", physics.Vector3{}, true},
		{"(a, b, c)", physics.Vector3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTuple(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTuple(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestShipConfig_ShipStats(t *testing.T) {
	ship := DefaultConfig().Ship
	ship.Mass = "2500 kg"
	ship.ForwardThrust = 30000

	stats, err := ship.ShipStats()
	if err != nil {
		t.Fatalf("ShipStats: %v", err)
	}
	if stats.Mass != 2500 {
		t.Errorf("mass = %f, want 2500", stats.Mass)
	}
	if stats.ForwardThrust != 30000 {
		t.Errorf("forward thrust = %f, want 30000", stats.ForwardThrust)
	}
}

func TestShipConfig_RejectsNonPositiveMass(t *testing.T) {
	ship := DefaultConfig().Ship
	ship.Mass = "0 kg"
	if _, err := ship.MassKilograms(); err == nil {
		t.Error("expected error for zero mass")
	}
}

func TestValidateConfig_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero width", func(c *GameConfig) { c.Screen.Width = 0 }},
		{"negative height", func(c *GameConfig) { c.Screen.Height = -1 }},
		{"fov too wide", func(c *GameConfig) { c.FOV = 180 }},
		{"deadzone out of range", func(c *GameConfig) { c.Joystick.Deadzone = 1 }},
		{"bad mass", func(c *GameConfig) { c.Ship.Mass = "many" }},
		{"bad start position", func(c *GameConfig) { c.Ship.StartPosition = "(1, 2)" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := ValidateConfig(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.PlayerName = "Ace"
	cfg.Screen.Width = 1920
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.PlayerName != "Ace" || loaded.Screen.Width != 1920 {
		t.Errorf("loaded = %q/%d, want Ace/1920", loaded.PlayerName, loaded.Screen.Width)
	}
	// Untouched fields keep their defaults.
	if loaded.Camera.BackOffset != 60 {
		t.Errorf("camera back offset = %f, want default 60", loaded.Camera.BackOffset)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnvironmentOverrides(t *testing.T) {
	t.Setenv("SPACERACE_PLAYER_NAME", "EnvPilot")
	t.Setenv("SPACERACE_SCREEN_WIDTH", "1280")
	t.Setenv("SPACERACE_FULLSCREEN", "true")
	t.Setenv("SPACERACE_FOV", "60")

	cfg := DefaultConfig()
	if err := ApplyEnvironmentOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvironmentOverrides: %v", err)
	}
	if cfg.PlayerName != "EnvPilot" {
		t.Errorf("player name = %q", cfg.PlayerName)
	}
	if cfg.Screen.Width != 1280 || !cfg.Screen.Fullscreen || cfg.FOV != 60 {
		t.Errorf("overrides not applied: %+v", cfg.Screen)
	}
	// Height had no override and keeps its default.
	if cfg.Screen.Height != 600 {
		t.Errorf("height = %d, want default 600", cfg.Screen.Height)
	}
}

func TestApplyEnvironmentOverrides_RejectsBadValues(t *testing.T) {
	t.Setenv("SPACERACE_SCREEN_WIDTH", "wide")
	if err := ApplyEnvironmentOverrides(DefaultConfig()); err == nil {
		t.Error("expected error for non-numeric width")
	}
}
