// pkg/config/env.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ApplyEnvironmentOverrides replaces config values with any set
// SPACERACE_* environment variables. Unset variables leave the loaded
// value alone.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	config.PlayerName = getEnvOrDefault("SPACERACE_PLAYER_NAME", config.PlayerName)

	var err error
	if config.Screen.Width, err = getEnvInt("SPACERACE_SCREEN_WIDTH", config.Screen.Width); err != nil {
		return err
	}
	if config.Screen.Height, err = getEnvInt("SPACERACE_SCREEN_HEIGHT", config.Screen.Height); err != nil {
		return err
	}
	if config.Screen.Fullscreen, err = getEnvBool("SPACERACE_FULLSCREEN", config.Screen.Fullscreen); err != nil {
		return err
	}
	if config.FOV, err = getEnvFloat("SPACERACE_FOV", config.FOV); err != nil {
		return err
	}
	if config.Joystick.Enabled, err = getEnvBool("SPACERACE_JOYSTICK", config.Joystick.Enabled); err != nil {
		return err
	}

	return ValidateConfig(config)
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return parsed, nil
}
