// pkg/config/parse.go
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opd-ai/go-spacerace/pkg/physics"
)

// unitSuffixes are stripped from numeric config values before parsing
var unitSuffixes = []string{"kg", "m"}

// ParseQuantity parses a numeric config value with an optional unit
// suffix, e.g. "1000 kg", "15m" or plain "1000".
func ParseQuantity(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, suffix))
			break
		}
	}
	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %w", err)
	}
	return number, nil
}

// ParseTuple parses a three-component vector from tuple literal syntax,
// e.g. "(0, 0, -5000)". Surrounding parentheses are optional.
func ParseTuple(value string) (physics.Vector3, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return physics.Vector3{}, fmt.Errorf("expected 3 components, got %d", len(parts))
	}

	var components [3]float64
	for i, part := range parts {
		number, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return physics.Vector3{}, fmt.Errorf("component %d: %w", i, err)
		}
		components[i] = number
	}
	return physics.Vector3{X: components[0], Y: components[1], Z: components[2]}, nil
}
