// cmd/spacerace/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/opd-ai/go-spacerace/pkg/audio"
	"github.com/opd-ai/go-spacerace/pkg/config"
	"github.com/opd-ai/go-spacerace/pkg/course"
	"github.com/opd-ai/go-spacerace/pkg/engine"
	"github.com/opd-ai/go-spacerace/pkg/logging"
	"github.com/opd-ai/go-spacerace/pkg/render/engoview"
	"github.com/opd-ai/go-spacerace/pkg/render/raylibview"
	"github.com/opd-ai/go-spacerace/pkg/validation"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	coursePath := flag.String("course", "course.json", "Path to course file")
	playerName := flag.String("name", "", "Player name (overrides config)")
	renderer := flag.String("renderer", "raylib", "Renderer type: 'terminal', 'engo' or 'raylib'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	// Load configuration
	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "configuration file not found, using defaults", "path", *configPath)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		log.Fatalf("Invalid environment override: %v", err)
	}

	// Apply command line overrides
	if *playerName != "" {
		gameConfig.PlayerName = *playerName
	}
	if *width > 0 {
		gameConfig.Screen.Width = *width
	}
	if *height > 0 {
		gameConfig.Screen.Height = *height
	}
	if *fullscreen {
		gameConfig.Screen.Fullscreen = true
	}

	name, err := validation.ValidatePlayerName(gameConfig.PlayerName)
	if err != nil {
		log.Fatalf("Invalid player name: %v", err)
	}
	gameConfig.PlayerName = name

	// Load the course; a broken or missing file falls back to an empty
	// course rather than refusing to start.
	raceCourse, err := course.Load(ctx, *coursePath, logger)
	if err != nil {
		logger.Warn(ctx, "course unavailable, starting with an empty course",
			"path", *coursePath, "error", err.Error())
		raceCourse = course.EmptyCourse("empty course")
	}

	game, err := engine.NewGame(ctx, gameConfig, raceCourse, logger)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if !*mute {
		sound := audio.NewSoundManager(logger)
		if err := sound.Initialize(ctx); err == nil {
			defer sound.Cleanup()
			sound.Attach(game.EventBus)
		}
	}

	switch *renderer {
	case "engo":
		engoview.Run(ctx, game)
	case "terminal":
		if err := runTerminal(ctx, game); err != nil {
			log.Fatalf("Terminal renderer failed: %v", err)
		}
	case "raylib":
		fallthrough
	default:
		raylibview.Run(ctx, game)
	}

	logger.Info(ctx, "shutting down",
		"status", game.Status.String(),
		"gates_passed", game.GatesPassed(),
		"elapsed", game.Elapsed)
}
