// cmd/designer/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/opd-ai/go-spacerace/pkg/config"
	"github.com/opd-ai/go-spacerace/pkg/designer"
	"github.com/opd-ai/go-spacerace/pkg/logging"
	"github.com/opd-ai/go-spacerace/pkg/render/raylibview"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	coursePath := flag.String("course", "course.json", "Course file to edit")
	courseName := flag.String("name", "", "Course name for a new course")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), "")

	var gameConfig *config.GameConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	scene := designer.NewScene(gameConfig.Screen.Width, gameConfig.Screen.Height,
		gameConfig.FOV, logger)

	// Edit the existing course when there is one; otherwise start blank
	// and save to the same path later.
	if _, err := os.Stat(*coursePath); err == nil {
		if err := scene.Load(ctx, *coursePath); err != nil {
			log.Fatalf("Failed to load course: %v", err)
		}
	} else {
		logger.Info(ctx, "starting a new course", "path", *coursePath)
	}
	if *courseName != "" {
		scene.Course.Name = *courseName
	}

	raylibview.RunDesigner(ctx, scene, *coursePath)

	logger.Info(ctx, "designer closed",
		"course", scene.Course.Name,
		"gates", len(scene.Course.Gates),
		"asteroids", len(scene.Course.Asteroids))
}
