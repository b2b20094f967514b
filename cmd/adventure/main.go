// Package main runs the text dungeon crawl on the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/adventure"
	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/console"
	"github.com/cory-johannsen/dungeon/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults apply when empty)")
	seed := flag.Int64("seed", 0, "random seed for a reproducible run (0 uses crypto/rand)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	content, err := adventure.LoadContent(cfg.Content)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.String("dungeon", content.Dungeon.Name),
		zap.Int("rooms", len(content.Dungeon.Rooms)),
		zap.Int("artifacts", content.Artifacts.Len()),
		zap.Int("clues", content.Clues.Len()),
	)

	game, err := adventure.New(cfg, content,
		adventure.NewSource(cfg.Game.Seed),
		console.NewLinePrompter(os.Stdin, os.Stdout),
		console.NewNarrator(os.Stdout, cfg.Display.Color),
		logger,
	)
	if err != nil {
		logger.Fatal("building game", zap.Error(err))
	}

	res, err := game.Run(context.Background())
	if err != nil {
		logger.Fatal("running game", zap.Error(err))
	}
	logger.Info("game over",
		zap.String("outcome", res.Outcome.String()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
