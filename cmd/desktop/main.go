package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/skyfall/internal/config"
	"github.com/tomz197/skyfall/internal/desktop"
	"github.com/tomz197/skyfall/internal/loop"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(os.Stderr, "desktop", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	variant, err := loop.ParseVariant(cfg.Mode)
	if err != nil {
		logger.Fatal("bad mode", "err", err)
	}

	game, err := desktop.NewGame(loop.Options{Variant: variant}, logger)
	if err != nil {
		logger.Fatal("create game", "err", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Skyfall")
	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "mode", variant)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", "err", err)
	}
}
