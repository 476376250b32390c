package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/cipher-visualization/internal/config"
	"github.com/iburimskiy/cipher-visualization/internal/game"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Cipher Visualization - type to encrypt, drag to orbit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("starting", "width", cfg.WindowWidth, "height", cfg.WindowHeight, "message", cfg.Message)

	if err := ebiten.RunGame(game.New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop", "error", err)
		os.Exit(1)
	}
}
