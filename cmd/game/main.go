package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"go.uber.org/zap"

	"github.com/Talha991s/Babylon-Game/pkg/app"
	"github.com/Talha991s/Babylon-Game/pkg/config"
	"github.com/Talha991s/Babylon-Game/pkg/input"
	"github.com/Talha991s/Babylon-Game/pkg/level"
	"github.com/Talha991s/Babylon-Game/pkg/logging"
	"github.com/Talha991s/Babylon-Game/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Command line flags override the environment
	flag.IntVar(&cfg.Window.Width, "width", cfg.Window.Width, "Window width")
	flag.IntVar(&cfg.Window.Height, "height", cfg.Window.Height, "Window height")
	flag.BoolVar(&cfg.Window.VSync, "vsync", cfg.Window.VSync, "Wait for vertical sync")
	flag.StringVar(&cfg.Log.Level, "loglevel", cfg.Log.Level, "Log level (debug, info, warn, error)")
	flag.DurationVar(&cfg.Level.Latency, "latency", cfg.Level.Latency, "Artificial level load latency")
	flag.Parse()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("game exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := render.NewRenderer(cfg.Window, logger.Named("render"))
	if err != nil {
		return err
	}
	defer renderer.Cleanup()

	loader := level.NewLoader(cfg.Level, logger.Named("level"))
	defer loader.Cleanup()

	keyboard := input.NewKeyboard(renderer.Window())

	game, err := app.New(renderer, loader, keyboard, cfg.Player, logger.Named("app"))
	if err != nil {
		return err
	}
	defer game.Close()

	game.Go(game.GoToStart)

	logger.Info("starting game loop",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	renderer.Run(ctx)

	return nil
}
