// Package config loads the game's settings from GAME_* environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Talha991s/Babylon-Game/pkg/level"
	"github.com/Talha991s/Babylon-Game/pkg/logging"
	"github.com/Talha991s/Babylon-Game/pkg/player"
)

// Prefix is prepended to every variable name
const Prefix = "GAME_"

// Config is the complete game configuration
type Config struct {
	Window WindowConfig   `envPrefix:"WINDOW_"`
	Log    logging.Config `envPrefix:"LOG_"`
	Player player.Config  `envPrefix:"PLAYER_"`
	Level  level.Config   `envPrefix:"LEVEL_"`
}

// WindowConfig sizes the game window
type WindowConfig struct {
	Width  int    `env:"WIDTH"  envDefault:"1280"`
	Height int    `env:"HEIGHT" envDefault:"720"`
	Title  string `env:"TITLE"  envDefault:"Babylon Game"`
	VSync  bool   `env:"VSYNC"  envDefault:"true"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the configuration from environ, or from the process
// environment when environ is nil
func LoadFrom(environ map[string]string) (Config, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}

	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
