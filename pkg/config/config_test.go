package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Talha991s/Babylon-Game/pkg/level"
	"github.com/Talha991s/Babylon-Game/pkg/player"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Width: 1280, Height: 720, Title: "Babylon Game", VSync: true}, cfg.Window)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, level.DefaultConfig(), cfg.Level)

	want := player.DefaultConfig()
	assert.InDelta(t, want.Speed, cfg.Player.Speed, 1e-6)
	assert.InDelta(t, want.Gravity, cfg.Player.Gravity, 1e-6)
	assert.InDelta(t, want.JumpForce, cfg.Player.JumpForce, 1e-6)
	assert.InDelta(t, want.StepOffset, cfg.Player.StepOffset, 1e-6)
	assert.InDelta(t, want.CameraTilt, cfg.Player.CameraTilt, 1e-6)
	assert.InDelta(t, want.CameraFOV, cfg.Player.CameraFOV, 1e-6)
	assert.InDelta(t, want.CameraBoom, cfg.Player.CameraBoom, 1e-6)
	assert.InDelta(t, want.CameraYaw, cfg.Player.CameraYaw, 1e-6)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"GAME_WINDOW_WIDTH":       "800",
		"GAME_LOG_LEVEL":          "debug",
		"GAME_PLAYER_CAMERA_BOOM": "-70",
		"GAME_LEVEL_LATENCY":      "250ms",
	})
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(-70), cfg.Player.CameraBoom)
	assert.Equal(t, 250*time.Millisecond, cfg.Level.Latency)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := LoadFrom(map[string]string{"GAME_PLAYER_SPEED": "fast"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadFromProcessEnvironment(t *testing.T) {
	t.Setenv("GAME_WINDOW_TITLE", "test window")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test window", cfg.Window.Title)
}
