package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quadscene.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 640

[loop]
tick_rate = "10ms"

[scene]
spawn_interval = "100ms"
scripts_dir = "lua"

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 640, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height)
	require.Equal(t, "Quadtree Demo", cfg.Window.Title)
	require.Equal(t, 10*time.Millisecond, cfg.Loop.TickRate)
	require.Equal(t, 100*time.Millisecond, cfg.Scene.SpawnInterval)
	require.Equal(t, "lua", cfg.Scene.ScriptsDir)
	require.Equal(t, 10, cfg.Scene.NodeSize)
	require.Equal(t, 0.05, cfg.Camera.ZoomRatio)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "quadscene.log", cfg.Logging.Output)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "[window\n"))
	require.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "[camera]\nzoom_ratio = 1.5\n"))
	require.ErrorContains(t, err, "zoom_ratio")

	_, err = Load(writeConfig(t, "[window]\nheight = 0\n"))
	require.ErrorContains(t, err, "window size")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(writeConfig(t, "[scene]\nnode_size = -1\n"))
	require.Error(t, err)
}
