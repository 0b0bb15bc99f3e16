package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Reads the file and fills in defaults", func(t *testing.T) {
		// Given: a config file that sets only a few values
		path := writeConfig(t, `
mode: arena
players:
  x:
    kind: engine
    depth: 3
arena:
  games: 8
redis:
  host: redis
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: file values win and the rest falls back to defaults
		assert.Equal(t, ModeArena, conf.Mode)
		assert.Equal(t, Seat{Kind: "engine", Depth: 3}, conf.Players.X)
		assert.Equal(t, Seat{Kind: "human", Depth: 6}, conf.Players.O)
		assert.Equal(t, "O", conf.FirstPlayer)
		assert.Equal(t, 8, conf.Arena.Games)
		assert.Equal(t, 4, conf.Arena.Workers)
		assert.True(t, conf.Render.ClearScreen)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("ARENA_SEED", "42")

		conf := MustLoad(path)

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, int64(42), conf.Arena.Seed)
	})

	t.Run("Panics when the file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
