package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "der> ", config.Prompt)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, 64, config.Integer.Width)
	assert.NoError(t, config.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("integer:\n  width: 16\n  unsigned: true\nlogging:\n  level: debug\n"), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, config.Integer.Width)
	assert.True(t, config.Integer.Unsigned)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "der> ", config.Prompt)

	t.Run("Bad width", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("integer:\n  width: 24\n"), 0600))
		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported integer width 24")
	})

	t.Run("Bad YAML", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("prompt: [\n"), 0600))
		_, err := Load(path)
		assert.ErrorContains(t, err, "parsing config file")
	})
}

func TestLoadOrDefault(t *testing.T) {
	config, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := DefaultConfig()
	config.Prompt = "x> "
	config.Integer.Width = 128

	require.NoError(t, Save(config, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
