package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 300.0, cfg.Shop.CardWidth)
}

func TestConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shopfront", "config.toml"), path)
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[ui]
width = 800

[shop]
card_width = 250
locale = "de-DE"

[keybinds]
scroll_left = "A"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.UI.Width)
	assert.Equal(t, 900, cfg.UI.Height, "unset keys keep defaults")
	assert.Equal(t, 250.0, cfg.Shop.CardWidth)
	assert.Equal(t, "de-DE", cfg.Shop.Locale)
	assert.Equal(t, "A", cfg.Keybinds.ScrollLeft)
	assert.Equal(t, "Right", cfg.Keybinds.ScrollRight)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0o644))
		_, err := LoadFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid card width", func(t *testing.T) {
		path := filepath.Join(dir, "zero.toml")
		require.NoError(t, os.WriteFile(path, []byte("[shop]\ncard_width = 0\n"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("card width within gap", func(t *testing.T) {
		path := filepath.Join(dir, "gap.toml")
		require.NoError(t, os.WriteFile(path, []byte("[shop]\ncard_width = 32\n"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "card gap")
	})

	t.Run("invalid window", func(t *testing.T) {
		path := filepath.Join(dir, "window.toml")
		require.NoError(t, os.WriteFile(path, []byte("[ui]\nheight = -1\n"), 0o644))
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Shop.AssetsDir = "/srv/shop"
	cfg.UI.Fullscreen = true
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
