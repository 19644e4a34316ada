package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/shopfront/internal/constants"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Shop     ShopConfig    `toml:"shop"`
	Keybinds KeybindConfig `toml:"keybinds"`
	Log      LogConfig     `toml:"log"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type ShopConfig struct {
	// CardWidth is the carousel snap unit in layout pixels.
	CardWidth   float64 `toml:"card_width"`
	AssetsDir   string  `toml:"assets_dir"`
	CatalogFile string  `toml:"catalog_file"`
	Locale      string  `toml:"locale"`
}

type KeybindConfig struct {
	ScrollLeft  string `toml:"scroll_left"`
	ScrollRight string `toml:"scroll_right"`
	Fullscreen  string `toml:"fullscreen"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     900,
		},
		Shop: ShopConfig{
			CardWidth: 300,
			AssetsDir: "public",
			Locale:    "en-US",
		},
		Keybinds: KeybindConfig{
			ScrollLeft:  "Left",
			ScrollRight: "Right",
			Fullscreen:  "F",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shopfront"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Shop.CardWidth <= constants.CardGap {
		return fmt.Errorf("%w: shop.card_width must exceed the %d px card gap, got %v",
			ErrInvalidConfig, constants.CardGap, c.Shop.CardWidth)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("%w: ui size must be positive, got %dx%d", ErrInvalidConfig, c.UI.Width, c.UI.Height)
	}
	return nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
