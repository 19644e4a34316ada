package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/shopfront/assets/icon"
	"github.com/depeter/shopfront/internal/app"
	"github.com/depeter/shopfront/internal/cache"
	"github.com/depeter/shopfront/internal/carousel"
	"github.com/depeter/shopfront/internal/catalog"
	"github.com/depeter/shopfront/internal/config"
	"github.com/depeter/shopfront/internal/ui"
)

var (
	configPath string
	assetsDir  string
	verbose    bool
	clearCache bool
	force      bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Furniture shop product listing with a snapping card carousel",
	Long: `Shopfront renders a shop page: a hero banner, a filter toolbar and a
horizontally scrolling row of product cards. The chevrons under the row,
or the configured keys, move the row one card at a time.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if assetsDir != "" {
			cfg.Shop.AssetsDir = assetsDir
		}

		logger, err = buildLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// initConfigCmd writes the effective config so it can be edited by hand.
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the current configuration to the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.ConfigPath(); err != nil {
				return fmt.Errorf("config path: %w", err)
			}
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if configPath == "" {
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
		} else if err := cfg.SaveFile(path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		logger.Info("wrote config", zap.String("path", path))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $XDG_CONFIG_HOME/shopfront/config.toml)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "Directory product images are loaded from")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Delete downloaded images before starting")
	initConfigCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initConfigCmd)
}

func buildLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Level != "" {
		lvl, err := zap.ParseAtomicLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zc.Level = lvl
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if lc.File != "" {
		zc.OutputPaths = append(zc.OutputPaths, lc.File)
	}
	return zc.Build()
}

func run() error {
	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("failed to init fonts: %w", err)
	}

	cacheDir := filepath.Join(os.TempDir(), "shopfront", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cfg.Shop.AssetsDir, cacheDir, logger.Named("cache"))
	if err != nil {
		return fmt.Errorf("failed to init image cache: %w", err)
	}
	if clearCache {
		if err := imgCache.ClearDisk(); err != nil {
			return fmt.Errorf("failed to clear image cache: %w", err)
		}
		logger.Info("cleared image cache", zap.String("dir", imgCache.CacheDir()))
	}

	cat, err := loadCatalog(cfg.Shop.CatalogFile)
	if err != nil {
		return err
	}

	game := app.NewGame(cfg, logger)
	ctrl := carousel.New(cfg.Shop.CardWidth, carousel.WithLogger(logger.Named("carousel")))
	shop := ui.NewShopScreen(cat, ctrl, ui.NewTextures(imgCache), cfg.Shop.Locale, game.ShopKeys(), logger.Named("shop"))
	game.Screens.Push(shop)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Shopfront")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	logger.Info("starting",
		zap.String("assets", cfg.Shop.AssetsDir),
		zap.String("image_cache", imgCache.CacheDir()),
		zap.Int("products", len(cat.Items())),
		zap.Float64("card_width", cfg.Shop.CardWidth))

	err = ebiten.RunGame(game)
	game.Screens.ClearStack()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}

// loadCatalog reads the configured catalog file, or the built-in one when
// none is set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	logger.Info("loaded catalog", zap.String("path", path), zap.Int("products", len(cat.Products)))
	return cat, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
