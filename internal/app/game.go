package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/shopfront/internal/config"
	"github.com/depeter/shopfront/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	Width, Height int

	fullscreenKey ebiten.Key
	hasFullscreen bool
	log           *zap.Logger
}

// NewGame creates the Game with an empty screen stack.
func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		log:     log,
	}
	g.fullscreenKey, g.hasFullscreen = parseKey(cfg.Keybinds.Fullscreen)
	if !g.hasFullscreen && cfg.Keybinds.Fullscreen != "" {
		log.Warn("unknown fullscreen keybind", zap.String("key", cfg.Keybinds.Fullscreen))
	}
	return g
}

// ShopKeys resolves the carousel keybinds from the config, keeping the
// arrow-key defaults for names it does not recognise.
func (g *Game) ShopKeys() ui.ShopKeys {
	keys := ui.DefaultShopKeys()
	kb := g.Config.Keybinds
	if k, ok := parseKey(kb.ScrollLeft); ok {
		keys.ScrollLeft = k
	} else {
		g.log.Warn("unknown scroll_left keybind, using default", zap.String("key", kb.ScrollLeft))
	}
	if k, ok := parseKey(kb.ScrollRight); ok {
		keys.ScrollRight = k
	} else {
		g.log.Warn("unknown scroll_right keybind, using default", zap.String("key", kb.ScrollRight))
	}
	return keys
}

func (g *Game) toggleFullscreen() {
	fs := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fs)
	g.log.Debug("fullscreen toggled", zap.Bool("fullscreen", fs))
}

func (g *Game) Update() error {
	altEnter := inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altEnter || (g.hasFullscreen && inpututil.IsKeyJustPressed(g.fullscreenKey) && !ui.IsModifierPressed()) {
		g.toggleFullscreen()
	}

	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)

	src, _ := g.Screens.Current().(ui.DebugSource)
	ui.DrawDebugOverlay(screen, src)
}

// Layout follows the window size so the carousel viewport is re-measured
// on every resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.log.Debug("window resized", zap.Int("width", outsideWidth), zap.Int("height", outsideHeight))
	}
	g.Width, g.Height = outsideWidth, outsideHeight
	g.Screens.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
