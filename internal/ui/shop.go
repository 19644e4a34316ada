package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/depeter/shopfront/internal/carousel"
	"github.com/depeter/shopfront/internal/catalog"
	"github.com/depeter/shopfront/internal/constants"
	"github.com/depeter/shopfront/internal/scroll"
)

// ShopKeys are the keyboard bindings the shop screen reacts to.
type ShopKeys struct {
	ScrollLeft  ebiten.Key
	ScrollRight ebiten.Key
}

// DefaultShopKeys binds the carousel to the arrow keys.
func DefaultShopKeys() ShopKeys {
	return ShopKeys{ScrollLeft: ebiten.KeyArrowLeft, ScrollRight: ebiten.KeyArrowRight}
}

type shopSection int

const (
	sectionToolbar shopSection = iota
	sectionCarousel
)

// ShopScreen is the product listing page: hero, toolbar, the product
// carousel and its pagination controls.
type ShopScreen struct {
	carousel *carousel.Controller
	tex      *Textures
	images   []string

	hero    *Hero
	toolbar *Toolbar
	row     *ProductRow
	pager   *Pagination
	page    scroll.Page

	keys  ShopKeys
	focus shopSection
	log   *zap.Logger

	width, height int

	// Unscrolled vertical positions, set by layout
	rowTop, pagerTop, contentH float64
}

// NewShopScreen builds the page for cat. The controller's card width is the
// card pitch of the product row.
func NewShopScreen(cat *catalog.Catalog, ctrl *carousel.Controller, tex *Textures, locale string, keys ShopKeys, log *zap.Logger) *ShopScreen {
	if log == nil {
		log = zap.NewNop()
	}
	items := cat.Items()

	ss := &ShopScreen{
		carousel: ctrl,
		tex:      tex,
		hero:     NewHero("Shop"),
		toolbar:  NewToolbar(catalog.ResultsSummary(1, min(constants.PageSize, len(items)), cat.TotalResults())),
		row:      NewProductRow(items, ctrl.CardWidth(), locale),
		keys:     keys,
		focus:    sectionCarousel,
		log:      log,
	}
	ss.pager = NewPagination(cat.Pages, ss.scrollCarousel)
	ss.hero.OnHome = func() {
		ss.log.Info("home link followed")
		ss.page.Reset()
	}
	ss.toolbar.OnChanged = func(label, value string) {
		ss.log.Debug("toolbar selector changed", zap.String("selector", label), zap.String("value", value))
	}

	seen := map[string]bool{}
	add := func(src string) {
		if src != "" && !seen[src] {
			seen[src] = true
			ss.images = append(ss.images, src)
		}
	}
	add(constants.HeroImage)
	add(constants.FilterIcon)
	add(constants.GridIcon)
	add(constants.ListIcon)
	for _, p := range cat.Products {
		add(p.ImagePath())
	}
	return ss
}

func (ss *ShopScreen) Name() string { return "Shop" }

// OnEnter mounts the carousel on the product row and starts image loads.
func (ss *ShopScreen) OnEnter() {
	ss.layout()
	ss.carousel.Mount(ss.row.Strip)
	for _, src := range ss.images {
		ss.tex.Request(src)
	}
	ss.log.Info("shop screen entered",
		zap.Int("products", len(ss.row.Products)),
		zap.Float64("card_width", ss.carousel.CardWidth()))
}

// OnExit unmounts the carousel.
func (ss *ShopScreen) OnExit() {
	ss.carousel.Unmount()
}

func (ss *ShopScreen) Layout(width, height int) {
	ss.width, ss.height = width, height
}

// column returns the content column's x and width.
func (ss *ShopScreen) column() (x, w float64) {
	w = min(float64(ContentMaxWidth), float64(ss.width)-PagePadding*2)
	return (float64(ss.width) - w) / 2, max(w, 0)
}

// layout positions the sections for the current window and scroll position
// and re-measures the product row.
func (ss *ShopScreen) layout() {
	x, w := ss.column()
	ss.rowTop = HeroHeight + ToolbarHeight + SectionPadY
	ss.pagerTop = ss.rowTop + CardHeight + PaginationGap*2
	ss.contentH = ss.pagerTop + PaginationH + SectionPadY

	ss.row.Layout(x, ss.rowTop-ss.page.ScrollY, w)
	ss.page.SetLimit(ss.contentH - float64(ss.height))
}

func (ss *ShopScreen) scrollCarousel(dir carousel.Direction) {
	ss.carousel.Scroll(dir)
	ss.log.Debug("carousel scrolled",
		zap.Stringer("dir", dir),
		zap.Float64("offset", ss.carousel.Offset()),
		zap.Int("index", ss.carousel.Index()))
}

func (ss *ShopScreen) Update() error {
	ss.page.Animate()
	ss.layout()

	mx, my := ebiten.CursorPosition()
	ss.hero.Hover(mx, my)
	ss.pager.Hover(mx, my)

	if cx, cy, clicked := MouseJustClicked(); clicked {
		switch {
		case ss.hero.HandleClick(cx, cy):
		case ss.toolbar.HandleClick(cx, cy):
			ss.setFocus(sectionToolbar)
		case ss.pager.HandleClick(cx, cy):
			ss.setFocus(sectionCarousel)
		}
	}

	ss.handleKeys()

	if !ss.row.HandleInput(mx, my) {
		_, wy := MouseWheelDelta()
		if !ebiten.IsKeyPressed(ebiten.KeyShift) {
			ss.page.HandleWheel(wy)
		}
	}

	ss.row.Strip.Step()
	return nil
}

func (ss *ShopScreen) handleKeys() {
	dir, _, _ := InputState()
	switch dir {
	case DirUp:
		if ss.focus == sectionCarousel && !IsModifierPressed() {
			ss.setFocus(sectionToolbar)
			return
		}
	case DirDown:
		if ss.focus == sectionToolbar {
			ss.setFocus(sectionCarousel)
			return
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ss.page.Reset()
	}

	if ss.focus == sectionToolbar {
		ss.toolbar.Update()
		return
	}
	if inputRepeating(ss.keys.ScrollLeft) {
		ss.scrollCarousel(carousel.Previous)
	}
	if inputRepeating(ss.keys.ScrollRight) {
		ss.scrollCarousel(carousel.Next)
	}
}

func (ss *ShopScreen) setFocus(s shopSection) {
	ss.focus = s
	ss.toolbar.Active = s == sectionToolbar
	switch s {
	case sectionToolbar:
		ss.page.EnsureVisible(HeroHeight, ToolbarHeight, float64(ss.height))
	case sectionCarousel:
		ss.page.EnsureVisible(ss.rowTop, ss.pagerTop+PaginationH-ss.rowTop, float64(ss.height))
	}
}

func (ss *ShopScreen) Draw(dst *ebiten.Image) {
	x, w := ss.column()
	y := -ss.page.ScrollY

	y += ss.hero.Draw(dst, ss.tex, y, float64(ss.width))
	ss.toolbar.Draw(dst, ss.tex, y, float64(ss.width), x, w)

	ss.row.Draw(dst, ss.tex)
	ss.pager.Draw(dst, float64(ss.width)/2, ss.pagerTop-ss.page.ScrollY)
}

// DebugLines describes the carousel state for the debug overlay.
func (ss *ShopScreen) DebugLines() []string {
	s := ss.row.Strip
	return []string{
		fmt.Sprintf("mounted   %v (listeners %d)", ss.carousel.Mounted(), s.Listeners()),
		fmt.Sprintf("offset    %.1f (strip %.1f)", ss.carousel.Offset(), s.ScrollOffset()),
		fmt.Sprintf("index     %d", ss.carousel.Index()),
		fmt.Sprintf("viewport  %.0f", s.ViewportWidth()),
		fmt.Sprintf("content   %.0f (max %.0f)", s.ContentWidth(), s.MaxOffset()),
		fmt.Sprintf("animating %v  dragging %v", s.Animating(), s.Dragging()),
		fmt.Sprintf("page y    %.0f / %.0f", ss.page.ScrollY, ss.page.Limit),
	}
}
