package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shopfront/internal/constants"
)

// Hero is the cover banner with the page title and breadcrumb.
type Hero struct {
	Title  string
	OnHome func()

	homeRect ButtonRect
	homeHot  bool
}

func NewHero(title string) *Hero {
	return &Hero{Title: title}
}

// Hover updates the breadcrumb link highlight.
func (h *Hero) Hover(mx, my int) {
	h.homeHot = h.homeRect.Contains(mx, my)
}

// HandleClick follows the Home link. Returns true if the click was consumed.
func (h *Hero) HandleClick(mx, my int) bool {
	if !h.homeRect.Contains(mx, my) {
		return false
	}
	if h.OnHome != nil {
		h.OnHome()
	}
	return true
}

// Draw renders the banner across width w starting at y. Returns its height.
func (h *Hero) Draw(dst *ebiten.Image, tex *Textures, y, w float64) float64 {
	if cover := tex.Peek(constants.HeroImage); cover != nil {
		DrawImageCover(dst, cover, 0, y, w, HeroHeight)
	} else {
		vector.DrawFilledRect(dst, 0, float32(y), float32(w), HeroHeight, ColorCream, false)
	}

	cx := w / 2
	titleY := y + HeroHeight/2 - 20
	DrawTextCentered(dst, h.Title, cx, titleY, FontSizeHero, ColorTextStrong)

	// Breadcrumb: Home > Title
	const sep = 28.0
	homeW, lineH := MeasureText("Home", FontSizeBody)
	curW, _ := MeasureText(h.Title, FontSizeBody)
	total := homeW + sep + curW
	bx := cx - total/2
	by := titleY + FontSizeHero/2 + 16

	homeClr := ColorTextStrong
	if h.homeHot {
		homeClr = ColorPrimary
	}
	DrawText(dst, "Home", bx, by, FontSizeBody, homeClr)
	h.homeRect = ButtonRect{X: bx, Y: by, W: homeW, H: lineH}

	drawChevron(dst, float32(bx+homeW+sep/2), float32(by+lineH/2), 6, false, ColorTextStrong)
	DrawText(dst, h.Title, bx+homeW+sep, by, FontSizeBody, ColorTextStrong)

	return HeroHeight
}
