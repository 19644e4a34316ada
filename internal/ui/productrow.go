package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shopfront/internal/catalog"
	"github.com/depeter/shopfront/internal/scroll"
)

// ProductRow is the horizontally scrolling row of product cards. It owns the
// scroll surface the carousel controller is mounted on.
type ProductRow struct {
	Products []catalog.Product
	Pitch    float64 // card width plus gap; the carousel's snap unit
	Locale   string

	Strip *scroll.Strip

	// Set during Layout
	X, Y, W float64

	hovered   int
	hoverFade []float64
}

func NewProductRow(products []catalog.Product, pitch float64, locale string) *ProductRow {
	return &ProductRow{
		Products:  products,
		Pitch:     pitch,
		Locale:    locale,
		Strip:     scroll.NewStrip(),
		hovered:   -1,
		hoverFade: make([]float64, len(products)),
	}
}

// CardWidth is the drawn width of a single card.
func (pr *ProductRow) CardWidth() float64 {
	return pr.Pitch - CardGap
}

// ContentWidth is the scrollable width of all cards.
func (pr *ProductRow) ContentWidth() float64 {
	if len(pr.Products) == 0 {
		return 0
	}
	return float64(len(pr.Products))*pr.Pitch - CardGap
}

// Layout positions the row and re-measures the strip. It runs every frame so
// a resized window or a changed product list is picked up before the next
// carousel command.
func (pr *ProductRow) Layout(x, y, w float64) {
	pr.X, pr.Y, pr.W = x, y, w
	if len(pr.hoverFade) != len(pr.Products) {
		pr.hoverFade = make([]float64, len(pr.Products))
	}
	pr.Strip.Measure(w, pr.ContentWidth())
}

// Height is the height the row occupies.
func (pr *ProductRow) Height() float64 {
	return CardHeight
}

// Contains reports whether the point is over the row's viewport.
func (pr *ProductRow) Contains(mx, my int) bool {
	return PointInRect(mx, my, pr.X, pr.Y, pr.W, pr.Height())
}

// HandleInput forwards pointer input over the row to the strip: horizontal
// wheel (or shift+vertical wheel) and click-drag. Returns true when it
// consumed the wheel so the page does not scroll too.
func (pr *ProductRow) HandleInput(mx, my int) (consumed bool) {
	over := pr.Contains(mx, my)

	pr.hovered = -1
	if over && !pr.Strip.Dragging() {
		pr.hovered = pr.cardAt(mx)
	}
	for i := range pr.hoverFade {
		target := 0.0
		if i == pr.hovered {
			target = 1
		}
		pr.hoverFade[i] = Lerp(pr.hoverFade[i], target, HoverFadeSpeed)
	}

	switch {
	case pr.Strip.Dragging() && MouseHeld():
		pr.Strip.DragTo(float64(mx))
		return true
	case pr.Strip.Dragging():
		pr.Strip.EndDrag()
	case over:
		if _, _, clicked := MouseJustClicked(); clicked {
			pr.Strip.BeginDrag(float64(mx))
		}
	}

	if !over {
		return false
	}
	wx, wy := MouseWheelDelta()
	if wx == 0 && ebiten.IsKeyPressed(ebiten.KeyShift) {
		wx, wy = wy, 0
	}
	if wx == 0 {
		return false
	}
	pr.Strip.Wheel(-wx * scroll.WheelSpeed)
	return wy == 0
}

// cardAt returns the index of the card under screen x, or -1 for a gap.
func (pr *ProductRow) cardAt(mx int) int {
	if pr.Pitch <= 0 {
		return -1
	}
	local := float64(mx) - pr.X + pr.Strip.ScrollOffset()
	i := int(local / pr.Pitch)
	if i < 0 || i >= len(pr.Products) || local-float64(i)*pr.Pitch > pr.CardWidth() {
		return -1
	}
	return i
}

// Draw renders the visible cards clipped to the row viewport.
func (pr *ProductRow) Draw(dst *ebiten.Image, tex *Textures) {
	if pr.W <= 0 {
		return
	}
	clip := dst.SubImage(image.Rect(int(pr.X), int(pr.Y), int(pr.X+pr.W), int(pr.Y+pr.Height()))).(*ebiten.Image)

	offset := pr.Strip.ScrollOffset()
	cw := pr.CardWidth()
	for i := range pr.Products {
		cx := pr.X + float64(i)*pr.Pitch - offset
		if cx+cw < pr.X || cx > pr.X+pr.W {
			continue
		}
		pr.drawCard(clip, tex, &pr.Products[i], cx, pr.Y, cw, pr.hoverFade[i])
	}
}

func (pr *ProductRow) drawCard(dst *ebiten.Image, tex *Textures, p *catalog.Product, x, y, w, hover float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), CardHeight, ColorSurface, false)

	if img := tex.Get(p.ImagePath()); img != nil {
		DrawImageCover(dst, img, x, y, w, CardImageHeight)
	} else {
		DrawTextCentered(dst, p.Name, x+w/2, y+CardImageHeight/2, FontSizeSmall, ColorTextMuted)
	}

	if p.Badge != nil && p.Badge.Text != "" {
		const r = 24.0
		bx, by := x+w-r-24, y+r+24
		fill := ColorNew
		if p.Discounted() {
			fill = ColorSale
		}
		vector.DrawFilledCircle(dst, float32(bx), float32(by), r, p.Badge.RGBA(fill), true)
		DrawTextCentered(dst, p.Badge.Text, bx, by, FontSizeBody, ColorWhite)
	}

	info := y + CardImageHeight + CardPad
	name := truncateText(p.Name, w-CardPad*2, FontSizeTitle)
	DrawText(dst, name, x+CardPad, info, FontSizeTitle, ColorText)
	info += FontSizeTitle + 8
	DrawText(dst, truncateText(p.Category, w-CardPad*2, FontSizeBody), x+CardPad, info, FontSizeBody, ColorTextMuted)
	info += FontSizeBody + 8

	price := catalog.FormatPrice(p.Price, pr.Locale)
	DrawText(dst, price, x+CardPad, info, FontSizeHeading, ColorText)
	if p.Discounted() {
		orig := catalog.FormatPrice(p.OriginalPrice, pr.Locale)
		ow, oh := MeasureText(orig, FontSizeBody)
		right := x + w - CardPad
		ox, oy := right-ow, info+2
		DrawTextRight(dst, orig, right, oy, FontSizeBody, ColorTextCaption)
		vector.StrokeLine(dst, float32(ox), float32(oy+oh/2), float32(ox+ow), float32(oy+oh/2), 1, ColorTextCaption, false)
	}

	if hover > 0.01 {
		drawCardOverlay(dst, x, y, w, hover)
	}
}

// cardActions are the hover actions under "Add to cart", left to right.
var cardActions = []struct {
	label string
	icon  func(dst *ebiten.Image, cx, cy, r float32, clr color.Color)
}{
	{"Share", drawShareIcon},
	{"Compare", drawCompareIcon},
	{"Wishlist", drawHeartIcon},
}

// drawCardOverlay draws the hover actions. They are decorative.
func drawCardOverlay(dst *ebiten.Image, x, y, w, alpha float64) {
	shade := fade(ColorOverlay, alpha*0.75)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), CardHeight, shade, false)

	white := fade(ColorWhite, alpha)
	gold := fade(ColorPrimary, alpha)

	midY := y + CardHeight/2
	const btnW, btnH = 202.0, 48.0
	bx := x + (w-btnW)/2
	vector.DrawFilledRect(dst, float32(bx), float32(midY-btnH), btnW, btnH, white, false)
	DrawTextCentered(dst, "Add to cart", x+w/2, midY-btnH/2, FontSizeBody, gold)

	slot := w / float64(len(cardActions))
	ay := midY + 28
	for i, act := range cardActions {
		cx := x + slot*float64(i) + slot/2
		lw, lh := MeasureText(act.label, FontSizeSmall)
		iconX := cx - (lw+20)/2 + 7
		act.icon(dst, float32(iconX), float32(ay), 7, white)
		DrawText(dst, act.label, iconX+13, ay-lh/2, FontSizeSmall, white)
	}
}

// fade returns c with its alpha scaled by a.
func fade(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * a)}
}
