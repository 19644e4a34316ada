package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shopfront/internal/constants"
)

// FilterOption represents a single pill selector with a label and cycled options.
type FilterOption struct {
	Label    string
	Options  []string
	Selected int
}

// Value returns the currently selected option string.
func (fo *FilterOption) Value() string {
	if fo.Selected < 0 || fo.Selected >= len(fo.Options) {
		return ""
	}
	return fo.Options[fo.Selected]
}

func (fo *FilterOption) cycle(delta int) {
	if len(fo.Options) == 0 {
		return
	}
	fo.Selected = (fo.Selected + delta + len(fo.Options)) % len(fo.Options)
}

// ViewMode is the toolbar's grid/list toggle. It only changes the highlight.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

// Toolbar is the cream filter/sort band under the hero. Its selectors cycle
// visually; nothing filters or sorts the listing.
type Toolbar struct {
	Filters      []FilterOption
	Summary      string
	Mode         ViewMode
	FocusedIndex int
	Active       bool
	OnChanged    func(label, value string)

	filterRect ButtonRect
	gridRect   ButtonRect
	listRect   ButtonRect
	pillRects  []ButtonRect
}

// NewToolbar creates the toolbar with the Show and Short by selectors.
func NewToolbar(summary string) *Toolbar {
	filters := []FilterOption{
		{Label: "Show", Options: []string{"16", "32", "48"}},
		{Label: "Short by", Options: []string{"Default", "Price: Low to High", "Price: High to Low", "Newest"}},
	}
	return &Toolbar{
		Filters:   filters,
		Summary:   summary,
		pillRects: make([]ButtonRect, len(filters)),
	}
}

// Update processes keyboard input while the toolbar has focus. Returns true
// if a selector changed.
func (tb *Toolbar) Update() bool {
	if !tb.Active || len(tb.Filters) == 0 {
		return false
	}
	if inputRepeating(ebiten.KeyArrowLeft) && tb.FocusedIndex > 0 {
		tb.FocusedIndex--
	}
	if inputRepeating(ebiten.KeyArrowRight) && tb.FocusedIndex < len(tb.Filters)-1 {
		tb.FocusedIndex++
	}
	pill := &tb.Filters[tb.FocusedIndex]
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		pill.cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && IsModifierPressed():
		pill.cycle(-1)
	default:
		return false
	}
	tb.changed(pill)
	return true
}

// HandleClick cycles a clicked selector or toggles the view mode. Returns
// true if the click hit the toolbar.
func (tb *Toolbar) HandleClick(mx, my int) bool {
	for i, rect := range tb.pillRects {
		if rect.Contains(mx, my) {
			tb.FocusedIndex = i
			tb.Filters[i].cycle(1)
			tb.changed(&tb.Filters[i])
			return true
		}
	}
	switch {
	case tb.gridRect.Contains(mx, my):
		tb.Mode = ViewGrid
	case tb.listRect.Contains(mx, my):
		tb.Mode = ViewList
	case tb.filterRect.Contains(mx, my):
		// Filtering is not wired to the listing.
	default:
		return false
	}
	return true
}

func (tb *Toolbar) changed(fo *FilterOption) {
	if tb.OnChanged != nil {
		tb.OnChanged(fo.Label, fo.Value())
	}
}

const (
	toolbarPillH    = 34.0
	toolbarPillPadX = 16.0
	toolbarGap      = 16.0
	toolbarIconR    = 8.0
)

// Draw renders the band across the full width w at y; its content sits in
// the column starting at x with width cw. Returns the band height.
func (tb *Toolbar) Draw(dst *ebiten.Image, tex *Textures, y, w, x, cw float64) float64 {
	vector.DrawFilledRect(dst, 0, float32(y), float32(w), ToolbarHeight, ColorCream, false)
	midY := y + ToolbarHeight/2

	// Left: Filter | grid list | summary
	curX := x
	drawIcon(dst, tex, constants.FilterIcon, curX+toolbarIconR, midY, toolbarIconR, ColorTextStrong, drawFilterIcon)
	lw, lh := MeasureText("Filter", FontSizeBody)
	DrawText(dst, "Filter", curX+toolbarIconR*2+8, midY-lh/2, FontSizeBody, ColorTextStrong)
	tb.filterRect = ButtonRect{X: curX, Y: midY - lh, W: toolbarIconR*2 + 8 + lw, H: lh * 2}
	curX += toolbarIconR*2 + 8 + lw + toolbarGap*2

	vector.StrokeLine(dst, float32(curX), float32(midY-16), float32(curX), float32(midY+16), 1, ColorTextMuted, false)
	curX += toolbarGap * 2

	gridClr, listClr := ColorTextStrong, ColorTextMuted
	if tb.Mode == ViewList {
		gridClr, listClr = listClr, gridClr
	}
	drawIcon(dst, tex, constants.GridIcon, curX+toolbarIconR, midY, toolbarIconR, gridClr, drawGridIcon)
	tb.gridRect = ButtonRect{X: curX, Y: midY - toolbarIconR, W: toolbarIconR * 2, H: toolbarIconR * 2}
	curX += toolbarIconR*2 + toolbarGap
	drawIcon(dst, tex, constants.ListIcon, curX+toolbarIconR, midY, toolbarIconR, listClr, drawListIcon)
	tb.listRect = ButtonRect{X: curX, Y: midY - toolbarIconR, W: toolbarIconR * 2, H: toolbarIconR * 2}
	curX += toolbarIconR*2 + toolbarGap*2

	// Right: selectors, laid out from the right edge
	right := x + cw
	for i := len(tb.Filters) - 1; i >= 0; i-- {
		pill := &tb.Filters[i]
		vw, vh := MeasureText(pill.Value(), FontSizeBody)
		pillW := vw + toolbarPillPadX*2
		px := right - pillW
		py := midY - toolbarPillH/2

		border := ColorTextMuted
		if (tb.Active && tb.FocusedIndex == i) || pill.Selected != 0 {
			border = ColorPrimary
		}
		vector.StrokeRect(dst, float32(px), float32(py), float32(pillW), toolbarPillH, 1, border, false)
		DrawText(dst, pill.Value(), px+toolbarPillPadX, midY-vh/2, FontSizeBody, ColorTextStrong)
		tb.pillRects[i] = ButtonRect{X: px, Y: py, W: pillW, H: toolbarPillH}

		labelW, labelH := MeasureText(pill.Label, FontSizeBody)
		DrawText(dst, pill.Label, px-8-labelW, midY-labelH/2, FontSizeBody, ColorTextMuted)
		right = px - 8 - labelW - toolbarGap*1.5
	}

	// Summary only when it fits between the icons and the selectors
	if sw, sh := MeasureText(tb.Summary, FontSizeBody); curX+sw < right {
		DrawText(dst, tb.Summary, curX, midY-sh/2, FontSizeBody, ColorTextMuted)
	}

	return ToolbarHeight
}

// drawIcon draws the artwork at path scaled into a 2r box centered on
// (cx, cy), or the vector fallback until the artwork is loaded.
func drawIcon(dst *ebiten.Image, tex *Textures, path string, cx, cy, r float64, clr color.Color,
	fallback func(*ebiten.Image, float32, float32, float32, color.Color)) {
	img := tex.Peek(path)
	if img == nil {
		fallback(dst, float32(cx), float32(cy), float32(r), clr)
		return
	}
	b := img.Bounds()
	side := max(b.Dx(), b.Dy())
	if side == 0 {
		return
	}
	scale := 2 * r / float64(side)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(b.Dx())*scale/2, cy-float64(b.Dy())*scale/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
