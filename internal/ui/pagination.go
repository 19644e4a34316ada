package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/shopfront/internal/carousel"
	"github.com/depeter/shopfront/internal/catalog"
)

// Pagination is the control row under the carousel: a previous chevron, the
// static page buttons, and a next chevron. Only the chevrons do anything.
type Pagination struct {
	Pages    []catalog.PageItem
	OnScroll func(carousel.Direction)

	prevRect  ButtonRect
	nextRect  ButtonRect
	pageRects []ButtonRect
	hot       int // hotNone, hotPrev, hotNext or a page index
}

func NewPagination(pages []catalog.PageItem, onScroll func(carousel.Direction)) *Pagination {
	return &Pagination{
		Pages:     pages,
		OnScroll:  onScroll,
		pageRects: make([]ButtonRect, len(pages)),
		hot:       hotNone,
	}
}

const (
	hotNone = -1
	hotPrev = -2
	hotNext = -3
)

// Hover records which button the cursor is over.
func (pg *Pagination) Hover(mx, my int) {
	pg.hot = hotNone
	switch {
	case pg.prevRect.Contains(mx, my):
		pg.hot = hotPrev
	case pg.nextRect.Contains(mx, my):
		pg.hot = hotNext
	default:
		for i, r := range pg.pageRects {
			if r.Contains(mx, my) {
				pg.hot = i
			}
		}
	}
}

// HandleClick fires the carousel command for a chevron click. Page buttons
// swallow the click without effect.
func (pg *Pagination) HandleClick(mx, my int) bool {
	switch {
	case pg.prevRect.Contains(mx, my):
		pg.fire(carousel.Previous)
	case pg.nextRect.Contains(mx, my):
		pg.fire(carousel.Next)
	default:
		for _, r := range pg.pageRects {
			if r.Contains(mx, my) {
				return true
			}
		}
		return false
	}
	return true
}

func (pg *Pagination) fire(dir carousel.Direction) {
	if pg.OnScroll != nil {
		pg.OnScroll(dir)
	}
}

// Width returns the total width of the control row.
func (pg *Pagination) Width() float64 {
	w := 2.0 * PaginationH
	for _, p := range pg.Pages {
		w += pg.buttonWidth(p.Label) + PaginationGap
	}
	return w + PaginationGap
}

func (pg *Pagination) buttonWidth(label string) float64 {
	lw, _ := MeasureText(label, FontSizeHeading)
	return max(PaginationH, lw+PaginationGap)
}

// Draw renders the row centered on cx at y. Returns its height.
func (pg *Pagination) Draw(dst *ebiten.Image, cx, y float64) float64 {
	x := cx - pg.Width()/2
	midY := y + PaginationH/2

	pg.prevRect = ButtonRect{X: x, Y: y, W: PaginationH, H: PaginationH}
	pg.drawButton(dst, pg.prevRect, false, pg.hot == hotPrev)
	drawChevron(dst, float32(x+PaginationH/2), float32(midY), 8, true, ColorTextStrong)
	x += PaginationH + PaginationGap

	for i, p := range pg.Pages {
		bw := pg.buttonWidth(p.Label)
		pg.pageRects[i] = ButtonRect{X: x, Y: y, W: bw, H: PaginationH}
		pg.drawButton(dst, pg.pageRects[i], p.Active, pg.hot == i)
		clr := ColorTextStrong
		if p.Active {
			clr = ColorWhite
		}
		DrawTextCentered(dst, p.Label, x+bw/2, midY, FontSizeHeading, clr)
		x += bw + PaginationGap
	}

	pg.nextRect = ButtonRect{X: x, Y: y, W: PaginationH, H: PaginationH}
	pg.drawButton(dst, pg.nextRect, false, pg.hot == hotNext)
	drawChevron(dst, float32(x+PaginationH/2), float32(midY), 8, false, ColorTextStrong)

	return PaginationH
}

func (pg *Pagination) drawButton(dst *ebiten.Image, r ButtonRect, active, hot bool) {
	fill := ColorCream
	switch {
	case active:
		fill = ColorPrimary
	case hot:
		fill = ColorSurface
	}
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	if hot && !active {
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, ColorPrimary, false)
	}
}
