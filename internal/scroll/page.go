package scroll

// WheelSpeed is layout units per mouse wheel notch.
const WheelSpeed = 60

// Page tracks vertical scrolling of a whole screen with smooth animation.
// Embed it in screens taller than the window.
type Page struct {
	ScrollY       float64
	TargetScrollY float64

	// Limit is the largest TargetScrollY allowed once SetLimit was called.
	Limit   float64
	bounded bool
}

// HandleWheel updates the target from a vertical wheel delta, where positive
// values scroll towards the top as ebiten reports them.
func (p *Page) HandleWheel(wy float64) {
	if wy == 0 {
		return
	}
	p.TargetScrollY -= wy * WheelSpeed
	p.clamp()
}

// SetLimit sets the scrollable height and re-clamps the target.
func (p *Page) SetLimit(limit float64) {
	if limit < 0 {
		limit = 0
	}
	p.Limit = limit
	p.bounded = true
	p.clamp()
}

// Animate moves ScrollY one frame towards the target.
func (p *Page) Animate() {
	p.ScrollY = p.ScrollY + (p.TargetScrollY-p.ScrollY)*AnimSpeed
}

// Reset scrolls back to the top immediately.
func (p *Page) Reset() {
	p.ScrollY = 0
	p.TargetScrollY = 0
}

// EnsureVisible scrolls so the band [top, top+height) fits in a viewport of
// viewHeight. top is measured without the scroll offset applied.
func (p *Page) EnsureVisible(top, height, viewHeight float64) {
	bottom := top + height
	if bottom > viewHeight+p.TargetScrollY {
		p.TargetScrollY = bottom - viewHeight
	}
	if top < p.TargetScrollY {
		p.TargetScrollY = top
	}
	p.clamp()
}

func (p *Page) clamp() {
	if p.TargetScrollY < 0 {
		p.TargetScrollY = 0
	}
	if p.bounded && p.TargetScrollY > p.Limit {
		p.TargetScrollY = p.Limit
	}
}
