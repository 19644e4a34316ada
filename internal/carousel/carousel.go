// Package carousel keeps the scroll offset of a horizontally scrolling row of
// fixed-width cards and moves it one card at a time, snapped to card
// boundaries and clamped to the scrollable range.
package carousel

import (
	"math"

	"go.uber.org/zap"
)

// Direction is the way a carousel moves.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	switch d {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// Surface is the scrollable container a Controller drives and observes.
type Surface interface {
	ViewportWidth() float64
	ContentWidth() float64
	ScrollOffset() float64
	// ScrollTo moves the surface to pos, animating when animated is set.
	ScrollTo(pos float64, animated bool)
	// OnScroll registers fn for externally driven scroll changes and
	// returns a func that removes it.
	OnScroll(fn func(offset float64)) (cancel func())
}

// Controller owns the authoritative offset of one carousel.
// It is not safe for concurrent use; all calls belong on the UI goroutine.
type Controller struct {
	cardWidth float64
	offset    float64

	surface Surface
	cancel  func()

	log *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates an unmounted controller for cards of the given width.
func New(cardWidth float64, opts ...Option) *Controller {
	c := &Controller{
		cardWidth: cardWidth,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount attaches the controller to s, resets the offset to zero and starts
// following scroll notifications from s.
func (c *Controller) Mount(s Surface) {
	if c.surface != nil {
		c.Unmount()
	}
	if s == nil {
		return
	}
	c.surface = s
	c.offset = 0
	c.cancel = s.OnScroll(c.sync)
	c.log.Debug("carousel mounted",
		zap.Float64("viewport", s.ViewportWidth()),
		zap.Float64("content", s.ContentWidth()))
}

// Unmount releases the scroll subscription and detaches the surface.
func (c *Controller) Unmount() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.surface != nil {
		c.log.Debug("carousel unmounted", zap.Float64("offset", c.offset))
	}
	c.surface = nil
}

// Mounted reports whether a surface is attached.
func (c *Controller) Mounted() bool { return c.surface != nil }

// Offset returns the current scroll offset.
func (c *Controller) Offset() float64 { return c.offset }

// CardWidth returns the snap unit.
func (c *Controller) CardWidth() float64 { return c.cardWidth }

// Index returns the index of the card nearest to the current offset.
func (c *Controller) Index() int {
	if c.cardWidth <= 0 {
		return 0
	}
	return int(math.Round(c.offset / c.cardWidth))
}

// Scroll moves one card in dir. The target is clamped to the scrollable
// range, then snapped to the nearest card boundary. The offset is updated
// immediately, before the surface finishes animating.
func (c *Controller) Scroll(dir Direction) {
	s := c.surface
	if s == nil {
		c.log.Debug("carousel scroll ignored: not mounted", zap.Stringer("dir", dir))
		return
	}
	viewport, content := s.ViewportWidth(), s.ContentWidth()
	if viewport <= 0 || content <= 0 || c.cardWidth <= 0 {
		c.log.Debug("carousel scroll ignored: surface not measured",
			zap.Float64("viewport", viewport),
			zap.Float64("content", content))
		return
	}

	step := c.cardWidth
	if dir == Previous {
		step = -step
	}

	maxScroll := math.Max(0, content-viewport)
	target := clamp(c.offset+step, 0, maxScroll)
	snapped := clamp(math.Round(target/c.cardWidth)*c.cardWidth, 0, maxScroll)

	s.ScrollTo(snapped, true)
	c.offset = snapped
}

func (c *Controller) sync(offset float64) {
	c.offset = offset
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
