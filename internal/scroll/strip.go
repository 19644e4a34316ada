// Package scroll provides the scroll state backing horizontally scrolling rows
// and vertically scrolling pages.
package scroll

import "math"

// AnimSpeed is the per-frame interpolation factor for animated scrolls.
const AnimSpeed = 0.12

// Strip is a horizontal scroll surface. The owning widget sets the viewport
// and content widths each layout pass, calls Step once per frame, and feeds
// user input through Wheel and the drag methods.
type Strip struct {
	viewport float64
	content  float64
	offset   float64

	target    float64
	animating bool

	dragging  bool
	dragMoved bool
	dragX     float64
	dragStart float64

	listeners map[int]func(float64)
	nextID    int
}

// NewStrip creates an unmeasured strip.
func NewStrip() *Strip {
	return &Strip{listeners: make(map[int]func(float64))}
}

func (s *Strip) ViewportWidth() float64 { return s.viewport }
func (s *Strip) ContentWidth() float64  { return s.content }
func (s *Strip) ScrollOffset() float64  { return s.offset }

// MaxOffset returns the largest valid offset.
func (s *Strip) MaxOffset() float64 {
	return math.Max(0, s.content-s.viewport)
}

// Animating reports whether an animated scroll is in flight.
func (s *Strip) Animating() bool { return s.animating }

// Dragging reports whether a drag gesture is in progress.
func (s *Strip) Dragging() bool { return s.dragging }

// Measure records the current viewport and content widths. An offset that
// falls outside the new range is pulled back in and reported to listeners.
func (s *Strip) Measure(viewport, content float64) {
	s.viewport = math.Max(0, viewport)
	s.content = math.Max(0, content)
	if s.animating {
		s.target = s.clamp(s.target)
	}
	if c := s.clamp(s.offset); c != s.offset {
		s.offset = c
		s.notify()
	}
}

// ScrollTo moves to pos. Animated scrolls are advanced by Step; a later
// command supersedes one still in flight. Listeners are not notified.
func (s *Strip) ScrollTo(pos float64, animated bool) {
	pos = s.clamp(pos)
	if !animated {
		s.offset = pos
		s.animating = false
		return
	}
	s.target = pos
	s.animating = true
}

// Step advances an in-flight animation by one frame.
func (s *Strip) Step() {
	if !s.animating {
		return
	}
	s.offset = s.offset + (s.target-s.offset)*AnimSpeed
	if math.Abs(s.target-s.offset) < 0.5 {
		s.offset = s.target
		s.animating = false
	}
}

// OnScroll registers fn for user-driven scroll changes.
func (s *Strip) OnScroll(fn func(offset float64)) (cancel func()) {
	if s.listeners == nil {
		s.listeners = make(map[int]func(float64))
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

// Listeners returns the number of registered scroll listeners.
func (s *Strip) Listeners() int { return len(s.listeners) }

// Wheel scrolls by delta layout units, as from a trackpad or wheel.
func (s *Strip) Wheel(delta float64) {
	if delta == 0 {
		return
	}
	s.userMove(s.offset + delta)
}

// BeginDrag starts a drag gesture at pointer position x. Nothing moves
// until the pointer does, so a plain click leaves an animation running.
func (s *Strip) BeginDrag(x float64) {
	s.dragging = true
	s.dragMoved = false
	s.dragX = x
}

// DragTo moves the content with the pointer.
func (s *Strip) DragTo(x float64) {
	if !s.dragging {
		return
	}
	if !s.dragMoved {
		if x == s.dragX {
			return
		}
		s.dragMoved = true
		s.dragStart = s.offset
	}
	s.userMove(s.dragStart - (x - s.dragX))
}

// EndDrag finishes the current drag gesture.
func (s *Strip) EndDrag() {
	s.dragging = false
	s.dragMoved = false
}

func (s *Strip) userMove(pos float64) {
	s.animating = false
	pos = s.clamp(pos)
	if pos == s.offset {
		return
	}
	s.offset = pos
	s.notify()
}

func (s *Strip) notify() {
	for _, fn := range s.listeners {
		fn(s.offset)
	}
}

func (s *Strip) clamp(v float64) float64 {
	return math.Max(0, math.Min(v, s.MaxOffset()))
}
