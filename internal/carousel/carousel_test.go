package carousel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type scrollCall struct {
	pos      float64
	animated bool
}

type fakeSurface struct {
	viewport, content, offset float64

	calls     []scrollCall
	listeners map[int]func(float64)
	nextID    int
	cancels   int
}

func newFakeSurface(viewport, content float64) *fakeSurface {
	return &fakeSurface{
		viewport:  viewport,
		content:   content,
		listeners: make(map[int]func(float64)),
	}
}

func (f *fakeSurface) ViewportWidth() float64 { return f.viewport }
func (f *fakeSurface) ContentWidth() float64  { return f.content }
func (f *fakeSurface) ScrollOffset() float64  { return f.offset }

func (f *fakeSurface) ScrollTo(pos float64, animated bool) {
	f.calls = append(f.calls, scrollCall{pos, animated})
	f.offset = pos
}

func (f *fakeSurface) OnScroll(fn func(float64)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	return func() {
		if _, ok := f.listeners[id]; ok {
			delete(f.listeners, id)
			f.cancels++
		}
	}
}

// userScroll simulates a drag or swipe landing at x.
func (f *fakeSurface) userScroll(x float64) {
	f.offset = x
	for _, fn := range f.listeners {
		fn(x)
	}
}

func mounted(t *testing.T, viewport, content float64) (*Controller, *fakeSurface) {
	t.Helper()
	s := newFakeSurface(viewport, content)
	c := New(300, WithLogger(zaptest.NewLogger(t)))
	c.Mount(s)
	require.True(t, c.Mounted())
	return c, s
}

func TestScroll_FiveCardScenario(t *testing.T) {
	c, s := mounted(t, 900, 1500)

	c.Scroll(Next)
	assert.Equal(t, 300.0, c.Offset())

	for i := 0; i < 3; i++ {
		c.Scroll(Next)
	}
	assert.Equal(t, 600.0, c.Offset(), "clamps at content-viewport, not 1200")

	c.Scroll(Previous)
	assert.Equal(t, 300.0, c.Offset())

	require.NotEmpty(t, s.calls)
	for _, call := range s.calls {
		assert.True(t, call.animated)
	}
	assert.Equal(t, 300.0, s.calls[len(s.calls)-1].pos)
}

func TestScroll_FromMaxGoesBackOneCard(t *testing.T) {
	c, s := mounted(t, 900, 1500)
	s.userScroll(600)

	c.Scroll(Previous)
	assert.Equal(t, 300.0, c.Offset())
}

func TestScroll_SnapsDriftedOffset(t *testing.T) {
	c, s := mounted(t, 900, 1500)
	s.userScroll(450)
	require.Equal(t, 450.0, c.Offset())

	c.Scroll(Next)
	assert.Equal(t, 600.0, c.Offset())
	assert.Equal(t, scrollCall{600, true}, s.calls[len(s.calls)-1])
}

func TestScroll_DriftCorrectsByLessThanACard(t *testing.T) {
	c, s := mounted(t, 900, 3000)
	s.userScroll(400)

	c.Scroll(Previous)
	assert.Equal(t, 0.0, c.Offset(), "target 100 snaps to the nearest card at 0")
}

func TestScroll_NoOps(t *testing.T) {
	t.Run("not mounted", func(t *testing.T) {
		c := New(300)
		c.Scroll(Next)
		assert.Equal(t, 0.0, c.Offset())
		assert.False(t, c.Mounted())
	})

	tests := []struct {
		name              string
		viewport, content float64
	}{
		{name: "zero viewport", viewport: 0, content: 1500},
		{name: "zero content", viewport: 900, content: 0},
		{name: "unmeasured", viewport: 0, content: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := mounted(t, tt.viewport, tt.content)
			c.Scroll(Next)
			assert.Equal(t, 0.0, c.Offset())
			assert.Empty(t, s.calls)
		})
	}
}

func TestScroll_ContentNarrowerThanViewport(t *testing.T) {
	c, s := mounted(t, 900, 600)

	c.Scroll(Next)
	assert.Equal(t, 0.0, c.Offset())
	c.Scroll(Previous)
	assert.Equal(t, 0.0, c.Offset())
	assert.Len(t, s.calls, 2)
}

func TestScroll_RemeasuresEachCall(t *testing.T) {
	c, s := mounted(t, 900, 1500)
	c.Scroll(Next)
	c.Scroll(Next)
	require.Equal(t, 600.0, c.Offset())

	s.content = 3000
	c.Scroll(Next)
	assert.Equal(t, 900.0, c.Offset())

	s.viewport = 2700
	c.Scroll(Next)
	assert.Equal(t, 300.0, c.Offset(), "target clamps to the new, smaller range")
}

func TestScroll_UpperBoundNotCardAligned(t *testing.T) {
	// max = 750; from 600 the target clamps to 750 and rounding would
	// overshoot to 900, so the result stays on the bound.
	c, s := mounted(t, 900, 1650)
	s.userScroll(600)

	c.Scroll(Next)
	assert.Equal(t, 750.0, c.Offset())
}

func TestPassiveSync(t *testing.T) {
	c, s := mounted(t, 900, 1500)
	c.Scroll(Next)
	require.Equal(t, 300.0, c.Offset())

	s.userScroll(123.5)
	assert.Equal(t, 123.5, c.Offset())

	// Last write wins between scroll and the listener.
	c.Scroll(Next)
	assert.Equal(t, 300.0, c.Offset())
	s.userScroll(10)
	assert.Equal(t, 10.0, c.Offset())
}

func TestMountLifecycle(t *testing.T) {
	c := New(300)
	s := newFakeSurface(900, 1500)

	c.Mount(s)
	assert.Len(t, s.listeners, 1)
	s.userScroll(300)
	assert.Equal(t, 300.0, c.Offset())

	c.Unmount()
	assert.False(t, c.Mounted())
	assert.Empty(t, s.listeners)
	assert.Equal(t, 1, s.cancels)

	// Notifications after unmount no longer reach the controller.
	s.userScroll(600)
	assert.Equal(t, 300.0, c.Offset())
	c.Scroll(Next)
	assert.Equal(t, 300.0, c.Offset())

	c.Unmount()
	assert.Equal(t, 1, s.cancels)

	// Remount starts from zero with a single fresh subscription.
	c.Mount(s)
	assert.Equal(t, 0.0, c.Offset())
	assert.Len(t, s.listeners, 1)
}

func TestMount_ReplacesPreviousSurface(t *testing.T) {
	c := New(300)
	first := newFakeSurface(900, 1500)
	second := newFakeSurface(900, 1500)

	c.Mount(first)
	c.Mount(second)

	assert.Empty(t, first.listeners)
	assert.Len(t, second.listeners, 1)

	c.Mount(nil)
	assert.False(t, c.Mounted())
	assert.Empty(t, second.listeners)
}

func TestIndex(t *testing.T) {
	c, s := mounted(t, 900, 3000)
	assert.Equal(t, 0, c.Index())
	c.Scroll(Next)
	c.Scroll(Next)
	assert.Equal(t, 2, c.Index())
	s.userScroll(440)
	assert.Equal(t, 1, c.Index())

	assert.Equal(t, 0, New(0).Index())
}

func TestScroll_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		viewport := float64(100 + rng.Intn(1500))
		content := float64(rng.Intn(6000))
		c, s := mounted(t, viewport, content)
		maxScroll := math.Max(0, content-viewport)

		for j := 0; j < 30; j++ {
			switch rng.Intn(3) {
			case 0:
				c.Scroll(Next)
			case 1:
				c.Scroll(Previous)
			default:
				s.userScroll(rng.Float64() * maxScroll)
				continue
			}

			off := c.Offset()
			require.GreaterOrEqual(t, off, 0.0)
			require.LessOrEqual(t, off, maxScroll)
			if off != maxScroll {
				require.Zero(t, math.Mod(off, 300), "offset %v not card aligned", off)
			}
		}
	}
}

func TestScroll_RoundTrip(t *testing.T) {
	c, s := mounted(t, 900, 3000)
	for _, start := range []float64{0, 300, 900, 1500} {
		s.userScroll(start)
		c.Scroll(Next)
		c.Scroll(Previous)
		assert.Equal(t, start, c.Offset(), "start %v", start)
	}

	// At the upper bound the round trip does not hold.
	s.userScroll(2100)
	c.Scroll(Next)
	c.Scroll(Previous)
	assert.Equal(t, 1800.0, c.Offset())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "previous", Previous.String())
	assert.Equal(t, "next", Next.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
