package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawFilterIcon draws three slider bars with knobs at (cx, cy).
func drawFilterIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	knobs := []float32{0.4, -0.3, 0.1}
	for i, k := range knobs {
		ly := cy + float32(i-1)*r*0.7
		vector.StrokeLine(dst, cx-r, ly, cx+r, ly, 1.8, clr, false)
		vector.DrawFilledCircle(dst, cx+k*r, ly, r*0.25, clr, false)
	}
}

// drawGridIcon draws a 2x2 block of squares.
func drawGridIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	s := r * 0.8
	gap := r * 0.2
	for _, dx := range []float32{-s - gap/2, gap / 2} {
		for _, dy := range []float32{-s - gap/2, gap / 2} {
			vector.DrawFilledRect(dst, cx+dx, cy+dy, s, s, clr, false)
		}
	}
}

// drawListIcon draws a list icon at (cx, cy) with given radius.
func drawListIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	lineW := r * 1.2
	gap := r * 0.5
	for i := -1; i <= 1; i++ {
		ly := cy + float32(i)*gap
		vector.DrawFilledCircle(dst, cx-lineW*0.6, ly, 1.5, clr, false)
		vector.StrokeLine(dst, cx-lineW*0.3, ly, cx+lineW*0.7, ly, 1.8, clr, false)
	}
}

// drawChevron draws a chevron pointing left or right.
func drawChevron(dst *ebiten.Image, cx, cy, r float32, left bool, clr color.Color) {
	tip, tail := cx+r*0.4, cx-r*0.4
	if left {
		tip, tail = tail, tip
	}
	vector.StrokeLine(dst, tail, cy-r*0.8, tip, cy, 2, clr, true)
	vector.StrokeLine(dst, tip, cy, tail, cy+r*0.8, 2, clr, true)
}

// drawShareIcon draws three connected nodes.
func drawShareIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	a := [2]float32{cx + r*0.6, cy - r*0.6}
	b := [2]float32{cx - r*0.6, cy}
	c := [2]float32{cx + r*0.6, cy + r*0.6}
	vector.StrokeLine(dst, a[0], a[1], b[0], b[1], 1.5, clr, true)
	vector.StrokeLine(dst, b[0], b[1], c[0], c[1], 1.5, clr, true)
	for _, p := range [][2]float32{a, b, c} {
		vector.DrawFilledCircle(dst, p[0], p[1], r*0.25, clr, true)
	}
}

// drawCompareIcon draws three vertical bars of rising height.
func drawCompareIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	for i, h := range []float32{0.6, 1.4, 1.0} {
		x := cx + float32(i-1)*r*0.6
		vector.StrokeLine(dst, x, cy+r*0.7, x, cy+r*0.7-h*r, 2, clr, false)
	}
}

// drawHeartIcon outlines a heart.
func drawHeartIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	const steps = 32
	var px, py float32
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps * 2 * math.Pi
		x := 16 * math.Pow(math.Sin(t), 3)
		y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		hx := cx + float32(x)*r/17
		hy := cy + float32(y)*r/17
		if i > 0 {
			vector.StrokeLine(dst, px, py, hx, hy, 1.5, clr, true)
		}
		px, py = hx, hy
	}
}
