package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	cream    = color.RGBA{R: 0xF9, G: 0xF1, B: 0xE7, A: 0xFF}
	gold     = color.RGBA{R: 0xB8, G: 0x8E, B: 0x2F, A: 0xFF}
	goldDark = color.RGBA{R: 0x8A, G: 0x69, B: 0x1F, A: 0xFF}
	tagRed   = color.RGBA{R: 0xE9, G: 0x71, B: 0x71, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, cream)
	drawBag(img, s)
	return img
}

// drawBag draws a shopping bag: handle ring, body, and a sale tag dot.
func drawBag(img *image.RGBA, s float64) {
	// Handle: ring above the bag body
	cx, cy := s*0.50, s*0.36
	outer, inner := s*0.17, s*0.11
	for y := int(cy - outer); y <= int(cy); y++ {
		for x := int(cx - outer); x <= int(cx+outer); x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			if d <= outer && d >= inner {
				blendPixel(img, x, y, goldDark)
			}
		}
	}

	// Body
	fillRoundedRect(img, s*0.20, s*0.34, s*0.60, s*0.52, s*0.06, gold)

	// Fold line along the top of the body
	fillRoundedRect(img, s*0.20, s*0.34, s*0.60, s*0.05, 0, goldDark)

	// Tag
	fillCircle(img, s*0.68, s*0.74, s*0.08, tagRed)
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0, y0 := int(xf), int(yf)
	x1, y1 := int(xf+wf), int(yf+hf)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			// Distance into the nearest corner square, if any
			dx := math.Max(math.Max(xf+rf-px, px-(xf+wf-rf)), 0)
			dy := math.Max(math.Max(yf+rf-py, py-(yf+hf-rf)), 0)
			if dx*dx+dy*dy <= rf*rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	sr, sg, sb, sa := c.RGBA()
	if sa == 0xFFFF {
		img.Set(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - sa
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((sr + uint32(dst.R)*0x101*inv/0xFFFF) >> 8),
		G: uint8((sg + uint32(dst.G)*0x101*inv/0xFFFF) >> 8),
		B: uint8((sb + uint32(dst.B)*0x101*inv/0xFFFF) >> 8),
		A: uint8((sa + uint32(dst.A)*0x101*inv/0xFFFF) >> 8),
	})
}
