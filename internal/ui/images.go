package ui

import (
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/shopfront/internal/catalog"
)

// ImageSource loads decoded artwork. *cache.ImageCache satisfies it.
type ImageSource interface {
	Get(src string) image.Image
	LoadAsync(src string, callback func(image.Image, error))
}

// Textures turns decoded artwork into GPU images on the game goroutine.
// Sources that fail to load fall back to the catalog's default image.
type Textures struct {
	src ImageSource

	mu      sync.Mutex
	decoded map[string]image.Image
	failed  map[string]bool
	pending map[string]bool

	images map[string]*ebiten.Image
}

func NewTextures(src ImageSource) *Textures {
	return &Textures{
		src:     src,
		decoded: make(map[string]image.Image),
		failed:  make(map[string]bool),
		pending: make(map[string]bool),
		images:  make(map[string]*ebiten.Image),
	}
}

// Request starts loading src unless it is already loaded or in flight.
func (t *Textures) Request(src string) {
	if t == nil || t.src == nil || src == "" {
		return
	}
	t.mu.Lock()
	if _, ok := t.images[src]; ok || t.pending[src] || t.failed[src] || t.decoded[src] != nil {
		t.mu.Unlock()
		return
	}
	t.pending[src] = true
	t.mu.Unlock()

	t.src.LoadAsync(src, func(img image.Image, err error) {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.pending, src)
		if err != nil || img == nil {
			t.failed[src] = true
			return
		}
		t.decoded[src] = img
	})
}

// Get returns the GPU image for src, the default image when src failed, or
// nil while nothing is available yet.
func (t *Textures) Get(src string) *ebiten.Image {
	if t == nil {
		return nil
	}
	if img := t.upload(src); img != nil {
		return img
	}
	t.mu.Lock()
	failed := t.failed[src]
	t.mu.Unlock()
	if failed && src != catalog.DefaultImage {
		t.Request(catalog.DefaultImage)
		return t.upload(catalog.DefaultImage)
	}
	return nil
}

// Peek returns the GPU image for src without falling back to the default.
func (t *Textures) Peek(src string) *ebiten.Image {
	if t == nil {
		return nil
	}
	return t.upload(src)
}

func (t *Textures) upload(src string) *ebiten.Image {
	if img, ok := t.images[src]; ok {
		return img
	}
	t.mu.Lock()
	dec := t.decoded[src]
	delete(t.decoded, src)
	t.mu.Unlock()
	if dec == nil {
		return nil
	}
	img := ebiten.NewImageFromImage(dec)
	t.images[src] = img
	return img
}

// DrawImageCover scales img to cover the (x, y, w, h) box, centered and
// cropped to the box.
func DrawImageCover(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || w <= 0 || h <= 0 {
		return
	}
	scale := math.Max(w/float64(b.Dx()), h/float64(b.Dy()))
	sw, sh := float64(b.Dx())*scale, float64(b.Dy())*scale

	clip := dst.SubImage(image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h)))).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-(sw-w)/2, y-(sh-h)/2)
	op.Filter = ebiten.FilterLinear
	clip.DrawImage(img, op)
}
