package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	icons := Generate()
	require.Len(t, icons, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), icons[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), icons[1].Bounds())

	big := icons[0].(*image.RGBA)
	assert.Equal(t, gold, big.RGBAAt(32, 50), "bag body in the middle")
	assert.Equal(t, color.RGBA{}, big.RGBAAt(0, 0), "rounded corner left transparent")
}

func TestBlendPixelOutOfBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	blendPixel(img, -1, 5, gold)
	blendPixel(img, 1, 1, gold)
	assert.Equal(t, gold, img.RGBAAt(1, 1))
}
