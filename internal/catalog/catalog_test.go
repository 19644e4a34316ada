package catalog

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Products, 4)
	assert.Equal(t, 4, c.Repeat)
	assert.Equal(t, 32, c.TotalResults())

	items := c.Items()
	require.Len(t, items, 16)
	assert.Equal(t, "Syltherine", items[0].Name)
	assert.Equal(t, "Syltherine", items[4].Name)
	assert.Equal(t, "Respira", items[15].Name)

	syl := c.Products[0]
	assert.Equal(t, int64(2500000), syl.Price)
	assert.True(t, syl.Discounted())
	require.NotNil(t, syl.Badge)
	assert.Equal(t, "-30%", syl.Badge.Text)
	assert.Equal(t, color.RGBA{R: 0xE9, G: 0x71, B: 0x71, A: 0xFF}, syl.Badge.RGBA(color.RGBA{}))

	leviosa := c.Products[1]
	assert.Nil(t, leviosa.Badge)
	assert.False(t, leviosa.Discounted())

	require.Len(t, c.Pages, 4)
	assert.True(t, c.Pages[0].Active)
	assert.Equal(t, "Next", c.Pages[3].Label)
	assert.False(t, c.Pages[3].Active)
}

func TestImagePathFallback(t *testing.T) {
	assert.Equal(t, DefaultImage, Product{}.ImagePath())
	assert.Equal(t, DefaultImage, Product{Image: "  "}.ImagePath())
	assert.Equal(t, "images/a.png", Product{Image: "images/a.png"}.ImagePath())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing id", doc: "[[product]]\nname = \"x\"\n"},
		{name: "missing name", doc: "[[product]]\nid = \"1\"\n"},
		{name: "negative price", doc: "[[product]]\nid = \"1\"\nname = \"x\"\nprice = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}

	_, err := Parse([]byte("[[product]\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidProduct)
}

func TestParse_RepeatDefaults(t *testing.T) {
	c, err := Parse([]byte("[[product]]\nid = \"1\"\nname = \"Chair\"\nprice = 10\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Repeat)
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.TotalResults())
	assert.Equal(t, 1, (&Catalog{Products: c.Products}).TotalResults())
	assert.Len(t, (&Catalog{Products: c.Products}).Items(), 1)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("repeat = 2\n[[product]]\nid = \"a\"\nname = \"Lamp\"\nprice = 99\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Items(), 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseHex(t *testing.T) {
	fallback := color.RGBA{A: 0xFF}
	assert.Equal(t, color.RGBA{R: 0x2E, G: 0xC1, B: 0xAC, A: 0xFF}, ParseHex("#2EC1AC", fallback))
	assert.Equal(t, color.RGBA{R: 0xB8, G: 0x8E, B: 0x2F, A: 0xFF}, ParseHex("b88e2f", fallback))
	assert.Equal(t, fallback, ParseHex("#FFF", fallback))
	assert.Equal(t, fallback, ParseHex("#GGGGGG", fallback))
	assert.Equal(t, fallback, ParseHex("", fallback))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$2,500,000", FormatPrice(2500000, "en-US"))
	assert.Equal(t, "$500,000", FormatPrice(500000, "en"))
	assert.Equal(t, "$999", FormatPrice(999, "en-US"))
	assert.Equal(t, "$14,000,000", FormatPrice(14000000, "not a locale!"))
}

func TestResultsSummary(t *testing.T) {
	assert.Equal(t, "Showing 1-16 of 32 results", ResultsSummary(1, 16, 32))
	assert.Equal(t, "Showing 1-5 of 5 results", ResultsSummary(0, 16, 5))
	assert.Equal(t, "No results", ResultsSummary(1, 16, 0))
}
