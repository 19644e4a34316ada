// Package catalog holds the static product listing shown on the Shop screen.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultImage is drawn for products without artwork.
const DefaultImage = "images/default.jpg"

// ErrInvalidProduct is returned when a catalog record is missing required fields.
var ErrInvalidProduct = errors.New("invalid product")

//go:embed products.toml
var defaultCatalog []byte

// Badge is the small label drawn in a card's corner ("-30%", "New").
type Badge struct {
	Text  string `toml:"text"`
	Color string `toml:"color"`
}

// RGBA parses the badge's #RRGGBB color, falling back to fallback when the
// value is malformed.
func (b Badge) RGBA(fallback color.RGBA) color.RGBA {
	return ParseHex(b.Color, fallback)
}

// Product is one card in the listing.
type Product struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Image         string `toml:"image"`
	Category      string `toml:"category"`
	Price         int64  `toml:"price"`
	OriginalPrice int64  `toml:"original_price"`
	Badge         *Badge `toml:"badge"`
}

// ImagePath returns the product artwork path, or DefaultImage when unset.
func (p Product) ImagePath() string {
	if strings.TrimSpace(p.Image) == "" {
		return DefaultImage
	}
	return p.Image
}

// Discounted reports whether a struck-through original price is shown.
func (p Product) Discounted() bool {
	return p.OriginalPrice > 0
}

// PageItem is a static pagination button.
type PageItem struct {
	Label  string `toml:"label"`
	Active bool   `toml:"active"`
}

// Catalog is a decoded catalog document.
type Catalog struct {
	Repeat   int        `toml:"repeat"`
	Total    int        `toml:"total"`
	Products []Product  `toml:"product"`
	Pages    []PageItem `toml:"page"`
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Repeat < 1 {
		c.Repeat = 1
	}
	return &c, nil
}

// Validate checks every product has an ID and a name and a sane price.
func (c *Catalog) Validate() error {
	for i, p := range c.Products {
		switch {
		case strings.TrimSpace(p.ID) == "":
			return fmt.Errorf("%w: product %d has no id", ErrInvalidProduct, i)
		case strings.TrimSpace(p.Name) == "":
			return fmt.Errorf("%w: product %q has no name", ErrInvalidProduct, p.ID)
		case p.Price < 0 || p.OriginalPrice < 0:
			return fmt.Errorf("%w: product %q has a negative price", ErrInvalidProduct, p.ID)
		}
	}
	return nil
}

// Items returns the listing: the base products repeated Repeat times.
func (c *Catalog) Items() []Product {
	n := c.Repeat
	if n < 1 {
		n = 1
	}
	items := make([]Product, 0, len(c.Products)*n)
	for i := 0; i < n; i++ {
		items = append(items, c.Products...)
	}
	return items
}

// TotalResults returns the advertised result count, defaulting to the
// listing length.
func (c *Catalog) TotalResults() int {
	if c.Total > 0 {
		return c.Total
	}
	return len(c.Products) * max(c.Repeat, 1)
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
