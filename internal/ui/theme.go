package ui

import (
	"image/color"

	"github.com/depeter/shopfront/internal/constants"
)

// Colors: warm storefront palette
var (
	ColorBackground  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorCream       = color.RGBA{R: 0xF9, G: 0xF1, B: 0xE7, A: 0xFF} // toolbar band
	ColorSurface     = color.RGBA{R: 0xF4, G: 0xF5, B: 0xF7, A: 0xFF} // card and button fill
	ColorPrimary     = color.RGBA{R: 0xB8, G: 0x8E, B: 0x2F, A: 0xFF} // gold accent
	ColorText        = color.RGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF}
	ColorTextStrong  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorTextMuted   = color.RGBA{R: 0x9F, G: 0x9F, B: 0x9F, A: 0xFF}
	ColorTextCaption = color.RGBA{R: 0xB3, G: 0xB3, B: 0xB3, A: 0xFF}
	ColorWhite       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorSale        = color.RGBA{R: 0xE9, G: 0x71, B: 0x71, A: 0xFF}
	ColorNew         = color.RGBA{R: 0x2E, G: 0xC1, B: 0xAC, A: 0xFF}
	ColorOverlay     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	CardGap         = constants.CardGap
	CardImageHeight = 301
	CardInfoHeight  = 124
	CardHeight      = CardImageHeight + CardInfoHeight
	CardPad         = 16

	HeroHeight    = 300
	ToolbarHeight = 96

	ContentMaxWidth = 1152 // max-w-6xl
	PagePadding     = 16
	SectionPadY     = 64
	PaginationGap   = 32
	PaginationH     = 44

	FontSizeHero    = 46
	FontSizeTitle   = 24
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 14
	FontSizeCaption = 12

	// HoverFadeSpeed is the per-frame lerp factor of the card hover overlay.
	HoverFadeSpeed = 0.2
)
