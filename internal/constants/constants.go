package constants

// Artwork paths under the assets directory.
const (
	HeroImage  = "images/shop-cover.png"
	FilterIcon = "images/filter-icon.png"
	GridIcon   = "images/dots-icon.png"
	ListIcon   = "images/list-icon.png"
)

// CardGap is the horizontal space between product cards. The configured
// card width is the card pitch, so it must exceed this.
const CardGap = 32

// PageSize is the number of cards advertised per page in the toolbar.
const PageSize = 16
