package maprender

import (
	"image/color"

	"github.com/KirkDiggler/jetlag/internal/services/geo"
	sm "github.com/flopp/go-staticmaps"
)

// Config holds configuration for the static map renderer
type Config struct {
	// Width and Height of the image in pixels, 1600x1200 by default
	Width  int
	Height int

	// TileProvider defaults to the OpenStreetMap tile servers
	TileProvider *sm.TileProvider

	// UserAgent is sent with every tile request
	UserAgent string

	// CacheDir stores downloaded tiles, the user cache directory by default
	CacheDir string

	// Background fills the image where no tile is drawn
	Background color.Color
}

type RenderInput struct {
	Start geo.Coordinates

	// Destinations are the end places in formation order
	Destinations []geo.Coordinates
}

type RenderOutput struct {
	// PNG is the encoded image
	PNG []byte
}
