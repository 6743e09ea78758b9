package maprender

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"image/png"
	"log"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
)

const (
	defaultWidth  = 1600
	defaultHeight = 1200
	markerSize    = 28.0
)

var (
	startColor = color.RGBA{0x00, 0x00, 0x00, 0xff}

	// Destination colors follow formation order
	destinationColors = []color.RGBA{
		{0xd0, 0x00, 0x00, 0xff},
		{0x00, 0xa0, 0x00, 0xff},
		{0xe0, 0xe0, 0x00, 0xff},
	}
)

// staticMap renders maps with go-staticmaps
type staticMap struct {
	width        int
	height       int
	tileProvider *sm.TileProvider
	userAgent    string
	cache        sm.TileCache
	background   color.Color
}

// New creates a new static map renderer
func New(cfg *Config) (*staticMap, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 && height == 0 {
		width, height = defaultWidth, defaultHeight
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidImageSize
	}

	provider := cfg.TileProvider
	if provider == nil {
		provider = sm.NewTileProviderOpenStreetMaps()
	}

	var cache sm.TileCache = sm.NewTileCacheFromUserCache(0o755)
	if cfg.CacheDir != "" {
		cache = sm.NewTileCache(cfg.CacheDir, 0o755)
	}

	return &staticMap{
		width:        width,
		height:       height,
		tileProvider: provider,
		userAgent:    cfg.UserAgent,
		cache:        cache,
		background:   cfg.Background,
	}, nil
}

// Render draws the start, the destinations and, with three destinations,
// the area each one wins
func (r *staticMap) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Destinations) == 0 {
		return nil, ErrNoDestinations
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := input.Start.LatLng()
	destinations := make([]s2.LatLng, len(input.Destinations))
	for i, d := range input.Destinations {
		destinations[i] = d.LatLng()
	}
	for _, ll := range append([]s2.LatLng{start}, destinations...) {
		if !sm.CanDisplay(ll) {
			return nil, ErrNotDisplayable
		}
	}

	m := sm.NewContext()
	m.SetSize(r.width, r.height)
	m.SetTileProvider(r.tileProvider)
	m.SetCache(r.cache)
	if r.userAgent != "" {
		m.SetUserAgent(r.userAgent)
	}
	if r.background != nil {
		m.SetBackground(r.background)
	}

	// Areas go first so the markers stay on top
	if len(destinations) == len(destinationColors) {
		m.AddObject(newWinAreas(start, destinations))
	}

	m.AddObject(sm.NewMarker(start, startColor, markerSize))
	for i, d := range destinations {
		m.AddObject(sm.NewMarker(d, destinationColors[i%len(destinationColors)], markerSize))
	}

	img, err := m.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode map: %w", err)
	}

	log.Printf("Rendered %dx%d map with %d destinations (%d bytes)", r.width, r.height, len(destinations), buf.Len())

	return &RenderOutput{PNG: buf.Bytes()}, nil
}
