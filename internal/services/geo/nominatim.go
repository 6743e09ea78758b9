package geo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	gogeo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/patrickmn/go-cache"
)

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org/"
	defaultTimeout      = 10 * time.Second
	defaultCacheTTL     = 24 * time.Hour
)

// NominatimConfig holds configuration for the Nominatim geocoder
type NominatimConfig struct {
	// BaseURL of the Nominatim instance
	BaseURL string

	// Timeout bounds a single lookup, 10 seconds by default
	Timeout time.Duration

	// CacheTTL is how long resolved places are remembered, a day by default
	CacheTTL time.Duration
}

// nominatim implements Geocoder on top of the geo-golang OpenStreetMap client
type nominatim struct {
	client  gogeo.Geocoder
	timeout time.Duration
	cache   *cache.Cache
}

// NewNominatim creates a Nominatim backed geocoder
func NewNominatim(cfg *NominatimConfig) (*nominatim, error) {
	if cfg == nil {
		cfg = &NominatimConfig{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid nominatim url: %w", err)
	}
	// the client appends "search?..." directly to the base
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &nominatim{
		client:  openstreetmap.GeocoderWithURL(baseURL),
		timeout: timeout,
		cache:   cache.New(ttl, 2*ttl),
	}, nil
}

// Geocode resolves a place name, or passes through "lat, lon" input
func (n *nominatim) Geocode(ctx context.Context, place string) (Coordinates, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return Coordinates{}, ErrPlaceNotFound
	}

	if coords, ok := ParseCoordinates(place); ok {
		return coords, nil
	}

	key := strings.ToLower(place)
	if cached, found := n.cache.Get(key); found {
		return cached.(Coordinates), nil
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	loc, err := n.client.GeocodeWithContext(ctx, place)
	if err != nil {
		if errors.Is(err, gogeo.ErrTimeout) {
			return Coordinates{}, fmt.Errorf("geocoding %q timed out: %w", place, err)
		}
		return Coordinates{}, fmt.Errorf("failed to geocode %q: %w", place, err)
	}
	if loc == nil {
		return Coordinates{}, ErrPlaceNotFound
	}

	coords := Coordinates{Lat: loc.Lat, Lon: loc.Lng}
	n.cache.Set(key, coords, cache.DefaultExpiration)

	return coords, nil
}
