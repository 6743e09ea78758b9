package geo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

// ErrPlaceNotFound is returned when a place cannot be geocoded
var ErrPlaceNotFound = errors.New("place not found")

// earthRadiusMeters is the mean earth radius used for distances
const earthRadiusMeters = 6371008.8

// Coordinates is a point on the globe in decimal degrees
type Coordinates struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a free-form place into coordinates
//
//go:generate mockgen -package=mocks -destination=mocks/mock_geocoder.go github.com/KirkDiggler/jetlag/internal/services/geo Geocoder
type Geocoder interface {
	// Geocode returns ErrPlaceNotFound when nothing matches the place
	Geocode(ctx context.Context, place string) (Coordinates, error)
}

// DistanceFunc returns the distance between two points
type DistanceFunc func(a, b Coordinates) float64

// GreatCircle returns the distance in meters along the earth's surface
func GreatCircle(a, b Coordinates) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * earthRadiusMeters
}

// LatLng converts the point for use with s2 geometry
func (c Coordinates) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// ParseCoordinates accepts places written as "lat, lon"
func ParseCoordinates(place string) (Coordinates, bool) {
	parts := strings.Split(place, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, false
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}

	return Coordinates{Lat: lat, Lon: lon}, true
}
