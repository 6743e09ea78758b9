package maprender

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"testing"

	"github.com/KirkDiggler/jetlag/internal/services/geo"
	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RendererTestSuite struct {
	suite.Suite
	renderer *staticMap
	ctx      context.Context
}

func (s *RendererTestSuite) SetupTest() {
	r, err := New(&Config{
		Width:        400,
		Height:       300,
		TileProvider: sm.NewTileProviderNone(),
		CacheDir:     s.T().TempDir(),
		Background:   color.White,
	})
	s.Require().NoError(err)

	s.renderer = r
	s.ctx = context.Background()
}

func (s *RendererTestSuite) TestRenderDrawsAreasAndMarkers() {
	out, err := s.renderer.Render(s.ctx, &RenderInput{
		Start: geo.Coordinates{Lat: 48.8566, Lon: 2.3522},
		Destinations: []geo.Coordinates{
			{Lat: 49.4432, Lon: 1.0999},
			{Lat: 49.2583, Lon: 4.0317},
			{Lat: 47.3220, Lon: 5.0415},
		},
	})
	s.Require().NoError(err)

	img, err := png.Decode(bytes.NewReader(out.PNG))
	s.Require().NoError(err)
	s.Equal(400, img.Bounds().Dx())
	s.Equal(300, img.Bounds().Dy())

	shaded := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 5 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 5 {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				shaded++
			}
		}
	}
	// the wedges shade a large part of the white background
	s.Greater(shaded, 500)
}

func (s *RendererTestSuite) TestRenderWithoutDestinations() {
	_, err := s.renderer.Render(s.ctx, &RenderInput{Start: geo.Coordinates{Lat: 1, Lon: 1}})
	s.ErrorIs(err, ErrNoDestinations)

	_, err = s.renderer.Render(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *RendererTestSuite) TestRenderRejectsPolarPlaces() {
	_, err := s.renderer.Render(s.ctx, &RenderInput{
		Start:        geo.Coordinates{Lat: 89.9, Lon: 0},
		Destinations: []geo.Coordinates{{Lat: 10, Lon: 10}},
	})
	s.ErrorIs(err, ErrNotDisplayable)
}

func (s *RendererTestSuite) TestRenderCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.renderer.Render(ctx, &RenderInput{
		Start:        geo.Coordinates{Lat: 1, Lon: 1},
		Destinations: []geo.Coordinates{{Lat: 2, Lon: 2}},
	})
	s.ErrorIs(err, context.Canceled)
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(&Config{Width: 100, Height: -1})
	assert.ErrorIs(t, err, ErrInvalidImageSize)

	r, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, r.width)
	assert.Equal(t, defaultHeight, r.height)
}

func TestWedges(t *testing.T) {
	center := r2.Point{X: 0, Y: 0}
	ends := [3]r2.Point{
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: -10, Y: 0},
	}

	got := wedges(center, ends)

	for _, w := range got {
		assert.Equal(t, center, w[0])
	}
	// first: towards mid(first, third) then mid(first, second)
	assert.Equal(t, r2.Point{X: 0, Y: 0}, got[0][1])
	assert.Equal(t, r2.Point{X: 5 * spread, Y: 5 * spread}, got[0][2])
	// second: mid(second, third) then mid(second, first)
	assert.Equal(t, r2.Point{X: -5 * spread, Y: 5 * spread}, got[1][1])
	assert.Equal(t, r2.Point{X: 5 * spread, Y: 5 * spread}, got[1][2])
	// third: mid(first, third) then mid(second, third)
	assert.Equal(t, r2.Point{X: 0, Y: 0}, got[2][1])
	assert.Equal(t, r2.Point{X: -5 * spread, Y: 5 * spread}, got[2][2])
}
