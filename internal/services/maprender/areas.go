package maprender

import (
	sm "github.com/flopp/go-staticmaps"
	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

// spread pushes the wedge edges far past the image border
const spread = 250.0

var areaFills = [3][4]int{
	{150, 0, 0, 100},
	{0, 150, 0, 100},
	{150, 150, 0, 100},
}

// winAreas shades, for each of three destinations, the wedge of the map
// leaving the start towards it. It implements sm.MapObject.
type winAreas struct {
	start        s2.LatLng
	destinations []s2.LatLng
}

func newWinAreas(start s2.LatLng, destinations []s2.LatLng) *winAreas {
	return &winAreas{start: start, destinations: destinations}
}

// Bounds covers the same places as the markers so zoom is unaffected
func (a *winAreas) Bounds() s2.Rect {
	r := s2.RectFromLatLng(a.start)
	for _, d := range a.destinations {
		r = r.AddPoint(d)
	}
	return r
}

func (a *winAreas) ExtraMarginPixels() (float64, float64, float64, float64) {
	return 0, 0, 0, 0
}

func (a *winAreas) Draw(gc *gg.Context, trans *sm.Transformer) {
	if len(a.destinations) != 3 {
		return
	}

	center := toPoint(trans.LatLngToXY(a.start))
	var ends [3]r2.Point
	for i, d := range a.destinations {
		ends[i] = toPoint(trans.LatLngToXY(d))
	}

	for i, wedge := range wedges(center, ends) {
		gc.ClearPath()
		for _, p := range wedge {
			gc.LineTo(p.X, p.Y)
		}
		gc.ClosePath()
		fill := areaFills[i]
		gc.SetRGBA255(fill[0], fill[1], fill[2], fill[3])
		gc.Fill()
	}
}

// wedges returns one triangle per destination, bounded by the rays from
// center through the midpoints it shares with the other two
func wedges(center r2.Point, ends [3]r2.Point) [3][3]r2.Point {
	extend := func(p r2.Point) r2.Point {
		return center.Add(p.Sub(center).Mul(spread))
	}
	mid := func(a, b r2.Point) r2.Point {
		return a.Add(b).Mul(0.5)
	}

	first, second, third := ends[0], ends[1], ends[2]

	return [3][3]r2.Point{
		{center, extend(mid(first, third)), extend(mid(first, second))},
		{center, extend(mid(second, third)), extend(mid(second, first))},
		{center, extend(mid(first, third)), extend(mid(second, third))},
	}
}

func toPoint(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}
