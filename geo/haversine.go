package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// Haversine returns the great-circle distance in kilometers between a and b
// on a sphere of radius EarthRadiusKm.
func Haversine(a, b Coord) float64 {
	var (
		phi1    = deg2rad(a.Lat())
		phi2    = deg2rad(b.Lat())
		dPhi    = deg2rad(b.Lat() - a.Lat())
		dLambda = deg2rad(b.Lon() - a.Lon())
	)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bounds returns the smallest lon/lat box containing every coordinate.
// A presentation driver uses it to fit its basemap; an empty input yields
// the zero Bound.
func Bounds(coords []Coord) orb.Bound {
	if len(coords) == 0 {
		return orb.Bound{}
	}

	return orb.MultiPoint(coords).Bound()
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
