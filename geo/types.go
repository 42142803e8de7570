package geo

import "github.com/paulmach/orb"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Coord is a geographic position stored as [lon, lat] in degrees.
type Coord = orb.Point

// LatLng builds a Coord from latitude and longitude, in that order.
func LatLng(lat, lng float64) Coord {
	return Coord{lng, lat}
}

// City is a named position. Cities are immutable once loaded and referenced
// by index everywhere else; index 0 is the depot.
type City struct {
	Name  string `json:"name" yaml:"name"`
	Coord Coord  `json:"coord" yaml:"-"`
}

// Lat returns the city latitude in degrees.
func (c City) Lat() float64 { return c.Coord.Lat() }

// Lng returns the city longitude in degrees.
func (c City) Lng() float64 { return c.Coord.Lon() }
