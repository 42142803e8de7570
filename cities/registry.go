package cities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
)

var (
	// ErrNoCities is returned when a source yields no city.
	ErrNoCities = errors.New("cities: no cities")

	// ErrEmptyName is returned for a city with a blank name.
	ErrEmptyName = errors.New("cities: empty city name")

	// ErrDuplicateCity is returned when two cities share a name.
	ErrDuplicateCity = errors.New("cities: duplicate city")

	// ErrBadCoordinate is returned for a latitude or longitude out of range.
	ErrBadCoordinate = errors.New("cities: coordinate out of range")

	// ErrUnknownFormat is returned by Load for an unrecognized file extension.
	ErrUnknownFormat = errors.New("cities: unknown file format")
)

// Registry is the immutable, ordered list of cities of one instance.
type Registry struct {
	cities []geo.City
	index  map[string]int
}

// New validates cities and builds a Registry that keeps their order.
func New(cities []geo.City) (*Registry, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}
	r := &Registry{
		cities: make([]geo.City, len(cities)),
		index:  make(map[string]int, len(cities)),
	}
	for i, c := range cities {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
		if c.Lat() < -90 || c.Lat() > 90 || c.Lng() < -180 || c.Lng() > 180 {
			return nil, fmt.Errorf("%w: %s (%g, %g)", ErrBadCoordinate, c.Name, c.Lat(), c.Lng())
		}
		if _, dup := r.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCity, c.Name)
		}
		r.index[c.Name] = i
		r.cities[i] = c
	}

	return r, nil
}

// Len returns the number of cities.
func (r *Registry) Len() int { return len(r.cities) }

// Cities returns a copy of the cities in order.
func (r *Registry) Cities() []geo.City {
	return append([]geo.City(nil), r.cities...)
}

// City returns the city at index i.
func (r *Registry) City(i int) geo.City { return r.cities[i] }

// Depot returns the starting city.
func (r *Registry) Depot() geo.City { return r.cities[0] }

// Coords returns the city coordinates in order.
func (r *Registry) Coords() []geo.Coord {
	out := make([]geo.Coord, len(r.cities))
	for i, c := range r.cities {
		out[i] = c.Coord
	}
	return out
}

// Names returns the city names in order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.cities))
	for i, c := range r.cities {
		out[i] = c.Name
	}
	return out
}

// Index returns the position of the named city.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Bounds returns the bounding box of all cities.
func (r *Registry) Bounds() orb.Bound {
	return geo.Bounds(r.Coords())
}

// RouteNames maps a route of indices to city names.
// Indices outside the registry render as "?".
func (r *Registry) RouteNames(route []int) []string {
	out := make([]string, len(route))
	for i, v := range route {
		if v < 0 || v >= len(r.cities) {
			out[i] = "?"
			continue
		}
		out[i] = r.cities[v].Name
	}
	return out
}
