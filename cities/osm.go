package cities

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
)

// osmScanner is the common surface of osmxml.Scanner and osmpbf.Scanner.
type osmScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// LoadOSM reads named places from an OpenStreetMap extract.
// Files ending in .pbf are decoded as protobuf, anything else as XML.
func LoadOSM(ctx context.Context, path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".pbf") {
		s := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
		s.SkipWays = true
		s.SkipRelations = true
		return scanPlaces(s)
	}

	return ReadOSM(ctx, f)
}

// ReadOSM reads named places from OSM XML.
func ReadOSM(ctx context.Context, r io.Reader) (*Registry, error) {
	return scanPlaces(osmxml.New(ctx, r))
}

// scanPlaces keeps nodes tagged with both place and name, in document order.
func scanPlaces(s osmScanner) (*Registry, error) {
	defer s.Close()

	var list []geo.City
	for s.Scan() {
		n, ok := s.Object().(*osm.Node)
		if !ok {
			continue
		}
		name := n.Tags.Find("name")
		if name == "" || n.Tags.Find("place") == "" {
			continue
		}
		list = append(list, geo.City{Name: name, Coord: geo.LatLng(n.Lat, n.Lon)})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("cities: scan osm: %w", err)
	}

	return New(list)
}
