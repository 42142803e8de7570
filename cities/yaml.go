package cities

import (
	"fmt"
	"io"
	"os"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"gopkg.in/yaml.v3"
)

// entry is one city in a YAML list.
type entry struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lng  float64 `yaml:"lng"`
}

// file accepts either a bare list or a document with a "cities" key.
type file struct {
	Cities []entry `yaml:"cities"`
}

// LoadYAML reads a city list from path.
//
//	cities:
//	  - {name: Santiago, lat: -33.4489, lng: -70.6693}
//	  - {name: Valparaiso, lat: -33.0472, lng: -71.6127}
func LoadYAML(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadYAML(f)
}

// ReadYAML decodes a city list from r.
func ReadYAML(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err = yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("cities: decode yaml: %w", err)
	}
	var entries []entry
	switch {
	case len(node.Content) == 0:
		return nil, ErrNoCities
	case node.Content[0].Kind == yaml.SequenceNode:
		err = node.Content[0].Decode(&entries)
	default:
		var doc file
		err = node.Decode(&doc)
		entries = doc.Cities
	}
	if err != nil {
		return nil, fmt.Errorf("cities: decode yaml: %w", err)
	}

	list := make([]geo.City, len(entries))
	for i, e := range entries {
		list[i] = geo.City{Name: e.Name, Coord: geo.LatLng(e.Lat, e.Lng)}
	}

	return New(list)
}

// WriteYAML encodes the registry in the format read by ReadYAML.
func WriteYAML(w io.Writer, r *Registry) error {
	doc := file{Cities: make([]entry, r.Len())}
	for i, c := range r.cities {
		doc.Cities[i] = entry{Name: c.Name, Lat: c.Lat(), Lng: c.Lng()}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
