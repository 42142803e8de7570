// Package cities loads the ordered city registry.
//
// Cities come from a YAML list or from an OpenStreetMap extract (XML or
// PBF). Order is preserved: the first city is the depot (index 0) and every
// other package refers to cities by their position in the registry.
package cities
