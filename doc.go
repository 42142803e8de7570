// Package teoriadegrafos plans a closed delivery route over a fixed set of
// cities, starting and ending at the first one (the depot).
//
// Distances are either great-circle (aerial) or taken from a road-routing
// service, with an automatic fallback to aerial distances whenever the
// service cannot answer. Routes are searched with a greedy nearest-neighbor
// construction and an exhaustive brute-force enumeration, both exposed as
// step-by-step streams so a front end can animate them.
//
// Everything is organized under these packages:
//
//	geo/      coordinates, cities, Haversine distance and bounds
//	matrix/   square distance matrices and validators
//	road/     road-routing backends (OSRM, Google Maps) and the pair cache
//	distance/ matrix builds with road-to-aerial downgrade and status
//	tsp/      route cost, nearest-neighbor, brute-force and Held–Karp
//	cities/   ordered city registry from YAML or OpenStreetMap extracts
//	config/   YAML configuration with .env overrides and validation
//	server/   HTTP API for a presentation front end
//	cmd/      tspd (service) and tspreport (printed report)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	four cities on a one-degree square; from A the nearest-neighbor route
//	is A→B→C→D→A, which is also the brute-force optimum.
package teoriadegrafos
