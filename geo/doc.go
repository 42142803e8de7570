// Package geo holds the geographic primitives shared by the distance and
// routing packages: a coordinate type, a named City, and the great-circle
// (haversine) distance on a spherical Earth.
//
// Coordinates are orb.Point values, i.e. [lon, lat] in degrees. Because
// orb.Point is an array it is comparable and can key maps directly, which the
// road package relies on for its pairwise cache.
//
// Haversine is pure and total:
//
//   - Haversine(a, b) == Haversine(b, a)
//   - Haversine(a, a) == 0
//   - the triangle inequality holds up to the sphere-vs-ellipsoid error.
//
// Complexity: O(1) per pair, no allocations.
package geo
