// SPDX-License-Identifier: MIT

// Package matrix stores square distance matrices for the route-search engine.
//
// A distance matrix maps (origin index, destination index) to a non-negative
// distance in kilometers. The diagonal is zero. It is not required to be
// symmetric: road distances can differ by direction, while geodesic ones are
// symmetric by construction.
//
// The package provides:
//
//   - Matrix, a minimal read/write interface (Rows, Cols, At, Set).
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - Validators for shape, diagonal, sign and symmetry, plus AllClose for
//     numeric comparison of two builds.
//
// Matrices are built once per metric/city-set change and then treated as an
// immutable snapshot: search algorithms only read them.
package matrix
