package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/stretchr/testify/require"
)

// squareCoords are the corners of a one-degree square at the equator.
func squareCoords() []geo.Coord {
	return []geo.Coord{geo.LatLng(0, 0), geo.LatLng(0, 1), geo.LatLng(1, 1), geo.LatLng(1, 0)}
}

// haversineMatrix builds the great-circle matrix of coords.
func haversineMatrix(t testing.TB, coords []geo.Coord) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(len(coords))
	require.NoError(t, err)
	for i := range coords {
		for j := range coords {
			if i != j {
				require.NoError(t, m.Set(i, j, geo.Haversine(coords[i], coords[j])))
			}
		}
	}
	return m
}

// randomMatrix returns an n×n matrix with integer weights in [1, 100).
// symmetric mirrors the upper triangle.
func randomMatrix(t testing.TB, n int, seed int64, symmetric bool) *matrix.Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			w := float64(1 + r.Intn(99))
			require.NoError(t, m.Set(i, j, w))
			if symmetric {
				require.NoError(t, m.Set(j, i, w))
			}
		}
	}
	return m
}

func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// requirePermutationRoute checks that route is a closed tour over n cities from 0.
func requirePermutationRoute(t *testing.T, n int, route []int) {
	t.Helper()
	require.Len(t, route, n+1)
	require.Equal(t, 0, route[0])
	require.Equal(t, 0, route[n])
	seen := make([]bool, n)
	for _, v := range route[:n] {
		require.False(t, seen[v], "city %d visited twice in %v", v, route)
		seen[v] = true
	}
}
