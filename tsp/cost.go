// Route cost shared by every solver.
//
// Costs are rounded to 1e-9 so that summation order (a route versus its
// reversal) does not produce distinct values on symmetric matrices.
//
// Complexity: O(len(route)).

package tsp

import (
	"fmt"
	"math"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// RouteCost sums dist[route[i]][route[i+1]] over consecutive pairs.
// Routes with fewer than two entries cost 0. Any index outside [0, n)
// yields ErrIndexOutOfRange.
func RouteCost(dist matrix.Matrix, route []int) (float64, error) {
	n, err := order(dist)
	if err != nil {
		return 0, err
	}

	var (
		sum float64
		w   float64
		i   int
	)
	for i = range route {
		if route[i] < 0 || route[i] >= n {
			return 0, fmt.Errorf("%w: route[%d]=%d, n=%d", ErrIndexOutOfRange, i, route[i], n)
		}
	}
	for i = 0; i+1 < len(route); i++ {
		if w, err = dist.At(route[i], route[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// order validates that dist is square and returns n.
func order(dist matrix.Matrix) (int, error) {
	n, err := matrix.ValidateSquare(dist)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}

	return n, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
