package tsp

import (
	"math"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
)

// nearest phases.
const (
	nnStart = iota
	nnGrow
	nnClose
	nnDone
)

type nearestNeighbor struct {
	dist    matrix.Matrix
	n       int
	phase   int
	visited []bool
	route   []int
}

// NearestNeighbor starts a greedy search from city 0.
//
// Emission order:
//  1. the route [0] with cost 0;
//  2. after each extension, the partial route with the unvisited city
//     nearest to the current endpoint appended (ties go to the lowest index);
//  3. the route closed back to 0.
//
// An n-city instance yields exactly n+1 candidates; an empty one yields none.
// If every unvisited city is unreachable (+Inf), the lowest unvisited index
// is taken so the route stays a permutation.
func NearestNeighbor(dist matrix.Matrix) (*Stream, error) {
	n, err := order(dist)
	if err != nil {
		return nil, err
	}
	nn := &nearestNeighbor{
		dist:    dist,
		n:       n,
		visited: make([]bool, n),
		route:   make([]int, 0, n+1),
	}
	if n == 0 {
		nn.phase = nnDone
	}

	return newStream(nn), nil
}

func (nn *nearestNeighbor) step() (Candidate, bool, error) {
	switch nn.phase {
	case nnStart:
		nn.route = append(nn.route, 0)
		nn.visited[0] = true
		nn.phase = nnGrow
		return emit(nn.dist, nn.route)

	case nnGrow:
		if len(nn.route) < nn.n {
			next, err := nn.nearest(nn.route[len(nn.route)-1])
			if err != nil {
				return Candidate{}, false, err
			}
			nn.route = append(nn.route, next)
			nn.visited[next] = true
			return emit(nn.dist, nn.route)
		}
		nn.phase = nnClose
		fallthrough

	case nnClose:
		nn.route = append(nn.route, 0)
		nn.phase = nnDone
		return emit(nn.dist, nn.route)
	}

	return Candidate{}, false, nil
}

// nearest returns the unvisited city closest to from.
// Strict < keeps the lowest index on ties.
func (nn *nearestNeighbor) nearest(from int) (int, error) {
	var (
		best  = -1
		bestW = math.Inf(1)
		v     int
		w     float64
		err   error
	)
	for v = 0; v < nn.n; v++ {
		if nn.visited[v] {
			continue
		}
		if w, err = nn.dist.At(from, v); err != nil {
			return 0, err
		}
		if best < 0 || w < bestW {
			best, bestW = v, w
		}
	}

	return best, nil
}
