package tsp

import (
	"fmt"
	"math"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
)

// HeldKarp solves the instance exactly with the Held–Karp dynamic program
// and returns the optimal closed route from city 0.
//
// dp[mask][j] is the cheapest path that starts at 0, visits exactly the
// cities in mask (bit 0 always set) and ends at j. A +Inf entry means
// "no edge"; ErrIncompleteGraph is returned when no finite cycle exists.
//
// Ties resolve to the lowest predecessor and the lowest last city, which
// is not necessarily the route BruteForce reports first.
//
// Time: O(n²·2ⁿ). Memory: O(n·2ⁿ). Instances above MaxHeldKarpCities are
// rejected with ErrTooLarge.
func HeldKarp(dist matrix.Matrix) (Candidate, error) {
	n, err := order(dist)
	if err != nil {
		return Candidate{}, err
	}
	switch {
	case n == 0:
		return Candidate{}, nil
	case n == 1:
		return emitOwned(dist, []int{0, 0})
	case n > MaxHeldKarpCities:
		return Candidate{}, fmt.Errorf("%w: %d cities, max %d", ErrTooLarge, n, MaxHeldKarpCities)
	}

	w, err := denseRows(dist, n)
	if err != nil {
		return Candidate{}, err
	}

	var (
		allMask   = (1 << n) - 1
		startMask = 1
		dp        = make([][]float64, 1<<n)
		parent    = make([][]int, 1<<n)
		mask      int
		j, k      int
	)
	for mask = 0; mask <= allMask; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[startMask][0] = 0

	for mask = 0; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(w[k][j], 1) {
					continue
				}
				if c := dp[prev][k] + w[k][j]; c < dp[mask][j] {
					dp[mask][j] = c
					parent[mask][j] = k
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j = 1; j < n; j++ {
		if math.IsInf(w[j][0], 1) {
			continue
		}
		if total := dp[allMask][j] + w[j][0]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Candidate{}, ErrIncompleteGraph
	}

	route := make([]int, n+1)
	mask, j = allMask, last
	for i := n - 1; i >= 1; i-- {
		route[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return emitOwned(dist, route)
}

// denseRows copies dist into [][]float64 for the inner DP loop.
func denseRows(dist matrix.Matrix, n int) ([][]float64, error) {
	if d, ok := dist.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}

func emitOwned(dist matrix.Matrix, route []int) (Candidate, error) {
	cost, err := RouteCost(dist, route)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Route: route, Cost: cost}, nil
}
