package tsp

import "github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"

type bruteForce struct {
	dist     matrix.Matrix
	n        int
	started  bool
	done     bool
	route    []int // 0, perm..., 0
	best     []int
	bestCost float64
}

// BruteForce starts an exhaustive search over every ordering of cities
// 1..n-1 between two visits of city 0, in lexicographic order.
//
// Each complete route is emitted as it is evaluated, then a copy of the best
// one. The first route reaching the minimum cost is kept. An n-city instance
// yields (n-1)!+1 candidates; an empty one yields none.
func BruteForce(dist matrix.Matrix) (*Stream, error) {
	n, err := order(dist)
	if err != nil {
		return nil, err
	}
	bf := &bruteForce{dist: dist, n: n, done: n == 0}
	if n > 0 {
		bf.route = make([]int, n+1)
		for i := 1; i < n; i++ {
			bf.route[i] = i
		}
	}

	return newStream(bf), nil
}

func (bf *bruteForce) step() (Candidate, bool, error) {
	if bf.done {
		return Candidate{}, false, nil
	}
	if !bf.started {
		bf.started = true
	} else if !nextPermutation(bf.route[1:bf.n]) {
		bf.done = true
		return Candidate{Route: append([]int(nil), bf.best...), Cost: bf.bestCost}, true, nil
	}

	c, _, err := emit(bf.dist, bf.route)
	if err != nil {
		return Candidate{}, false, err
	}
	if bf.best == nil || c.Cost < bf.bestCost {
		bf.best = append(bf.best[:0], c.Route...)
		bf.bestCost = c.Cost
	}

	return c, true, nil
}

// nextPermutation rearranges a into its lexicographic successor.
// It returns false, leaving a untouched, when a is the last permutation.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}

	return true
}
