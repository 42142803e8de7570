// Package tsp finds closed routes over a distance matrix.
//
// A route starts and ends at city 0 and visits every other city exactly
// once. Two search algorithms are provided as step-by-step streams so a
// caller can animate the search or abandon it at any point:
//
//   - NearestNeighbor: greedy construction. Emits the growing partial route
//     after every step and finally the closed route (n+1 candidates).
//     Ties between equally near cities go to the lowest index.
//     Complexity: O(n²).
//
//   - BruteForce: exhaustive enumeration of the (n-1)! orderings of cities
//     1..n-1 in lexicographic order. Emits every complete route and finally
//     a copy of the best one found ((n-1)!+1 candidates). The first route
//     reaching the minimum wins; later equal routes never replace it.
//     Complexity: O(n·(n-1)!).
//
// HeldKarp is an exact dynamic-programming solver returning only the
// optimum. It handles larger instances than BruteForce (n≲16) and is used
// to report the optimality gap of the greedy route.
//
// Costs are summed with RouteCost and rounded to 1e-9, so a route and its
// reversal compare equal on symmetric matrices.
//
// Streams are plain pull iterators: no goroutines, nothing to close.
//
//	s, err := tsp.NearestNeighbor(dist)
//	if err != nil { ... }
//	for c := range s.All() {
//	    fmt.Println(c.Route, c.Cost)
//	}
//	if err := s.Err(); err != nil { ... }
package tsp
