package tsp_test

import (
	"fmt"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/tsp"
)

// ExampleNearestNeighbor prints every step of the greedy search.
func ExampleNearestNeighbor() {
	dist, _ := matrix.FromRows([][]float64{
		{0, 5, 1, 9},
		{5, 0, 2, 3},
		{1, 2, 0, 8},
		{9, 3, 8, 0},
	})

	s, err := tsp.NearestNeighbor(dist)
	if err != nil {
		fmt.Println(err)
		return
	}
	for c := range s.All() {
		fmt.Println(c.Route, c.Cost)
	}
	// Output:
	// [0] 0
	// [0 2] 1
	// [0 2 1] 3
	// [0 2 1 3] 6
	// [0 2 1 3 0] 15
}

// ExampleBruteForce skips to the optimum and reports the greedy gap.
func ExampleBruteForce() {
	dist, _ := matrix.FromRows([][]float64{
		{0, 5, 1, 9},
		{5, 0, 2, 3},
		{1, 2, 0, 8},
		{9, 3, 8, 0},
	})

	s, _ := tsp.BruteForce(dist)
	best, _, _ := s.Last()
	fmt.Println("routes:", s.Count()-1)
	fmt.Println("best:", best.Route, best.Cost)

	nn, _ := tsp.NearestNeighbor(dist)
	greedy, _, _ := nn.Last()
	fmt.Printf("gap: %.2f%%\n", tsp.Gap(greedy.Cost, best.Cost))
	// Output:
	// routes: 6
	// best: [0 2 1 3 0] 15
	// gap: 0.00%
}
