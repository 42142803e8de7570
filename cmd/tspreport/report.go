package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/tsp"
)

const (
	cellWidth = 12
	nameWidth = 10
	ruleWidth = 60
)

// writeReport prints the coordinate table, the matrix and the build status.
func writeReport(w io.Writer, reg *cities.Registry, res distance.Result, forced bool) error {
	rule := strings.Repeat("=", ruleWidth)
	p := &printer{w: w}

	p.printf("\n%s\n", rule)
	p.printf("[Coordinates]\n")
	p.printf("%-15s | %-10s | %-10s\n", "City", "Latitude", "Longitude")
	p.printf("%s\n", strings.Repeat("-", 45))
	for _, c := range reg.Cities() {
		p.printf("%-15s | %-10.4f | %-10.4f\n", c.Name, c.Lat(), c.Lng())
	}

	p.printf("\n[Distance matrix D (km) - %s]\n", matrixTitle(res, forced))
	names := reg.Names()
	p.printf("%s", strings.Repeat(" ", cellWidth))
	for _, n := range names {
		p.printf("%-*s", cellWidth, truncate(n, nameWidth))
	}
	p.printf("\n")
	n := res.Matrix.Rows()
	for i := 0; i < n; i++ {
		p.printf("%-*s", cellWidth, truncate(names[i], nameWidth))
		for j := 0; j < n; j++ {
			v, err := res.Matrix.At(i, j)
			if err != nil {
				return err
			}
			p.printf("%-*.2f", cellWidth, v)
		}
		p.printf("\n")
	}

	p.printf("\nmetric: %s (requested %s), road table: %s\n", res.Effective, res.Requested, res.Status)
	if res.Downgraded() {
		p.printf("WARNING: road distances unavailable, showing aerial distances\n")
	}
	p.printf("%s\n", rule)

	return p.err
}

// writeRoutes prints the greedy route, and the optimum when brute force is
// affordable, with the gap between them.
func writeRoutes(w io.Writer, reg *cities.Registry, dist *matrix.Dense) error {
	p := &printer{w: w}

	nn, err := tsp.NearestNeighbor(dist)
	if err != nil {
		return err
	}
	greedy, _, err := nn.Last()
	if err != nil {
		return err
	}
	p.printf("\n[Nearest neighbor] %s\n", strings.Join(reg.RouteNames(greedy.Route), " -> "))
	p.printf("cost: %.2f km, steps: %d\n", greedy.Cost, nn.Count())

	if reg.Len() > tsp.MaxBruteForceCities {
		p.printf("\n[Brute force] skipped: %d cities means %d routes\n", reg.Len(), tsp.PermutationCount(reg.Len()))
		return p.err
	}
	bf, err := tsp.BruteForce(dist)
	if err != nil {
		return err
	}
	best, _, err := bf.Last()
	if err != nil {
		return err
	}
	p.printf("\n[Brute force] %s\n", strings.Join(reg.RouteNames(best.Route), " -> "))
	p.printf("cost: %.2f km, routes evaluated: %d\n", best.Cost, bf.Count()-1)
	p.printf("gap: %.2f%%\n", tsp.Gap(greedy.Cost, best.Cost))

	return p.err
}

func matrixTitle(res distance.Result, forced bool) string {
	switch {
	case forced:
		return "road, pair by pair"
	case res.Effective == distance.Road:
		return "road"
	default:
		return "aerial"
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
