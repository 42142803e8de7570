package distance

import (
	"context"
	"fmt"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/road"
)

// Builder assembles distance matrices using a road Provider for the Road
// metric. Aerial builds never touch the provider.
type Builder struct {
	provider *road.Provider
}

// NewBuilder returns a Builder. A nil provider behaves like one without a
// router: road builds always downgrade.
func NewBuilder(p *road.Provider) *Builder {
	if p == nil {
		p = road.NewProvider(nil)
	}

	return &Builder{provider: p}
}

// Provider returns the road provider backing the builder.
func (b *Builder) Provider() *road.Provider {
	return b.provider
}

// Build produces the matrix for coords under metric.
//
// Road first tries the bulk table. On success the table is copied verbatim
// (Status OK). On failure the build is downgraded to Aerial
// (Status Unavailable, Effective Aerial); no per-pair requests are made.
//
// Complexity: O(n²) plus one network round-trip for Road.
func (b *Builder) Build(ctx context.Context, coords []geo.Coord, metric Metric) (Result, error) {
	if len(coords) == 0 {
		return Result{}, ErrNoCoordinates
	}
	res := Result{Requested: metric, Effective: metric, Status: StatusUnset}

	switch metric {
	case Aerial:
	case Road:
		table, status := b.provider.Table(ctx, coords)
		res.Status = status
		if status == StatusOK {
			m, err := matrix.FromRows(table)
			if err != nil {
				return Result{}, fmt.Errorf("distance: road table: %w", err)
			}
			res.Matrix = m
			return res, nil
		}
		res.Effective = Aerial
	default:
		return Result{}, fmt.Errorf("Build: %w", ErrUnknownMetric)
	}

	m, err := fill(coords, geo.Haversine)
	if err != nil {
		return Result{}, err
	}
	res.Matrix = m

	return res, nil
}

// BuildForced resolves every off-diagonal entry with a single-pair road
// lookup, skipping the table endpoint. This is n·(n-1) sequential requests
// on a cold cache; each failing pair falls back to Haversine on its own.
// Status is left unset because no table request was made.
func (b *Builder) BuildForced(ctx context.Context, coords []geo.Coord) (Result, error) {
	if len(coords) == 0 {
		return Result{}, ErrNoCoordinates
	}
	m, err := fill(coords, func(from, to geo.Coord) float64 {
		return b.provider.Distance(ctx, from, to)
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Matrix: m, Requested: Road, Effective: Road, Status: StatusUnset}, nil
}

// fill builds an n×n matrix with a zero diagonal and d(i,j) elsewhere.
func fill(coords []geo.Coord, d func(from, to geo.Coord) float64) (*matrix.Dense, error) {
	n := len(coords)
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err = m.Set(i, j, d(coords[i], coords[j])); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
