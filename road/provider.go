package road

import (
	"context"
	"sync"
	"time"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"golang.org/x/exp/slog"
)

// pairKey is an ordered (from, to) coordinate pair.
type pairKey struct {
	from geo.Coord
	to   geo.Coord
}

// Provider resolves road distances in kilometers through a Router, caching
// successful single-pair answers and falling back to geo.Haversine.
// A Provider is safe for concurrent use.
type Provider struct {
	router       Router
	routeTimeout time.Duration
	tableTimeout time.Duration
	log          *slog.Logger

	mu    sync.RWMutex
	cache map[pairKey]float64
}

// WithRouteTimeout sets the per-pair request timeout (default 1s).
func WithRouteTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.routeTimeout = d
		}
	}
}

// WithTableTimeout sets the bulk table request timeout (default 5s).
func WithTableTimeout(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.tableTimeout = d
		}
	}
}

// WithLogger sets the logger used for fallback and failure records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// NewProvider wraps router. A nil router is allowed: every lookup then
// falls back to geodesic distance and every table is unavailable.
func NewProvider(router Router, opts ...Option) *Provider {
	p := &Provider{
		router:       router,
		routeTimeout: DefaultRouteTimeout,
		tableTimeout: DefaultTableTimeout,
		log:          slog.Default(),
		cache:        make(map[pairKey]float64),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Distance returns the road distance in km from one coordinate to another.
// It never fails: on any routing error it returns geo.Haversine(from, to)
// and leaves the cache untouched.
func (p *Provider) Distance(ctx context.Context, from, to geo.Coord) float64 {
	key := pairKey{from: from, to: to}
	if d, ok := p.Cached(from, to); ok {
		return d
	}

	meters, err := p.route(ctx, from, to)
	if err != nil {
		fallback := geo.Haversine(from, to)
		p.log.Debug("road distance fallback to geodesic",
			"from", from, "to", to, "km", fallback, "err", err)
		return fallback
	}

	km := meters / metersPerKm
	p.mu.Lock()
	p.cache[key] = km
	p.mu.Unlock()

	return km
}

// Table fetches the full distance table for coords in kilometers with a
// single request. On failure it returns nil and StatusUnavailable.
func (p *Provider) Table(ctx context.Context, coords []geo.Coord) ([][]float64, Status) {
	if p.router == nil {
		p.log.Warn("road table unavailable", "err", ErrNoRouter)
		return nil, StatusUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, p.tableTimeout)
	defer cancel()

	table, err := p.router.Table(ctx, coords)
	if err == nil {
		err = checkSquare(table, len(coords))
	}
	if err != nil {
		p.log.Warn("road table unavailable", "cities", len(coords), "err", err)
		return nil, StatusUnavailable
	}

	out := make([][]float64, len(table))
	for i, row := range table {
		out[i] = make([]float64, len(row))
		for j, meters := range row {
			out[i][j] = meters / metersPerKm
		}
	}

	return out, StatusOK
}

// Cached returns the cached road distance for the ordered pair, if any.
func (p *Provider) Cached(from, to geo.Coord) (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok := p.cache[pairKey{from: from, to: to}]

	return d, ok
}

// CacheLen reports how many pairs are cached.
func (p *Provider) CacheLen() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.cache)
}

// checkSquare reports ErrMalformed unless table is n×n.
func checkSquare(table [][]float64, n int) error {
	if len(table) != n {
		return ErrMalformed
	}
	for _, row := range table {
		if len(row) != n {
			return ErrMalformed
		}
	}

	return nil
}

func (p *Provider) route(ctx context.Context, from, to geo.Coord) (float64, error) {
	if p.router == nil {
		return 0, ErrNoRouter
	}
	ctx, cancel := context.WithTimeout(ctx, p.routeTimeout)
	defer cancel()

	return p.router.Route(ctx, from, to)
}
