package road_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/road"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRouter is a scripted Router.
type stubRouter struct {
	routeM   float64
	routeErr error
	table    [][]float64
	tableErr error
	calls    int
	block    bool
}

func (s *stubRouter) Route(ctx context.Context, _, _ geo.Coord) (float64, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}

	return s.routeM, s.routeErr
}

func (s *stubRouter) Table(ctx context.Context, _ []geo.Coord) ([][]float64, error) {
	s.calls++
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	return s.table, s.tableErr
}

var (
	santiago   = geo.LatLng(-33.4489, -70.6693)
	valparaiso = geo.LatLng(-33.0472, -71.6127)
)

func TestProviderDistance_CachesSuccess(t *testing.T) {
	s := &stubRouter{routeM: 116_000}
	p := road.NewProvider(s)

	require.Equal(t, 116.0, p.Distance(context.Background(), santiago, valparaiso))
	require.Equal(t, 116.0, p.Distance(context.Background(), santiago, valparaiso))
	require.Equal(t, 1, s.calls)
	require.Equal(t, 1, p.CacheLen())

	// the reverse pair is a different key
	_, ok := p.Cached(valparaiso, santiago)
	require.False(t, ok)
}

func TestProviderDistance_FallbackNotCached(t *testing.T) {
	s := &stubRouter{routeErr: errors.New("boom")}
	p := road.NewProvider(s)

	got := p.Distance(context.Background(), santiago, valparaiso)
	require.Equal(t, geo.Haversine(santiago, valparaiso), got)
	require.Zero(t, p.CacheLen())

	// service recovers: the next call reaches it and gets cached
	s.routeErr = nil
	s.routeM = 120_500
	require.Equal(t, 120.5, p.Distance(context.Background(), santiago, valparaiso))
	require.Equal(t, 2, s.calls)
	require.Equal(t, 1, p.CacheLen())
}

func TestProviderDistance_Timeout(t *testing.T) {
	s := &stubRouter{block: true}
	p := road.NewProvider(s, road.WithRouteTimeout(10*time.Millisecond))

	start := time.Now()
	got := p.Distance(context.Background(), santiago, valparaiso)
	assert.Less(t, time.Since(start), time.Second)
	require.Equal(t, geo.Haversine(santiago, valparaiso), got)
}

func TestProviderDistance_NoRouter(t *testing.T) {
	p := road.NewProvider(nil)
	require.Equal(t, geo.Haversine(santiago, valparaiso), p.Distance(context.Background(), santiago, valparaiso))

	tbl, st := p.Table(context.Background(), []geo.Coord{santiago, valparaiso})
	require.Nil(t, tbl)
	require.Equal(t, road.StatusUnavailable, st)
}

// Served once, then the server goes away: the second lookup must come from
// the cache without touching the network.
func TestProviderDistance_CacheSurvivesOutage(t *testing.T) {
	f := &fakeOSRM{routeStatus: http.StatusOK, routeBody: `{"code":"Ok","routes":[{"distance":116000}]}`}
	srv, r := newFakeOSRM(t, f)
	p := road.NewProvider(r)

	first := p.Distance(context.Background(), santiago, valparaiso)
	srv.Close()
	second := p.Distance(context.Background(), santiago, valparaiso)

	require.Equal(t, 116.0, first)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, f.hits.Load())
}

func TestProviderTable(t *testing.T) {
	s := &stubRouter{table: [][]float64{{0, 1000}, {2000, 0}}}
	p := road.NewProvider(s)

	tbl, st := p.Table(context.Background(), []geo.Coord{santiago, valparaiso})
	require.Equal(t, road.StatusOK, st)
	require.Equal(t, [][]float64{{0, 1}, {2, 0}}, tbl)

	s.tableErr = errors.New("down")
	tbl, st = p.Table(context.Background(), []geo.Coord{santiago, valparaiso})
	require.Equal(t, road.StatusUnavailable, st)
	require.Nil(t, tbl)

	// wrong row count is a schema mismatch
	s.tableErr = nil
	s.table = [][]float64{{0}}
	_, st = p.Table(context.Background(), []geo.Coord{santiago, valparaiso})
	require.Equal(t, road.StatusUnavailable, st)

	// so is a ragged row
	s.table = [][]float64{{0, 1000}, {2000}}
	_, st = p.Table(context.Background(), []geo.Coord{santiago, valparaiso})
	require.Equal(t, road.StatusUnavailable, st)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unset", road.StatusUnset.String())
	assert.Equal(t, "ok", road.StatusOK.String())
	assert.Equal(t, "unavailable", road.StatusUnavailable.String())

	b, err := road.StatusOK.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, string(b))
}
