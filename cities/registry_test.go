package cities_test

import (
	"testing"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := cities.New([]geo.City{
		{Name: " A ", Coord: geo.LatLng(0, 0)},
		{Name: "B", Coord: geo.LatLng(0, 1)},
		{Name: "C", Coord: geo.LatLng(1, 1)},
	})
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	require.Equal(t, []string{"A", "B", "C"}, r.Names())
	require.Equal(t, "A", r.Depot().Name)

	i, ok := r.Index("C")
	require.True(t, ok)
	require.Equal(t, 2, i)
	_, ok = r.Index("Z")
	require.False(t, ok)

	require.Equal(t, []string{"A", "C", "B", "A"}, r.RouteNames([]int{0, 2, 1, 0}))
	require.Equal(t, []string{"A", "?"}, r.RouteNames([]int{0, 7}))

	b := r.Bounds()
	require.Equal(t, 0.0, b.Min.Lat())
	require.Equal(t, 1.0, b.Max.Lon())

	// Cities returns a copy.
	list := r.Cities()
	list[0].Name = "changed"
	require.Equal(t, "A", r.City(0).Name)
}

func TestNew_Errors(t *testing.T) {
	_, err := cities.New(nil)
	require.ErrorIs(t, err, cities.ErrNoCities)

	_, err = cities.New([]geo.City{{Name: "  "}})
	require.ErrorIs(t, err, cities.ErrEmptyName)

	_, err = cities.New([]geo.City{{Name: "A"}, {Name: "A", Coord: geo.LatLng(1, 1)}})
	require.ErrorIs(t, err, cities.ErrDuplicateCity)

	_, err = cities.New([]geo.City{{Name: "A", Coord: geo.LatLng(91, 0)}})
	require.ErrorIs(t, err, cities.ErrBadCoordinate)
}
