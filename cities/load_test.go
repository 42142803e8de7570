package cities_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	r, err := cities.LoadYAML(filepath.Join("testdata", "chile.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"Santiago", "Valparaiso", "Rancagua", "Talca"}, r.Names())
	require.InDelta(t, -33.4489, r.Depot().Lat(), 1e-9)
	require.InDelta(t, -70.6693, r.Depot().Lng(), 1e-9)
}

func TestReadYAML_BareList(t *testing.T) {
	r, err := cities.ReadYAML(strings.NewReader(`
- {name: A, lat: 0, lng: 0}
- {name: B, lat: 0, lng: 1}
`))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, r.Names())
	require.Equal(t, 1.0, r.City(1).Lng())
}

func TestReadYAML_Errors(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want error
	}{
		"empty":     {"", cities.ErrNoCities},
		"no cities": {"cities: []", cities.ErrNoCities},
		"duplicate": {"- {name: A}\n- {name: A}", cities.ErrDuplicateCity},
		"no name":   {"- {lat: 1, lng: 2}", cities.ErrEmptyName},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := cities.ReadYAML(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := cities.ReadYAML(strings.NewReader("- {name: [unclosed"))
	require.Error(t, err)
}

func TestWriteYAML_ReadBack(t *testing.T) {
	r, err := cities.LoadYAML(filepath.Join("testdata", "chile.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cities.WriteYAML(&buf, r))
	back, err := cities.ReadYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, r.Cities(), back.Cities())
}

func TestReadOSM(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "places.osm"))
	require.NoError(t, err)
	defer f.Close()

	r, err := cities.ReadOSM(context.Background(), f)
	require.NoError(t, err)
	// Untagged and unnamed nodes are skipped; document order is kept.
	require.Equal(t, []string{"Santiago", "Valparaiso", "Rancagua"}, r.Names())
	require.InDelta(t, -71.6127, r.City(1).Lng(), 1e-9)
}

func TestReadOSM_NoPlaces(t *testing.T) {
	_, err := cities.ReadOSM(context.Background(), strings.NewReader(`<osm version="0.6"></osm>`))
	require.ErrorIs(t, err, cities.ErrNoCities)
}

func TestLoad_ByExtension(t *testing.T) {
	ctx := context.Background()

	r, err := cities.Load(ctx, filepath.Join("testdata", "chile.yaml"))
	require.NoError(t, err)
	require.Equal(t, 4, r.Len())

	r, err = cities.Load(ctx, filepath.Join("testdata", "places.osm"))
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	dir := t.TempDir()
	yml := filepath.Join(dir, "list.YML")
	require.NoError(t, os.WriteFile(yml, []byte("- {name: X, lat: 1, lng: 1}\n"), 0o600))
	r, err = cities.Load(ctx, yml)
	require.NoError(t, err)
	require.Equal(t, []string{"X"}, r.Names())

	_, err = cities.Load(ctx, filepath.Join(dir, "cities.csv"))
	require.ErrorIs(t, err, cities.ErrUnknownFormat)

	_, err = cities.Load(ctx, filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
