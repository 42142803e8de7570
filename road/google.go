package road

import (
	"context"
	"fmt"
	"strconv"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
	"googlemaps.github.io/maps"
)

// GoogleRouter answers Route with the Directions API and Table with the
// Distance Matrix API.
type GoogleRouter struct {
	client *maps.Client
	mode   maps.Mode
}

var _ Router = (*GoogleRouter)(nil)

// NewGoogleRouter builds a driving-mode router. Extra client options (base
// URL, HTTP client) are passed through to maps.NewClient.
func NewGoogleRouter(apiKey string, opts ...maps.ClientOption) (*GoogleRouter, error) {
	all := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(all...)
	if err != nil {
		return nil, fmt.Errorf("google router: %w", err)
	}

	return &GoogleRouter{client: client, mode: maps.TravelModeDriving}, nil
}

// Route sums the leg distances of the first returned route.
func (g *GoogleRouter) Route(ctx context.Context, from, to geo.Coord) (float64, error) {
	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLng(from),
		Destination: latLng(to),
		Mode:        g.mode,
	})
	if err != nil {
		return 0, err
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, ErrNoRoute
	}

	var meters int
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
	}

	return float64(meters), nil
}

// Table asks for the all-pairs matrix. Elements whose status is not "OK"
// are reported as 0, the same way OSRM nulls are.
func (g *GoogleRouter) Table(ctx context.Context, coords []geo.Coord) ([][]float64, error) {
	n := len(coords)
	if n == 0 {
		return nil, fmt.Errorf("google table: no coordinates: %w", ErrMalformed)
	}
	places := make([]string, n)
	for i, c := range coords {
		places[i] = latLng(c)
	}

	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      places,
		Destinations: places,
		Mode:         g.mode,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Rows) != n {
		return nil, fmt.Errorf("google table: %d rows, want %d: %w", len(resp.Rows), n, ErrMalformed)
	}

	out := make([][]float64, n)
	for i, row := range resp.Rows {
		if len(row.Elements) != n {
			return nil, fmt.Errorf("google table: row %d has %d elements, want %d: %w", i, len(row.Elements), n, ErrMalformed)
		}
		out[i] = make([]float64, n)
		for j, el := range row.Elements {
			if el != nil && el.Status == "OK" {
				out[i][j] = float64(el.Distance.Meters)
			}
		}
	}

	return out, nil
}

// latLng renders a coordinate as the "lat,lng" string the Maps APIs accept.
func latLng(c geo.Coord) string {
	return strconv.FormatFloat(c.Lat(), 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon(), 'f', -1, 64)
}
