package road

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
)

const (
	// DefaultOSRMURL is the public OSRM demo server.
	DefaultOSRMURL = "http://router.project-osrm.org"

	// DefaultOSRMProfile is the routing profile used in request paths.
	DefaultOSRMProfile = "driving"
)

// OSRMRouter queries an OSRM server over HTTP GET.
type OSRMRouter struct {
	baseURL string
	profile string
	client  *http.Client
}

var _ Router = (*OSRMRouter)(nil)

// NewOSRMRouter returns a router for baseURL. Empty baseURL/profile fall back
// to DefaultOSRMURL/DefaultOSRMProfile; a nil client uses http.DefaultClient.
// Timeouts are applied by the caller through the context.
func NewOSRMRouter(baseURL, profile string, client *http.Client) *OSRMRouter {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	if profile == "" {
		profile = DefaultOSRMProfile
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &OSRMRouter{
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: profile,
		client:  client,
	}
}

type osrmRouteResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance *float64 `json:"distance"`
	} `json:"routes"`
}

type osrmTableResponse struct {
	Code      string       `json:"code"`
	Distances [][]*float64 `json:"distances"`
}

// Route calls /route/v1/{profile}/{lon,lat};{lon,lat}?overview=false and
// returns routes[0].distance.
func (r *OSRMRouter) Route(ctx context.Context, from, to geo.Coord) (float64, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%s?overview=false",
		r.baseURL, r.profile, joinCoords([]geo.Coord{from, to}))

	var resp osrmRouteResponse
	if err := r.get(ctx, url, &resp); err != nil {
		return 0, err
	}
	if resp.Code != "" && resp.Code != "Ok" {
		return 0, fmt.Errorf("osrm route code %q: %w", resp.Code, ErrBadStatus)
	}
	if len(resp.Routes) == 0 {
		return 0, ErrNoRoute
	}
	if resp.Routes[0].Distance == nil {
		return 0, fmt.Errorf("osrm route: missing distance: %w", ErrMalformed)
	}

	return *resp.Routes[0].Distance, nil
}

// Table calls /table/v1/{profile}/{lon,lat;...}?annotations=distance and
// returns the distances array. Null entries become 0.
func (r *OSRMRouter) Table(ctx context.Context, coords []geo.Coord) ([][]float64, error) {
	n := len(coords)
	if n == 0 {
		return nil, fmt.Errorf("osrm table: no coordinates: %w", ErrMalformed)
	}
	url := fmt.Sprintf("%s/table/v1/%s/%s?annotations=distance",
		r.baseURL, r.profile, joinCoords(coords))

	var resp osrmTableResponse
	if err := r.get(ctx, url, &resp); err != nil {
		return nil, err
	}
	if resp.Code != "" && resp.Code != "Ok" {
		return nil, fmt.Errorf("osrm table code %q: %w", resp.Code, ErrBadStatus)
	}
	if len(resp.Distances) != n {
		return nil, fmt.Errorf("osrm table: %d rows, want %d: %w", len(resp.Distances), n, ErrMalformed)
	}

	out := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		if len(resp.Distances[i]) != n {
			return nil, fmt.Errorf("osrm table: row %d has %d entries, want %d: %w", i, len(resp.Distances[i]), n, ErrMalformed)
		}
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if d := resp.Distances[i][j]; d != nil {
				out[i][j] = *d
			}
		}
	}

	return out, nil
}

func (r *OSRMRouter) get(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("osrm: HTTP %d: %w", res.StatusCode, ErrBadStatus)
	}
	if err = json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("osrm: %v: %w", err, ErrMalformed)
	}

	return nil
}

// joinCoords renders coordinates in OSRM's lon,lat;lon,lat form.
func joinCoords(coords []geo.Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = strconv.FormatFloat(c.Lon(), 'f', -1, 64) + "," +
			strconv.FormatFloat(c.Lat(), 'f', -1, 64)
	}

	return strings.Join(parts, ";")
}
