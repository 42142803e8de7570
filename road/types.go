package road

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/geo"
)

// Sentinel errors returned by Router implementations. Provider swallows them
// and logs them; they are exported so backends and tests can match them.
var (
	// ErrBadStatus indicates a non-200 HTTP status or a non-"Ok" service code.
	ErrBadStatus = errors.New("road: routing service returned an error status")

	// ErrMalformed indicates a payload that does not match the expected schema.
	ErrMalformed = errors.New("road: malformed routing response")

	// ErrNoRoute indicates a well-formed response that contains no route.
	ErrNoRoute = errors.New("road: no route found")

	// ErrNoRouter indicates that no routing backend is configured.
	ErrNoRouter = errors.New("road: no router configured")
)

const (
	// DefaultRouteTimeout bounds a single-pair request.
	DefaultRouteTimeout = 1 * time.Second

	// DefaultTableTimeout bounds a bulk table request.
	DefaultTableTimeout = 5 * time.Second

	metersPerKm = 1000.0
)

// Router is an external road-routing service. Distances are in meters.
type Router interface {
	// Route returns the road distance from one coordinate to another.
	Route(ctx context.Context, from, to geo.Coord) (float64, error)

	// Table returns the full n×n distance table for coords in one request.
	// Missing entries are reported as 0.
	Table(ctx context.Context, coords []geo.Coord) ([][]float64, error)
}

// Status is the outcome of the most recent bulk table request.
type Status int

const (
	// StatusUnset means no road request was attempted.
	StatusUnset Status = iota

	// StatusOK means the full table was retrieved.
	StatusOK

	// StatusUnavailable means the service was unreachable or the response malformed.
	StatusUnavailable
)

// String returns "unset", "ok" or "unavailable".
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unset"
	}
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Option configures a Provider.
type Option func(*Provider)
