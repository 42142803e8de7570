package distance

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/road"
	"gopkg.in/yaml.v3"
)

// ErrNoCoordinates is returned when a build is requested for zero cities.
var ErrNoCoordinates = errors.New("distance: no coordinates")

// ErrUnknownMetric is returned for a metric name other than aerial/road.
var ErrUnknownMetric = errors.New("distance: unknown metric")

// Status is the outcome of the road table request of a build.
type Status = road.Status

// Re-exported status values.
const (
	StatusUnset       = road.StatusUnset
	StatusOK          = road.StatusOK
	StatusUnavailable = road.StatusUnavailable
)

// Metric selects the distance source.
type Metric byte

const (
	// Aerial is the great-circle distance.
	Aerial Metric = 0
	// Road is the road-network distance from the routing service.
	Road Metric = 1
)

func (m Metric) String() string {
	switch m {
	case Aerial:
		return "aerial"
	case Road:
		return "road"
	default:
		return fmt.Sprintf("metric(%d)", byte(m))
	}
}

// MetricFromString parses "aerial" or "road".
func MetricFromString(s string) (Metric, error) {
	switch s {
	case "aerial":
		return Aerial, nil
	case "road":
		return Road, nil
	default:
		return Aerial, fmt.Errorf("%q: %w", s, ErrUnknownMetric)
	}
}

func (m Metric) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
func (m *Metric) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var err error
	*m, err = MetricFromString(s)
	return err
}
func (m Metric) MarshalYAML() (any, error) {
	return m.String(), nil
}
func (m *Metric) UnmarshalYAML(value *yaml.Node) error {
	typ, err := MetricFromString(value.Value)
	if err != nil {
		return err
	}
	*m = typ
	return nil
}

// Result is one matrix build.
type Result struct {
	// Matrix is the n×n distance matrix in km. Read-only once returned.
	Matrix *matrix.Dense `json:"matrix"`

	// Requested is the metric the caller asked for.
	Requested Metric `json:"requested"`

	// Effective is the metric actually used to fill Matrix.
	Effective Metric `json:"effective"`

	// Status is the road table outcome; StatusUnset for aerial builds.
	Status Status `json:"status"`
}

// Downgraded reports whether a road build fell back to aerial distances.
func (r Result) Downgraded() bool {
	return r.Requested != r.Effective
}
