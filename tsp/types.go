package tsp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrIndexOutOfRange is returned by RouteCost for a city index outside [0, n).
	ErrIndexOutOfRange = errors.New("tsp: city index out of range")

	// ErrIncompleteGraph is returned by HeldKarp when no finite cycle exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrTooLarge is returned by HeldKarp above MaxHeldKarpCities.
	ErrTooLarge = errors.New("tsp: instance too large")

	// ErrUnknownAlgorithm is returned for an algorithm name other than nearest/brute.
	ErrUnknownAlgorithm = errors.New("tsp: unknown algorithm")
)

const (
	// MaxBruteForceCities is the largest instance drivers should hand to
	// BruteForce. The library itself does not enforce it.
	MaxBruteForceCities = 11

	// MaxHeldKarpCities bounds the O(n·2ⁿ) memory of HeldKarp.
	MaxHeldKarpCities = 16
)

// Candidate is one emission of a search: a partial or closed route and its cost.
// Each Candidate owns its Route slice.
type Candidate struct {
	// Route lists city indices in visiting order, starting at 0.
	// A closed route has len == n+1 and ends at 0.
	Route []int `json:"route"`

	// Cost is the sum of consecutive matrix entries along Route.
	Cost float64 `json:"cost"`
}

// Closed reports whether the route returns to its starting city.
func (c Candidate) Closed() bool {
	return len(c.Route) >= 2 && c.Route[0] == c.Route[len(c.Route)-1]
}

// Algorithm selects a search strategy.
type Algorithm byte

const (
	// Nearest is the greedy nearest-neighbor construction.
	Nearest Algorithm = 0
	// Brute is the exhaustive permutation search.
	Brute Algorithm = 1
)

func (a Algorithm) String() string {
	switch a {
	case Nearest:
		return "nearest"
	case Brute:
		return "brute"
	default:
		return fmt.Sprintf("Algorithm(%d)", byte(a))
	}
}

// MarshalJSON writes the algorithm by name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the names understood by AlgorithmFromString.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := AlgorithmFromString(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AlgorithmFromString parses "nearest" ("nn") or "brute" ("bf"), case-insensitive.
func AlgorithmFromString(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "nn", "nearest-neighbor":
		return Nearest, nil
	case "brute", "bf", "brute-force":
		return Brute, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Factorial returns k! saturating at math.MaxUint64 (k > 20).
// Negative k yields 1.
func Factorial(k int) uint64 {
	var (
		f uint64 = 1
		i int
	)
	for i = 2; i <= k; i++ {
		if f > math.MaxUint64/uint64(i) {
			return math.MaxUint64
		}
		f *= uint64(i)
	}

	return f
}

// PermutationCount returns how many complete routes BruteForce enumerates
// for n cities: (n-1)! for n ≥ 1, and 0 for an empty instance.
func PermutationCount(n int) uint64 {
	if n <= 0 {
		return 0
	}

	return Factorial(n - 1)
}

// Gap returns how much worse heuristic is than optimal, in percent.
// A non-positive optimal yields 0.
func Gap(heuristic, optimal float64) float64 {
	if optimal <= 0 {
		return 0
	}

	return round1e9((heuristic - optimal) / optimal * 100)
}
