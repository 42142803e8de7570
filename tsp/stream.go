package tsp

import (
	"fmt"
	"iter"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/matrix"
)

// stepper produces the next candidate of a search. ok == false ends the stream.
type stepper interface {
	step() (c Candidate, ok bool, err error)
}

// Stream is a lazy, finite sequence of candidates produced by one search.
// Work happens only inside Next; dropping a Stream abandons the search.
// A Stream is not safe for concurrent use.
type Stream struct {
	src   stepper
	count int
	err   error
	done  bool
}

func newStream(src stepper) *Stream {
	return &Stream{src: src}
}

// Next advances the search by one step and returns its candidate.
// It returns false once the search is finished or has failed; see Err.
func (s *Stream) Next() (Candidate, bool) {
	if s.done {
		return Candidate{}, false
	}
	c, ok, err := s.src.step()
	if err != nil {
		s.err = err
		s.done = true
		return Candidate{}, false
	}
	if !ok {
		s.done = true
		return Candidate{}, false
	}
	s.count++

	return c, true
}

// Err returns the error that stopped the stream, if any.
func (s *Stream) Err() error { return s.err }

// Count returns the number of candidates emitted so far.
func (s *Stream) Count() int { return s.count }

// Done reports whether the stream is exhausted.
func (s *Stream) Done() bool { return s.done }

// All returns the remaining candidates as a range-over-func sequence.
// Breaking out of the loop leaves the stream where it stopped.
func (s *Stream) All() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for {
			c, ok := s.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Drain collects every remaining candidate.
func (s *Stream) Drain() ([]Candidate, error) {
	var out []Candidate
	for c := range s.All() {
		out = append(out, c)
	}

	return out, s.err
}

// Last skips to the end of the search and returns the final candidate.
// It returns false when nothing remained to emit.
func (s *Stream) Last() (Candidate, bool, error) {
	var (
		last Candidate
		seen bool
	)
	for c := range s.All() {
		last, seen = c, true
	}

	return last, seen, s.err
}

// NewStream starts the search selected by algo over dist.
func NewStream(algo Algorithm, dist matrix.Matrix) (*Stream, error) {
	switch algo {
	case Nearest:
		return NearestNeighbor(dist)
	case Brute:
		return BruteForce(dist)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
}

// emit packages a route copy with its cost.
func emit(dist matrix.Matrix, route []int) (Candidate, bool, error) {
	cost, err := RouteCost(dist, route)
	if err != nil {
		return Candidate{}, false, err
	}

	return Candidate{Route: append([]int(nil), route...), Cost: cost}, true, nil
}
