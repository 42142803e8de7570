package tsp_test

import (
	"testing"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/tsp"
)

func BenchmarkNearestNeighbor_n100(b *testing.B) {
	m := randomMatrix(b, 100, 42, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := tsp.NearestNeighbor(m)
		if _, _, err := s.Last(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBruteForce_n8(b *testing.B) {
	m := randomMatrix(b, 8, 42, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := tsp.BruteForce(m)
		if _, _, err := s.Last(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHeldKarp_n12(b *testing.B) {
	m := randomMatrix(b, 12, 42, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.HeldKarp(m); err != nil {
			b.Fatal(err)
		}
	}
}
