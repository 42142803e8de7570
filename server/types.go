package server

import (
	"time"

	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/tsp"
)

// Snapshot is an immutable matrix build shared by concurrent searches.
type Snapshot struct {
	distance.Result
	Forced  bool
	BuiltAt time.Time
}

type cityJSON struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

type boundsJSON struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

type citiesResponse struct {
	Cities []cityJSON `json:"cities"`
	Bounds boundsJSON `json:"bounds"`
}

type matrixRequest struct {
	Metric string `json:"metric" validate:"required,oneof=aerial road"`
}

type matrixResponse struct {
	Names     []string        `json:"names"`
	Matrix    [][]float64     `json:"matrix"`
	Requested distance.Metric `json:"requested"`
	Effective distance.Metric `json:"effective"`
	Status    distance.Status `json:"status"`
	Fallback  bool            `json:"fallback"`
	Forced    bool            `json:"forced"`
	BuiltAt   time.Time       `json:"built_at"`
}

type frameJSON struct {
	tsp.Candidate
	Names []string `json:"names"`
}

type solveResponse struct {
	Algorithm tsp.Algorithm   `json:"algorithm"`
	Metric    distance.Metric `json:"metric"`
	Frames    []frameJSON     `json:"frames"`
	Final     *frameJSON      `json:"final"`
	Count     int             `json:"count"`
	Optimal   *float64        `json:"optimal,omitempty"`
	Gap       *float64        `json:"gap,omitempty"`
}
