package server

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/tsp"
)

func (s *Server) getCities(c *fiber.Ctx) error {
	list := s.registry.Cities()
	resp := citiesResponse{Cities: make([]cityJSON, len(list))}
	for i, city := range list {
		resp.Cities[i] = cityJSON{Index: i, Name: city.Name, Lat: city.Lat(), Lng: city.Lng()}
	}
	b := s.registry.Bounds()
	resp.Bounds = boundsJSON{South: b.Min.Lat(), West: b.Min.Lon(), North: b.Max.Lat(), East: b.Max.Lon()}

	return c.JSON(resp)
}

func (s *Server) getMatrix(c *fiber.Ctx) error {
	snap, ok := s.Current()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no matrix built yet")
	}
	return c.JSON(s.matrixJSON(snap))
}

func (s *Server) postMatrix(c *fiber.Ctx) error {
	var req matrixRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	metric, err := distance.MetricFromString(req.Metric)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snap, err := s.rebuild(c.UserContext(), metric, false)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(s.matrixJSON(snap))
}

func (s *Server) postMatrixForced(c *fiber.Ctx) error {
	snap, err := s.rebuild(c.UserContext(), distance.Road, true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(s.matrixJSON(snap))
}

func (s *Server) matrixJSON(snap *Snapshot) matrixResponse {
	return matrixResponse{
		Names:     s.registry.Names(),
		Matrix:    snap.Matrix.ToRows(),
		Requested: snap.Requested,
		Effective: snap.Effective,
		Status:    snap.Status,
		Fallback:  snap.Downgraded(),
		Forced:    snap.Forced,
		BuiltAt:   snap.BuiltAt,
	}
}

// getSolve runs a search on the current snapshot.
//
// Frames are kept up to the limit; the rest of the stream is still consumed
// so the final candidate and count are exact.
func (s *Server) getSolve(c *fiber.Ctx) error {
	algo, err := tsp.AlgorithmFromString(c.Params("algo"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	limit := s.opts.SolveLimit
	if q := c.Query("limit"); q != "" {
		if limit, err = strconv.Atoi(q); err != nil || limit < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be a non-negative integer")
		}
	}
	n := s.registry.Len()
	if algo == tsp.Brute && n > tsp.MaxBruteForceCities {
		return fiber.NewError(fiber.StatusUnprocessableEntity,
			fmt.Sprintf("brute force is limited to %d cities, registry has %d (%d routes)",
				tsp.MaxBruteForceCities, n, tsp.PermutationCount(n)))
	}

	snap, err := s.snapshot(c.UserContext())
	if err != nil {
		return err
	}
	stream, err := tsp.NewStream(algo, snap.Matrix)
	if err != nil {
		return err
	}

	resp := solveResponse{Algorithm: algo, Metric: snap.Effective, Frames: []frameJSON{}}
	var (
		last tsp.Candidate
		seen bool
	)
	for cand := range stream.All() {
		if limit == 0 || len(resp.Frames) < limit {
			resp.Frames = append(resp.Frames, s.frame(cand))
		}
		last, seen = cand, true
	}
	if err = stream.Err(); err != nil {
		return err
	}
	resp.Count = stream.Count()
	if !seen {
		return c.JSON(resp)
	}
	final := s.frame(last)
	resp.Final = &final

	if err = s.attachGap(&resp, snap, algo, last); err != nil {
		return err
	}
	return c.JSON(resp)
}

// attachGap reports how far the greedy route is from the optimum when the
// optimum is known or cheap enough to compute.
func (s *Server) attachGap(resp *solveResponse, snap *Snapshot, algo tsp.Algorithm, final tsp.Candidate) error {
	var greedy, optimal tsp.Candidate
	switch {
	case algo == tsp.Brute:
		optimal = final
		nn, err := tsp.NearestNeighbor(snap.Matrix)
		if err != nil {
			return err
		}
		if greedy, _, err = nn.Last(); err != nil {
			return err
		}
	case snap.Matrix.Rows() <= tsp.MaxHeldKarpCities:
		greedy = final
		var err error
		if optimal, err = tsp.HeldKarp(snap.Matrix); err != nil {
			s.log.Debug("no optimum for gap", "err", err)
			return nil
		}
	default:
		return nil
	}
	gap := tsp.Gap(greedy.Cost, optimal.Cost)
	resp.Optimal = &optimal.Cost
	resp.Gap = &gap
	return nil
}

func (s *Server) frame(c tsp.Candidate) frameJSON {
	return frameJSON{Candidate: c, Names: s.registry.RouteNames(c.Route)}
}
