package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/cities"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"golang.org/x/exp/slog"
)

// DefaultSolveLimit caps the frames of one solve response when the
// request does not ask for a limit.
const DefaultSolveLimit = 200

// Options tune a Server. Zero values select defaults.
type Options struct {
	// Metric is used by Refresh and by searches that run before any build.
	Metric distance.Metric
	// SolveLimit is the default frame cap; 0 returns every frame.
	SolveLimit int
	Logger     *slog.Logger
}

// Server serves one city registry.
type Server struct {
	app      *fiber.App
	registry *cities.Registry
	builder  *distance.Builder
	opts     Options
	log      *slog.Logger
	validate *validator.Validate

	// build serializes matrix builds; mu guards snap.
	build sync.Mutex
	mu    sync.RWMutex
	snap  *Snapshot
}

// New wires routes for registry. A nil builder builds aerial matrices only.
func New(registry *cities.Registry, builder *distance.Builder, opts Options) *Server {
	if builder == nil {
		builder = distance.NewBuilder(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		registry: registry,
		builder:  builder,
		opts:     opts,
		log:      opts.Logger,
		validate: validator.New(),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "tspd",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(s.requestLogger())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       300,
	}))
	s.routes()

	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Get("/cities", s.getCities)
	api.Get("/matrix", s.getMatrix)
	api.Post("/matrix", s.postMatrix)
	api.Post("/matrix/forced", s.postMatrixForced)
	api.Get("/solve/:algo", s.getSolve)
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", "addr", addr, "cities", s.registry.Len())
	return s.app.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Current returns the current snapshot, if any build has completed.
func (s *Server) Current() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.snap != nil
}

// Refresh rebuilds the snapshot with the configured metric.
func (s *Server) Refresh(ctx context.Context) error {
	snap, err := s.rebuild(ctx, s.opts.Metric, false)
	if err != nil {
		return err
	}
	s.log.Info("matrix refreshed",
		"requested", snap.Requested, "effective", snap.Effective, "status", snap.Status)
	return nil
}

// rebuild builds a matrix and swaps it in as the current snapshot.
func (s *Server) rebuild(ctx context.Context, metric distance.Metric, forced bool) (*Snapshot, error) {
	s.build.Lock()
	defer s.build.Unlock()

	var (
		res distance.Result
		err error
	)
	if forced {
		res, err = s.builder.BuildForced(ctx, s.registry.Coords())
	} else {
		res, err = s.builder.Build(ctx, s.registry.Coords(), metric)
	}
	if err != nil {
		return nil, err
	}
	if res.Downgraded() {
		s.log.Warn("road distances unavailable, using aerial distances", "status", res.Status)
	}
	snap := &Snapshot{Result: res, Forced: forced, BuiltAt: time.Now()}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	return snap, nil
}

// snapshot returns the current snapshot, building one on first use.
func (s *Server) snapshot(ctx context.Context) (*Snapshot, error) {
	if snap, ok := s.Current(); ok {
		return snap, nil
	}
	return s.rebuild(ctx, s.opts.Metric, false)
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.log.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"elapsed", time.Since(start))
		return err
	}
}
