package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/distance"
	"github.com/saezjose/Teoria-de-Grafos-Proyecto-TSP/road"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Environment keys that override file values.
const (
	EnvMetric       = "TSP_METRIC"
	EnvCities       = "TSP_CITIES"
	EnvRouter       = "TSP_ROUTER"
	EnvOSRMURL      = "TSP_OSRM_URL"
	EnvGoogleAPIKey = "GOOGLE_MAPS_API_KEY"
	EnvAddr         = "TSP_ADDR"
	EnvLogLevel     = "TSP_LOG_LEVEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

//**********************************************************
// config
//**********************************************************

type Config struct {
	Metric   distance.Metric `yaml:"metric"`
	Cities   string          `yaml:"cities" validate:"required"`
	LogLevel LogLevel        `yaml:"log-level"`
	Router   RouterOptions   `yaml:"router"`
	Server   ServerOptions   `yaml:"server"`
	Refresh  RefreshOptions  `yaml:"refresh"`
}

type RouterOptions struct {
	Backend      RouterBackend `yaml:"backend"`
	OSRMURL      string        `yaml:"osrm-url" validate:"omitempty,url"`
	Profile      string        `yaml:"profile" validate:"required"`
	GoogleAPIKey string        `yaml:"google-api-key"`
	RouteTimeout time.Duration `yaml:"route-timeout" validate:"gt=0"`
	TableTimeout time.Duration `yaml:"table-timeout" validate:"gt=0"`
}

type ServerOptions struct {
	Addr string `yaml:"addr" validate:"required"`
	// SolveLimit caps the frames returned by one solve request; 0 means all.
	SolveLimit int `yaml:"solve-limit" validate:"gte=0"`
}

type RefreshOptions struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule" validate:"required_if=Enabled true,omitempty,cron"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Metric:   distance.Aerial,
		Cities:   "data/cities.yaml",
		LogLevel: INFO,
		Router: RouterOptions{
			Backend:      OSRM,
			OSRMURL:      road.DefaultOSRMURL,
			Profile:      road.DefaultOSRMProfile,
			RouteTimeout: road.DefaultRouteTimeout,
			TableTimeout: road.DefaultTableTimeout,
		},
		Server: ServerOptions{
			Addr:       ":5002",
			SolveLimit: 200,
		},
		Refresh: RefreshOptions{
			Enabled:  true,
			Schedule: "@every 15m",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), the given .env files (missing ones are ignored) and the process
// environment, then validates it.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		slog.Info("Reading config file", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := loadEnvFiles(envFiles...); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadEnvFiles loads each existing file into the environment.
// Variables already set in the process win.
func loadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	if v, ok := os.LookupEnv(EnvMetric); ok {
		if c.Metric, err = distance.MetricFromString(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvMetric, err)
		}
	}
	if v, ok := os.LookupEnv(EnvRouter); ok {
		if c.Router.Backend, err = RouterBackendFromString(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvRouter, err)
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if c.LogLevel, err = LogLevelFromString(v); err != nil {
			return fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := os.LookupEnv(EnvCities); ok {
		c.Cities = v
	}
	if v, ok := os.LookupEnv(EnvOSRMURL); ok {
		c.Router.OSRMURL = v
	}
	if v, ok := os.LookupEnv(EnvGoogleAPIKey); ok {
		c.Router.GoogleAPIKey = v
	}
	if v, ok := os.LookupEnv(EnvAddr); ok {
		c.Server.Addr = v
	}
	return nil
}

//**********************************************************
// validation
//**********************************************************

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		r := sl.Current().Interface().(RouterOptions)
		if r.Backend == GOOGLE && r.GoogleAPIKey == "" {
			sl.ReportError(r.GoogleAPIKey, "GoogleAPIKey", "google-api-key", "required_for_google", "")
		}
	}, RouterOptions{})
	return v
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// NewRouter returns the routing backend selected by the configuration.
// NONE yields a nil Router, which makes every road request fall back.
func (c Config) NewRouter() (road.Router, error) {
	switch c.Router.Backend {
	case OSRM:
		return road.NewOSRMRouter(c.Router.OSRMURL, c.Router.Profile, nil), nil
	case GOOGLE:
		g, err := road.NewGoogleRouter(c.Router.GoogleAPIKey)
		if err != nil {
			return nil, fmt.Errorf("config: google router: %w", err)
		}
		return g, nil
	default:
		return nil, nil
	}
}

// NewProvider wires the configured router, timeouts and logger into a Provider.
func (c Config) NewProvider(logger *slog.Logger) (*road.Provider, error) {
	router, err := c.NewRouter()
	if err != nil {
		return nil, err
	}
	return road.NewProvider(router,
		road.WithRouteTimeout(c.Router.RouteTimeout),
		road.WithTableTimeout(c.Router.TableTimeout),
		road.WithLogger(logger),
	), nil
}
