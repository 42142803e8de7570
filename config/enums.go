package config

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// router backend
//**********************************************************

type RouterBackend byte

const (
	OSRM   RouterBackend = 0
	GOOGLE RouterBackend = 1
	NONE   RouterBackend = 2
)

func (self RouterBackend) String() string {
	switch self {
	case OSRM:
		return "osrm"
	case GOOGLE:
		return "google"
	case NONE:
		return "none"
	default:
		panic("unknown router backend")
	}
}
func (self RouterBackend) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *RouterBackend) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	backend, err := RouterBackendFromString(typ)
	*self = backend
	return err
}
func (self RouterBackend) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *RouterBackend) UnmarshalYAML(value *yaml.Node) error {
	backend, err := RouterBackendFromString(value.Value)
	if err != nil {
		return err
	}
	*self = backend
	return nil
}

func RouterBackendFromString(s string) (RouterBackend, error) {
	switch strings.ToLower(s) {
	case "osrm":
		return OSRM, nil
	case "google":
		return GOOGLE, nil
	case "none", "off":
		return NONE, nil
	default:
		return OSRM, errors.New("unknown router backend: " + s)
	}
}

//**********************************************************
// log level
//**********************************************************

type LogLevel byte

const (
	DEBUG LogLevel = 0
	INFO  LogLevel = 1
	WARN  LogLevel = 2
	ERROR LogLevel = 3
)

func (self LogLevel) String() string {
	switch self {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARN:
		return "warn"
	case ERROR:
		return "error"
	default:
		panic("unknown log level")
	}
}

// Level maps the configured level onto slog.
func (self LogLevel) Level() slog.Level {
	switch self {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
func (self LogLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *LogLevel) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	level, err := LogLevelFromString(typ)
	*self = level
	return err
}
func (self LogLevel) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *LogLevel) UnmarshalYAML(value *yaml.Node) error {
	level, err := LogLevelFromString(value.Value)
	if err != nil {
		return err
	}
	*self = level
	return nil
}

func LogLevelFromString(s string) (LogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, errors.New("unknown log level: " + s)
	}
}
