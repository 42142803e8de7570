// Package config reads the service configuration.
//
// Values come, in increasing precedence, from built-in defaults, a YAML
// file, and environment variables (optionally loaded from .env files).
// The merged Config is checked with struct tags before use.
package config
