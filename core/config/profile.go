package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"version-counter/core/logger"
)

// Profile selects the deployment defaults (bind address, CORS policy, log level).
type Profile string

const (
	Development Profile = "development"
	Production  Profile = "production"
)

// ParseProfile resolves a profile name. Short forms (dev, prod) are accepted.
func ParseProfile(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dev", string(Development):
		return Development, nil
	case "prod", string(Production):
		return Production, nil
	default:
		return "", fmt.Errorf("unknown profile %q (expected %s or %s)", name, Development, Production)
	}
}

// FileName returns the name of the configuration file for the profile.
func (p Profile) FileName() string {
	switch p {
	case Production:
		return "Production.toml"
	default:
		return "Development.toml"
	}
}

// Path returns the configuration file path inside dir.
func (p Profile) Path(dir string) string {
	return filepath.Join(dir, p.FileName())
}

// DefaultBindAddr is the listen address used when the file does not set one.
func (p Profile) DefaultBindAddr() string {
	if p == Production {
		return "0.0.0.0:8080"
	}
	return "127.0.0.1:8080"
}

// UnrestrictedCORS reports whether an empty origin list allows every origin.
// Production requires origins to be listed explicitly.
func (p Profile) UnrestrictedCORS() bool {
	return p != Production
}

// Log returns the logger settings for the profile.
func (p Profile) Log(dir string) logger.Config {
	level := "debug"
	if p == Production {
		level = "info"
	}
	return logger.Config{
		Level:  level,
		Format: "console",
		Dir:    dir,
	}
}
