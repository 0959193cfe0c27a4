package config

import (
	"fmt"
	"net/netip"
	"net/url"

	"version-counter/core/server"
	"version-counter/core/storage"

	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application.
// It is loaded once at startup and not mutated afterwards.
type Config struct {
	// BindAddr is the ip:port the HTTP server listens on.
	BindAddr string `mapstructure:"bind-addr" toml:"bind-addr"`
	// CorsOrigins lists the origins allowed to call the API.
	CorsOrigins []string `mapstructure:"cors-origins" toml:"cors-origins"`
	// BucketInfo holds the bucket connection settings.
	BucketInfo storage.Config `mapstructure:"bucket-info" toml:"bucket-info"`

	// Profile is the profile the configuration was loaded for.
	Profile Profile `mapstructure:"-" toml:"-"`
}

// partialConfig is the on-disk shape before the bucket connection is known.
type partialConfig struct {
	BindAddr    string          `mapstructure:"bind-addr"`
	CorsOrigins []string        `mapstructure:"cors-origins"`
	BucketInfo  *storage.Config `mapstructure:"bucket-info"`
}

// Server returns the HTTP server settings.
func (c *Config) Server() server.Config {
	return server.Config{
		BindAddr:       c.BindAddr,
		AllowedOrigins: c.CorsOrigins,
		Unrestricted:   c.Profile.UnrestrictedCORS(),
	}
}

func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("profile", string(c.Profile))
	enc.AddString("bind-addr", c.BindAddr)
	if err := enc.AddArray("cors-origins", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, o := range c.CorsOrigins {
			arr.AppendString(o)
		}
		return nil
	})); err != nil {
		return err
	}
	return enc.AddObject("bucket-info", c.BucketInfo)
}

// missingBucketFields lists the bucket settings the operator still has to supply.
func (p *partialConfig) missingBucketFields() []string {
	if p.BucketInfo == nil {
		return storage.Config{}.MissingFields()
	}
	return p.BucketInfo.MissingFields()
}

func (p *partialConfig) validate() error {
	if _, err := netip.ParseAddrPort(p.BindAddr); err != nil {
		return fmt.Errorf("bind-addr: %w", err)
	}
	for _, origin := range p.CorsOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("cors-origins: %w", err)
		}
	}
	return nil
}

func (p *partialConfig) promote(profile Profile) *Config {
	origins := p.CorsOrigins
	if origins == nil {
		origins = []string{}
	}
	return &Config{
		BindAddr:    p.BindAddr,
		CorsOrigins: origins,
		BucketInfo:  *p.BucketInfo,
		Profile:     profile,
	}
}

// validateOrigin accepts serialized origins such as https://example.com:8443.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin %q must use http or https", origin)
	}
	if u.Host == "" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("origin %q must be scheme://host[:port]", origin)
	}
	return nil
}
