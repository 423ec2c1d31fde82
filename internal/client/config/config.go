// Package config assembles runtime settings for the emotion journal CLI.
//
// Sources are applied in order: defaults, environment, JSON file, flags.
// Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// An empty APIBase puts the client in local-only mode: every remote journal
// operation becomes a no-op and the local store is the sole persistence.
type Config struct {
	// APIBase is the journal/analysis backend root, e.g.
	// "http://localhost:8000/api".
	APIBase string

	// AuthAPIBase is the auth backend root; it defaults to APIBase when
	// left empty by every source.
	AuthAPIBase string

	// DatabasePath is the sqlite file holding local state.
	DatabasePath string

	// OnlineCheckInterval is how often the client probes backend
	// reachability.
	OnlineCheckInterval time.Duration

	// HTTPTimeout bounds each HTTP round-trip end to end.
	HTTPTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBase = ""
	c.AuthAPIBase = ""
	c.DatabasePath = "ejournal.db"
	c.OnlineCheckInterval = 30 * time.Second
	c.HTTPTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)

	if cfg.AuthAPIBase == "" {
		cfg.AuthAPIBase = cfg.APIBase
	}
	return cfg
}
