package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envOverlay is a DTO for envconfig. With the "ejournal" prefix the
// variables read EJOURNAL_API_BASE, EJOURNAL_AUTH_API_BASE,
// EJOURNAL_DB_PATH, EJOURNAL_ONLINE_CHECK_INTERVAL and
// EJOURNAL_HTTP_TIMEOUT.
type envOverlay struct {
	APIBase             string        `envconfig:"API_BASE"`
	AuthAPIBase         string        `envconfig:"AUTH_API_BASE"`
	DatabasePath        string        `envconfig:"DB_PATH"`
	OnlineCheckInterval time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`
	HTTPTimeout         time.Duration `envconfig:"HTTP_TIMEOUT"`
}

// parseEnv overlays Config with values found in the environment. Unset
// variables leave the current values untouched.
func parseEnv(cfg *Config) {
	var e envOverlay
	if err := envconfig.Process("ejournal", &e); err != nil {
		panic(err)
	}

	if e.APIBase != "" {
		cfg.APIBase = e.APIBase
	}
	if e.AuthAPIBase != "" {
		cfg.AuthAPIBase = e.AuthAPIBase
	}
	if e.DatabasePath != "" {
		cfg.DatabasePath = e.DatabasePath
	}
	if e.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = e.OnlineCheckInterval
	}
	if e.HTTPTimeout > 0 {
		cfg.HTTPTimeout = e.HTTPTimeout
	}
}
