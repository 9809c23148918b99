package config

import "time"

// Config holds runtime settings for the Signet client.
//
// Fields:
//   - APIBaseURL: base URL of the identity provider's HTTP API.
//   - RequestTimeout: per-request deadline for provider calls. There is no
//     retry layer; a timed-out submission is terminal until resubmitted.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The default base URL
// points at a local identity emulator.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:9099"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
