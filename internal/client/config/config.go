package config

import "time"

// Config holds runtime settings for the MycoMarket CLI.
//
// Fields:
//   - APIBaseURL: scheme+host of the backend REST API (the /api/v1 prefix
//     is appended by the client).
//   - ConfigDir: where the session/profile pair is persisted; empty means
//     the per-user default.
//   - RequestTimeout: per-request HTTP timeout.
//   - CacheTTL: default freshness window for cached reads.
//   - ConversationPollInterval / MessagePollInterval: chat revalidation.
//   - RequestsPerSecond: client-side rate limit; 0 disables it.
type Config struct {
	APIBaseURL               string
	ConfigDir                string
	RequestTimeout           time.Duration
	CacheTTL                 time.Duration
	ConversationPollInterval time.Duration
	MessagePollInterval      time.Duration
	RequestsPerSecond        float64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.CacheTTL = 30 * time.Second
	c.ConversationPollInterval = 15 * time.Second
	c.MessagePollInterval = 5 * time.Second
	c.RequestsPerSecond = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
