// Package config loads runtime configuration for the MycoMarket CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address of the backend API server
//	-d string   state directory for the persisted session
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.mycomarket.example",
//	  "request_timeout": "30s",
//	  "cache_ttl": "30s",
//	  "conversation_poll_interval": "15s",
//	  "message_poll_interval": "5s",
//	  "requests_per_second": 10
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the client
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
