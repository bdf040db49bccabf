package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mycomarket/mycomarket-go/internal/flagx"
	"github.com/mycomarket/mycomarket-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "15s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	ConfigDir                string         `json:"config_dir"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	CacheTTL                 timex.Duration `json:"cache_ttl"`
	ConversationPollInterval timex.Duration `json:"conversation_poll_interval"`
	MessagePollInterval      timex.Duration `json:"message_poll_interval"`
	RequestsPerSecond        float64        `json:"requests_per_second"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file (non-zero after unmarshalling) override
// the config; absent fields keep their earlier values. Panics on read or
// unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.ConfigDir != "" {
		cfg.ConfigDir = jc.ConfigDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = time.Duration(jc.CacheTTL.Duration)
	}
	if jc.ConversationPollInterval.Duration != 0 {
		cfg.ConversationPollInterval = time.Duration(jc.ConversationPollInterval.Duration)
	}
	if jc.MessagePollInterval.Duration != 0 {
		cfg.MessagePollInterval = time.Duration(jc.MessagePollInterval.Duration)
	}
	if jc.RequestsPerSecond != 0 {
		cfg.RequestsPerSecond = jc.RequestsPerSecond
	}
}
