package config

import (
	"os"

	"github.com/mycomarket/mycomarket-go/internal/filex"
)

// APIBaseEnvVar overrides the backend address without touching flags or
// config files. Useful for pointing a session at a staging deployment.
const APIBaseEnvVar = "MYCOMARKET_API_BASE"

// parseEnv overlays Config with values from the environment.
//
// Recognized variables:
//
//	MYCOMARKET_API_BASE     backend address (scheme+host)
//	MYCOMARKET_CONFIG_DIR   state directory for the persisted session
func parseEnv(cfg *Config) {
	if v := os.Getenv(APIBaseEnvVar); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(filex.ConfigDirEnvVar); v != "" {
		cfg.ConfigDir = v
	}
}
