// Package filex contains small filesystem helpers used by the client for
// locating and preparing its per-user state directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDirEnvVar overrides the default state directory location.
const ConfigDirEnvVar = "MYCOMARKET_CONFIG_DIR"

// AppDir resolves the client's state directory, creating it if needed.
//
// Lookup order:
//  1. explicit override argument (used by tests and the -d flag)
//  2. the MYCOMARKET_CONFIG_DIR environment variable
//  3. os.UserConfigDir()/<appName>
func AppDir(override string, appName string) (string, error) {
	dir := override
	if dir == "" {
		dir = os.Getenv(ConfigDirEnvVar)
	}
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, appName)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
