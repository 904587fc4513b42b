// Package paths provides a single source of truth for sift file paths.
// All path helpers honor environment variable overrides for isolated testing.
//
// Path resolution precedence:
//  1. Specific env vars (SIFT_CONFIG_PATH, SIFT_LOG_PATH) take highest priority
//  2. SIFT_DIR env var sets the base directory (derives config/log paths)
//  3. Default behavior (~/.sift, ~/.config/sift) when no env vars are set
package paths

import (
	"os"
	"path/filepath"
)

// Environment variable names for path overrides.
const (
	// EnvSiftDir is the base directory override (e.g., /tmp/sift-test).
	// When set, config and log paths derive from this directory.
	EnvSiftDir = "SIFT_DIR"

	// EnvConfigPath overrides the config file path directly.
	EnvConfigPath = "SIFT_CONFIG_PATH"

	// EnvLogPath overrides the log file path directly.
	EnvLogPath = "SIFT_LOG_PATH"
)

// BaseDir returns the sift base directory (~/.sift by default).
// Honors SIFT_DIR environment variable.
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvSiftDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sift"), nil
}

// ConfigDir returns the sift config directory (~/.config/sift by default).
// When SIFT_DIR is set, returns SIFT_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvSiftDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sift"), nil
}

// ConfigPath returns the path to the sift config file.
// Precedence: SIFT_CONFIG_PATH > SIFT_DIR/config/config.toml > ~/.config/sift/config.toml
func ConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the log file path.
// Precedence: SIFT_LOG_PATH > SIFT_DIR/sift.log > ~/.sift/sift.log
func LogPath() string {
	if path := os.Getenv(EnvLogPath); path != "" {
		return path
	}
	base, err := BaseDir()
	if err != nil {
		return "/tmp/sift.log"
	}
	return filepath.Join(base, "sift.log")
}
