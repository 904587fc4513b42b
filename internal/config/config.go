// Package config provides configuration loading for sift.
//
// Settings layer lowest-to-highest: built-in defaults, the TOML config
// file, SIFT_* environment variables, then command-line flags (applied by
// the CLI layer). Malformed values in the file abort the run; malformed
// environment values fall back to the prior layer with a logged warning,
// matching the stream core's never-raise posture.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tessro/sift/internal/paths"
)

// Environment variable names for setting overrides.
const (
	EnvPromise           = "SIFT_COMPLETION_PROMISE"
	EnvExitCode          = "SIFT_COMPLETION_EXIT_CODE"
	EnvRunStartEpoch     = "SIFT_RUN_START_EPOCH"
	EnvHeader            = "SIFT_FINAL_OUTPUT_HEADER"
	EnvProvider          = "SIFT_PROVIDER"
	EnvRawLogPath        = "SIFT_RAW_LOG_PATH"
	EnvHeartbeatInterval = "SIFT_HEARTBEAT_INTERVAL"
)

// DefaultPromise is the completion marker looked for in assistant text.
const DefaultPromise = "<promise>DONE</promise>"

// DefaultCompletionExitCode is the exit code signaling a detected completion.
const DefaultCompletionExitCode = 10

// DefaultHeartbeatInterval is the seconds between status-line emissions.
const DefaultHeartbeatInterval = 30

// Config holds the settings for one sift run.
type Config struct {
	// Promise is the literal substring whose presence in assistant text
	// signals completion.
	Promise string `toml:"completion_promise"`

	// CompletionExitCode is the process exit code when a completion
	// message was recorded.
	CompletionExitCode int `toml:"completion_exit_code"`

	// RunStartEpoch is the run's start time in epoch seconds, used for
	// the elapsed-time banner. Zero means unset (no banner).
	RunStartEpoch int64 `toml:"run_start_epoch"`

	// Header enables the clear-line escape and elapsed-time banner.
	Header bool `toml:"final_output_header"`

	// Provider selects the adapter: pi, codex, claude. Empty selects the
	// inert adapter that never extracts.
	Provider string `toml:"provider"`

	// RawLogPath is the audit tee destination. Empty disables the tee.
	RawLogPath string `toml:"raw_log_path"`

	// HeartbeatInterval is the seconds between status-line emissions.
	// Zero disables the heartbeat.
	HeartbeatInterval int `toml:"heartbeat_interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Promise:            DefaultPromise,
		CompletionExitCode: DefaultCompletionExitCode,
		Header:             true,
		HeartbeatInterval:  DefaultHeartbeatInterval,
	}
}

// Load returns the layered configuration: defaults, then the config file
// (missing file is not an error), then SIFT_* environment variables.
func Load() (Config, error) {
	cfg := Default()

	path, err := paths.ConfigPath()
	if err != nil {
		return cfg, err
	}
	if err := loadFile(&cfg, path); err != nil {
		return cfg, err
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}

// loadFile decodes the TOML file at path over cfg. A missing file leaves
// cfg untouched; a malformed file is an operator error and propagates.
func loadFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

// applyEnv overlays SIFT_* environment variables. Numeric values that do
// not parse are logged and ignored rather than aborting the run.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPromise); v != "" {
		c.Promise = v
	}
	if v := os.Getenv(EnvExitCode); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CompletionExitCode = n
		} else {
			slog.Warn("ignoring malformed env value", "var", EnvExitCode, "value", v)
		}
	}
	if v := os.Getenv(EnvRunStartEpoch); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RunStartEpoch = n
		} else {
			slog.Warn("ignoring malformed env value", "var", EnvRunStartEpoch, "value", v)
		}
	}
	if v := os.Getenv(EnvHeader); v != "" {
		c.Header = ParseToggle(v)
	}
	if v := os.Getenv(EnvProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvRawLogPath); v != "" {
		c.RawLogPath = v
	}
	if v := os.Getenv(EnvHeartbeatInterval); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.HeartbeatInterval = n
		} else {
			slog.Warn("ignoring malformed env value", "var", EnvHeartbeatInterval, "value", v)
		}
	}
}

// Normalize repairs values that would break the run's contract: the
// promise is never empty and the heartbeat interval never negative.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Promise) == "" {
		c.Promise = DefaultPromise
	}
	if c.HeartbeatInterval < 0 {
		c.HeartbeatInterval = 0
	}
}

// ParseToggle interprets a boolean-ish setting string. The off values are
// "0", "false", "no", and "off" (case-insensitive); everything else,
// including the empty string, is on.
func ParseToggle(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
