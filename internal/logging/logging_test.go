package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug lowercase", "debug", slog.LevelDebug},
		{"debug uppercase", "DEBUG", slog.LevelDebug},
		{"debug mixed", "Debug", slog.LevelDebug},
		{"info lowercase", "info", slog.LevelInfo},
		{"info uppercase", "INFO", slog.LevelInfo},
		{"warn lowercase", "warn", slog.LevelWarn},
		{"warn uppercase", "WARN", slog.LevelWarn},
		{"error lowercase", "error", slog.LevelError},
		{"error uppercase", "ERROR", slog.LevelError},
		{"empty string", "", slog.LevelInfo},
		{"invalid value", "invalid", slog.LevelInfo},
		{"trace returns info", "trace", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	t.Run("writes records to the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "sift.log")

		cleanup, err := Setup(path, slog.LevelDebug)
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		defer cleanup()

		slog.Info("hello from test", "key", "value")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading log file: %v", err)
		}
		if !strings.Contains(string(data), "hello from test") {
			t.Errorf("log file missing record, got: %s", data)
		}
		if !strings.Contains(string(data), `"key":"value"`) {
			t.Errorf("log file missing attribute, got: %s", data)
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "c", "sift.log")

		cleanup, err := Setup(path, slog.LevelInfo)
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		defer cleanup()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected log file to exist: %v", err)
		}
	})

	t.Run("respects level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sift.log")

		cleanup, err := Setup(path, slog.LevelWarn)
		if err != nil {
			t.Fatalf("Setup() error = %v", err)
		}
		defer cleanup()

		slog.Debug("too quiet")
		slog.Warn("loud enough")

		data, _ := os.ReadFile(path)
		if strings.Contains(string(data), "too quiet") {
			t.Error("debug record should have been filtered")
		}
		if !strings.Contains(string(data), "loud enough") {
			t.Error("warn record should have been written")
		}
	})
}

func TestLogPanic(t *testing.T) {
	var buf strings.Builder
	SetupTest(&buf)

	var recovered any
	func() {
		defer LogPanic("test-goroutine", func(r any) { recovered = r })
		panic("boom")
	}()

	if recovered != "boom" {
		t.Errorf("onRecover got %v, want boom", recovered)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Error("expected panic to be logged")
	}
	if !strings.Contains(buf.String(), "test-goroutine") {
		t.Error("expected goroutine name in log")
	}
}
