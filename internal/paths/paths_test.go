package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBaseDir(t *testing.T) {
	t.Run("default uses home directory", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "")
		os.Unsetenv(EnvSiftDir)

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".sift")
		if dir != expected {
			t.Errorf("BaseDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("SIFT_DIR overrides default", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")

		dir, err := BaseDir()
		if err != nil {
			t.Fatalf("BaseDir() error = %v", err)
		}
		if dir != "/tmp/sift-test" {
			t.Errorf("BaseDir() = %q, want %q", dir, "/tmp/sift-test")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("default uses home config directory", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "")
		os.Unsetenv(EnvSiftDir)

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "sift")
		if dir != expected {
			t.Errorf("ConfigDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("SIFT_DIR overrides to SIFT_DIR/config", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}
		if dir != "/tmp/sift-test/config" {
			t.Errorf("ConfigDir() = %q, want %q", dir, "/tmp/sift-test/config")
		}
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("SIFT_CONFIG_PATH takes highest priority", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")
		t.Setenv(EnvConfigPath, "/custom/config.toml")

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if path != "/custom/config.toml" {
			t.Errorf("ConfigPath() = %q, want %q", path, "/custom/config.toml")
		}
	})

	t.Run("derives from SIFT_DIR", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")
		t.Setenv(EnvConfigPath, "")
		os.Unsetenv(EnvConfigPath)

		path, err := ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath() error = %v", err)
		}
		if path != "/tmp/sift-test/config/config.toml" {
			t.Errorf("ConfigPath() = %q, want %q", path, "/tmp/sift-test/config/config.toml")
		}
	})
}

func TestLogPath(t *testing.T) {
	t.Run("SIFT_LOG_PATH takes highest priority", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")
		t.Setenv(EnvLogPath, "/custom/sift.log")

		if got := LogPath(); got != "/custom/sift.log" {
			t.Errorf("LogPath() = %q, want %q", got, "/custom/sift.log")
		}
	})

	t.Run("derives from SIFT_DIR", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "/tmp/sift-test")
		t.Setenv(EnvLogPath, "")
		os.Unsetenv(EnvLogPath)

		if got := LogPath(); got != "/tmp/sift-test/sift.log" {
			t.Errorf("LogPath() = %q, want %q", got, "/tmp/sift-test/sift.log")
		}
	})

	t.Run("default uses home directory", func(t *testing.T) {
		t.Setenv(EnvSiftDir, "")
		t.Setenv(EnvLogPath, "")
		os.Unsetenv(EnvSiftDir)
		os.Unsetenv(EnvLogPath)

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".sift", "sift.log")
		if got := LogPath(); got != expected {
			t.Errorf("LogPath() = %q, want %q", got, expected)
		}
	})
}
