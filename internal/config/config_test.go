package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvConfigFile, EnvSSHHost, EnvSSHPort, EnvSSHHostKey,
		EnvWebHost, EnvWebPort, EnvDisplayHost, EnvMode, EnvLogLevel,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SKYFALL_TEST_KEY", "set")
	if got := GetEnv("SKYFALL_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q, want set", got)
	}
	if got := GetEnv("SKYFALL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_Layers(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "skyfall.toml")
	tomlBody := `
mode = "classic"
log_level = "debug"

[ssh]
port = "2200"

[web]
display_host = "play.example.com"
`
	if err := os.WriteFile(tomlPath, []byte(tomlBody), 0o600); err != nil {
		t.Fatal(err)
	}

	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SKYFALL_WEB_PORT=9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigFile, tomlPath)
	t.Setenv(EnvSSHPort, "2201")

	cfg, err := Load(envPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name, got, want string
	}{
		{"mode from file", cfg.Mode, "classic"},
		{"log level from file", cfg.LogLevel, "debug"},
		{"display host from file", cfg.Web.DisplayHost, "play.example.com"},
		{"ssh port env beats file", cfg.SSH.Port, "2201"},
		{"web port from .env", cfg.Web.Port, "9090"},
		{"ssh host default", cfg.SSH.Host, "::"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("mode = [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a malformed file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "test", "warn")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected log output %q", out)
	}

	if _, err := NewLogger(&buf, "test", "loud"); err == nil {
		t.Error("NewLogger accepted an unknown level")
	}
}
