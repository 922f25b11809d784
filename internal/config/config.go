package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConfigFile  = "SKYFALL_CONFIG"
	EnvSSHHost     = "SKYFALL_SSH_HOST"
	EnvSSHPort     = "SKYFALL_SSH_PORT"
	EnvSSHHostKey  = "SKYFALL_SSH_HOST_KEY"
	EnvWebHost     = "SKYFALL_WEB_HOST"
	EnvWebPort     = "SKYFALL_WEB_PORT"
	EnvDisplayHost = "SKYFALL_DISPLAY_HOST"
	EnvMode        = "SKYFALL_MODE"
	EnvLogLevel    = "SKYFALL_LOG_LEVEL"
)

// Config holds settings for every command.
type Config struct {
	SSH      SSHConfig `toml:"ssh"`
	Web      WebConfig `toml:"web"`
	Mode     string    `toml:"mode"`      // Game variant: armed or classic
	LogLevel string    `toml:"log_level"` // debug, info, warn, error
}

// SSHConfig configures the SSH game server.
type SSHConfig struct {
	Host    string `toml:"host"`
	Port    string `toml:"port"`
	HostKey string `toml:"host_key"` // Path to the host key; generated if missing
}

// WebConfig configures the landing page server.
type WebConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	DisplayHost string `toml:"display_host"` // Host shown in the ssh command on the page
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SSH: SSHConfig{
			Host:    "::",
			Port:    "2222",
			HostKey: ".ssh/skyfall_ed25519",
		},
		Web: WebConfig{
			Host:        "0.0.0.0",
			Port:        "8080",
			DisplayHost: "your-server.com",
		},
		Mode:     "armed",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// SKYFALL_CONFIG, then SKYFALL_* environment variables. envFiles are loaded
// into the environment first without overriding it; missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg.SSH.Host = GetEnv(EnvSSHHost, cfg.SSH.Host)
	cfg.SSH.Port = GetEnv(EnvSSHPort, cfg.SSH.Port)
	cfg.SSH.HostKey = GetEnv(EnvSSHHostKey, cfg.SSH.HostKey)
	cfg.Web.Host = GetEnv(EnvWebHost, cfg.Web.Host)
	cfg.Web.Port = GetEnv(EnvWebPort, cfg.Web.Port)
	cfg.Web.DisplayHost = GetEnv(EnvDisplayHost, cfg.Web.DisplayHost)
	cfg.Mode = GetEnv(EnvMode, cfg.Mode)
	cfg.LogLevel = GetEnv(EnvLogLevel, cfg.LogLevel)

	return cfg, nil
}
