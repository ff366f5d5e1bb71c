// Package config loads the flat configuration block described in
// spec.md §6: one YAML file with a fixed set of recognized keys,
// falling back to known-good defaults for anything absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the rccserver process: the three
// listeners (TCP game channel, HTTP/WebSocket channel, policy channel),
// the identity store location, and debug logging toggles.
type Server struct {
	// Network
	Host       string `yaml:"host"`
	HTTPPort   int    `yaml:"http_port"`
	TCPPort    int    `yaml:"tcp_port"`
	PolicyPort int    `yaml:"policy_port"`

	// Persistence
	DBPath string `yaml:"db_path"`

	// Logging
	LogLevel string      `yaml:"log_level"` // debug, info, warn, error (default: info)
	Debug    DebugConfig `yaml:"debug"`
}

// DebugConfig holds the debug.* keys. They are parsed from the config
// file, but no component reads them: log verbosity is set by LogLevel
// alone, there are no per-category debug logs, and no file rotation is
// implemented (peripheral I/O, spec.md §1).
type DebugConfig struct {
	TCP     bool   `yaml:"tcp"`
	HTTP    bool   `yaml:"http"`
	Binary  bool   `yaml:"binary"`
	Console bool   `yaml:"console"`
	LogDir  string `yaml:"log_dir"`
}

// Default returns a Server config with sensible defaults matching
// spec.md §6.
func Default() Server {
	return Server{
		Host:       "0.0.0.0",
		HTTPPort:   80,
		TCPPort:    27130,
		PolicyPort: 27132,
		DBPath:     "./rcc.db",
		LogLevel:   "info",
		Debug: DebugConfig{
			Console: true,
		},
	}
}

// Load reads a Server config from a YAML file at path. If the file
// does not exist, defaults are returned unchanged — a fresh checkout
// runs with no config file present.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
