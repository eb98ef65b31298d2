// Package config loads the optional session-logger YAML config file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location relative to the project root.
var DefaultPath = filepath.Join(".claude", "session-logger.yaml")

// Config holds hook and serving settings. Every field is optional;
// zero values fall back to defaults at load time.
type Config struct {
	// Timezone is the IANA zone used for log timestamps (default: Local).
	Timezone string `yaml:"timezone"`
	// LogDir is where rendered logs are written (default: .claude/logs).
	LogDir string `yaml:"log_dir"`
	// Serve configures the log server.
	Serve ServeConfig `yaml:"serve"`
}

// ServeConfig configures the serving layer.
type ServeConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogDir: filepath.Join(".claude", "logs"),
		Serve: ServeConfig{
			Host: "127.0.0.1",
			Port: 9443,
		},
	}
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	// Re-apply defaults for fields the file left empty.
	def := Default()
	if cfg.LogDir == "" {
		cfg.LogDir = def.LogDir
	}
	if cfg.Serve.Host == "" {
		cfg.Serve.Host = def.Serve.Host
	}
	if cfg.Serve.Port == 0 {
		cfg.Serve.Port = def.Serve.Port
	}
	return cfg, nil
}

// Save writes the config file, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
