// Package config loads loginbox startup settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the default config path.
const EnvConfigPath = "LOGINBOX_CONFIG"

// Config holds settings read at startup. Nothing here is written back.
type Config struct {
	// Messages is the unread message list shown in the mailbox.
	// nil means the sample set; an explicit empty list means an empty mailbox.
	Messages []string `yaml:"messages"`
}

// DefaultMessages returns a fresh copy of the sample unread messages.
func DefaultMessages() []string {
	return []string{
		"Hello",
		"World",
		"This is Doordash with your order",
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Messages: DefaultMessages()}
}

// ResolvePath returns flagPath if set, otherwise the LOGINBOX_CONFIG value.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// Load reads the config at path. An empty path or a missing file yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Messages == nil {
		cfg.Messages = DefaultMessages()
	}
	return cfg, nil
}
