// Package config loads the server-level configuration embedded in the
// binary. User-facing settings live in internal/appconfig; this package
// only covers how the local server runs.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration. Defaults ship as an embedded YAML
// file; ${VAR} references in it are expanded from the environment.
type Config struct {
	App struct {
		Name string `yaml:"name"`
		Host string `yaml:"host"`
	} `yaml:"app"`
	Port    int `yaml:"port"`
	Storage struct {
		// Driver selects the config backend: "file" or "sqlite".
		Driver string `yaml:"driver"`
	} `yaml:"storage"`
	Updater struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"updater"`
}

// LoadFromBytes loads configuration from YAML bytes with environment
// variable expansion.
func LoadFromBytes(data []byte) (*Config, error) {
	var c Config
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "antigravity-manager"
	}
	if c.App.Host == "" {
		c.App.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 7317
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "file"
	}
}
