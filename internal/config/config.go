package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Export  ExportConfig  `yaml:"export"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type DatasetConfig struct {
	// Path to the runtime report JSON export. Relative paths are resolved
	// against the config file's directory first, then the working directory.
	Path string `yaml:"path"`
}

type ExportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Server:  ServerConfig{Port: "8080", StaticDir: "./web/dist"},
		Dataset: DatasetConfig{Path: "runtime-data.json"},
		Export:  ExportConfig{Width: 1400, Height: 700},
	}
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if c.Dataset.Path != "" && !filepath.IsAbs(c.Dataset.Path) {
		cand := filepath.Join(filepath.Dir(path), c.Dataset.Path)
		if _, err := os.Stat(cand); err == nil {
			c.Dataset.Path = cand
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Dataset.Path == "" {
		return errors.New("dataset.path is required")
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("export dimensions must be positive, got %dx%d", c.Export.Width, c.Export.Height)
	}
	return nil
}
