package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxxsen/common/logger"
	"gopkg.in/yaml.v3"
)

// Config is the root runtime configuration.
type Config struct {
	Bind  string           `json:"bind" yaml:"bind"`
	Zone  string           `json:"zone" yaml:"zone"`
	List  ListConfig       `json:"list" yaml:"list"`
	Cache CacheConfig      `json:"cache" yaml:"cache"`
	Log   logger.LogConfig `json:"log" yaml:"log"`
	Pprof PprofConfig      `json:"pprof" yaml:"pprof"`
}

// ListConfig describes where the public suffix list comes from and how
// it is built.
type ListConfig struct {
	Source   string `json:"source" yaml:"source"`
	Refresh  int64  `json:"refresh" yaml:"refresh"` // seconds, 0 disables refresh
	AnyCase  bool   `json:"anycase" yaml:"anycase"`
	Punycode bool   `json:"punycode" yaml:"punycode"`
}

type CacheConfig struct {
	Size int64 `json:"size" yaml:"size"`
}

type PprofConfig struct {
	Enable bool   `json:"enable" yaml:"enable"`
	Bind   string `json:"bind" yaml:"bind"`
}

// Load reads the configuration file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
