package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig is the wire form of Config. Pointer fields distinguish
// absent keys from zero values; durations are strings in Go duration
// syntax ("30s", "5m").
type fileConfig struct {
	Delimiter       *string `toml:"delimiter" yaml:"delimiter"`
	ContextRadius   *int    `toml:"context_radius" yaml:"context_radius"`
	CacheCapacity   *int    `toml:"cache_capacity" yaml:"cache_capacity"`
	CacheTTL        *string `toml:"cache_ttl" yaml:"cache_ttl"`
	SweepInterval   *string `toml:"sweep_interval" yaml:"sweep_interval"`
	MaxDocumentSize *int64  `toml:"max_document_size" yaml:"max_document_size"`
	LogLevel        *string `toml:"log_level" yaml:"log_level"`
}

// Load reads a configuration file, dispatching on its extension (.toml,
// .yaml or .yml). A missing file is not an error and yields nil.
func Load(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// LoadTOML reads configuration from a TOML file.
func LoadTOML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		perr := &ParseError{Path: path, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			perr.Line, perr.Column = de.Position()
		}
		return nil, perr
	}

	return fc.apply(path)
}

// LoadYAML reads configuration from a YAML file.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return fc.apply(path)
}

// apply merges the wire form over the defaults and validates the result.
func (fc fileConfig) apply(path string) (*Config, error) {
	cfg := Default()

	if fc.Delimiter != nil {
		cfg.Delimiter = *fc.Delimiter
	}
	if fc.ContextRadius != nil {
		cfg.ContextRadius = *fc.ContextRadius
	}
	if fc.CacheCapacity != nil {
		cfg.CacheCapacity = *fc.CacheCapacity
	}
	if fc.CacheTTL != nil {
		d, err := time.ParseDuration(*fc.CacheTTL)
		if err != nil {
			return nil, &ParseError{Path: path, Message: fmt.Sprintf("cache_ttl: %v", err), Err: err}
		}
		cfg.CacheTTL = d
	}
	if fc.SweepInterval != nil {
		d, err := time.ParseDuration(*fc.SweepInterval)
		if err != nil {
			return nil, &ParseError{Path: path, Message: fmt.Sprintf("sweep_interval: %v", err), Err: err}
		}
		cfg.SweepInterval = d
	}
	if fc.MaxDocumentSize != nil {
		cfg.MaxDocumentSize = *fc.MaxDocumentSize
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return &cfg, nil
}
