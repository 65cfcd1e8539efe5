// Package config provides the configuration for the reuse runtime: which
// pools to declare up front, how far to warm them, and the logging and
// metrics settings of the process hosting the registry.
package config

import (
	"fmt"
)

// Pool kinds accepted in PoolConfig.Kind.
const (
	KindSlice  = "slice"
	KindMap    = "map"
	KindNode   = "node"
	KindWidget = "widget"
)

// Config is the root configuration for a reuse runtime.
type Config struct {
	// Logging configures the zap logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	// Metrics configures the prometheus collector and endpoint
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
	// Pools declares the pools to register at startup
	Pools []PoolConfig `yaml:"pools" json:"pools"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects json or console output
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored levels and error stacktraces
	Development bool `yaml:"development" json:"development"`
}

// MetricsConfig controls the prometheus surface.
type MetricsConfig struct {
	// Enabled attaches the collector to the registry
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Namespace prefixes all metric names
	Namespace string `yaml:"namespace" json:"namespace"`
	// Listen is the address of the /metrics endpoint, empty to disable
	Listen string `yaml:"listen" json:"listen"`
}

// PoolConfig declares one pool.
type PoolConfig struct {
	// Key is the logical pool key, unique within the registry
	Key string `yaml:"key" json:"key"`
	// Kind selects the pool shape: slice, map, node or widget
	Kind string `yaml:"kind" json:"kind"`
	// Warm pre-fills the free-list with this many instances
	Warm int `yaml:"warm" json:"warm"`
	// Template is the widget template identifier (widget pools only)
	Template string `yaml:"template" json:"template"`
	// Attach names the widget attachment target (widget pools only)
	Attach string `yaml:"attach" json:"attach"`
}

// Default returns a configuration with sensible defaults and no pools.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "reuse",
		},
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Encoding == "" {
		c.Logging.Encoding = "json"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "reuse"
	}

	seen := make(map[string]bool, len(c.Pools))
	for i := range c.Pools {
		p := &c.Pools[i]
		if p.Key == "" {
			return fmt.Errorf("pool %d: key must not be empty", i)
		}
		if seen[p.Key] {
			return fmt.Errorf("pool %q: duplicate key", p.Key)
		}
		seen[p.Key] = true

		switch p.Kind {
		case KindSlice, KindMap, KindNode:
		case KindWidget:
			if p.Template == "" {
				return fmt.Errorf("pool %q: widget pools require a template", p.Key)
			}
		default:
			return fmt.Errorf("pool %q: unknown kind %q", p.Key, p.Kind)
		}

		if p.Warm < 0 {
			return fmt.Errorf("pool %q: warm must not be negative", p.Key)
		}
	}
	return nil
}
