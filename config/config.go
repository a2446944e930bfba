// Copyright 2026 The TensorTypes Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package config loads expected tensor dimensions from a YAML file, the
// kind of configuration a global-mode registry is fed from once at process
// startup.
//
// File schema:
//
//	types:
//	  EncoderInput:
//	    dims: [20, 20, 40]
//	    kind: float32
//	  TokenBatch:
//	    dims: [20, 20]
//	    kind: int64
//
// The loaded entries are looked up by wrapper type name; callers bind each
// entry to its Spec type with typed.Set.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/tensor-types/tensortypes/tensor"
	"github.com/tensor-types/tensortypes/typed"
)

// TypeSpec is one wrapper type's expected dimensions and element kind.
type TypeSpec struct {
	Dims typed.Dims `yaml:"dims"`
	Kind string     `yaml:"kind"`
}

// Config holds the expected dimensions of every configured wrapper type.
type Config struct {
	Types map[string]TypeSpec `yaml:"types"`
}

// Load reads and parses a YAML dimensions file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data and validates every entry.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for name, spec := range cfg.Types {
		if len(spec.Dims) == 0 {
			return nil, fmt.Errorf("type %s: dims must not be empty", name)
		}
		for i, d := range spec.Dims {
			if d <= 0 {
				return nil, fmt.Errorf("type %s: dimension %d is %d, must be positive", name, i, d)
			}
		}
		if _, err := ParseKind(spec.Kind); err != nil {
			return nil, fmt.Errorf("type %s: %w", name, err)
		}
	}
	return &cfg, nil
}

// Dims returns the configured dimensions for the named wrapper type.
func (c *Config) Dims(name string) (typed.Dims, bool) {
	spec, ok := c.Types[name]
	if !ok {
		return nil, false
	}
	return spec.Dims.Clone(), true
}

// Kind returns the configured element kind for the named wrapper type.
func (c *Config) Kind(name string) (tensor.DataType, bool) {
	spec, ok := c.Types[name]
	if !ok {
		return 0, false
	}
	dt, err := ParseKind(spec.Kind)
	if err != nil {
		// Parse already rejected unknown kinds.
		return 0, false
	}
	return dt, true
}

// ParseKind maps an element kind name to its tag.
func ParseKind(s string) (tensor.DataType, error) {
	switch s {
	case "float32":
		return tensor.Float32, nil
	case "float64":
		return tensor.Float64, nil
	case "int32":
		return tensor.Int32, nil
	case "int64":
		return tensor.Int64, nil
	case "uint8":
		return tensor.Uint8, nil
	case "bool":
		return tensor.Bool, nil
	default:
		return 0, fmt.Errorf("unknown element kind %q", s)
	}
}

// Env holds environment overrides for programs using this package.
type Env struct {
	// ConfigPath points at the YAML dimensions file.
	ConfigPath string `env:"TENSORTYPES_CONFIG"`
	// Verbose enables debug logging in the CLI.
	Verbose bool `env:"TENSORTYPES_VERBOSE"`
}

// FromEnv reads the TENSORTYPES_* environment variables.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}
