package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/esdlgen/compiler/gen"
)

// Config is the optional yaml configuration file. Command-line flags
// take precedence over it.
type Config struct {
	Module      string            `yaml:"module,omitempty"`
	Out         string            `yaml:"out,omitempty"`
	Lint        bool              `yaml:"lint,omitempty"`
	ScalarTypes map[string]string `yaml:"scalar_types,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// options returns the translation options described by the config.
func (c *Config) options() []gen.Option {
	var opts []gen.Option
	if c.Module != "" {
		opts = append(opts, gen.WithModule(c.Module))
	}
	for name, target := range c.ScalarTypes {
		opts = append(opts, gen.WithScalarType(name, target))
	}
	return opts
}
