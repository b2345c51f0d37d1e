package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading.
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
}

// LoadFromFile loads a Config from a YAML file, layered over defaults.
func LoadFromFile(path string, opts LoadOptions) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		config.resolvePaths(filepath.Dir(path))
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

func (c *Config) resolvePaths(baseDir string) {
	resolve := func(p *string) {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
	resolve(&c.Input.Plan.Path)
	resolve(&c.Output.GraphJSON)
	resolve(&c.Output.STL)
	resolve(&c.Output.ThreeMF)
	resolve(&c.Output.Section)
}
