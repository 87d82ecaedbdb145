package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const Version = 1

type Config struct {
	Version    int         `yaml:"version"`
	Package    Package     `yaml:"package"`
	Runtime    string      `yaml:"runtime"`
	Workers    int         `yaml:"workers"`
	Catalogues []Catalogue `yaml:"catalogues"`
}

// Package is the output package. Its path is a directory relative to the
// working directory and the last element is the package name.
type Package struct {
	Path string `yaml:"path"`
}

type Catalogue struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return &config, nil
}

func (c Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("unsupported version %d, expected %d", c.Version, Version)
	}

	if c.Package.Path == "" {
		return fmt.Errorf("package.path is required")
	}

	if len(c.Catalogues) == 0 {
		return fmt.Errorf("at least one catalogue is required")
	}

	for i, cat := range c.Catalogues {
		if cat.Path == "" {
			return fmt.Errorf("catalogues[%d].path is required", i)
		}
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	return nil
}
