package config

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "botapigen.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRead(t *testing.T) {
	path := writeConfig(t, `
version: 1
package:
  path: gen/botapi
runtime: example.com/wire
workers: 4
catalogues:
  - path: catalogue/*.yaml
  - path: extra.json
`)

	cfg, err := Read(path)
	assert.NoError(t, err)
	assert.Equal(t, &Config{
		Version:    1,
		Package:    Package{Path: "gen/botapi"},
		Runtime:    "example.com/wire",
		Workers:    4,
		Catalogues: []Catalogue{{Path: "catalogue/*.yaml"}, {Path: "extra.json"}},
	}, cfg)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "botapigen.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(writeConfig(t, "version: [1"))
	assert.ErrorContains(t, err, "failed to unmarshal config file")
}

func TestValidate(t *testing.T) {
	valid := Config{
		Version:    1,
		Package:    Package{Path: "gen/botapi"},
		Catalogues: []Catalogue{{Path: "*.yaml"}},
	}
	assert.NoError(t, valid.Validate())

	tests := map[string]func(c *Config){
		"version":         func(c *Config) { c.Version = 2 },
		"package path":    func(c *Config) { c.Package.Path = "" },
		"no catalogues":   func(c *Config) { c.Catalogues = nil },
		"empty catalogue": func(c *Config) { c.Catalogues = []Catalogue{{}} },
		"workers":         func(c *Config) { c.Workers = -1 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			c.Catalogues = append([]Catalogue(nil), valid.Catalogues...)
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
