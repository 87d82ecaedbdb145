package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grom-dev/bot-api-spec/internal/config"
	"github.com/grom-dev/bot-api-spec/internal/gen"
	"github.com/grom-dev/bot-api-spec/internal/model/catalogue"
	"github.com/grom-dev/bot-api-spec/internal/registry"
	"github.com/grom-dev/bot-api-spec/internal/resolve"
	"github.com/rs/zerolog"
	"github.com/zeebo/blake3"
)

const ConfigFile = "botapigen.yaml"

type Settings struct {
	WorkingDir string
	Logger     zerolog.Logger
}

// Summary describes a catalogue that loaded and resolved.
type Summary struct {
	Files        []string
	Declarations int
	Unions       int
	BackRefs     int
	Digest       string
}

// Run generates the bindings configured in the working directory.
func Run(s Settings) error {
	cfg, err := config.Read(filepath.Join(s.WorkingDir, ConfigFile))
	if err != nil {
		return err
	}

	graph, summary, err := load(s, *cfg)
	if err != nil {
		return err
	}

	outDir := filepath.Join(s.WorkingDir, cfg.Package.Path)

	out, err := gen.Generate(graph, gen.Options{
		Package: filepath.Base(cfg.Package.Path),
		Runtime: cfg.Runtime,
		Workers: cfg.Workers,
		Header:  []string{"Catalogue digest: blake3:" + summary.Digest},
	})
	if err != nil {
		return err
	}

	if err := out.Write(outDir); err != nil {
		return err
	}

	s.Logger.Info().
		Str("dir", outDir).
		Int("files", len(out.Files)).
		Msg("bindings written")

	return nil
}

// Check loads and resolves the configured catalogues without writing
// anything.
func Check(s Settings) (*Summary, error) {
	cfg, err := config.Read(filepath.Join(s.WorkingDir, ConfigFile))
	if err != nil {
		return nil, err
	}

	_, summary, err := load(s, *cfg)
	return summary, err
}

func load(s Settings, cfg config.Config) (*resolve.Graph, *Summary, error) {
	files, err := getCatalogueFiles(s, cfg)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no catalogue files matched")
	}

	for _, f := range files {
		s.Logger.Debug().Str("file", f).Msg("reading catalogue")
	}

	decls, err := catalogue.ReadFiles(files)
	if err != nil {
		return nil, nil, err
	}

	reg, err := registry.Load(decls)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	graph, err := resolve.Resolve(reg)
	if err != nil {
		return nil, nil, err
	}

	digest, err := digestFiles(files)
	if err != nil {
		return nil, nil, err
	}

	summary := &Summary{
		Files:        files,
		Declarations: reg.Len(),
		BackRefs:     len(graph.BackRefs()),
		Digest:       digest,
	}

	for d := range reg.All() {
		if d.IsUnion() {
			summary.Unions += 1
		}
	}

	s.Logger.Info().
		Int("declarations", summary.Declarations).
		Int("unions", summary.Unions).
		Int("backRefs", summary.BackRefs).
		Msg("catalogue resolved")

	return graph, summary, nil
}

// getCatalogueFiles resolves the catalogue globs of the config. Files are
// returned in config order, each glob's matches sorted, and a file matched
// by several globs is only returned once.
func getCatalogueFiles(s Settings, cfg config.Config) ([]string, error) {
	paths := make([]string, 0)
	seen := make(map[string]bool)

	for _, c := range cfg.Catalogues {
		path := filepath.Join(s.WorkingDir, c.Path)

		files, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf(`failed to resolve catalogue files using glob "%s": %w`, c.Path, err)
		}

		for _, f := range files {
			if seen[f] {
				continue
			}

			seen[f] = true
			paths = append(paths, f)
		}
	}

	return paths, nil
}

// digestFiles hashes the catalogue files in order. The digest is stamped
// into generated files so stale bindings can be spotted.
func digestFiles(files []string) (string, error) {
	h := blake3.New()

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf(`failed to read catalogue file "%s": %w`, f, err)
		}

		fmt.Fprintf(h, "%s\x00%d\x00", filepath.Base(f), len(data))
		h.Write(data)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
