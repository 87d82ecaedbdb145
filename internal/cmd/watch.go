package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/grom-dev/bot-api-spec/internal/config"
)

// Watch runs the generator once and then again whenever the config file
// or a catalogue file is written or created, until ctx is done. A failed
// run is logged and the previous output stays in place.
func Watch(ctx context.Context, s Settings) error {
	if err := Run(s); err != nil {
		s.Logger.Error().Err(err).Msg("generation failed")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchedDirs(s)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf(`failed to watch directory "%s": %w`, dir, err)
		}

		s.Logger.Info().Str("dir", dir).Msg("watching for changes")
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 || !isWatchedFile(s, event.Name) {
				continue
			}

			s.Logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("input changed")

			if err := Run(s); err != nil {
				s.Logger.Error().Err(err).Msg("generation failed, keeping previous output")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			s.Logger.Error().Err(err).Msg("file watcher error")

		case <-ctx.Done():
			return nil
		}
	}
}

// watchedDirs returns the working directory and the directories of the
// catalogue globs.
func watchedDirs(s Settings) ([]string, error) {
	dirs := []string{s.WorkingDir}
	seen := map[string]bool{s.WorkingDir: true}

	cfg, err := config.Read(filepath.Join(s.WorkingDir, ConfigFile))
	if err != nil {
		return nil, err
	}

	for _, c := range cfg.Catalogues {
		dir := filepath.Dir(filepath.Join(s.WorkingDir, c.Path))
		if seen[dir] {
			continue
		}

		seen[dir] = true
		dirs = append(dirs, dir)
	}

	return dirs, nil
}

// isWatchedFile reports whether name is the config file or matches one of
// the catalogue globs. The config is read again so added globs apply.
func isWatchedFile(s Settings, name string) bool {
	configPath := filepath.Join(s.WorkingDir, ConfigFile)
	if name == configPath {
		return true
	}

	cfg, err := config.Read(configPath)
	if err != nil {
		return false
	}

	for _, c := range cfg.Catalogues {
		if ok, _ := filepath.Match(filepath.Join(s.WorkingDir, c.Path), name); ok {
			return true
		}
	}

	return false
}
