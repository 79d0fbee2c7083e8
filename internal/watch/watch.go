// Package watch reloads the store when the config file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/voici5986/Antigravity-Manager/internal/logging"
)

// Config watches the config file at path and calls onChange after each
// write to it. The parent directory is watched rather than the file itself
// because editors replace files on save, which would drop a file-level
// watch. Blocks until ctx is cancelled.
func Config(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}
	name := filepath.Base(path)

	logging.Infof("Watching %s for changes", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				onChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("config watcher error: %v", err)
		}
	}
}
