// Package watch implements the CLI's `--watch` flag: re-run a script file
// every time it changes on disk.
//
// Grounded on the use of fsnotify for config-file reload
// (kubernetes-kube-state-metrics's internal/wrapper.go, viper.WatchConfig),
// here applied directly to fsnotify rather than through viper since this
// watches the script being run, not a config file.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Run calls rerun once immediately, then again every time path's contents
// change, until ctx is canceled. rerun errors are not fatal to the watch
// loop — they are the caller's job to report.
func Run(ctx context.Context, path string, rerun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	rerun()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				rerun()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
