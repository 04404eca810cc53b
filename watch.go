package main

import (
	"context"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/fsnotify/fsnotify"
)

// Watch re-renders each file whenever it changes.
// It blocks until ctx is canceled.
//
// Directories are watched rather than the files themselves
// because many editors replace files on save,
// which would otherwise drop the watch.
func (r *Runner) Watch(ctx context.Context, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer watcher.Close()

	tracked := make(map[string]struct{}, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return errtrace.Wrap(err)
		}
		tracked[abs] = struct{}{}

		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errtrace.Wrap(err)
		}
	}

	r.Log.Printf("Watching %d file(s)", len(tracked))
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if _, ok := tracked[ev.Name]; !ok {
				continue
			}

			r.DebugLog.Printf("Changed: %v", ev.Name)
			if err := r.renderFile(ctx, ev.Name); err != nil {
				// Don't stop the watch on a bad save.
				r.Log.Printf("render %v: %v", ev.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.Log.Printf("watch: %v", err)
		}
	}
}
