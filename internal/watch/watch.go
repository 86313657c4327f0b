// Package watch triggers a fresh reload+rebake whenever a model-definition file changes on
// disk. It never mutates an existing baked Model in place -- each fired callback is expected
// to build and return a brand-new one. Grounded on jinterlante1206-AleutianLocal's
// services/trace/lock/manager.go (fsnotify.Watcher + debounced callback pattern).
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// OnChange watches the parent directory of path and invokes fn, debounced by the given
// duration, whenever path itself is written. Returns a stop func to tear down the watcher.
func OnChange(path string, debounce time.Duration, fn func()) (stop func(), err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	dir := filepath.Dir(absPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch: add %s: %w", dir, err)
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				target, err := filepath.Abs(event.Name)
				if err != nil || target != absPath {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, fn)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	stop = func() {
		close(done)
		watcher.Close()
	}
	return stop, nil
}
