package main

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pontaoski/lang/reader"
	"github.com/ztrue/tracerr"
)

// watchSources calls fn for every source file in dir that is created or
// written, until ctx is done.
func watchSources(ctx context.Context, dir, suffix string, fn func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return tracerr.Wrap(err)
	}
	plog.Infof("watching %s for changes", dir)

	debounceEvents(ctx, 125*time.Millisecond, watcher, func(event fsnotify.Event) {
		if !reader.HasSuffix(event.Name, suffix) || isEditorFile(event.Name) {
			return
		}
		fn(event.Name)
	})
	return nil
}

// isEditorFile matches swap, backup and autosave files of vim and Emacs.
func isEditorFile(path string) bool {
	base := filepath.Base(path)
	ext := filepath.Ext(path)
	return (len(ext) == 4 && strings.HasPrefix(ext, ".sw")) ||
		strings.HasSuffix(base, "~") ||
		strings.HasPrefix(base, ".#") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"))
}

func debounceEvents(ctx context.Context, interval time.Duration, watcher *fsnotify.Watcher, fn func(event fsnotify.Event)) {
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	has := func(ev fsnotify.Event, op fsnotify.Op) bool {
		return ev.Op&op == op
	}

	for {
		select {
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			plog.Errorf("file watch error: %v", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !has(ev, fsnotify.Create) && !has(ev, fsnotify.Write) {
				continue
			}
			mu.Lock()
			t, ok := timers[ev.Name]
			mu.Unlock()
			if !ok {
				ev := ev
				t = time.AfterFunc(math.MaxInt64, func() {
					fn(ev)
					mu.Lock()
					defer mu.Unlock()
					delete(timers, ev.Name)
				})
				t.Stop()

				mu.Lock()
				timers[ev.Name] = t
				mu.Unlock()
			}
			t.Reset(interval)
		case <-ctx.Done():
			return
		}
	}
}
