package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchFile streams a signal each time the dataset file at path is rewritten,
// until ctx is cancelled. The channel is closed once ctx is done or the
// watcher hits an unrecoverable error. Bursts of writes coalesce into a
// single signal so consumers reload once per save, not once per chunk.
func WatchFile(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("store: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, errors.New("store: watch target is a directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// Editors replace files via rename, which makes a watch on the file
	// itself go stale. Watch the parent directory and filter by name.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer closeWatcher()

		notify := func() {
			select {
			case changes <- struct{}{}:
			default:
				// A pending signal already covers this burst.
			}
		}

		throttle := newChangeThrottle(250 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a change so the consumer reloads
				// and resyncs even when the event cannot be classified.
				throttle.Enqueue(notify)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				throttle.Enqueue(notify)
			}
		}
	}()

	return changes, nil
}

// changeThrottle delays notifications so a burst of filesystem activity
// produces one reload instead of one per write.
type changeThrottle struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newChangeThrottle(delay time.Duration) *changeThrottle {
	return &changeThrottle{delay: delay}
}

func (t *changeThrottle) Enqueue(fire func()) {
	t.mu.Lock()
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.mu.Lock()
			t.timer = nil
			t.mu.Unlock()
			fire()
		})
	}
	t.mu.Unlock()
}

func (t *changeThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
