package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/myanmartools/zuc-cli/internal/core/ports/driven"
)

// DefaultReloadDelay coalesces bursts of writes into one reload.
const DefaultReloadDelay = 100 * time.Millisecond

// Watcher reloads a ConfigStore when its backing file changes and
// notifies registered callbacks.
type Watcher struct {
	store driven.ConfigStore
	delay time.Duration

	mu       sync.Mutex
	onChange []func()
	errChan  chan error
}

// NewWatcher creates a watcher for store. A delay <= 0 uses DefaultReloadDelay.
func NewWatcher(store driven.ConfigStore, delay time.Duration) *Watcher {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	return &Watcher{
		store:   store,
		delay:   delay,
		errChan: make(chan error, 1),
	}
}

// OnChange registers a callback invoked after each successful reload.
func (w *Watcher) OnChange(cb func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, cb)
}

// Errors returns a channel of reload and watch errors. Errors are
// dropped when nobody is reading.
func (w *Watcher) Errors() <-chan error {
	return w.errChan
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	path := w.store.Path()
	if path == "" {
		return fmt.Errorf("watch config: store has no backing file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.delay, func() {
				if ctx.Err() == nil {
					w.reload()
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.report(err)
		}
	}
}

func (w *Watcher) reload() {
	if err := w.store.Load(); err != nil {
		w.report(fmt.Errorf("reload config: %w", err))
		return
	}

	w.mu.Lock()
	callbacks := append([]func(){}, w.onChange...)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.errChan <- err:
	default:
	}
}
