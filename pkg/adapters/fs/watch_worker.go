package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/cellar/pkg/core"
)

// Watch reports changes made to the slot file by other processes (or by this
// one). Bursts of filesystem events are debounced into a single core.Event
// whose ID is the slot key. The channel is closed when ctx is done.
func (s *Storage) Watch(ctx context.Context, key string) (<-chan core.Event, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// The directory is watched rather than the file: atomic writes replace the inode.
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event, s.config.EventBuffer)
	w := &watchWorker{
		storage: s,
		key:     key,
		pattern: key + s.config.Extension,
		events:  events,
		watcher: watcher,
	}

	s.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(fmt.Errorf("watcher: %w", err))
		} else {
			s.logger.Error("watcher failed", "error", err)
		}
	}))
	return events, nil
}

type watchWorker struct {
	storage *Storage
	key     string
	pattern string
	events  chan<- core.Event
	watcher *fsnotify.Watcher
}

// run is the main event loop. Debouncing happens in-loop with a single
// timer, so nothing can send on events after it is closed.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.storage.logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			}
		}
	}()
	defer close(w.events)
	defer w.storage.setWatcherActive(false)
	defer w.watcher.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending core.EventType
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			eType := w.classify(event)
			if eType == "" {
				continue
			}
			pending = eType
			if timer == nil {
				timer = time.NewTimer(w.storage.config.Debounce)
			} else {
				timer.Reset(w.storage.config.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.events <- core.Event{Type: pending, ID: w.key, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", wErr)
			if w.storage.config.ErrorHandler != nil {
				w.storage.config.ErrorHandler(wErr)
			}
		}
	}
}

// classify maps a filesystem event on the slot file to a journal event type.
// Events on other files (including atomic-write temp files) are ignored.
func (w *watchWorker) classify(event fsnotify.Event) core.EventType {
	matched, err := doublestar.Match(w.pattern, filepath.Base(event.Name))
	if err != nil || !matched {
		return ""
	}
	w.storage.logger.Debug("slot event received", "name", event.Name, "op", event.Op.String())

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	}
	return ""
}

func (s *Storage) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
