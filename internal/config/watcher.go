package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"nechto/internal/logging"
	"nechto/internal/topic"

	"github.com/fsnotify/fsnotify"
)

// RulesWatcher watches one rules override file and delivers freshly loaded
// tables to a callback. Editors replace files on save, so the watcher tracks
// the containing directory and filters by name; rapid save bursts are
// debounced.
type RulesWatcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	path        string
	onReload    func([]topic.Rule)
	debounceDur time.Duration
	lastEvent   time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for tests and debugging.
type WatcherStats struct {
	Reloads       int
	RejectedLoads int
	Errors        int
	LastEvent     time.Time
}

// NewRulesWatcher creates a watcher for path. onReload receives each table
// that passes validation; invalid saves are logged and skipped so a typo in
// the file never tears down the running table.
func NewRulesWatcher(path string, onReload func([]topic.Rule)) (*RulesWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &RulesWatcher{
		watcher:     fw,
		path:        filepath.Clean(path),
		onReload:    onReload,
		debounceDur: 300 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watch loop runs until Stop or ctx
// cancellation.
func (w *RulesWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	logging.Get(logging.CategoryConfig).Infow("watching rules file", "path", w.path)

	go w.run(ctx)
	return nil
}

// Stop ends the watch loop and waits for it to drain.
func (w *RulesWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}

// Stats returns a copy of the activity counters.
func (w *RulesWatcher) Stats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

func (w *RulesWatcher) run(ctx context.Context) {
	defer close(w.doneCh)
	log := logging.Get(logging.CategoryConfig)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			if time.Since(w.lastEvent) < w.debounceDur {
				w.mu.Unlock()
				continue
			}
			w.lastEvent = time.Now()
			w.stats.LastEvent = w.lastEvent
			w.mu.Unlock()

			rules, err := LoadRules(w.path)
			if err != nil {
				log.Warnw("rules reload rejected", "error", err)
				w.mu.Lock()
				w.stats.RejectedLoads++
				w.mu.Unlock()
				continue
			}
			w.onReload(rules)
			w.mu.Lock()
			w.stats.Reloads++
			w.mu.Unlock()
			log.Infow("rules reloaded", "rules", len(rules))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("watch error", "error", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		}
	}
}
