// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CATALOG WATCHER
// =============================================================================

// Watcher reloads a file-backed catalog when the file changes. Events
// are debounced (editors fire several per save) and reloads are rate
// limited so a pathological writer cannot spin the loader.
type Watcher struct {
	loader   *Loader
	watcher  *fsnotify.Watcher
	debounce time.Duration
	limiter  *rate.Limiter
	onReload func(Catalog)

	mu         sync.Mutex
	pendingAt  time.Time
	hasPending bool

	ctx    context.Context
	cancel context.CancelFunc
}

// DefaultDebounce is how long a change must settle before a reload.
const DefaultDebounce = 500 * time.Millisecond

// NewWatcher creates a watcher over the loader's file path. onReload is
// called with the freshly loaded catalog after each settled change.
func NewWatcher(loader *Loader, onReload func(Catalog)) (*Watcher, error) {
	if loader == nil || loader.Path == "" {
		return nil, errors.New("catalog watcher requires a file-backed loader")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		loader:   loader,
		watcher:  fsWatcher,
		debounce: DefaultDebounce,
		// At most one reload every two seconds, with a little burst
		// headroom for the first change.
		limiter:  rate.NewLimiter(rate.Every(2*time.Second), 2),
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching. The parent directory is watched rather than
// the file itself, so atomic rename-into-place saves are seen too.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.loader.Path)); err != nil {
		return err
	}

	go w.processEvents()
	go w.processPending()
	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents marks the catalog file pending on relevant events.
func (w *Watcher) processEvents() {
	target := filepath.Clean(w.loader.Path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pendingAt = time.Now()
			w.hasPending = true
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next successful event
			// still triggers a reload.
		}
	}
}

// processPending fires the reload once a pending change has settled
// past the debounce window and the rate limiter allows it.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			w.mu.Lock()
			ready := w.hasPending && time.Since(w.pendingAt) >= w.debounce
			if ready {
				w.hasPending = false
			}
			w.mu.Unlock()

			if !ready || !w.limiter.Allow() {
				continue
			}
			if w.onReload != nil {
				w.onReload(w.loader.Load(w.ctx))
			}
		}
	}
}
