package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Adamcf123/OpenSpec/internal/templates"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period after the last change before
// an update runs.
const DefaultDebounceInterval = 100 * time.Millisecond

// UpdateFunc is called once per debounced burst of changes.
type UpdateFunc func() error

// Watcher monitors an overrides directory and calls an UpdateFunc.
type Watcher struct {
	specRoot  string
	overrides string
	update    UpdateFunc
	log       *slog.Logger
	debounce  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	fire  chan struct{}
}

// New creates a watcher for overridesDir, which lives inside specRoot and
// may not exist yet.
func New(specRoot, overridesDir string, update UpdateFunc, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		specRoot:  filepath.Clean(specRoot),
		overrides: filepath.Clean(overridesDir),
		update:    update,
		log:       log,
		debounce:  DefaultDebounceInterval,
		fire:      make(chan struct{}, 1),
	}
}

// SetDebounce changes the debounce interval. Call before Run.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run watches until ctx is cancelled. Update errors are logged and do not
// stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.specRoot); err != nil {
		return fmt.Errorf("watching %s: %w", w.specRoot, err)
	}
	if err := addIfExists(fsw, w.overrides); err != nil {
		return fmt.Errorf("watching %s: %w", w.overrides, err)
	}
	w.log.Info("watching for template overrides", "dir", w.overrides)

	defer w.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.fire:
			w.log.Debug("overrides changed, updating")
			if err := w.update(); err != nil {
				w.log.Error("update failed", "error", err)
			}

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if path == w.overrides && event.Has(fsnotify.Create) {
		if err := fsw.Add(path); err != nil {
			w.log.Warn("could not watch overrides directory", "dir", path, "error", err)
		}
		return
	}

	if filepath.Dir(path) != w.overrides || !templates.IsOverrideFile(filepath.Base(path)) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.log.Debug("override change detected", "file", filepath.Base(path), "op", event.Op.String())
	w.schedule()
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func addIfExists(fsw *fsnotify.Watcher, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fsw.Add(dir)
}
