package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/hydroini/pkg/logger"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

var ErrClosed = errors.New("watcher: closed")

// Watcher delivers batches of changed files.
type Watcher struct {
	fs       *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
	files    map[string]struct{}
	dirs     map[string]struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher with no files.
func New(opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: create: %w", err)
	}
	w := &Watcher{
		fs:       fs,
		logger:   logger.Discard(),
		debounce: DefaultDebounce,
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add starts watching paths. Add must not be called while Run is active.
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watcher: %s: %w", p, err)
		}
		dir := filepath.Dir(abs)
		if _, ok := w.dirs[dir]; !ok {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("watcher: watch %s: %w", dir, err)
			}
			w.dirs[dir] = struct{}{}
		}
		w.files[abs] = struct{}{}
	}
	return nil
}

// Run blocks until ctx is done, calling onChange with the sorted absolute
// paths of the files changed during each burst of events.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			name, relevant := w.relevant(event)
			if !relevant {
				continue
			}
			w.logger.Debug("file event", logger.File(name), slog.String("op", event.Op.String()))
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			onChange(changed)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			w.logger.Error("file watcher error", logger.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	_, ok := w.files[name]
	return name, ok
}

// Close releases the underlying watches.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
