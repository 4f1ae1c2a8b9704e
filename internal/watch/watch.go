// Package watch triggers rescans when the watched repository changes.
//
// Filesystem events are debounced so a burst of writes produces a single
// trigger once the tree settles.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// skipDirs are never watched.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// Watcher debounces filesystem events under a set of roots into rescan
// triggers.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	triggers chan time.Time
	stop     chan struct{}
	logger   *zap.Logger
}

// New creates a watcher over the given roots. Missing roots are tolerated;
// directories created later under a watched root are picked up as they
// appear.
func New(roots []string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsw,
		debounce: debounce,
		triggers: make(chan time.Time, 1),
		stop:     make(chan struct{}),
		logger:   logger,
	}

	for _, root := range roots {
		w.addTree(root)
	}
	return w, nil
}

// addTree registers root and every non-skipped directory beneath it.
func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || skipDirs[name]) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Debug("failed to watch directory", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
}

// Start begins processing events until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Triggers delivers one timestamp per settled burst of changes.
func (w *Watcher) Triggers() <-chan time.Time {
	return w.triggers
}

// Stop shuts the watcher down.
func (w *Watcher) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	_ = w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.addTree(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case t := <-fire:
			timer = nil
			fire = nil
			select {
			case w.triggers <- t:
			default:
				// A trigger is already pending; the rescan will see
				// these changes anyway.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}
