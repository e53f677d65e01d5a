package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/walker"
)

// DefaultDebounce collapses bursts of editor writes into one reload.
const DefaultDebounce = 300 * time.Millisecond

// WatchConfig names the inputs whose changes trigger a reload.
type WatchConfig struct {
	ContentPath string // Local content document; empty when it is remote.
	ShellPath   string // Page shell; empty for the built-in page.
	StaticDir   string // Watched recursively; empty to skip.
	Exclude     []string
	Debounce    time.Duration
}

// Watcher reloads a Store when its inputs change on disk.
type Watcher struct {
	store    *Store
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
	debounce time.Duration
	exclude  []string

	contentPath string
	shellPath   string
	staticDir   string
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatchLogger sets the logger.
func WithWatchLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher starts watching the configured paths. Files are watched
// through their parent directory so editors that save by rename are seen.
func NewWatcher(store *Store, cfg WatchConfig, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		store:    store,
		logger:   zap.NewNop(),
		fsw:      fsw,
		debounce: cfg.Debounce,
		exclude:  cfg.Exclude,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.contentPath, err = absOrEmpty(cfg.ContentPath); err != nil {
		fsw.Close()
		return nil, err
	}
	if w.shellPath, err = absOrEmpty(cfg.ShellPath); err != nil {
		fsw.Close()
		return nil, err
	}
	if w.staticDir, err = absOrEmpty(cfg.StaticDir); err != nil {
		fsw.Close()
		return nil, err
	}

	for _, file := range []string{w.contentPath, w.shellPath} {
		if file == "" {
			continue
		}
		if err := fsw.Add(filepath.Dir(file)); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", filepath.Dir(file), err)
		}
	}
	if w.staticDir != "" {
		if err := w.addTree(w.staticDir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// addTree watches dir and every non-excluded directory below it.
func (w *Watcher) addTree(dir string) error {
	return walker.WalkDirs(walker.Config{RootDir: dir, Exclude: w.exclude}, func(d string) error {
		if err := w.fsw.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
		return nil
	}, func(string, string, os.DirEntry) error { return nil })
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Has(fsnotify.Create) && w.inStatic(event.Name) && isDir(event.Name) {
				if err := w.addTree(event.Name); err != nil {
					w.logger.Warn("watching new directory failed", zap.String("path", event.Name), zap.Error(err))
				}
			}
			w.logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			// Failures are logged by Load; the previous snapshot stays live.
			_ = w.store.Load(ctx)
		}
	}
}

// relevant reports whether an event touches a watched input.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == w.contentPath || name == w.shellPath {
		return true
	}
	if !w.inStatic(name) {
		return false
	}
	rel, err := filepath.Rel(w.staticDir, name)
	if err != nil {
		return false
	}
	return !walker.MatchesExclude(rel, w.exclude)
}

func (w *Watcher) inStatic(name string) bool {
	if w.staticDir == "" {
		return false
	}
	return name == w.staticDir || strings.HasPrefix(name, w.staticDir+string(filepath.Separator))
}

func absOrEmpty(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
