package site

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher triggers rebuilds when files under the source directory change.
// Events are debounced so editor save bursts collapse into one rebuild.
type Watcher struct {
	sourceDir    string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	rebuild      func()
}

// NewWatcher creates a watcher over sourceDir that calls rebuild after
// changes settle.
func NewWatcher(sourceDir string, rebuild func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		sourceDir:    sourceDir,
		watcher:      fsw,
		debounceTime: 500 * time.Millisecond,
		rebuild:      rebuild,
	}

	// fsnotify does not recurse; register every subdirectory.
	err = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != sourceDir {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", sourceDir, err)
	}

	return w, nil
}

// Run processes events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if shouldIgnoreEvent(event.Name) {
				continue
			}
			// New directories must be registered to keep recursing.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watcher.Add(event.Name); err == nil {
						slog.Debug("Watching new directory", "path", event.Name)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.debounceTime)
				timerC = timer.C
			} else {
				timer.Reset(w.debounceTime)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", "error", err)
		case <-timerC:
			timer = nil
			timerC = nil
			w.rebuild()
		}
	}
}

// shouldIgnoreEvent filters editor temp files and hidden paths.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "#") {
		return true
	}
	return strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, "~")
}
