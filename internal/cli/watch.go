package cli

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long changes accumulate before files are converted
// again. Editors often write a file in several steps.
const watchDebounce = 300 * time.Millisecond

// fileWatcher re-runs a handler for input files that change on disk.
type fileWatcher struct {
	logger  *log.Logger
	targets map[string]bool
	handle  func(ctx context.Context, path string)

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op
}

func newFileWatcher(logger *log.Logger, paths []string, handle func(context.Context, string)) *fileWatcher {
	w := &fileWatcher{
		logger:  logger,
		targets: make(map[string]bool, len(paths)),
		handle:  handle,
		pending: make(map[string]fsnotify.Op),
	}
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			w.targets[abs] = true
		}
	}
	return w
}

// dirs returns the directories holding the targets. Directories are watched
// instead of files so that atomic saves (write temp, rename) are seen.
func (w *fileWatcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for p := range w.targets {
		d := filepath.Dir(p)
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// handleFSEvent records a change to a target file.
func (w *fileWatcher) handleFSEvent(event fsnotify.Event) {
	path, err := filepath.Abs(event.Name)
	if err != nil || !w.targets[path] {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("file change detected", "path", path, "op", event.Op.String())
}

// flushPending converts every file that changed since the last flush.
func (w *fileWatcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	sort.Strings(paths)
	for _, p := range paths {
		if ctx.Err() != nil {
			return
		}
		w.handle(ctx, p)
	}
}

// run processes events until ctx is cancelled.
func (w *fileWatcher) run(ctx context.Context, fsw *fsnotify.Watcher) error {
	ticker := time.NewTicker(watchDebounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// watchInputs blocks until ctx is cancelled, calling handle for each input
// that is written.
func watchInputs(ctx context.Context, logger *log.Logger, paths []string, handle func(context.Context, string)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	w := newFileWatcher(logger, paths, handle)
	for _, d := range w.dirs() {
		if err := fsw.Add(d); err != nil {
			return err
		}
		logger.Debug("watching directory", "path", d)
	}
	return w.run(ctx, fsw)
}
