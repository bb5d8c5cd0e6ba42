package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestFileWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "go.obo")
	other := filepath.Join(dir, "go.owl")

	var handled []string
	w := newFileWatcher(quietLogger(), []string{target}, func(_ context.Context, path string) {
		handled = append(handled, path)
	})

	w.handleFSEvent(fsnotify.Event{Name: target, Op: fsnotify.Write})
	w.handleFSEvent(fsnotify.Event{Name: target, Op: fsnotify.Write})
	w.handleFSEvent(fsnotify.Event{Name: target, Op: fsnotify.Chmod})
	w.handleFSEvent(fsnotify.Event{Name: other, Op: fsnotify.Create})

	w.flushPending(context.Background())
	if len(handled) != 1 || handled[0] != target {
		t.Fatalf("handled = %v, want [%s]", handled, target)
	}

	// Nothing pending: a second flush is a no-op.
	w.flushPending(context.Background())
	if len(handled) != 1 {
		t.Errorf("handled = %v after empty flush", handled)
	}
}

func TestFileWatcherRemoveIgnored(t *testing.T) {
	target := filepath.Join(t.TempDir(), "go.obo")
	called := false
	w := newFileWatcher(quietLogger(), []string{target}, func(context.Context, string) { called = true })

	w.handleFSEvent(fsnotify.Event{Name: target, Op: fsnotify.Remove})
	w.flushPending(context.Background())
	if called {
		t.Error("removed file should not be converted")
	}
}

func TestFileWatcherDirs(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	w := newFileWatcher(quietLogger(), []string{
		filepath.Join(a, "x.obo"),
		filepath.Join(a, "y.obo"),
		filepath.Join(b, "z.obo"),
	}, nil)

	if got := w.dirs(); len(got) != 2 {
		t.Errorf("dirs() = %v, want 2 directories", got)
	}
}
