package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/turtle/internal/model"
)

const defaultDebounce = 300 * time.Millisecond

// FileWatcher reports changes to a fixed set of files.
type FileWatcher interface {
	// Watch blocks until ctx is done, calling onChange for each changed path.
	// Rapid successive writes to the same file are reported once.
	Watch(ctx context.Context, paths []m.Path, onChange func(m.Path)) error
}

// FSNotifyWatcher implements FileWatcher with fsnotify. It watches the parent
// directories so that editors replacing files on save are still noticed.
type FSNotifyWatcher struct {
	debounce time.Duration
}

// NewFSNotifyWatcher constructs a watcher. A non-positive debounce uses the default.
func NewFSNotifyWatcher(debounce time.Duration) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &FSNotifyWatcher{debounce: debounce}
}

// Watch implements FileWatcher.
func (w *FSNotifyWatcher) Watch(ctx context.Context, paths []m.Path, onChange func(m.Path)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]m.Path, len(paths))
	dirs := make(map[string]struct{})

	for _, path := range paths {
		abs, err := filepath.Abs(string(path))
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}

		targets[abs] = path
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	batch := newChangeBatch(ctx, w.debounce, onChange)
	defer batch.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			path, tracked := targets[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}

			batch.add(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// changeBatch collects changed paths and reports them once the debounce
// delay passes without further changes.
type changeBatch struct {
	ctx      context.Context
	debounce time.Duration
	onChange func(m.Path)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[m.Path]struct{}
}

func newChangeBatch(ctx context.Context, debounce time.Duration, onChange func(m.Path)) *changeBatch {
	return &changeBatch{
		ctx:      ctx,
		debounce: debounce,
		onChange: onChange,
		pending:  make(map[m.Path]struct{}),
	}
}

func (b *changeBatch) add(path m.Path) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending[path] = struct{}{}

	if b.timer != nil {
		b.timer.Stop()
	}

	b.timer = time.AfterFunc(b.debounce, b.flush)
}

// flush reports the pending paths. Nothing is reported once ctx is done,
// including a flush whose timer fired while Watch was returning.
func (b *changeBatch) flush() {
	b.mu.Lock()
	paths := b.pending
	b.pending = make(map[m.Path]struct{})
	b.mu.Unlock()

	for path := range paths {
		if b.ctx.Err() != nil {
			return
		}

		b.onChange(path)
	}
}

func (b *changeBatch) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
}
