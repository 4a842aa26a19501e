package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// eventChannelBuffer is the size of the change channel.
	eventChannelBuffer = 100

	// defaultDebounce is how long changes are collected before they are reported.
	defaultDebounce = 500 * time.Millisecond
)

// excludedDirs are never watched.
var excludedDirs = map[string]bool{".git": true, "node_modules": true, "vendor": true}

// diagramWatcher reports diagram files whose content changed, at most once
// per debounce interval. Editors often write a file several times per save.
type diagramWatcher struct {
	root     string
	debounce time.Duration
	ext      string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger

	// Debouncing: collect changes before reporting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	// Last seen content hash per file
	hashes map[string]string

	changes chan string

	droppedEvents atomic.Int64
}

func newDiagramWatcher(root, ext string, debounce time.Duration, logger *slog.Logger) (*diagramWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &diagramWatcher{
		root:     root,
		debounce: debounce,
		ext:      strings.ToLower(ext),
		watcher:  fsw,
		logger:   logger,
		pending:  make(map[string]fsnotify.Op),
		hashes:   make(map[string]string),
		changes:  make(chan string, eventChannelBuffer),
	}, nil
}

// Changes returns the channel of changed diagram paths.
func (w *diagramWatcher) Changes() <-chan string {
	return w.changes
}

// Start begins watching root recursively.
func (w *diagramWatcher) Start(ctx context.Context) error {
	if err := w.addWatchesRecursive(w.root); err != nil {
		return err
	}
	go w.processEvents(ctx)

	w.logger.Info("Diagram watcher started", "root", w.root, "debounce", w.debounce)
	return nil
}

// Stop stops the watcher.
// The changes channel is closed by processEvents when it exits.
func (w *diagramWatcher) Stop() error {
	return w.watcher.Close()
}

// Seed records the current content of path so an unchanged save is not
// reported.
func (w *diagramWatcher) Seed(path string, content []byte) {
	w.hashes[path] = contentHash(content)
}

func (w *diagramWatcher) addWatchesRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if excludedDirs[base] || (strings.HasPrefix(base, ".") && path != root) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

// processEvents handles fsnotify events with debouncing.
func (w *diagramWatcher) processEvents(ctx context.Context) {
	defer close(w.changes)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *diagramWatcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if strings.ToLower(filepath.Ext(path)) != w.ext {
		// Watch directories created after start
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				base := filepath.Base(path)
				if !excludedDirs[base] && !strings.HasPrefix(base, ".") {
					if err := w.watcher.Add(path); err != nil {
						w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
					}
				}
			}
		}
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Diagram change detected", "path", path, "op", event.Op.String())
}

// flushPending reports accumulated changes whose content differs from the
// last compiled version. Removed files are forgotten.
func (w *diagramWatcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toProcess := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) {
			delete(w.hashes, path)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				w.logger.Warn("Failed to read diagram", "path", path, "error", err)
			}
			delete(w.hashes, path)
			continue
		}

		hash := contentHash(content)
		if old, ok := w.hashes[path]; ok && old == hash {
			continue
		}
		w.hashes[path] = hash

		select {
		case w.changes <- path:
		default:
			dropped := w.droppedEvents.Add(1)
			w.logger.Warn("Change channel full, dropping event", "path", path, "total_dropped", dropped)
		}
	}
}

// DroppedEvents returns the number of changes dropped due to channel overflow.
func (w *diagramWatcher) DroppedEvents() int64 {
	return w.droppedEvents.Load()
}

func contentHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
