package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Coderrob/angular-snippet-generator/pkg/parser"
)

// Watcher regenerates the snippet file whenever source files under the
// watched root change. Rapid event bursts for one file are debounced
// into a single regeneration.
type Watcher struct {
	watcher *fsnotify.Watcher
	gen     *Generator
	tracker *ChangeTracker
	logger  *slog.Logger
	options WatchOptions

	rootDir string
	cfg     Config
	output  string

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	// Regenerations run one at a time; overlapping file events queue
	// up behind this lock.
	genMu sync.Mutex

	stopChan chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// WatchOptions configures watch behavior.
type WatchOptions struct {
	// DebounceMs is the delay before a changed file triggers
	// regeneration. Default: 200ms.
	DebounceMs int
}

// DefaultWatchOptions returns the recommended watch options.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// NewWatcher creates a watcher driving gen. The caller keeps ownership
// of gen and closes it after Stop.
func NewWatcher(gen *Generator, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher:        fsw,
		gen:            gen,
		tracker:        NewChangeTracker(0, logger),
		logger:         logger,
		options:        options,
		debounceTimers: make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}, nil
}

// Start runs one full generation, then begins watching rootDir and all
// its non-ignored subdirectories in a background goroutine.
func (w *Watcher) Start(rootDir string, cfg Config, outputPath string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher already stopped")
	}
	w.rootDir = rootDir
	w.cfg = cfg
	w.output = outputPath
	w.mu.Unlock()

	w.regenerate()

	if err := w.watcher.Add(rootDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", rootDir, err)
	}

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Keep walking past unreadable entries.
		}
		if !info.IsDir() {
			return nil
		}
		if w.shouldIgnore(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set up watches: %w", err)
	}

	w.logger.Info("watching for changes", "root", rootDir, "output", outputPath)

	go w.eventLoop()
	return nil
}

// Stop halts watching and cancels pending regenerations. Safe to call
// more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.debounceMu.Lock()
	for _, timer := range w.debounceTimers {
		timer.Stop()
	}
	w.debounceTimers = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.logger.Info("watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.shouldIgnore(path) {
		return
	}

	// New directories need their own watch before events inside them
	// arrive.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if parser.DetectLanguage(path) == parser.LanguageUnknown {
		return
	}

	w.logger.Debug("file event", "op", event.Op.String(), "file", path)

	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		w.debounceRegenerate(path)

	case event.Op&fsnotify.Create == fsnotify.Create:
		w.debounceRegenerate(path)

	case event.Op&fsnotify.Remove == fsnotify.Remove:
		w.forgetFile(path)

	case event.Op&fsnotify.Rename == fsnotify.Rename:
		w.forgetFile(path)
	}
}

// debounceRegenerate schedules a regeneration for path after the
// debounce delay, replacing any timer already pending for it.
func (w *Watcher) debounceRegenerate(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[path]; exists {
		timer.Stop()
	}

	w.debounceTimers[path] = time.AfterFunc(
		time.Duration(w.options.DebounceMs)*time.Millisecond,
		func() {
			w.regenerateFor(path)

			w.debounceMu.Lock()
			delete(w.debounceTimers, path)
			w.debounceMu.Unlock()
		},
	)
}

// regenerateFor reruns the pipeline after a change to path, unless the
// file's content is byte-identical to what was last processed.
func (w *Watcher) regenerateFor(path string) {
	w.gen.InvalidateFile(path)

	if source, err := os.ReadFile(path); err == nil && !w.tracker.Changed(path, source) {
		w.logger.Debug("content unchanged, skipping regeneration", "file", path)
		return
	}

	w.regenerate()
}

// forgetFile clears cached state for a removed file and regenerates.
// Snippets the file contributed keep their place in the output until a
// later run overwrites their titles; removal is merge-preserving.
func (w *Watcher) forgetFile(path string) {
	w.logger.Debug("source file removed", "file", path)
	w.gen.InvalidateFile(path)
	w.tracker.Forget(path)
	w.regenerate()
}

func (w *Watcher) regenerate() {
	w.genMu.Lock()
	defer w.genMu.Unlock()

	result, err := w.gen.GenerateTo(w.rootDir, w.output, w.cfg)
	if err != nil {
		w.logger.Error("regeneration failed", "error", err)
		return
	}

	w.logger.Info("snippets regenerated",
		"snippets", result.Stats.SnippetsGenerated,
		"files", result.Stats.FilesDiscovered,
		"ms", result.Stats.TotalTimeMs)
}

// shouldIgnore filters dependency and build directories out of both
// the initial walk and the event stream.
func (w *Watcher) shouldIgnore(path string) bool {
	switch filepath.Base(path) {
	case "node_modules", ".git", "dist", "build", "out", "coverage", ".angular", ".vscode":
		return true
	}
	return false
}

// Stats reports the watcher's pending work.
func (w *Watcher) Stats() WatcherStats {
	w.debounceMu.Lock()
	pending := len(w.debounceTimers)
	w.debounceMu.Unlock()

	w.mu.Lock()
	running := !w.stopped
	w.mu.Unlock()

	return WatcherStats{PendingRegenerations: pending, Running: running}
}

// WatcherStats contains watcher state counters.
type WatcherStats struct {
	PendingRegenerations int
	Running              bool
}
