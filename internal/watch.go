package internal

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/gnolang/tlogic/internal/types"
)

// debounce is how long to wait after a write before re-analyzing, so
// editors that write in several steps trigger one run.
const debounce = 100 * time.Millisecond

// ReportHandler receives the fresh reports of a watched file.
type ReportHandler func(filename string, reports []tt.Report)

// StartWatching re-analyzes the given expression files whenever they are
// written and passes the reports to onReports. Directories are watched
// rather than the files themselves so editors that replace files on save
// keep working.
func (e *Engine) StartWatching(files []string, onReports ReportHandler) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.isWatching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	targets := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()
			return fmt.Errorf("error resolving %s: %w", f, err)
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = watcher
	e.onReports = onReports
	e.isWatching = true
	go e.watchLoop(watcher, targets)
	return nil
}

// StopWatching stops a watch started with StartWatching.
func (e *Engine) StopWatching() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isWatching {
		e.logger.Warn("Not watching")
		return nil
	}

	e.isWatching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher, targets map[string]bool) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if targets[event.Name] {
				e.handleFileEvent(event)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	time.Sleep(debounce)
	reports, err := e.Run(event.Name)
	if err != nil {
		e.logger.Error("Failed to analyze file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	e.reportResults(event.Name, reports)
}

func (e *Engine) reportResults(filename string, reports []tt.Report) {
	failed := 0
	for _, r := range reports {
		if r.Failed() {
			failed++
		}
	}
	e.logger.Info("Analyzed file",
		zap.String("file", filename),
		zap.Int("expressions", len(reports)),
		zap.Int("rejected", failed))

	e.mu.Lock()
	handler := e.onReports
	e.mu.Unlock()
	if handler != nil {
		handler(filename, reports)
	}
}
