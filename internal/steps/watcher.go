package steps

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/tourguide/internal/logging"
)

// debounceWindow absorbs the burst of events most editors emit on save.
const debounceWindow = 50 * time.Millisecond

// Watcher watches a step manifest file and invokes a callback when it
// changes on disk. The parent directory is watched rather than the file
// itself so atomic-rename saves (write temp file, rename over target) are
// still observed.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	log      *logging.Logger
	stopCh   chan struct{}
}

// NewWatcher creates a watcher for the manifest at path. onChange runs on the
// watcher's goroutine after each (debounced) modification; callers that need
// UI-loop delivery must bridge it themselves.
func NewWatcher(path string, onChange func(), log *logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		onChange: onChange,
		log:      log,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins watching for manifest changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() {
	close(w.stopCh)
	_ = w.watcher.Close()
}

// watchLoop processes filesystem events for the manifest file.
func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer

	pending := false

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only care about write/create/rename on the manifest itself.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			pending = true
			debounceTimer.Reset(debounceWindow)

		case <-debounceTimer.C:
			if !pending {
				continue
			}
			pending = false
			if w.log != nil {
				w.log.Debug("step manifest changed", "path", w.path)
			}
			if w.onChange != nil {
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.log != nil {
				w.log.Warn("manifest watch error", "error", err)
			}
		}
	}
}
