package config

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the config file for changes and delivers reloaded configs.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	changes  chan *Config
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a file watcher for the given config path.
func NewWatcher(path string) (*Watcher, error) {
	if path == "" {
		path = ConfigPath()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		filePath: path,
		changes:  make(chan *Config, 1),
		done:     make(chan struct{}),
	}, nil
}

// Changes returns the channel on which reloaded configs are delivered.
// Only the most recent pending config is kept.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Start begins watching the config file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file (more reliable for writes)
	dir := filepath.Dir(w.filePath)
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cfg, err := Load(w.filePath)
				if err != nil {
					slog.Warn("failed to reload config", "path", w.filePath, "error", err)
					continue
				}
				slog.Debug("config reloaded", "path", w.filePath)

				// Drop a stale pending config so the newest wins.
				select {
				case <-w.changes:
				default:
				}
				select {
				case w.changes <- cfg:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the config watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
