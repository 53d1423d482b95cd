package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Option configures a FileWatcher
type Option func(*FileWatcher)

// WithErrorHandler receives errors reported by the underlying watcher.
// The default prints them to stderr.
func WithErrorHandler(fn func(error)) Option {
	return func(fw *FileWatcher) {
		fw.onError = fn
	}
}

// FileWatcher watches files and calls back once per burst of changes
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
	onError   func(error)
}

// NewFileWatcher creates a watcher that waits debounce after the last
// change to a file before calling back
func NewFileWatcher(debounce time.Duration, opts ...Option) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher:   w,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		onError: func(err error) {
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		},
	}
	for _, opt := range opts {
		opt(fw)
	}
	return fw, nil
}

// Watch registers callback for every file in files
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if err := fw.watcher.Add(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}
		fw.callbacks[absPath] = callback
	}

	return nil
}

// Start dispatches events until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.onError(err)
			}
		}
	}()
}

func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.mu.Unlock()
	return fw.watcher.Close()
}

// RemoveAll stops watching every registered file
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for file := range fw.callbacks {
		if err := fw.watcher.Remove(file); err != nil {
			return err
		}
	}
	for _, timer := range fw.timers {
		timer.Stop()
	}

	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	return nil
}

// Files returns the watched absolute paths
func (fw *FileWatcher) Files() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	files := make([]string, 0, len(fw.callbacks))
	for file := range fw.callbacks {
		files = append(files, file)
	}
	return files
}
