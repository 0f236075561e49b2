// Package watch re-runs a callback when a watched file changes.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 500 * time.Millisecond

// Watcher watches a single file and invokes a callback on writes.
type Watcher struct {
	file     string
	callback func() error
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// New creates a watcher for the given file. The containing directory is
// watched so editors that replace the file atomically are still seen.
func New(file string, callback func() error) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		fw.Close()
		return nil, err
	}

	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	return &Watcher{
		file:     absPath,
		callback: callback,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// Start runs the callback once, then again after each write to the
// file, debounced so editor save bursts trigger a single run.
func (w *Watcher) Start() error {
	if err := w.callback(); err != nil {
		return err
	}

	go func() {
		timer := time.NewTimer(debounce)
		timer.Stop()
		var pending <-chan time.Time

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if eventPath, err := filepath.Abs(event.Name); err == nil && eventPath == w.file {
					timer.Reset(debounce)
					pending = timer.C
				}

			case <-pending:
				if err := w.callback(); err != nil {
					fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				}
				pending = nil

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
