package market

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned by Wait once Close has been called.
var ErrWatcherClosed = errors.New("market watcher closed")

// Watcher reports changes to a single market file. The parent directory is
// watched so editors that save by rename still trigger a change when the new
// file is created.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
}

func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve market path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error setting up file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{fw: fw, path: abs}, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Wait blocks until the market file is written or created. Renaming the file
// away and events for other files in the directory are ignored.
func (w *Watcher) Wait() error {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return ErrWatcherClosed
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				return nil
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return ErrWatcherClosed
			}
			return fmt.Errorf("market watcher: %w", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fw.Close()
}
