package sitepreview

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
)

// Watcher invalidates the page cache whenever a file under the site
// root changes, so edits show up on the next request without waiting
// out the TTL. Nothing is rebuilt; pages are re-processed lazily.
type Watcher struct {
	fsw    *fsnotify.Watcher
	cache  *PageCache
	logger echo.Logger
}

// NewWatcher starts watching root and all its subdirectories.
func NewWatcher(root string, cache *PageCache, logger echo.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fsw: fsw, cache: cache, logger: logger}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); path != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			// New directories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.fsw.Add(event.Name); err != nil {
					w.logger.Warnf("sitepreview: watch %s: %v", event.Name, err)
				}
			}
			w.logger.Debugf("sitepreview: change detected: %s (%s)", event.Name, event.Op)
			w.cache.Invalidate()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("sitepreview: watcher error: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
