package content

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch emits the name of each changed page document until ctx is cancelled.
// Only *.md files in the content directory are reported. Embedded default
// content cannot change at runtime, so watching it is an error.
func (s *Store) Watch(ctx context.Context) (<-chan string, error) {
	if s.dir == "" {
		return nil, fmt.Errorf("embedded content does not support watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.dir, err)
	}

	changes := make(chan string)
	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, ".md") {
					continue
				}
				if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
					continue
				}
				s.logger.Debug("content changed", "file", event.Name, "op", event.Op.String())
				select {
				case changes <- filepath.Base(event.Name):
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("watch error", "err", err)
			}
		}
	}()

	return changes, nil
}
