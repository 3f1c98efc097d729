package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/qasimmansoori/insta-chat-analyzer/internal/analyzer"
	"github.com/qasimmansoori/insta-chat-analyzer/internal/util"
)

// debounceDelay coalesces the event bursts editors and sync tools produce
// when rewriting an export file.
const debounceDelay = 500 * time.Millisecond

// runWatch runs one analysis immediately, then re-runs the full batch each
// time an export file under the watched directories changes.
func runWatch(config *analyzer.Config) error {
	dirs := watchDirs(config)
	if len(dirs) == 0 {
		return fmt.Errorf("watch mode needs a directory or at least one file")
	}

	if err := analyzer.New(config).Run(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		util.LogInfof("Watching %s for export changes", dir)
	}

	var debounce *time.Timer
	rerun := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(event.Name), ".html") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			util.LogDebugf("Export change: %s (%s)", event.Name, event.Op)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case rerun <- struct{}{}:
				default:
				}
			})
		case <-rerun:
			if err := analyzer.New(config).Run(); err != nil {
				util.LogErrorf("Analysis failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			util.LogWarnf("Watcher error: %v", err)
		}
	}
}

// watchDirs returns the directories to watch: the data dir, or the parent
// directories of the explicit files.
func watchDirs(config *analyzer.Config) []string {
	if len(config.Files) == 0 {
		if config.DataDir == "" {
			return nil
		}
		return []string{config.DataDir}
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, file := range config.Files {
		dir := filepath.Dir(file)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
