package tui

import (
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/stefanpenner/pace/pkg/catalog"
)

const watchDebounce = 200 * time.Millisecond

// Sender receives messages from background goroutines. *tea.Program
// satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// StartWatcher watches the stages directory and config file and sends
// CatalogChangedMsg after edits settle.
func StartWatcher(s *catalog.Store, program Sender) (func(), error) {
	return startWatcher(s, program, watchDebounce)
}

func startWatcher(s *catalog.Store, program Sender, debounce time.Duration) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// The root is watched for config.jsonc; editors replace files by rename,
	// so watching the file itself would lose track of it.
	for _, dir := range []string{s.Root, s.StagesDir()} {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	configName := filepath.Base(s.ConfigPath())
	relevant := func(name string) bool {
		return strings.HasSuffix(name, ".md") || filepath.Base(name) == configName
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !relevant(event.Name) {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounce, func() {
					program.Send(CatalogChangedMsg{})
				})

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}

			case <-done:
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
