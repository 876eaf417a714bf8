package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow drops repeated events for the same file; editors often
// write a file several times per save.
const debounceWindow = 100 * time.Millisecond

// Watcher reports edited tuning and script files by their prefab name
// (e.g. "tuning.yaml", "scripts/hop.tengo") so the host can hot-reload them.
type Watcher struct {
	// Events carries prefab names. It is closed once the watcher stops.
	Events chan string
	// Errors carries at most one pending watch error; extra errors are
	// dropped while it is full. It is closed once the watcher stops.
	Errors chan error

	fs   *fsnotify.Watcher
	stop chan struct{}
	once sync.Once
}

// NewWatcher starts watching dirs for tuning and script edits. Every dir
// must exist; on failure nothing is left running.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: watch: %w", err)
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		fs:     fs,
		stop:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. Calling it again, or on a nil Watcher, is a no-op.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.Events)
	defer close(w.Errors)

	seen := debouncer{window: debounceWindow, last: make(map[string]time.Time)}
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(event) || !seen.ready(event.Name, time.Now()) {
				continue
			}
			select {
			case w.Events <- prefabName(event.Name):
			case <-w.stop:
				return
			}
		}
	}
}

// relevant reports whether event edits a file the game reloads. Removals
// are ignored; the last loaded copy stays in effect.
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return isSpecFile(event.Name) || isScriptFile(event.Name)
}

type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

// ready records name at now and reports whether it is outside the window of
// the previous accepted event for the same name.
func (d *debouncer) ready(name string, now time.Time) bool {
	if t, ok := d.last[name]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[name] = now
	return true
}

func prefabName(path string) string {
	base := filepath.Base(path)
	if isScriptFile(path) {
		return "scripts/" + base
	}
	return base
}

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
