package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Change names a prefab or script file that was edited on disk.
type Change struct {
	// Name is relative to the prefab directory, e.g. "mutant.yaml" or
	// "scripts/mutant_anim.tengo".
	Name   string
	Script bool
}

// Watcher reports prefab edits. Events are debounced per file and delivered on
// Changes; the consumer drains it from the game loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	base := filepath.Base(path)
	switch ext {
	case ".yaml", ".yml":
		return Change{Name: base}, true
	case ".tengo":
		return Change{Name: "scripts/" + base, Script: true}, true
	}
	return Change{}, false
}
