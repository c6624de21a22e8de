package vapesort

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// ConfigWatcher reports writes to a config file. It watches the parent
// directory so editors that replace the file by rename are still seen.
// Events only carries paths; reloading happens on the game loop.
type ConfigWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

// run coalesces bursts of writes: a path is sent once the file has been
// quiet for watchDebounce.
func (cw *ConfigWatcher) run() {
	var settle <-chan time.Time
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !cw.matches(event.Name) {
				continue
			}
			settle = time.After(watchDebounce)
		case <-settle:
			settle = nil
			select {
			case cw.Events <- cw.path:
			case <-cw.closeCh:
				return
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case cw.Errors <- err:
			default:
			}
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ConfigWatcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == cw.path
}

// Poll drains pending notifications without blocking and reloads the file
// once if anything changed. Watcher errors are logged; they never hide a
// change. A nil config means nothing to apply; the error is from loading.
func (cw *ConfigWatcher) Poll() (*Config, error) {
	changed := false
drain:
	for {
		select {
		case <-cw.Events:
			changed = true
		case err := <-cw.Errors:
			log.Printf("config watch %s: %v", cw.path, err)
		default:
			break drain
		}
	}
	if !changed {
		return nil, nil
	}
	return LoadConfig(cw.path)
}
