package follow

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a camera profile file. Freshly parsed and validated
// configs arrive on Configs; the owner applies them between frames.
type Watcher struct {
	watcher *fsnotify.Watcher
	configs chan Config
	closeCh chan struct{}
	once    sync.Once

	path    string
	profile string
}

// WatchProfile watches path and re-reads the named profile whenever the
// file is written. The parent directory is watched rather than the file so
// editors that replace the file on save keep working.
func WatchProfile(path, profileName string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		configs: make(chan Config, 1),
		closeCh: make(chan struct{}),
		path:    path,
		profile: profileName,
	}
	go w.run()
	return w, nil
}

// Configs delivers reloaded configs. Only the latest unread config is kept.
func (w *Watcher) Configs() <-chan Config {
	return w.configs
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	base := filepath.Base(w.path)
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			// Editors fire bursts of events per save; collapse them.
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now

			cfg, ok := LoadProfile(w.path, w.profile)
			if !ok {
				log.Printf("camera profile reload failed: %s", w.path)
				continue
			}
			// Drop the stale config, keep the newest.
			select {
			case <-w.configs:
			default:
			}
			select {
			case w.configs <- cfg:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("camera profile watcher: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
