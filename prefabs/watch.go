package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edited level, player and script files. Names arrive on
// Events already cleaned to the form Load and LoadScript accept.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *zap.Logger
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(log *zap.Logger, dirs ...string) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		log.Debug("prefabs: watching", zap.String("dir", dir))
	}

	watcher := &Watcher{
		watcher: w,
		log:     log,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
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
			name, ok := watchedName(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[name]; seen && now.Sub(t) < watchDebounce {
				continue
			}
			last[name] = now
			w.log.Debug("prefabs: changed", zap.String("file", name), zap.Stringer("op", event.Op))
			select {
			case w.Events <- name:
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
				w.log.Warn("prefabs: dropped watch error", zap.Error(err))
			}
		case <-w.closeCh:
			return
		}
	}
}

// watchedName maps a changed path to a prefab or script name.
func watchedName(p string) (string, bool) {
	base := filepath.Base(p)
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return base, true
	case ".tengo":
		return "scripts/" + base, true
	}
	return "", false
}

// IsScript reports whether a watcher event names a tengo script.
func IsScript(name string) bool {
	return strings.HasPrefix(name, "scripts/")
}
