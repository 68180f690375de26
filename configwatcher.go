package image3d

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher is a utility struct used to watch a config file for changes on disk. Reloaded configs are queued up by a
// background goroutine and handed out on the host's own goroutine by Update, so they never race a frame in progress.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	loaded  chan Config
	done    chan struct{}
	logger  *slog.Logger
	// OnChange is run, from within Update, for every successfully reloaded and validated config.
	OnChange func(cfg Config)
}

// NewConfigWatcher creates a new ConfigWatcher for the config file at path, running onChange for each reload. The file's
// directory is watched rather than the file itself, so editors that save by renaming a temporary file are picked up too.
func NewConfigWatcher(path string, onChange func(cfg Config), logger *slog.Logger) (*ConfigWatcher, error) {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	cw := &ConfigWatcher{
		path:     filepath.Clean(path),
		watcher:  watcher,
		loaded:   make(chan Config, 1),
		done:     make(chan struct{}),
		logger:   logger,
		OnChange: onChange,
	}

	go cw.watch()

	return cw, nil

}

func (cw *ConfigWatcher) watch() {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadConfig(cw.path)
			if err != nil {
				cw.logger.Error("config reload failed", "path", cw.path, "err", err)
				continue
			}
			cw.logger.Info("config reloaded", "path", cw.path)
			// Only the newest config matters; drop one still waiting to be picked up.
			select {
			case <-cw.loaded:
			default:
			}
			cw.loaded <- cfg
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Error("config watcher error", "err", err)
		}
	}
}

// Update hands any pending reloaded config to OnChange, and should be run once every frame. It never blocks.
func (cw *ConfigWatcher) Update() {
	select {
	case cfg := <-cw.loaded:
		if cw.OnChange != nil {
			cw.OnChange(cfg)
		}
	default:
	}
}

// Close stops watching the file.
func (cw *ConfigWatcher) Close() error {
	err := cw.watcher.Close()
	<-cw.done
	return err
}
