package internal

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// WatchConfig watches the config file for external edits and delivers a
// reloaded Config on the returned channel for each change. This lets a
// token provisioned out-of-band (another device, a setup script) take
// effect without restarting the client.
//
// It returns immediately; all watch processing runs in a background
// goroutine. The returned stop function closes the watcher and the channel.
func WatchConfig(path string, logger zerolog.Logger) (<-chan *Config, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a direct file watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, nil, err
	}

	reloads := make(chan *Config, 1)
	go func() {
		defer close(reloads)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfigFrom(path)
				if err != nil {
					logger.Warn().Err(err).Msg("config changed but reload failed")
					continue
				}
				logger.Debug().Str("path", path).Msg("config reloaded")
				select {
				case reloads <- cfg:
				default:
				}

			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("config watcher error")
			}
		}
	}()

	return reloads, func() { _ = w.Close() }, nil
}
