//go:build linux

package devinput

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"keyquery/internal/keystate"
)

// Watcher follows evdev nodes created after enumeration and hands newly
// opened devices to a sink (normally keystate.Poller.Add).
//
// udev may create a node before granting read permission, so a node that
// fails to open is retried on its next attribute change.
type Watcher struct {
	opts  Options
	fs    *fsnotify.Watcher
	sink  func(keystate.Source) bool
	known map[string]bool
	done  chan struct{}
}

// WatchHotplug starts watching opts.Dir. known lists paths that are already
// open and must not be opened again.
func WatchHotplug(opts Options, known []string, sink func(keystate.Source) bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create device watcher: %w", err)
	}
	if err := fsw.Add(opts.dir()); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", opts.dir(), err)
	}

	w := &Watcher{
		opts:  opts,
		fs:    fsw,
		sink:  sink,
		known: make(map[string]bool, len(known)),
		done:  make(chan struct{}),
	}
	for _, p := range known {
		w.known[p] = true
	}

	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	logger := w.opts.logger()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("device watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !IsEventNode(filepath.Base(event.Name)) {
		return
	}
	logger := w.opts.logger()

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		// The open Device reports ENODEV on its own and is dropped by the
		// poller; forget the path so a re-created node is picked up.
		delete(w.known, event.Name)

	case event.Has(fsnotify.Create), event.Has(fsnotify.Chmod):
		if w.known[event.Name] {
			return
		}
		dev, err := open(event.Name, w.opts)
		if err != nil {
			if errors.Is(err, ErrPermissionDenied) {
				logger.Debug("hot-plugged device not readable yet", "path", event.Name)
			} else {
				logger.Warn("cannot open hot-plugged device", "path", event.Name, "error", err)
			}
			return
		}
		if dev == nil {
			return
		}
		w.known[event.Name] = true
		if w.sink(dev) {
			logger.Info("input device attached", "source", dev.Name())
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}
