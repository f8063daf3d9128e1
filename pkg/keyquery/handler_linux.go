//go:build linux

package keyquery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"keyquery/internal/devinput"
	"keyquery/internal/keystate"
)

// Handler reads key state from evdev devices on Linux.
//
// Every event device found at construction is opened non-blocking and
// drained by one background goroutine every PollInterval. Devices attached
// later are only seen with WithHotplug.
type Handler struct {
	table  *keystate.Table
	poller *keystate.Poller
	logger *slog.Logger

	stop    *stopper
	cleanup runtime.Cleanup
	once    sync.Once
	err     error
}

var _ InputHandler = (*Handler)(nil)

// stopper holds everything needed to end background work. It is kept apart
// from Handler so the goroutines never reference the handler itself, which
// lets an abandoned handler be collected and its cleanup stop polling.
type stopper struct {
	cancel  context.CancelFunc
	done    chan error
	watcher *devinput.Watcher
}

func (s *stopper) shutdown() error {
	var errs []error
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close device watcher: %w", err))
		}
	}
	s.cancel()
	if err := <-s.done; err != nil {
		errs = append(errs, fmt.Errorf("close input devices: %w", err))
	}
	return errors.Join(errs...)
}

// New enumerates input devices and starts the background poller.
// Finding no readable device is not an error: the handler then reports
// every key as released.
func New(opts ...Option) (*Handler, error) {
	cfg := buildConfig(opts)
	logger := cfg.logger()

	devOpts := devinput.Options{
		Dir:           cfg.DeviceDir,
		KeyboardsOnly: cfg.KeyboardsOnly,
		Logger:        logger,
	}
	devices, err := devinput.Enumerate(devOpts)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		logger.Warn("no readable input devices; every key will report released")
	}

	sources := make([]keystate.Source, len(devices))
	paths := make([]string, len(devices))
	for i, d := range devices {
		sources[i] = d
		paths[i] = d.Path()
	}

	h := newHandler(cfg, sources, logger)

	if cfg.Hotplug {
		w, err := devinput.WatchHotplug(devOpts, paths, h.poller.Add)
		if err != nil {
			_ = h.Close()
			return nil, fmt.Errorf("start device hotplug watcher: %w", err)
		}
		h.stop.watcher = w
	}

	return h, nil
}

// newHandler wires a table and poller over sources and starts polling.
func newHandler(cfg Config, sources []keystate.Source, logger *slog.Logger) *Handler {
	table := keystate.NewTable()
	poller := keystate.NewPoller(table, sources, cfg.PollInterval, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		poller.Run(ctx)
		done <- poller.Close()
	}()

	h := &Handler{
		table:  table,
		poller: poller,
		logger: logger,
		stop:   &stopper{cancel: cancel, done: done},
	}
	h.cleanup = runtime.AddCleanup(h, func(s *stopper) { _ = s.shutdown() }, h.stop)

	logger.Debug("key state poller started", "sources", len(sources), "interval", poller.Interval())
	return h
}

// UpdateInputs is a no-op: the background poller keeps state current.
func (h *Handler) UpdateInputs() {}

// IsPressed reports whether the most recent transition of key, across all
// polled devices, was a press. State is as of the last completed poll cycle.
func (h *Handler) IsPressed(key KeyCode) bool {
	code, ok := evdevCode(key)
	if !ok {
		return false
	}
	return h.table.Pressed(code)
}

// SourceCount returns the number of devices currently polled.
func (h *Handler) SourceCount() int {
	return h.poller.SourceCount()
}

// Close stops the poller and hotplug watcher and closes every device.
// It is safe to call more than once.
func (h *Handler) Close() error {
	h.once.Do(func() {
		h.cleanup.Stop()
		h.err = h.stop.shutdown()
		h.logger.Debug("key state poller stopped", "cycles", h.poller.Cycles())
	})
	return h.err
}

// ListDevices describes the event devices in the default directory,
// or in dir when given.
func ListDevices(dir string) ([]DeviceInfo, error) {
	infos, err := devinput.ListDevices(devinput.Options{Dir: dir})
	if err != nil {
		return nil, err
	}
	out := make([]DeviceInfo, len(infos))
	for i, info := range infos {
		out[i] = DeviceInfo(info)
	}
	return out, nil
}

// Available reports whether key state can be observed with the current
// permissions, with a human readable explanation.
func Available() (bool, string) {
	readable, total, err := devinput.Access(devinput.Options{})
	switch {
	case err != nil:
		return false, fmt.Sprintf("cannot list input devices: %v", err)
	case total == 0:
		return false, "no input devices found in " + devinput.DefaultDir
	case readable == 0:
		return false, fmt.Sprintf("%d input devices found but none readable (need to be in 'input' group or run as root)", total)
	default:
		return true, fmt.Sprintf("%d of %d input devices readable", readable, total)
	}
}

// RequestAccess cannot grant device access on Linux; it reports Available.
func RequestAccess() (bool, string) {
	return Available()
}
