//go:build linux

package devinput

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	evdev "github.com/holoplot/go-evdev"
)

// DefaultDir is where the kernel exposes evdev nodes.
const DefaultDir = "/dev/input"

// Options controls device enumeration.
type Options struct {
	// Dir holds the event* nodes. Empty means DefaultDir.
	Dir string

	// KeyboardsOnly skips devices that do not advertise both KEY_A and
	// KEY_ENTER. Devices whose capabilities cannot be probed are skipped too.
	KeyboardsOnly bool

	// Logger receives per-device diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) dir() string {
	if o.Dir == "" {
		return DefaultDir
	}
	return o.Dir
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// DeviceInfo describes an evdev node.
type DeviceInfo struct {
	Path     string
	Name     string
	Keyboard bool
	// Probed is false when the capability ioctls failed (no permission or
	// not an evdev node); Name and Keyboard are then unknown.
	Probed bool
}

// IsEventNode reports whether a file name looks like an evdev node.
func IsEventNode(name string) bool {
	num, ok := strings.CutPrefix(name, "event")
	if !ok || num == "" {
		return false
	}
	_, err := strconv.Atoi(num)
	return err == nil
}

// ListPaths returns the event* nodes in dir ordered by event number.
func ListPaths(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "event*"))
	if err != nil {
		return nil, err
	}

	paths := matches[:0]
	for _, m := range matches {
		if IsEventNode(filepath.Base(m)) {
			paths = append(paths, m)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return eventNumber(paths[i]) < eventNumber(paths[j])
	})
	return paths, nil
}

func eventNumber(path string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(filepath.Base(path), "event"))
	return n
}

// Probe reads the device name and key capabilities through the evdev ioctls.
func Probe(path string) DeviceInfo {
	info := DeviceInfo{Path: path}

	dev, err := evdev.Open(path)
	if err != nil {
		return info
	}
	defer dev.Close()

	info.Probed = true
	if name, err := dev.Name(); err == nil {
		info.Name = name
	}

	var hasA, hasEnter bool
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		switch code {
		case evdev.KEY_A:
			hasA = true
		case evdev.KEY_ENTER:
			hasEnter = true
		}
	}
	info.Keyboard = hasA && hasEnter
	return info
}

// ListDevices probes every node in the configured directory.
func ListDevices(opts Options) ([]DeviceInfo, error) {
	paths, err := ListPaths(opts.dir())
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	infos := make([]DeviceInfo, 0, len(paths))
	for _, p := range paths {
		infos = append(infos, Probe(p))
	}
	return infos, nil
}

// open probes and opens a single node according to opts. It returns
// (nil, nil) when the device is filtered out.
func open(path string, opts Options) (*Device, error) {
	info := Probe(path)
	if opts.KeyboardsOnly && !info.Keyboard {
		return nil, nil
	}
	return OpenDevice(path, info.Name)
}

// Enumerate opens every matching node. Nodes that cannot be opened are
// logged and skipped, so an empty result is valid. The error is reserved
// for failing to list the directory.
func Enumerate(opts Options) ([]*Device, error) {
	logger := opts.logger()

	paths, err := ListPaths(opts.dir())
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	var devices []*Device
	for _, p := range paths {
		dev, err := open(p, opts)
		if err != nil {
			logger.Warn("skipping input device", "path", p, "error", err)
			continue
		}
		if dev == nil {
			logger.Debug("ignoring non-keyboard device", "path", p)
			continue
		}
		logger.Debug("opened input device", "source", dev.Name())
		devices = append(devices, dev)
	}

	logger.Debug("input devices enumerated", "dir", opts.dir(), "opened", len(devices), "candidates", len(paths))
	return devices, nil
}

// Access counts the event nodes in the configured directory and how many
// of them this process can open.
func Access(opts Options) (readable, total int, err error) {
	paths, err := ListPaths(opts.dir())
	if err != nil {
		return 0, 0, fmt.Errorf("list input devices: %w", err)
	}
	for _, p := range paths {
		dev, err := OpenDevice(p, "")
		if err != nil {
			continue
		}
		readable++
		_ = dev.Close()
	}
	return readable, len(paths), nil
}
