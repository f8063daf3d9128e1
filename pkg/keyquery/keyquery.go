// Package keyquery reports whether keyboard keys are currently held down,
// globally, without a window or input focus.
//
// Usage:
//
//	h, err := keyquery.New()
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	for !h.IsPressed(keyquery.KeyEsc) {
//		h.UpdateInputs()
//		if h.IsPressed(keyquery.KeySpace) {
//			fmt.Println("space is down")
//		}
//		time.Sleep(50 * time.Millisecond)
//	}
//
// Platform support (one backend is compiled in per target):
//   - Linux: reads /dev/input/event* directly. A background goroutine drains
//     every device every 5ms into a shared state table. Requires read access
//     to the device nodes ('input' group or root).
//   - Windows: GetAsyncKeyState on each query. No special permissions.
//   - macOS: CGEventSourceKeyState on each query. Requires the Input
//     Monitoring permission (System Settings > Privacy & Security). Needs cgo.
//
// Queries never fail: a key that cannot be observed reports not pressed.
package keyquery

import (
	"errors"
	"log/slog"
	"time"

	"keyquery/internal/keystate"
	"keyquery/internal/logging"
)

// InputHandler is the capability every backend provides.
type InputHandler interface {
	// UpdateInputs refreshes state for backends that need an explicit pump.
	// Every shipped backend is push-driven or queries live, so it is a
	// no-op kept for a uniform API.
	UpdateInputs()

	// IsPressed reports whether key is currently held down.
	IsPressed(key KeyCode) bool

	// Close stops background work and releases OS handles.
	Close() error
}

// ErrNotAvailable is returned by New when no backend exists for this
// platform or build.
var ErrNotAvailable = errors.New("keyquery: key state queries not available on this platform")

// ErrPermissionDenied is returned when the OS refuses access to key state.
var ErrPermissionDenied = errors.New("keyquery: insufficient permissions for key state queries")

// Config holds handler settings. Only the Linux backend uses the device
// settings; other backends ignore them.
type Config struct {
	// PollInterval is the pause between two device drain cycles.
	PollInterval time.Duration

	// KeyboardsOnly restricts polling to devices advertising letter and
	// enter keys. By default every event device is polled.
	KeyboardsOnly bool

	// Hotplug follows devices attached after New. By default the device
	// set is fixed at construction.
	Hotplug bool

	// DeviceDir overrides the evdev directory (default /dev/input).
	DeviceDir string

	// Logger receives backend diagnostics.
	Logger *slog.Logger
}

// DefaultConfig returns the settings used by New without options.
func DefaultConfig() Config {
	return Config{
		PollInterval: keystate.DefaultPollInterval,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.Default().WithComponent("keyquery").Logger
}

// Option configures a handler.
type Option func(*Config)

// WithPollInterval sets the device drain cadence.
func WithPollInterval(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.PollInterval = d
		}
	}
}

// WithKeyboardsOnly skips devices that do not look like keyboards.
func WithKeyboardsOnly(on bool) Option {
	return func(c *Config) { c.KeyboardsOnly = on }
}

// WithHotplug enables picking up devices attached after construction.
func WithHotplug(on bool) Option {
	return func(c *Config) { c.Hotplug = on }
}

// WithDeviceDir overrides the directory holding event device nodes.
func WithDeviceDir(dir string) Option {
	return func(c *Config) { c.DeviceDir = dir }
}

// WithLogger routes backend diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = keystate.DefaultPollInterval
	}
	return cfg
}
