//go:build darwin && cgo

package keyquery

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation

#include <CoreGraphics/CoreGraphics.h>
#include <stdbool.h>

static int keyDown(uint16_t code) {
    return CGEventSourceKeyState(kCGEventSourceStateCombinedSessionState, (CGKeyCode)code) ? 1 : 0;
}

static int preflightListenAccess(void) {
    return CGPreflightListenEventAccess() ? 1 : 0;
}

static int requestListenAccess(void) {
    return CGRequestListenEventAccess() ? 1 : 0;
}
*/
import "C"

import (
	"log/slog"
)

// Handler queries CGEventSourceKeyState on every call. It holds no state
// and runs no background work.
type Handler struct {
	query  syncQuery
	logger *slog.Logger
}

var _ InputHandler = (*Handler)(nil)

// New checks the Input Monitoring permission and returns a handler.
// A missing permission is logged, not fatal: queries then report released.
// Device options are ignored on macOS.
func New(opts ...Option) (*Handler, error) {
	cfg := buildConfig(opts)
	logger := cfg.logger()

	if C.preflightListenAccess() == 0 {
		logger.Warn("input monitoring permission not granted; keys may report released",
			"hint", "System Settings > Privacy & Security > Input Monitoring")
	}
	logger.Debug("using CGEventSourceKeyState backend")

	return &Handler{
		query: syncQuery{
			native: carbonKeyCode,
			state:  cgKeyState,
			down:   1,
		},
		logger: logger,
	}, nil
}

// cgKeyState is the only call into CoreGraphics for key state. The boolean
// result is mapped to bit 0.
func cgKeyState(code uint16) (uint16, error) {
	return uint16(C.keyDown(C.uint16_t(code))), nil
}

// UpdateInputs is a no-op: every query reads live state.
func (h *Handler) UpdateInputs() {}

// IsPressed reports whether key is down right now.
func (h *Handler) IsPressed(key KeyCode) bool {
	return h.query.isPressed(key)
}

// Close is a no-op.
func (h *Handler) Close() error {
	return nil
}

// ListDevices is not supported: macOS exposes no per-device key state here.
func ListDevices(dir string) ([]DeviceInfo, error) {
	return nil, ErrNotAvailable
}

// Available reports whether the Input Monitoring permission is granted.
func Available() (bool, string) {
	if C.preflightListenAccess() == 0 {
		return false, "input monitoring permission not granted (System Settings > Privacy & Security > Input Monitoring)"
	}
	return true, "input monitoring permission granted"
}

// RequestAccess shows the system Input Monitoring prompt if the permission
// has not been decided yet. A grant usually takes effect after a restart of
// the process.
func RequestAccess() (bool, string) {
	if C.requestListenAccess() == 0 {
		return false, "input monitoring permission requested; grant it and restart the program"
	}
	return true, "input monitoring permission granted"
}
