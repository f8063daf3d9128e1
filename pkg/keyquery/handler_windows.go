//go:build windows

package keyquery

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// asyncKeyDownMask is the GetAsyncKeyState bit set while a key is down.
const asyncKeyDownMask = 0x8000

// Handler queries GetAsyncKeyState on every call. It holds no state and
// runs no background work.
type Handler struct {
	query  syncQuery
	logger *slog.Logger
}

var _ InputHandler = (*Handler)(nil)

// New resolves GetAsyncKeyState. Device options are ignored on Windows.
func New(opts ...Option) (*Handler, error) {
	cfg := buildConfig(opts)
	logger := cfg.logger()

	if err := procGetAsyncKeyState.Find(); err != nil {
		return nil, fmt.Errorf("%w: resolve GetAsyncKeyState: %w", ErrNotAvailable, err)
	}
	logger.Debug("using GetAsyncKeyState backend")

	return &Handler{
		query: syncQuery{
			native: virtualKey,
			state:  asyncKeyState,
			down:   asyncKeyDownMask,
		},
		logger: logger,
	}, nil
}

// asyncKeyState is the only call into user32. GetAsyncKeyState returns a
// SHORT; the error return of Call is always set and carries no meaning.
func asyncKeyState(vk uint16) (uint16, error) {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(r), nil
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

// ListDevices is not supported: Windows exposes no per-device key state.
func ListDevices(dir string) ([]DeviceInfo, error) {
	return nil, ErrNotAvailable
}

// Available always succeeds: GetAsyncKeyState needs no permission.
func Available() (bool, string) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return false, fmt.Sprintf("GetAsyncKeyState unavailable: %v", err)
	}
	return true, "GetAsyncKeyState available (no special permissions required)"
}

// RequestAccess reports Available.
func RequestAccess() (bool, string) {
	return Available()
}
