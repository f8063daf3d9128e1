//go:build !linux && !windows && !(darwin && cgo)

package keyquery

// Handler is a placeholder on platforms without a backend. New always
// fails, so no usable Handler exists.
type Handler struct{}

var _ InputHandler = (*Handler)(nil)

// New returns ErrNotAvailable.
func New(opts ...Option) (*Handler, error) {
	return nil, ErrNotAvailable
}

// UpdateInputs is a no-op.
func (h *Handler) UpdateInputs() {}

// IsPressed always reports false.
func (h *Handler) IsPressed(key KeyCode) bool {
	return false
}

// Close is a no-op.
func (h *Handler) Close() error {
	return nil
}

// ListDevices returns ErrNotAvailable.
func ListDevices(dir string) ([]DeviceInfo, error) {
	return nil, ErrNotAvailable
}

// Available returns false.
func Available() (bool, string) {
	return false, "key state queries not implemented for this platform (macOS builds need cgo)"
}

// RequestAccess returns false.
func RequestAccess() (bool, string) {
	return Available()
}
