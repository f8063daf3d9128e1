//go:build linux

package devinput

import (
	"errors"
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"keyquery/internal/keystate"
)

// eventSize is sizeof(struct input_event) on this architecture.
const eventSize = int(unsafe.Sizeof(unix.Timeval{})) + 8

// readBatch is the number of records fetched per read(2).
const readBatch = 64

// ErrPermissionDenied is returned when a device node cannot be opened for
// reading.
var ErrPermissionDenied = errors.New("devinput: permission denied (need 'input' group or root)")

// Device is one evdev node opened in non-blocking mode.
type Device struct {
	path   string
	name   string
	fd     int
	buf    []byte
	dec    decoder
	closed bool
}

// OpenDevice opens path for non-blocking reads. name is informational and
// may be empty.
func OpenDevice(path, name string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
			return nil, fmt.Errorf("open %s: %w", path, ErrPermissionDenied)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := &Device{
		path: path,
		name: name,
		fd:   fd,
		buf:  make([]byte, eventSize*readBatch),
	}
	d.dec.snapshot = d.keyState
	return d, nil
}

// Path returns the device node path.
func (d *Device) Path() string {
	return d.path
}

// Name implements keystate.Source.
func (d *Device) Name() string {
	if d.name == "" {
		return filepath.Base(d.path)
	}
	return fmt.Sprintf("%s (%s)", d.name, filepath.Base(d.path))
}

// Fetch implements keystate.Source. It keeps reading while the device
// returns records that carry no key transitions, so one call yields either
// key events or ErrWouldBlock.
func (d *Device) Fetch(dst []keystate.Event) ([]keystate.Event, error) {
	if d.closed {
		return dst, fmt.Errorf("%s: %w", d.path, keystate.ErrSourceGone)
	}
	for {
		n, err := d.read()
		if err != nil {
			return dst, err
		}
		if n == 0 {
			return dst, keystate.ErrWouldBlock
		}
		before := len(dst)
		dst = d.dec.decode(d.buf[:n], eventSize, dst)
		if len(dst) > before {
			return dst, nil
		}
	}
}

// read is the only place touching the raw descriptor. It classifies errno
// values into the keystate error taxonomy.
func (d *Device) read() (int, error) {
	n, err := unix.Read(d.fd, d.buf)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, unix.EAGAIN), errors.Is(err, unix.EINTR):
		return 0, keystate.ErrWouldBlock
	case errors.Is(err, unix.ENODEV):
		return 0, fmt.Errorf("%s: %w", d.path, keystate.ErrSourceGone)
	default:
		return 0, fmt.Errorf("read %s: %w", d.path, err)
	}
}

// keyState fills bits with the device's current key bitmap (EVIOCGKEY).
func (d *Device) keyState(bits []byte) error {
	req := uintptr(2)<<30 | uintptr(len(bits))<<16 | uintptr('E')<<8 | 0x18
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(unsafe.Pointer(&bits[0])))
	if errno != 0 {
		return fmt.Errorf("read key state %s: %w", d.path, errno)
	}
	return nil
}

// Close implements keystate.Source. It is safe to call more than once.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return unix.Close(d.fd)
}
