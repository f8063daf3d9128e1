package keystate

import (
	"errors"
)

// ErrWouldBlock is returned by a non-blocking Source that has no events
// queued right now. It is expected and never logged.
var ErrWouldBlock = errors.New("keystate: no events available")

// ErrSourceGone is returned by a Source whose device has disappeared.
// The poller drops such sources.
var ErrSourceGone = errors.New("keystate: source gone")

// Source is a non-blocking stream of key events, typically one input device.
type Source interface {
	// Name identifies the source in logs.
	Name() string

	// Fetch appends the events currently available to dst and returns the
	// extended slice. It must not block: when nothing is queued it returns
	// ErrWouldBlock.
	Fetch(dst []Event) ([]Event, error)

	// Close releases the underlying handle.
	Close() error
}

// Drain fetches from src until it reports ErrWouldBlock. Events are appended
// to dst. The returned error is nil when the source was emptied normally and
// otherwise carries the first real fault; events fetched before the fault
// are still returned.
func Drain(src Source, dst []Event) ([]Event, error) {
	for {
		before := len(dst)
		var err error
		dst, err = src.Fetch(dst)
		if err != nil {
			if errors.Is(err, ErrWouldBlock) {
				return dst, nil
			}
			return dst, err
		}
		// A fetch that adds nothing ends the drain.
		if len(dst) == before {
			return dst, nil
		}
	}
}
