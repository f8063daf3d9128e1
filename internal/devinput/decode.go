// Package devinput reads key events from Linux evdev device nodes
// (/dev/input/event*) without blocking.
//
// Each opened node is a keystate.Source. Devices are enumerated once;
// a Watcher can optionally follow devices plugged in later.
//
// Requires read access to the device nodes: add the user to the 'input'
// group or run as root.
package devinput

import (
	"encoding/binary"

	"keyquery/internal/keystate"
)

// Event types and codes from linux/input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evMsc = 0x04

	synReport  = 0
	synDropped = 3

	keyMax = 0x2ff
)

// keyBitmapLen is the size of the EVIOCGKEY state bitmap.
const keyBitmapLen = (keyMax + 8) / 8

// decodeEvents parses buf with a fresh decoder that has no state source.
func decodeEvents(buf []byte, recSize int, dst []keystate.Event) []keystate.Event {
	var dc decoder
	return dc.decode(buf, recSize, dst)
}

// decoder parses consecutive struct input_event records. Only EV_KEY press
// and release records are kept; autorepeat and every other event type are
// dropped. A trailing partial record is ignored.
//
// After SYN_DROPPED the kernel queue is incomplete: records up to and
// including the next SYN_REPORT are discarded, then the key state is read
// back through snapshot and a transition is synthesized for every key that
// differs from what the decoder last reported.
//
// The record layout is a struct timeval followed by type (u16), code (u16)
// and value (s32), all in host byte order.
type decoder struct {
	snapshot func(bits []byte) error
	dropping bool
	held     [keyBitmapLen]byte
}

func (dc *decoder) decode(buf []byte, recSize int, dst []keystate.Event) []keystate.Event {
	for off := 0; off+recSize <= len(buf); off += recSize {
		rec := buf[off : off+recSize]
		typ := binary.NativeEndian.Uint16(rec[recSize-8:])
		code := binary.NativeEndian.Uint16(rec[recSize-6:])

		if typ == evSyn {
			switch {
			case code == synDropped:
				dc.dropping = true
			case code == synReport && dc.dropping:
				dc.dropping = false
				dst = dc.resync(dst)
			}
			continue
		}
		if dc.dropping || typ != evKey {
			continue
		}

		value := int32(binary.NativeEndian.Uint32(rec[recSize-4:]))
		tr, ok := keystate.TransitionFromValue(value)
		if !ok || tr == keystate.Repeat {
			continue
		}
		dc.track(code, tr == keystate.Pressed)
		dst = append(dst, keystate.Event{Code: code, Transition: tr})
	}
	return dst
}

func (dc *decoder) track(code uint16, down bool) {
	if code > keyMax {
		return
	}
	if down {
		dc.held[code/8] |= 1 << (code % 8)
	} else {
		dc.held[code/8] &^= 1 << (code % 8)
	}
}

// resync reconciles the reported state with the device bitmap. Without a
// snapshot source, or when the read fails, the reported state stands.
func (dc *decoder) resync(dst []keystate.Event) []keystate.Event {
	if dc.snapshot == nil {
		return dst
	}
	var bits [keyBitmapLen]byte
	if err := dc.snapshot(bits[:]); err != nil {
		return dst
	}
	for i := range bits {
		diff := bits[i] ^ dc.held[i]
		for b := 0; diff != 0 && b < 8; b++ {
			if diff&(1<<b) == 0 {
				continue
			}
			tr := keystate.Released
			if bits[i]&(1<<b) != 0 {
				tr = keystate.Pressed
			}
			dst = append(dst, keystate.Event{Code: uint16(i*8 + b), Transition: tr})
		}
	}
	dc.held = bits
	return dst
}
