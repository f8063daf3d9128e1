package devinput

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"keyquery/internal/keystate"
)

// testRecSize matches a 64-bit struct input_event.
const testRecSize = 24

// encodeEvent writes one input_event record into rec.
func encodeEvent(rec []byte, typ, code uint16, value int32) {
	n := len(rec)
	clear(rec[:n-8])
	binary.NativeEndian.PutUint16(rec[n-8:], typ)
	binary.NativeEndian.PutUint16(rec[n-6:], code)
	binary.NativeEndian.PutUint32(rec[n-4:], uint32(value))
}

type rawEvent struct {
	typ   uint16
	code  uint16
	value int32
}

func encodeAll(recSize int, events ...rawEvent) []byte {
	buf := make([]byte, recSize*len(events))
	for i, ev := range events {
		encodeEvent(buf[i*recSize:(i+1)*recSize], ev.typ, ev.code, ev.value)
	}
	return buf
}

func TestDecodeEventsKeepsKeyTransitions(t *testing.T) {
	buf := encodeAll(testRecSize,
		rawEvent{evMsc, 4, 0x70004},
		rawEvent{evKey, 30, 1},
		rawEvent{evSyn, 0, 0},
		rawEvent{evKey, 30, 2},
		rawEvent{evKey, 30, 0},
		rawEvent{evSyn, 0, 0},
	)

	got := decodeEvents(buf, testRecSize, nil)

	assert.Equal(t, []keystate.Event{
		{Code: 30, Transition: keystate.Pressed},
		{Code: 30, Transition: keystate.Released},
	}, got)
}

func TestDecodeEventsIgnoresUnknownValues(t *testing.T) {
	buf := encodeAll(testRecSize, rawEvent{evKey, 1, 7}, rawEvent{evKey, 1, -1})

	assert.Empty(t, decodeEvents(buf, testRecSize, nil))
}

func TestDecodeEventsPartialRecord(t *testing.T) {
	buf := encodeAll(testRecSize, rawEvent{evKey, 57, 1})
	buf = append(buf, make([]byte, testRecSize/2)...)

	got := decodeEvents(buf, testRecSize, nil)

	assert.Equal(t, []keystate.Event{{Code: 57, Transition: keystate.Pressed}}, got)
}

func TestDecodeEvents32BitTimeval(t *testing.T) {
	const recSize = 16
	buf := encodeAll(recSize, rawEvent{evKey, 28, 1})

	got := decodeEvents(buf, recSize, nil)

	assert.Equal(t, []keystate.Event{{Code: 28, Transition: keystate.Pressed}}, got)
}

func TestDecodeEventsAppends(t *testing.T) {
	dst := []keystate.Event{{Code: 1, Transition: keystate.Pressed}}
	buf := encodeAll(testRecSize, rawEvent{evKey, 2, 1})

	got := decodeEvents(buf, testRecSize, dst)

	assert.Len(t, got, 2)
	assert.Equal(t, uint16(2), got[1].Code)
}

// fixedState reports the given key codes as held.
func fixedState(codes ...uint16) func([]byte) error {
	return func(bits []byte) error {
		clear(bits)
		for _, c := range codes {
			bits[c/8] |= 1 << (c % 8)
		}
		return nil
	}
}

func TestDecoderResyncsAfterDrop(t *testing.T) {
	dc := decoder{snapshot: fixedState(48)}
	buf := encodeAll(testRecSize,
		rawEvent{evKey, 30, 1},
		rawEvent{evSyn, synReport, 0},
		rawEvent{evSyn, synDropped, 0},
		rawEvent{evKey, 30, 0},
		rawEvent{evKey, 48, 1},
		rawEvent{evSyn, synReport, 0},
		rawEvent{evKey, 46, 1},
	)

	got := dc.decode(buf, testRecSize, nil)

	assert.Equal(t, []keystate.Event{
		{Code: 30, Transition: keystate.Pressed},
		{Code: 30, Transition: keystate.Released},
		{Code: 48, Transition: keystate.Pressed},
		{Code: 46, Transition: keystate.Pressed},
	}, got)
}

func TestDecoderDropSpansReads(t *testing.T) {
	dc := decoder{snapshot: fixedState()}

	first := dc.decode(encodeAll(testRecSize,
		rawEvent{evKey, 57, 1},
		rawEvent{evSyn, synDropped, 0},
		rawEvent{evKey, 57, 0},
	), testRecSize, nil)
	assert.Equal(t, []keystate.Event{{Code: 57, Transition: keystate.Pressed}}, first)

	second := dc.decode(encodeAll(testRecSize,
		rawEvent{evKey, 28, 1},
		rawEvent{evSyn, synReport, 0},
	), testRecSize, nil)
	assert.Equal(t, []keystate.Event{{Code: 57, Transition: keystate.Released}}, second)
}

func TestDecoderDropWithoutSnapshot(t *testing.T) {
	buf := encodeAll(testRecSize,
		rawEvent{evKey, 30, 1},
		rawEvent{evSyn, synDropped, 0},
		rawEvent{evKey, 30, 0},
		rawEvent{evSyn, synReport, 0},
		rawEvent{evKey, 31, 1},
	)

	got := decodeEvents(buf, testRecSize, nil)

	assert.Equal(t, []keystate.Event{
		{Code: 30, Transition: keystate.Pressed},
		{Code: 31, Transition: keystate.Pressed},
	}, got)
}

func TestDecoderSnapshotError(t *testing.T) {
	dc := decoder{snapshot: func([]byte) error { return errors.New("ENOTTY") }}
	buf := encodeAll(testRecSize,
		rawEvent{evKey, 30, 1},
		rawEvent{evSyn, synDropped, 0},
		rawEvent{evSyn, synReport, 0},
	)

	got := dc.decode(buf, testRecSize, nil)

	assert.Equal(t, []keystate.Event{{Code: 30, Transition: keystate.Pressed}}, got)
}
