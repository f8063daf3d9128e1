// Package keystate reduces a stream of key press/release events into the
// current pressed state of every native key code.
//
// The package is platform independent. Backends that only expose keyboard
// state as discrete events (Linux evdev) feed a Table through a Poller; the
// table is the only state shared between the poller goroutine and callers.
//
// No history is kept: the table is a reduction, not a log.
package keystate

import (
	"sync"
)

// TableSize bounds the native code space (KEY_MAX + 1 on Linux).
const TableSize = 0x300

// Transition is the kind of change reported for a key.
type Transition uint8

const (
	// Released means the key went up.
	Released Transition = iota
	// Pressed means the key went down.
	Pressed
	// Repeat is an autorepeat notification. It never changes state.
	Repeat
)

// String returns the transition name.
func (t Transition) String() string {
	switch t {
	case Released:
		return "released"
	case Pressed:
		return "pressed"
	case Repeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// TransitionFromValue maps an evdev EV_KEY value to a Transition.
// Values other than 0, 1 and 2 are reported as not ok.
func TransitionFromValue(value int32) (Transition, bool) {
	switch value {
	case 0:
		return Released, true
	case 1:
		return Pressed, true
	case 2:
		return Repeat, true
	default:
		return 0, false
	}
}

// Event is a single key transition for a native code.
type Event struct {
	Code       uint16
	Transition Transition
}

// Table is the dense pressed-state table indexed by native code.
// The zero value is ready to use and reports every key as released.
type Table struct {
	mu      sync.RWMutex
	pressed [TableSize]bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Apply records a single event.
func (t *Table) Apply(ev Event) {
	t.mu.Lock()
	t.apply(ev)
	t.mu.Unlock()
}

// ApplyAll records a batch of events in order under one lock acquisition,
// so readers observe either none or all of the batch.
func (t *Table) ApplyAll(events []Event) {
	if len(events) == 0 {
		return
	}
	t.mu.Lock()
	for _, ev := range events {
		t.apply(ev)
	}
	t.mu.Unlock()
}

func (t *Table) apply(ev Event) {
	if int(ev.Code) >= TableSize {
		return
	}
	switch ev.Transition {
	case Pressed:
		t.pressed[ev.Code] = true
	case Released:
		t.pressed[ev.Code] = false
	}
}

// Pressed reports whether code is currently held down.
// Codes outside the table are never pressed.
func (t *Table) Pressed(code uint16) bool {
	if int(code) >= TableSize {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pressed[code]
}

// Snapshot returns the native codes currently held down, in ascending order.
func (t *Table) Snapshot() []uint16 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var codes []uint16
	for code, down := range t.pressed {
		if down {
			codes = append(codes, uint16(code))
		}
	}
	return codes
}

// Reset marks every key as released.
func (t *Table) Reset() {
	t.mu.Lock()
	t.pressed = [TableSize]bool{}
	t.mu.Unlock()
}
