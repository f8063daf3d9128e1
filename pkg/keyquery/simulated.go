package keyquery

import (
	"keyquery/internal/keystate"
)

// Simulated is an InputHandler driven by the caller instead of the OS.
// Use it to test code that polls key state.
type Simulated struct {
	table *keystate.Table
}

var _ InputHandler = (*Simulated)(nil)

// NewSimulated returns a handler with every key released.
func NewSimulated() *Simulated {
	return &Simulated{table: keystate.NewTable()}
}

// Press marks keys as held down.
func (s *Simulated) Press(keys ...KeyCode) {
	s.apply(keystate.Pressed, keys)
}

// Release marks keys as released.
func (s *Simulated) Release(keys ...KeyCode) {
	s.apply(keystate.Released, keys)
}

// ReleaseAll marks every key as released.
func (s *Simulated) ReleaseAll() {
	s.table.Reset()
}

func (s *Simulated) apply(tr keystate.Transition, keys []KeyCode) {
	events := make([]keystate.Event, 0, len(keys))
	for _, k := range keys {
		if k.Valid() {
			events = append(events, keystate.Event{Code: uint16(k), Transition: tr})
		}
	}
	s.table.ApplyAll(events)
}

// UpdateInputs is a no-op.
func (s *Simulated) UpdateInputs() {}

// IsPressed reports the simulated state of key.
func (s *Simulated) IsPressed(key KeyCode) bool {
	if !key.Valid() {
		return false
	}
	return s.table.Pressed(uint16(key))
}

// Close is a no-op.
func (s *Simulated) Close() error {
	return nil
}
