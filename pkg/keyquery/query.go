package keyquery

// syncQuery answers IsPressed with one live OS call per query. It is the
// single place where raw OS results become booleans.
type syncQuery struct {
	// native maps a key into the backend's code space.
	native func(KeyCode) (uint16, bool)
	// state performs the OS call for a native code.
	state func(code uint16) (uint16, error)
	// down selects the bit of the raw result meaning "held down".
	down uint16
}

// isPressed fails closed: unmapped keys and failing OS calls report false.
func (q syncQuery) isPressed(key KeyCode) bool {
	code, ok := q.native(key)
	if !ok {
		return false
	}
	raw, err := q.state(code)
	if err != nil {
		return false
	}
	return raw&q.down != 0
}

// PressedKeys returns the keys h reports as held down, in declaration order.
func PressedKeys(h InputHandler) []KeyCode {
	var keys []KeyCode
	for _, k := range AllKeyCodes() {
		if h.IsPressed(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// DeviceInfo describes an input device seen by an event-stream backend.
type DeviceInfo struct {
	Path     string
	Name     string
	Keyboard bool
	Probed   bool
}
