package keyquery

import (
	"fmt"
	"strings"
)

// KeyCode identifies a physical keyboard key independently of the platform.
// Numeric values are private to this package; compare keys by name.
// The zero value is not a key.
type KeyCode uint8

// Keys follow the US ANSI layout by position.
const (
	KeyEsc KeyCode = iota + 1

	// Number row.
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyBackspace

	// Top letter row.
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyLeftBrace
	KeyRightBrace
	KeyEnter

	// Home row.
	KeyLeftCtrl
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyApostrophe
	KeyGrave

	// Bottom row.
	KeyLeftShift
	KeyBackslash
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyDot
	KeySlash
	KeyRightShift
	KeyKpAsterisk
	KeyLeftAlt
	KeySpace
	KeyCapslock

	// Function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Arrows.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Right-hand modifiers and the navigation block.
	KeyRightCtrl
	KeyRightAlt
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyLeftMeta
	KeyRightMeta

	keyCodeEnd
)

// NumKeyCodes is the number of defined keys.
const NumKeyCodes = int(keyCodeEnd) - 1

var keyNames = [keyCodeEnd]string{
	KeyEsc:        "KeyEsc",
	Key1:          "Key1",
	Key2:          "Key2",
	Key3:          "Key3",
	Key4:          "Key4",
	Key5:          "Key5",
	Key6:          "Key6",
	Key7:          "Key7",
	Key8:          "Key8",
	Key9:          "Key9",
	Key0:          "Key0",
	KeyMinus:      "KeyMinus",
	KeyEqual:      "KeyEqual",
	KeyBackspace:  "KeyBackspace",
	KeyTab:        "KeyTab",
	KeyQ:          "KeyQ",
	KeyW:          "KeyW",
	KeyE:          "KeyE",
	KeyR:          "KeyR",
	KeyT:          "KeyT",
	KeyY:          "KeyY",
	KeyU:          "KeyU",
	KeyI:          "KeyI",
	KeyO:          "KeyO",
	KeyP:          "KeyP",
	KeyLeftBrace:  "KeyLeftBrace",
	KeyRightBrace: "KeyRightBrace",
	KeyEnter:      "KeyEnter",
	KeyLeftCtrl:   "KeyLeftCtrl",
	KeyA:          "KeyA",
	KeyS:          "KeyS",
	KeyD:          "KeyD",
	KeyF:          "KeyF",
	KeyG:          "KeyG",
	KeyH:          "KeyH",
	KeyJ:          "KeyJ",
	KeyK:          "KeyK",
	KeyL:          "KeyL",
	KeySemicolon:  "KeySemicolon",
	KeyApostrophe: "KeyApostrophe",
	KeyGrave:      "KeyGrave",
	KeyLeftShift:  "KeyLeftShift",
	KeyBackslash:  "KeyBackslash",
	KeyZ:          "KeyZ",
	KeyX:          "KeyX",
	KeyC:          "KeyC",
	KeyV:          "KeyV",
	KeyB:          "KeyB",
	KeyN:          "KeyN",
	KeyM:          "KeyM",
	KeyComma:      "KeyComma",
	KeyDot:        "KeyDot",
	KeySlash:      "KeySlash",
	KeyRightShift: "KeyRightShift",
	KeyKpAsterisk: "KeyKpAsterisk",
	KeyLeftAlt:    "KeyLeftAlt",
	KeySpace:      "KeySpace",
	KeyCapslock:   "KeyCapslock",
	KeyF1:         "KeyF1",
	KeyF2:         "KeyF2",
	KeyF3:         "KeyF3",
	KeyF4:         "KeyF4",
	KeyF5:         "KeyF5",
	KeyF6:         "KeyF6",
	KeyF7:         "KeyF7",
	KeyF8:         "KeyF8",
	KeyF9:         "KeyF9",
	KeyF10:        "KeyF10",
	KeyF11:        "KeyF11",
	KeyF12:        "KeyF12",
	KeyUp:         "KeyUp",
	KeyDown:       "KeyDown",
	KeyLeft:       "KeyLeft",
	KeyRight:      "KeyRight",
	KeyRightCtrl:  "KeyRightCtrl",
	KeyRightAlt:   "KeyRightAlt",
	KeyHome:       "KeyHome",
	KeyEnd:        "KeyEnd",
	KeyPageUp:     "KeyPageUp",
	KeyPageDown:   "KeyPageDown",
	KeyInsert:     "KeyInsert",
	KeyDelete:     "KeyDelete",
	KeyLeftMeta:   "KeyLeftMeta",
	KeyRightMeta:  "KeyRightMeta",
}

// keyAliases are extra short names accepted by ParseKeyCode.
var keyAliases = map[string]KeyCode{
	"escape":   KeyEsc,
	"return":   KeyEnter,
	"ctrl":     KeyLeftCtrl,
	"control":  KeyLeftCtrl,
	"shift":    KeyLeftShift,
	"alt":      KeyLeftAlt,
	"option":   KeyLeftAlt,
	"meta":     KeyLeftMeta,
	"super":    KeyLeftMeta,
	"win":      KeyLeftMeta,
	"cmd":      KeyLeftMeta,
	"period":   KeyDot,
	"backtick": KeyGrave,
	"pgup":     KeyPageUp,
	"pgdn":     KeyPageDown,
	"del":      KeyDelete,
	"ins":      KeyInsert,
}

var keysByShortName = func() map[string]KeyCode {
	m := make(map[string]KeyCode, NumKeyCodes+len(keyAliases))
	for k := KeyEsc; k < keyCodeEnd; k++ {
		m[k.ShortName()] = k
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// Valid reports whether k names a defined key.
func (k KeyCode) Valid() bool {
	return k > 0 && k < keyCodeEnd
}

// String returns the symbolic name, e.g. "KeyEsc".
func (k KeyCode) String() string {
	if !k.Valid() {
		return fmt.Sprintf("KeyCode(%d)", uint8(k))
	}
	return keyNames[k]
}

// ShortName returns the lower-case name without the "Key" prefix, e.g. "esc".
func (k KeyCode) ShortName() string {
	if !k.Valid() {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(keyNames[k], "Key"))
}

// AllKeyCodes returns every defined key in declaration order.
func AllKeyCodes() []KeyCode {
	keys := make([]KeyCode, 0, NumKeyCodes)
	for k := KeyEsc; k < keyCodeEnd; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseKeyCode resolves a key name. It accepts the symbolic name ("KeyEsc"),
// the short name ("esc") and a few common aliases ("escape", "ctrl"),
// ignoring case and surrounding space.
func ParseKeyCode(name string) (KeyCode, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keysByShortName[s]; ok {
		return k, nil
	}
	if rest, ok := strings.CutPrefix(s, "key"); ok {
		if k, ok := keysByShortName[rest]; ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("keyquery: unknown key %q", name)
}

// ParseKeyCodes resolves a comma-separated list of key names.
func ParseKeyCodes(list string) ([]KeyCode, error) {
	var keys []KeyCode
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKeyCode(part)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
