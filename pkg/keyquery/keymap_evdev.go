package keyquery

// Linux evdev key codes (linux/input-event-codes.h).

// evdevCode maps a KeyCode to its KEY_* code.
func evdevCode(k KeyCode) (uint16, bool) {
	switch k {
	case KeyEsc:
		return 1, true
	case Key1:
		return 2, true
	case Key2:
		return 3, true
	case Key3:
		return 4, true
	case Key4:
		return 5, true
	case Key5:
		return 6, true
	case Key6:
		return 7, true
	case Key7:
		return 8, true
	case Key8:
		return 9, true
	case Key9:
		return 10, true
	case Key0:
		return 11, true
	case KeyMinus:
		return 12, true
	case KeyEqual:
		return 13, true
	case KeyBackspace:
		return 14, true
	case KeyTab:
		return 15, true
	case KeyQ:
		return 16, true
	case KeyW:
		return 17, true
	case KeyE:
		return 18, true
	case KeyR:
		return 19, true
	case KeyT:
		return 20, true
	case KeyY:
		return 21, true
	case KeyU:
		return 22, true
	case KeyI:
		return 23, true
	case KeyO:
		return 24, true
	case KeyP:
		return 25, true
	case KeyLeftBrace:
		return 26, true
	case KeyRightBrace:
		return 27, true
	case KeyEnter:
		return 28, true
	case KeyLeftCtrl:
		return 29, true
	case KeyA:
		return 30, true
	case KeyS:
		return 31, true
	case KeyD:
		return 32, true
	case KeyF:
		return 33, true
	case KeyG:
		return 34, true
	case KeyH:
		return 35, true
	case KeyJ:
		return 36, true
	case KeyK:
		return 37, true
	case KeyL:
		return 38, true
	case KeySemicolon:
		return 39, true
	case KeyApostrophe:
		return 40, true
	case KeyGrave:
		return 41, true
	case KeyLeftShift:
		return 42, true
	case KeyBackslash:
		return 43, true
	case KeyZ:
		return 44, true
	case KeyX:
		return 45, true
	case KeyC:
		return 46, true
	case KeyV:
		return 47, true
	case KeyB:
		return 48, true
	case KeyN:
		return 49, true
	case KeyM:
		return 50, true
	case KeyComma:
		return 51, true
	case KeyDot:
		return 52, true
	case KeySlash:
		return 53, true
	case KeyRightShift:
		return 54, true
	case KeyKpAsterisk:
		return 55, true
	case KeyLeftAlt:
		return 56, true
	case KeySpace:
		return 57, true
	case KeyCapslock:
		return 58, true
	case KeyF1:
		return 59, true
	case KeyF2:
		return 60, true
	case KeyF3:
		return 61, true
	case KeyF4:
		return 62, true
	case KeyF5:
		return 63, true
	case KeyF6:
		return 64, true
	case KeyF7:
		return 65, true
	case KeyF8:
		return 66, true
	case KeyF9:
		return 67, true
	case KeyF10:
		return 68, true
	case KeyF11:
		return 87, true
	case KeyF12:
		return 88, true
	case KeyUp:
		return 103, true
	case KeyDown:
		return 108, true
	case KeyLeft:
		return 105, true
	case KeyRight:
		return 106, true
	case KeyRightCtrl:
		return 97, true
	case KeyRightAlt:
		return 100, true
	case KeyHome:
		return 102, true
	case KeyEnd:
		return 107, true
	case KeyPageUp:
		return 104, true
	case KeyPageDown:
		return 109, true
	case KeyInsert:
		return 110, true
	case KeyDelete:
		return 111, true
	case KeyLeftMeta:
		return 125, true
	case KeyRightMeta:
		return 126, true
	default:
		return 0, false
	}
}
