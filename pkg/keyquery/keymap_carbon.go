package keyquery

// macOS virtual keycodes (HIToolbox Events.h, kVK_*). They follow the ANSI
// key position, not the character produced by the active layout.

// carbonKeyCode maps a KeyCode to its kVK_* code.
func carbonKeyCode(k KeyCode) (uint16, bool) {
	switch k {
	case KeyEsc:
		return 0x35, true
	case Key1:
		return 0x12, true
	case Key2:
		return 0x13, true
	case Key3:
		return 0x14, true
	case Key4:
		return 0x15, true
	case Key5:
		return 0x17, true
	case Key6:
		return 0x16, true
	case Key7:
		return 0x1A, true
	case Key8:
		return 0x1C, true
	case Key9:
		return 0x19, true
	case Key0:
		return 0x1D, true
	case KeyMinus:
		return 0x1B, true
	case KeyEqual:
		return 0x18, true
	case KeyBackspace:
		return 0x33, true
	case KeyTab:
		return 0x30, true
	case KeyQ:
		return 0x0C, true
	case KeyW:
		return 0x0D, true
	case KeyE:
		return 0x0E, true
	case KeyR:
		return 0x0F, true
	case KeyT:
		return 0x11, true
	case KeyY:
		return 0x10, true
	case KeyU:
		return 0x20, true
	case KeyI:
		return 0x22, true
	case KeyO:
		return 0x1F, true
	case KeyP:
		return 0x23, true
	case KeyLeftBrace:
		return 0x21, true
	case KeyRightBrace:
		return 0x1E, true
	case KeyEnter:
		return 0x24, true
	case KeyLeftCtrl:
		return 0x3B, true
	case KeyA:
		return 0x00, true
	case KeyS:
		return 0x01, true
	case KeyD:
		return 0x02, true
	case KeyF:
		return 0x03, true
	case KeyG:
		return 0x05, true
	case KeyH:
		return 0x04, true
	case KeyJ:
		return 0x26, true
	case KeyK:
		return 0x28, true
	case KeyL:
		return 0x25, true
	case KeySemicolon:
		return 0x29, true
	case KeyApostrophe:
		return 0x27, true
	case KeyGrave:
		return 0x32, true
	case KeyLeftShift:
		return 0x38, true
	case KeyBackslash:
		return 0x2A, true
	case KeyZ:
		return 0x06, true
	case KeyX:
		return 0x07, true
	case KeyC:
		return 0x08, true
	case KeyV:
		return 0x09, true
	case KeyB:
		return 0x0B, true
	case KeyN:
		return 0x2D, true
	case KeyM:
		return 0x2E, true
	case KeyComma:
		return 0x2B, true
	case KeyDot:
		return 0x2F, true
	case KeySlash:
		return 0x2C, true
	case KeyRightShift:
		return 0x3C, true
	case KeyKpAsterisk:
		return 0x43, true
	case KeyLeftAlt:
		return 0x3A, true
	case KeySpace:
		return 0x31, true
	case KeyCapslock:
		return 0x39, true
	case KeyF1:
		return 0x7A, true
	case KeyF2:
		return 0x78, true
	case KeyF3:
		return 0x63, true
	case KeyF4:
		return 0x76, true
	case KeyF5:
		return 0x60, true
	case KeyF6:
		return 0x61, true
	case KeyF7:
		return 0x62, true
	case KeyF8:
		return 0x64, true
	case KeyF9:
		return 0x65, true
	case KeyF10:
		return 0x6D, true
	case KeyF11:
		return 0x67, true
	case KeyF12:
		return 0x6F, true
	case KeyUp:
		return 0x7E, true
	case KeyDown:
		return 0x7D, true
	case KeyLeft:
		return 0x7B, true
	case KeyRight:
		return 0x7C, true
	case KeyRightCtrl:
		return 0x3E, true
	case KeyRightAlt:
		return 0x3D, true
	case KeyHome:
		return 0x73, true
	case KeyEnd:
		return 0x77, true
	case KeyPageUp:
		return 0x74, true
	case KeyPageDown:
		return 0x79, true
	case KeyInsert:
		return 0x72, true
	case KeyDelete:
		return 0x75, true
	case KeyLeftMeta:
		return 0x37, true
	case KeyRightMeta:
		return 0x36, true
	default:
		return 0, false
	}
}
