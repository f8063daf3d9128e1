package keyquery

// Win32 virtual-key codes (winuser.h). Modifiers use the side-specific
// VK_L*/VK_R* codes so left and right keys stay distinct.

// virtualKey maps a KeyCode to its VK_* code.
func virtualKey(k KeyCode) (uint16, bool) {
	switch k {
	case KeyEsc:
		return 0x1B, true
	case Key1:
		return 0x31, true
	case Key2:
		return 0x32, true
	case Key3:
		return 0x33, true
	case Key4:
		return 0x34, true
	case Key5:
		return 0x35, true
	case Key6:
		return 0x36, true
	case Key7:
		return 0x37, true
	case Key8:
		return 0x38, true
	case Key9:
		return 0x39, true
	case Key0:
		return 0x30, true
	case KeyMinus:
		return 0xBD, true
	case KeyEqual:
		return 0xBB, true
	case KeyBackspace:
		return 0x08, true
	case KeyTab:
		return 0x09, true
	case KeyQ:
		return 0x51, true
	case KeyW:
		return 0x57, true
	case KeyE:
		return 0x45, true
	case KeyR:
		return 0x52, true
	case KeyT:
		return 0x54, true
	case KeyY:
		return 0x59, true
	case KeyU:
		return 0x55, true
	case KeyI:
		return 0x49, true
	case KeyO:
		return 0x4F, true
	case KeyP:
		return 0x50, true
	case KeyLeftBrace:
		return 0xDB, true
	case KeyRightBrace:
		return 0xDD, true
	case KeyEnter:
		return 0x0D, true
	case KeyLeftCtrl:
		return 0xA2, true
	case KeyA:
		return 0x41, true
	case KeyS:
		return 0x53, true
	case KeyD:
		return 0x44, true
	case KeyF:
		return 0x46, true
	case KeyG:
		return 0x47, true
	case KeyH:
		return 0x48, true
	case KeyJ:
		return 0x4A, true
	case KeyK:
		return 0x4B, true
	case KeyL:
		return 0x4C, true
	case KeySemicolon:
		return 0xBA, true
	case KeyApostrophe:
		return 0xDE, true
	case KeyGrave:
		return 0xC0, true
	case KeyLeftShift:
		return 0xA0, true
	case KeyBackslash:
		return 0xDC, true
	case KeyZ:
		return 0x5A, true
	case KeyX:
		return 0x58, true
	case KeyC:
		return 0x43, true
	case KeyV:
		return 0x56, true
	case KeyB:
		return 0x42, true
	case KeyN:
		return 0x4E, true
	case KeyM:
		return 0x4D, true
	case KeyComma:
		return 0xBC, true
	case KeyDot:
		return 0xBE, true
	case KeySlash:
		return 0xBF, true
	case KeyRightShift:
		return 0xA1, true
	case KeyKpAsterisk:
		return 0x6A, true
	case KeyLeftAlt:
		return 0xA4, true
	case KeySpace:
		return 0x20, true
	case KeyCapslock:
		return 0x14, true
	case KeyF1:
		return 0x70, true
	case KeyF2:
		return 0x71, true
	case KeyF3:
		return 0x72, true
	case KeyF4:
		return 0x73, true
	case KeyF5:
		return 0x74, true
	case KeyF6:
		return 0x75, true
	case KeyF7:
		return 0x76, true
	case KeyF8:
		return 0x77, true
	case KeyF9:
		return 0x78, true
	case KeyF10:
		return 0x79, true
	case KeyF11:
		return 0x7A, true
	case KeyF12:
		return 0x7B, true
	case KeyUp:
		return 0x26, true
	case KeyDown:
		return 0x28, true
	case KeyLeft:
		return 0x25, true
	case KeyRight:
		return 0x27, true
	case KeyRightCtrl:
		return 0xA3, true
	case KeyRightAlt:
		return 0xA5, true
	case KeyHome:
		return 0x24, true
	case KeyEnd:
		return 0x23, true
	case KeyPageUp:
		return 0x21, true
	case KeyPageDown:
		return 0x22, true
	case KeyInsert:
		return 0x2D, true
	case KeyDelete:
		return 0x2E, true
	case KeyLeftMeta:
		return 0x5B, true
	case KeyRightMeta:
		return 0x5C, true
	default:
		return 0, false
	}
}
