package ray

// KeyState is a key's state in the current frame, as reported by Window.KeyState.
type KeyState int

const (
	KeyStatePressed  KeyState = iota // went down this frame
	KeyStateDown                     // held, no edge this frame
	KeyStateReleased                 // went up this frame
	KeyStateUp
	KeyStateRepeated // auto-repeat fired while held
)

// IsDown reports whether the key is held in any form.
func (ks KeyState) IsDown() bool {
	return ks == KeyStatePressed || ks == KeyStateDown || ks == KeyStateRepeated
}

func (ks KeyState) String() string {
	switch ks {
	case KeyStatePressed:
		return "pressed"
	case KeyStateDown:
		return "down"
	case KeyStateReleased:
		return "released"
	case KeyStateRepeated:
		return "repeated"
	default:
		return "up"
	}
}

// ButtonState is a mouse button's state in the current frame, as reported by
// Window.ButtonState.
type ButtonState int

const (
	ButtonStatePressed  ButtonState = iota // went down this frame
	ButtonStateDown                        // held, no edge this frame
	ButtonStateReleased                    // went up this frame
	ButtonStateUp
)

// IsDown reports whether the button was pressed this frame or is held.
func (bs ButtonState) IsDown() bool {
	return bs == ButtonStatePressed || bs == ButtonStateDown
}

func (bs ButtonState) String() string {
	switch bs {
	case ButtonStatePressed:
		return "pressed"
	case ButtonStateDown:
		return "down"
	case ButtonStateReleased:
		return "released"
	default:
		return "up"
	}
}

// decodeChar maps a raw character code to a printable ASCII rune. Zero,
// negative and non-ASCII codes are dropped.
func decodeChar(code int32) (rune, bool) {
	if code <= 0 || code > 127 {
		return 0, false
	}
	return rune(code), true
}
