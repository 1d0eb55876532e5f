package ray

import (
	"fmt"
	"log/slog"
)

// Key identifies a keyboard key (or an Android device button).
type Key int

const (
	// Alphanumeric keys
	KeyNull Key = iota
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeyZero
	KeyOne
	KeyTwo
	KeyThree
	KeyFour
	KeyFive
	KeySix
	KeySeven
	KeyEight
	KeyNine
	KeySemicolon
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGrave
	// Function keys
	KeySpace
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
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
	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper
	KeyKbMenu
	// Keypad keys
	KeyKp0
	KeyKp1
	KeyKp2
	KeyKp3
	KeyKp4
	KeyKp5
	KeyKp6
	KeyKp7
	KeyKp8
	KeyKp9
	KeyKpDecimal
	KeyKpDivide
	KeyKpMultiply
	KeyKpSubtract
	KeyKpAdd
	KeyKpEnter
	KeyKpEqual
	// Android buttons
	KeyBack
	KeyMenu
	KeyVolumeUp
	KeyVolumeDown

	keyCount
)

// Code returns raylib's key code for k. An undeclared Key is logged to
// slog.Default and panics.
func (k Key) Code() int32 {
	switch k {
	// Alphanumeric keys
	case KeyNull:
		return 0
	case KeyApostrophe:
		return 39
	case KeyComma:
		return 44
	case KeyMinus:
		return 45
	case KeyPeriod:
		return 46
	case KeySlash:
		return 47
	case KeyZero:
		return 48
	case KeyOne:
		return 49
	case KeyTwo:
		return 50
	case KeyThree:
		return 51
	case KeyFour:
		return 52
	case KeyFive:
		return 53
	case KeySix:
		return 54
	case KeySeven:
		return 55
	case KeyEight:
		return 56
	case KeyNine:
		return 57
	case KeySemicolon:
		return 59
	case KeyEqual:
		return 61
	case KeyA:
		return 65
	case KeyB:
		return 66
	case KeyC:
		return 67
	case KeyD:
		return 68
	case KeyE:
		return 69
	case KeyF:
		return 70
	case KeyG:
		return 71
	case KeyH:
		return 72
	case KeyI:
		return 73
	case KeyJ:
		return 74
	case KeyK:
		return 75
	case KeyL:
		return 76
	case KeyM:
		return 77
	case KeyN:
		return 78
	case KeyO:
		return 79
	case KeyP:
		return 80
	case KeyQ:
		return 81
	case KeyR:
		return 82
	case KeyS:
		return 83
	case KeyT:
		return 84
	case KeyU:
		return 85
	case KeyV:
		return 86
	case KeyW:
		return 87
	case KeyX:
		return 88
	case KeyY:
		return 89
	case KeyZ:
		return 90
	case KeyLeftBracket:
		return 91
	case KeyBackslash:
		return 92
	case KeyRightBracket:
		return 93
	case KeyGrave:
		return 96
	// Function keys
	case KeySpace:
		return 32
	case KeyEscape:
		return 256
	case KeyEnter:
		return 257
	case KeyTab:
		return 258
	case KeyBackspace:
		return 259
	case KeyInsert:
		return 260
	case KeyDelete:
		return 261
	case KeyRight:
		return 262
	case KeyLeft:
		return 263
	case KeyDown:
		return 264
	case KeyUp:
		return 265
	case KeyPageUp:
		return 266
	case KeyPageDown:
		return 267
	case KeyHome:
		return 268
	case KeyEnd:
		return 269
	case KeyCapsLock:
		return 280
	case KeyScrollLock:
		return 281
	case KeyNumLock:
		return 282
	case KeyPrintScreen:
		return 283
	case KeyPause:
		return 284
	case KeyF1:
		return 290
	case KeyF2:
		return 291
	case KeyF3:
		return 292
	case KeyF4:
		return 293
	case KeyF5:
		return 294
	case KeyF6:
		return 295
	case KeyF7:
		return 296
	case KeyF8:
		return 297
	case KeyF9:
		return 298
	case KeyF10:
		return 299
	case KeyF11:
		return 300
	case KeyF12:
		return 301
	case KeyLeftShift:
		return 340
	case KeyLeftControl:
		return 341
	case KeyLeftAlt:
		return 342
	case KeyLeftSuper:
		return 343
	case KeyRightShift:
		return 344
	case KeyRightControl:
		return 345
	case KeyRightAlt:
		return 346
	case KeyRightSuper:
		return 347
	case KeyKbMenu:
		return 348
	// Keypad keys
	case KeyKp0:
		return 320
	case KeyKp1:
		return 321
	case KeyKp2:
		return 322
	case KeyKp3:
		return 323
	case KeyKp4:
		return 324
	case KeyKp5:
		return 325
	case KeyKp6:
		return 326
	case KeyKp7:
		return 327
	case KeyKp8:
		return 328
	case KeyKp9:
		return 329
	case KeyKpDecimal:
		return 330
	case KeyKpDivide:
		return 331
	case KeyKpMultiply:
		return 332
	case KeyKpSubtract:
		return 333
	case KeyKpAdd:
		return 334
	case KeyKpEnter:
		return 335
	case KeyKpEqual:
		return 336
	// Android buttons
	case KeyBack:
		return 4
	case KeyMenu:
		return 5
	case KeyVolumeUp:
		return 24
	case KeyVolumeDown:
		return 25
	}
	misuse(slog.Default(), fmt.Sprintf("invalid key %d", int(k)))
	return 0
}

var keyNames = [...]string{
	"Null",
	"Apostrophe",
	"Comma",
	"Minus",
	"Period",
	"Slash",
	"Zero",
	"One",
	"Two",
	"Three",
	"Four",
	"Five",
	"Six",
	"Seven",
	"Eight",
	"Nine",
	"Semicolon",
	"Equal",
	"A",
	"B",
	"C",
	"D",
	"E",
	"F",
	"G",
	"H",
	"I",
	"J",
	"K",
	"L",
	"M",
	"N",
	"O",
	"P",
	"Q",
	"R",
	"S",
	"T",
	"U",
	"V",
	"W",
	"X",
	"Y",
	"Z",
	"LeftBracket",
	"Backslash",
	"RightBracket",
	"Grave",
	"Space",
	"Escape",
	"Enter",
	"Tab",
	"Backspace",
	"Insert",
	"Delete",
	"Right",
	"Left",
	"Down",
	"Up",
	"PageUp",
	"PageDown",
	"Home",
	"End",
	"CapsLock",
	"ScrollLock",
	"NumLock",
	"PrintScreen",
	"Pause",
	"F1",
	"F2",
	"F3",
	"F4",
	"F5",
	"F6",
	"F7",
	"F8",
	"F9",
	"F10",
	"F11",
	"F12",
	"LeftShift",
	"LeftControl",
	"LeftAlt",
	"LeftSuper",
	"RightShift",
	"RightControl",
	"RightAlt",
	"RightSuper",
	"KbMenu",
	"Kp0",
	"Kp1",
	"Kp2",
	"Kp3",
	"Kp4",
	"Kp5",
	"Kp6",
	"Kp7",
	"Kp8",
	"Kp9",
	"KpDecimal",
	"KpDivide",
	"KpMultiply",
	"KpSubtract",
	"KpAdd",
	"KpEnter",
	"KpEqual",
	"Back",
	"Menu",
	"VolumeUp",
	"VolumeDown",
}

// Fails to compile when keyNames and the Key constants drift apart.
var _ [keyCount]string = keyNames

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// AllKeys returns every declared Key in declaration order.
func AllKeys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Code returns raylib's mouse button code for b. An undeclared MouseButton is
// logged to slog.Default and panics.
func (b MouseButton) Code() int32 {
	switch b {
	case MouseLeft:
		return 0
	case MouseRight:
		return 1
	case MouseMiddle:
		return 2
	}
	misuse(slog.Default(), fmt.Sprintf("invalid mouse button %d", int(b)))
	return 0
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}
