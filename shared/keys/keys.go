// Package keys defines the opaque physical input codes shared by the input
// core and the platform sources. It must have zero dependencies on ebiten.
package keys

import "fmt"

// Key identifies a raw physical input signal.
type Key uint16

const (
	None Key = iota

	// Keyboard
	Backspace
	Tab
	Enter
	LShift
	RShift
	LCtrl
	RCtrl
	LAlt
	RAlt
	Escape
	Space
	PageUp
	PageDown
	End
	Home
	Left
	Up
	Right
	Down
	Insert
	Delete
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Comma
	Period
	Minus
	Equal
	Slash
	KP0
	KP1
	KP2
	KP3
	KP4
	KP5
	KP6
	KP7
	KP8
	KP9
	KPAdd
	KPSubtract
	KPMultiply
	KPDivide
	KPPeriod
	KPEnter

	// Mouse
	MouseLeft
	MouseRight
	MouseMiddle
	MouseScrollUp
	MouseScrollDown

	// Gamepad buttons, named after the standard (Xbox style) layout
	JoyA
	JoyB
	JoyX
	JoyY
	JoyBack
	JoyGuide
	JoyStart
	JoyLStick
	JoyRStick
	JoyLShoulder
	JoyRShoulder
	JoyDpadUp
	JoyDpadDown
	JoyDpadLeft
	JoyDpadRight

	// Gamepad axes, pressed when past the deadzone
	JoyLTrigger
	JoyRTrigger
	JoyLStickUp
	JoyLStickDown
	JoyLStickLeft
	JoyLStickRight
	JoyRStickUp
	JoyRStickDown
	JoyRStickLeft
	JoyRStickRight

	Count // Must be last - used for array sizing
)

var names = [Count]string{
	None:            "NONE",
	Backspace:       "BACKSPACE",
	Tab:             "TAB",
	Enter:           "ENTER",
	LShift:          "LSHIFT",
	RShift:          "RSHIFT",
	LCtrl:           "LCTRL",
	RCtrl:           "RCTRL",
	LAlt:            "LALT",
	RAlt:            "RALT",
	Escape:          "ESCAPE",
	Space:           "SPACE",
	PageUp:          "PGUP",
	PageDown:        "PGDN",
	End:             "ENDS",
	Home:            "HOME",
	Left:            "LEFT",
	Up:              "UP",
	Right:           "RIGHT",
	Down:            "DOWN",
	Insert:          "INSERT",
	Delete:          "DEL",
	Digit0:          "N0",
	Digit1:          "N1",
	Digit2:          "N2",
	Digit3:          "N3",
	Digit4:          "N4",
	Digit5:          "N5",
	Digit6:          "N6",
	Digit7:          "N7",
	Digit8:          "N8",
	Digit9:          "N9",
	A:               "A",
	B:               "B",
	C:               "C",
	D:               "D",
	E:               "E",
	F:               "F",
	G:               "G",
	H:               "H",
	I:               "I",
	J:               "J",
	K:               "K",
	L:               "L",
	M:               "M",
	N:               "N",
	O:               "O",
	P:               "P",
	Q:               "Q",
	R:               "R",
	S:               "S",
	T:               "T",
	U:               "U",
	V:               "V",
	W:               "W",
	X:               "X",
	Y:               "Y",
	Z:               "Z",
	F1:              "F1",
	F2:              "F2",
	F3:              "F3",
	F4:              "F4",
	F5:              "F5",
	F6:              "F6",
	F7:              "F7",
	F8:              "F8",
	F9:              "F9",
	F10:             "F10",
	F11:             "F11",
	F12:             "F12",
	Comma:           "COMMA",
	Period:          "PERIOD",
	Minus:           "MINUS",
	Equal:           "EQUAL",
	Slash:           "SLASH",
	KP0:             "KP0",
	KP1:             "KP1",
	KP2:             "KP2",
	KP3:             "KP3",
	KP4:             "KP4",
	KP5:             "KP5",
	KP6:             "KP6",
	KP7:             "KP7",
	KP8:             "KP8",
	KP9:             "KP9",
	KPAdd:           "KP_ADD",
	KPSubtract:      "KP_SUBTRACT",
	KPMultiply:      "KP_MULTIPLY",
	KPDivide:        "KP_DIVIDE",
	KPPeriod:        "KP_PERIOD",
	KPEnter:         "KP_ENTER",
	MouseLeft:       "MOUSE_LEFT",
	MouseRight:      "MOUSE_RIGHT",
	MouseMiddle:     "MOUSE_MIDDLE",
	MouseScrollUp:   "MOUSE_SCROLLUP",
	MouseScrollDown: "MOUSE_SCROLLDOWN",
	JoyA:            "JOY_A",
	JoyB:            "JOY_B",
	JoyX:            "JOY_X",
	JoyY:            "JOY_Y",
	JoyBack:         "JOY_BACK",
	JoyGuide:        "JOY_GUIDE",
	JoyStart:        "JOY_START",
	JoyLStick:       "JOY_LSTICK",
	JoyRStick:       "JOY_RSTICK",
	JoyLShoulder:    "JOY_LSHOULDER",
	JoyRShoulder:    "JOY_RSHOULDER",
	JoyDpadUp:       "JOY_DPAD_UP",
	JoyDpadDown:     "JOY_DPAD_DOWN",
	JoyDpadLeft:     "JOY_DPAD_LEFT",
	JoyDpadRight:    "JOY_DPAD_RIGHT",
	JoyLTrigger:     "JOY_LTRIGGER",
	JoyRTrigger:     "JOY_RTRIGGER",
	JoyLStickUp:     "JOY_LSTICK_UP",
	JoyLStickDown:   "JOY_LSTICK_DOWN",
	JoyLStickLeft:   "JOY_LSTICK_LEFT",
	JoyLStickRight:  "JOY_LSTICK_RIGHT",
	JoyRStickUp:     "JOY_RSTICK_UP",
	JoyRStickDown:   "JOY_RSTICK_DOWN",
	JoyRStickLeft:   "JOY_RSTICK_LEFT",
	JoyRStickRight:  "JOY_RSTICK_RIGHT",
}

var byName map[string]Key

func init() {
	byName = make(map[string]Key, len(names))
	for k, name := range names {
		if name == "" {
			panic(fmt.Sprintf("keys: key %d has no name", k))
		}
		if prev, dup := byName[name]; dup {
			panic(fmt.Sprintf("keys: name %q used by %d and %d", name, prev, k))
		}
		byName[name] = Key(k)
	}
}

// String returns the canonical token used in config files.
func (k Key) String() string {
	if k >= Count {
		return fmt.Sprintf("KEY(%d)", uint16(k))
	}
	return names[k]
}

// FromName looks up a key by its canonical token. NONE is never returned as found.
func FromName(name string) (Key, bool) {
	k, ok := byName[name]
	if !ok || k == None {
		return None, false
	}
	return k, true
}

// Valid reports whether k is a real key code.
func (k Key) Valid() bool {
	return k > None && k < Count
}

func (k Key) IsMouse() bool {
	return k >= MouseLeft && k <= MouseScrollDown
}

func (k Key) IsGamepad() bool {
	return k >= JoyA && k <= JoyRStickRight
}

func (k Key) IsKeyboard() bool {
	return k > None && k < MouseLeft
}
