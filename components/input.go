package components

import (
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of a logical button
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	Repeated     bool // Pressed this tick or auto-repeating
	JustReleased bool // Released this tick
}

// InputData tracks physical keys across frames. The logical button state
// lives in the engine's resolver.
type InputData struct {
	Previous        keys.State  // Last frame's raw keys
	NewKey          keys.Key    // A key that went down this frame, None if none
	LastInputMethod InputMethod // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
