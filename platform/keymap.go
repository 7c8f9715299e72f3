package platform

import (
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/hajimehoshi/ebiten/v2"
)

type keyBinding struct {
	key keys.Key
	eb  ebiten.Key
}

var keyboardKeys = []keyBinding{
	{keys.Backspace, ebiten.KeyBackspace},
	{keys.Tab, ebiten.KeyTab},
	{keys.Enter, ebiten.KeyEnter},
	{keys.LShift, ebiten.KeyShiftLeft},
	{keys.RShift, ebiten.KeyShiftRight},
	{keys.LCtrl, ebiten.KeyControlLeft},
	{keys.RCtrl, ebiten.KeyControlRight},
	{keys.LAlt, ebiten.KeyAltLeft},
	{keys.RAlt, ebiten.KeyAltRight},
	{keys.Escape, ebiten.KeyEscape},
	{keys.Space, ebiten.KeySpace},
	{keys.PageUp, ebiten.KeyPageUp},
	{keys.PageDown, ebiten.KeyPageDown},
	{keys.End, ebiten.KeyEnd},
	{keys.Home, ebiten.KeyHome},
	{keys.Left, ebiten.KeyArrowLeft},
	{keys.Up, ebiten.KeyArrowUp},
	{keys.Right, ebiten.KeyArrowRight},
	{keys.Down, ebiten.KeyArrowDown},
	{keys.Insert, ebiten.KeyInsert},
	{keys.Delete, ebiten.KeyDelete},
	{keys.Digit0, ebiten.KeyDigit0},
	{keys.Digit1, ebiten.KeyDigit1},
	{keys.Digit2, ebiten.KeyDigit2},
	{keys.Digit3, ebiten.KeyDigit3},
	{keys.Digit4, ebiten.KeyDigit4},
	{keys.Digit5, ebiten.KeyDigit5},
	{keys.Digit6, ebiten.KeyDigit6},
	{keys.Digit7, ebiten.KeyDigit7},
	{keys.Digit8, ebiten.KeyDigit8},
	{keys.Digit9, ebiten.KeyDigit9},
	{keys.A, ebiten.KeyA},
	{keys.B, ebiten.KeyB},
	{keys.C, ebiten.KeyC},
	{keys.D, ebiten.KeyD},
	{keys.E, ebiten.KeyE},
	{keys.F, ebiten.KeyF},
	{keys.G, ebiten.KeyG},
	{keys.H, ebiten.KeyH},
	{keys.I, ebiten.KeyI},
	{keys.J, ebiten.KeyJ},
	{keys.K, ebiten.KeyK},
	{keys.L, ebiten.KeyL},
	{keys.M, ebiten.KeyM},
	{keys.N, ebiten.KeyN},
	{keys.O, ebiten.KeyO},
	{keys.P, ebiten.KeyP},
	{keys.Q, ebiten.KeyQ},
	{keys.R, ebiten.KeyR},
	{keys.S, ebiten.KeyS},
	{keys.T, ebiten.KeyT},
	{keys.U, ebiten.KeyU},
	{keys.V, ebiten.KeyV},
	{keys.W, ebiten.KeyW},
	{keys.X, ebiten.KeyX},
	{keys.Y, ebiten.KeyY},
	{keys.Z, ebiten.KeyZ},
	{keys.F1, ebiten.KeyF1},
	{keys.F2, ebiten.KeyF2},
	{keys.F3, ebiten.KeyF3},
	{keys.F4, ebiten.KeyF4},
	{keys.F5, ebiten.KeyF5},
	{keys.F6, ebiten.KeyF6},
	{keys.F7, ebiten.KeyF7},
	{keys.F8, ebiten.KeyF8},
	{keys.F9, ebiten.KeyF9},
	{keys.F10, ebiten.KeyF10},
	{keys.F11, ebiten.KeyF11},
	{keys.F12, ebiten.KeyF12},
	{keys.Comma, ebiten.KeyComma},
	{keys.Period, ebiten.KeyPeriod},
	{keys.Minus, ebiten.KeyMinus},
	{keys.Equal, ebiten.KeyEqual},
	{keys.Slash, ebiten.KeySlash},
	{keys.KP0, ebiten.KeyNumpad0},
	{keys.KP1, ebiten.KeyNumpad1},
	{keys.KP2, ebiten.KeyNumpad2},
	{keys.KP3, ebiten.KeyNumpad3},
	{keys.KP4, ebiten.KeyNumpad4},
	{keys.KP5, ebiten.KeyNumpad5},
	{keys.KP6, ebiten.KeyNumpad6},
	{keys.KP7, ebiten.KeyNumpad7},
	{keys.KP8, ebiten.KeyNumpad8},
	{keys.KP9, ebiten.KeyNumpad9},
	{keys.KPAdd, ebiten.KeyNumpadAdd},
	{keys.KPSubtract, ebiten.KeyNumpadSubtract},
	{keys.KPMultiply, ebiten.KeyNumpadMultiply},
	{keys.KPDivide, ebiten.KeyNumpadDivide},
	{keys.KPPeriod, ebiten.KeyNumpadDecimal},
	{keys.KPEnter, ebiten.KeyNumpadEnter},
}

var mouseButtons = []struct {
	key keys.Key
	eb  ebiten.MouseButton
}{
	{keys.MouseLeft, ebiten.MouseButtonLeft},
	{keys.MouseRight, ebiten.MouseButtonRight},
	{keys.MouseMiddle, ebiten.MouseButtonMiddle},
}

var gamepadButtons = []struct {
	key keys.Key
	eb  ebiten.StandardGamepadButton
}{
	{keys.JoyA, ebiten.StandardGamepadButtonRightBottom},
	{keys.JoyB, ebiten.StandardGamepadButtonRightRight},
	{keys.JoyX, ebiten.StandardGamepadButtonRightLeft},
	{keys.JoyY, ebiten.StandardGamepadButtonRightTop},
	{keys.JoyBack, ebiten.StandardGamepadButtonCenterLeft},
	{keys.JoyGuide, ebiten.StandardGamepadButtonCenterCenter},
	{keys.JoyStart, ebiten.StandardGamepadButtonCenterRight},
	{keys.JoyLStick, ebiten.StandardGamepadButtonLeftStick},
	{keys.JoyRStick, ebiten.StandardGamepadButtonRightStick},
	{keys.JoyLShoulder, ebiten.StandardGamepadButtonFrontTopLeft},
	{keys.JoyRShoulder, ebiten.StandardGamepadButtonFrontTopRight},
	{keys.JoyDpadUp, ebiten.StandardGamepadButtonLeftTop},
	{keys.JoyDpadDown, ebiten.StandardGamepadButtonLeftBottom},
	{keys.JoyDpadLeft, ebiten.StandardGamepadButtonLeftLeft},
	{keys.JoyDpadRight, ebiten.StandardGamepadButtonLeftRight},
}

// EbitenKey returns the ebiten key behind a keyboard code.
func EbitenKey(k keys.Key) (ebiten.Key, bool) {
	for _, b := range keyboardKeys {
		if b.key == k {
			return b.eb, true
		}
	}
	return 0, false
}
