package input

import (
	"github.com/automoto/rpgplayer/shared/keys"
)

var defaultBindings = map[Button][]keys.Key{
	Up:               {keys.Up, keys.KP8, keys.W, keys.JoyDpadUp, keys.JoyLStickUp},
	Down:             {keys.Down, keys.KP2, keys.S, keys.JoyDpadDown, keys.JoyLStickDown},
	Left:             {keys.Left, keys.KP4, keys.A, keys.JoyDpadLeft, keys.JoyLStickLeft},
	Right:            {keys.Right, keys.KP6, keys.D, keys.JoyDpadRight, keys.JoyLStickRight},
	Decision:         {keys.Z, keys.Y, keys.Space, keys.Enter, keys.KPEnter, keys.MouseLeft, keys.JoyA},
	Cancel:           {keys.X, keys.C, keys.V, keys.B, keys.N, keys.Escape, keys.KP0, keys.MouseRight, keys.JoyB},
	Shift:            {keys.LShift, keys.RShift, keys.JoyX},
	N0:               {keys.Digit0},
	N1:               {keys.Digit1},
	N2:               {keys.Digit2},
	N3:               {keys.Digit3},
	N4:               {keys.Digit4},
	N5:               {keys.Digit5},
	N6:               {keys.Digit6},
	N7:               {keys.Digit7},
	N8:               {keys.Digit8},
	N9:               {keys.Digit9},
	Plus:             {keys.KPAdd},
	Minus:            {keys.KPSubtract},
	Multiply:         {keys.KPMultiply},
	Divide:           {keys.KPDivide},
	Period:           {keys.KPPeriod},
	DebugMenu:        {keys.F9},
	DebugThrough:     {keys.LCtrl, keys.RCtrl},
	DebugSave:        {keys.F11},
	DebugAbortEvent:  {keys.F10},
	SettingsMenu:     {keys.F1, keys.JoyStart},
	ToggleFps:        {keys.F2},
	TakeScreenshot:   {keys.F8},
	ShowLog:          {keys.F3},
	Reset:            {keys.F12},
	PageUp:           {keys.PageUp, keys.JoyLShoulder},
	PageDown:         {keys.PageDown, keys.JoyRShoulder},
	MouseLeft:        {keys.MouseLeft},
	MouseRight:       {keys.MouseRight},
	MouseMiddle:      {keys.MouseMiddle},
	ScrollUp:         {keys.MouseScrollUp},
	ScrollDown:       {keys.MouseScrollDown},
	FastForwardA:     {keys.F, keys.JoyRTrigger},
	FastForwardB:     {keys.G, keys.JoyLTrigger},
	ToggleFullscreen: {keys.F4},
	ToggleZoom:       {keys.F5},
}

// DefaultButtonMappings returns a fresh copy of the built-in bindings,
// grouped by button in declaration order.
func DefaultButtonMappings() *ButtonMapping {
	m := &ButtonMapping{}
	for _, b := range Buttons() {
		for _, k := range defaultBindings[b] {
			m.Add(b, k)
		}
	}
	return m
}

// DefaultKeys returns the built-in keys for b.
func DefaultKeys(b Button) []keys.Key {
	out := make([]keys.Key, len(defaultBindings[b]))
	copy(out, defaultBindings[b])
	return out
}

// EnsureProtected restores the default keys of every protected button left
// without a binding. Returns the buttons that were restored.
func EnsureProtected(m *ButtonMapping) []Button {
	var restored []Button
	for _, b := range Buttons() {
		if !IsProtectedButton(b) || m.HasLeft(b) {
			continue
		}
		for _, k := range defaultBindings[b] {
			m.Add(b, k)
		}
		restored = append(restored, b)
	}
	return restored
}
