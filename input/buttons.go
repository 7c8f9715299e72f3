// Package input resolves raw physical key state into logical buttons and
// compound directions. It must have zero dependencies on ebiten.
package input

import (
	"fmt"

	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/automoto/rpgplayer/shared/multimap"
)

// Button represents a logical game action
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Decision
	Cancel
	Shift
	N0
	N1
	N2
	N3
	N4
	N5
	N6
	N7
	N8
	N9
	Plus
	Minus
	Multiply
	Divide
	Period
	DebugMenu
	DebugThrough
	DebugSave
	DebugAbortEvent
	SettingsMenu
	ToggleFps
	TakeScreenshot
	ShowLog
	Reset
	PageUp
	PageDown
	MouseLeft
	MouseRight
	MouseMiddle
	ScrollUp
	ScrollDown
	FastForwardA
	FastForwardB
	ToggleFullscreen
	ToggleZoom
	ButtonCount // Must be last - used for array sizing
)

type buttonInfo struct {
	name string
	help string
}

var buttonInfos = [ButtonCount]buttonInfo{
	Up:               {"UP", "Up Direction"},
	Down:             {"DOWN", "Down Direction"},
	Left:             {"LEFT", "Left Direction"},
	Right:            {"RIGHT", "Right Direction"},
	Decision:         {"DECISION", "Decision (Enter) key"},
	Cancel:           {"CANCEL", "Cancel (ESC) key"},
	Shift:            {"SHIFT", "Shift key"},
	N0:               {"N0", "Number 0"},
	N1:               {"N1", "Number 1"},
	N2:               {"N2", "Number 2"},
	N3:               {"N3", "Number 3"},
	N4:               {"N4", "Number 4"},
	N5:               {"N5", "Number 5"},
	N6:               {"N6", "Number 6"},
	N7:               {"N7", "Number 7"},
	N8:               {"N8", "Number 8"},
	N9:               {"N9", "Number 9"},
	Plus:             {"PLUS", "Plus key"},
	Minus:            {"MINUS", "Minus key"},
	Multiply:         {"MULTIPLY", "Multiply key"},
	Divide:           {"DIVIDE", "Divide key"},
	Period:           {"PERIOD", "Period key"},
	DebugMenu:        {"DEBUG_MENU", "(Test Play) Open the debug menu"},
	DebugThrough:     {"DEBUG_THROUGH", "(Test Play) Walk through walls"},
	DebugSave:        {"DEBUG_SAVE", "(Test Play) Open the save menu"},
	DebugAbortEvent:  {"DEBUG_ABORT_EVENT", "(Test Play) Abort current active event"},
	SettingsMenu:     {"SETTINGS_MENU", "Open this settings menu"},
	ToggleFps:        {"TOGGLE_FPS", "Toggle the FPS display"},
	TakeScreenshot:   {"TAKE_SCREENSHOT", "Take a screenshot"},
	ShowLog:          {"SHOW_LOG", "Show the console log on the screen"},
	Reset:            {"RESET", "Reset to the title screen"},
	PageUp:           {"PAGE_UP", "Move up a page in menus"},
	PageDown:         {"PAGE_DOWN", "Move down a page in menus"},
	MouseLeft:        {"MOUSE_LEFT", "Left-click mouse"},
	MouseRight:       {"MOUSE_RIGHT", "Right-click mouse"},
	MouseMiddle:      {"MOUSE_MIDDLE", "Middle-click mouse"},
	ScrollUp:         {"SCROLL_UP", "Scroll up key"},
	ScrollDown:       {"SCROLL_DOWN", "Scroll down key"},
	FastForwardA:     {"FAST_FORWARD_A", "Run the game at x%d speed"},
	FastForwardB:     {"FAST_FORWARD_B", "Run the game at x%d speed"},
	ToggleFullscreen: {"TOGGLE_FULLSCREEN", "Toggle Fullscreen mode"},
	ToggleZoom:       {"TOGGLE_ZOOM", "Toggle Window Zoom level"},
}

var buttonsByName = map[string]Button{}

func init() {
	for b, info := range buttonInfos {
		if info.name == "" {
			panic(fmt.Sprintf("input: button %d has no name", b))
		}
		if prev, dup := buttonsByName[info.name]; dup {
			panic(fmt.Sprintf("input: button name %q used by %d and %d", info.name, prev, b))
		}
		buttonsByName[info.name] = Button(b)
	}
}

// String returns the canonical token used in config files.
func (b Button) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BUTTON(%d)", int(b))
	}
	return buttonInfos[b].name
}

// Help returns the default English help text. FAST_FORWARD_* help is a
// format string taking the speed multiplier, see HelpFor.
func (b Button) Help() string {
	if !b.Valid() {
		return ""
	}
	return buttonInfos[b].help
}

// HelpFor fills in the speed multiplier for fast forward buttons.
func (b Button) HelpFor(speed int) string {
	if b == FastForwardA || b == FastForwardB {
		return fmt.Sprintf(b.Help(), speed)
	}
	return b.Help()
}

func (b Button) Valid() bool {
	return b >= 0 && b < ButtonCount
}

// ButtonFromName looks up a button by its canonical token (case-sensitive).
func ButtonFromName(name string) (Button, bool) {
	b, ok := buttonsByName[name]
	return b, ok
}

// Buttons returns every logical button in declaration order.
func Buttons() []Button {
	out := make([]Button, ButtonCount)
	for i := range out {
		out[i] = Button(i)
	}
	return out
}

// IsSystemButton reports whether b is refreshed on every physical frame.
// System buttons don't affect game logic, so pause never gates them.
func IsSystemButton(b Button) bool {
	switch b {
	case ToggleFps, TakeScreenshot, ShowLog, ToggleZoom, FastForwardA, FastForwardB:
		return true
	}
	return false
}

// IsProtectedButton reports whether unmapping b would leave the player unusable.
func IsProtectedButton(b Button) bool {
	switch b {
	case Up, Down, Left, Right, Decision, Cancel:
		return true
	case SettingsMenu: // not critical, but needs a way in
		return true
	}
	return false
}

// ButtonMapping binds logical buttons to physical keys.
type ButtonMapping = multimap.Table[Button, keys.Key]

// ButtonPair is a single button binding.
type ButtonPair = multimap.Pair[Button, keys.Key]
