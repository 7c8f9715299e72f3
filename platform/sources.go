package platform

import (
	"strings"
	"sync"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// AnalogDeadzone is how far a stick or trigger must travel to count as pressed.
const AnalogDeadzone = 0.25

// Keyboard polls ebiten keys, mouse buttons and the mouse wheel.
type Keyboard struct{}

func (Keyboard) Name() string { return "keyboard" }
func (Keyboard) Features() Feature { return FeatureKeyboard | FeatureMouse | FeatureWindow }

func (Keyboard) Poll(st *keys.State) {
	for _, b := range keyboardKeys {
		if ebiten.IsKeyPressed(b.eb) {
			st.Set(b.key, true)
		}
	}
	for _, b := range mouseButtons {
		if ebiten.IsMouseButtonPressed(b.eb) {
			st.Set(b.key, true)
		}
	}
	// Scrolling is an impulse: pressed for the frame it happened in
	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		st.Set(keys.MouseScrollUp, true)
	case dy < 0:
		st.Set(keys.MouseScrollDown, true)
	}
}

// Gamepad polls every connected gamepad with a standard layout.
type Gamepad struct {
	cfg *config.Input

	ids   []ebiten.GamepadID
	names map[ebiten.GamepadID]string
	raw   keys.State
}

// NewGamepad reads the swap options from cfg on every poll, so settings
// changes apply immediately.
func NewGamepad(cfg *config.Input) *Gamepad {
	return &Gamepad{cfg: cfg, names: make(map[ebiten.GamepadID]string)}
}

// Bind replaces the config the swap options are read from.
func (g *Gamepad) Bind(cfg *config.Input) {
	g.cfg = cfg
}

func (g *Gamepad) Name() string { return "gamepad" }
func (g *Gamepad) Features() Feature { return FeatureGamepad }

func (g *Gamepad) Poll(st *keys.State) {
	g.raw.Clear()
	before := len(g.ids)
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	if len(g.ids) != before {
		log.Info("gamepads changed", "connected", g.Connected())
	}
	for _, id := range g.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, b.eb) {
				g.raw.Set(b.key, true)
			}
		}
		pollTriggers(&g.raw, id)
		pollStick(&g.raw, id, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical,
			keys.JoyLStickLeft, keys.JoyLStickRight, keys.JoyLStickUp, keys.JoyLStickDown)
		pollStick(&g.raw, id, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical,
			keys.JoyRStickLeft, keys.JoyRStickRight, keys.JoyRStickUp, keys.JoyRStickDown)
	}
	Swap(&g.raw, swapsFor(g.cfg))
	st.Merge(&g.raw)
}

// Connected names the gamepads seen by the last poll.
func (g *Gamepad) Connected() []string {
	out := make([]string, 0, len(g.ids))
	for _, id := range g.ids {
		name, ok := g.names[id]
		if !ok {
			// Cache to avoid a string allocation every frame
			name = strings.TrimSpace(ebiten.GamepadName(id))
			g.names[id] = name
		}
		out = append(out, name)
	}
	return out
}

func pollTriggers(st *keys.State, id ebiten.GamepadID) {
	if ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft) > AnalogDeadzone {
		st.Set(keys.JoyLTrigger, true)
	}
	if ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight) > AnalogDeadzone {
		st.Set(keys.JoyRTrigger, true)
	}
}

func pollStick(st *keys.State, id ebiten.GamepadID, hAxis, vAxis ebiten.StandardGamepadAxis, left, right, up, down keys.Key) {
	h := ebiten.StandardGamepadAxisValue(id, hAxis)
	v := ebiten.StandardGamepadAxisValue(id, vAxis)
	if h < -AnalogDeadzone {
		st.Set(left, true)
	}
	if h > AnalogDeadzone {
		st.Set(right, true)
	}
	if v < -AnalogDeadzone {
		st.Set(up, true)
	}
	if v > AnalogDeadzone {
		st.Set(down, true)
	}
}

func swapsFor(cfg *config.Input) Swaps {
	if cfg == nil {
		return Swaps{}
	}
	return Swaps{
		Analog: cfg.GamepadSwapAnalog.Get(),
		Dpad:   cfg.GamepadSwapDpad.Get(),
		ABXY:   cfg.GamepadSwapAbxy.Get(),
	}
}

// Virtual holds key state pushed from outside the frame loop, such as a
// touch overlay or the lifecycle bridge. SetKey is safe from any goroutine.
type Virtual struct {
	mu    sync.Mutex
	state keys.State
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Name() string { return "virtual" }
func (v *Virtual) Features() Feature { return FeatureTouch }

func (v *Virtual) SetKey(k keys.Key, down bool) {
	v.mu.Lock()
	v.state.Set(k, down)
	v.mu.Unlock()
}

// ReleaseAll lifts every virtual key, such as when the app loses focus.
func (v *Virtual) ReleaseAll() {
	v.mu.Lock()
	v.state.Clear()
	v.mu.Unlock()
}

func (v *Virtual) Poll(st *keys.State) {
	v.mu.Lock()
	st.Merge(&v.state)
	v.mu.Unlock()
}
