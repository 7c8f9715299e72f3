// Package platform adapts ebiten's input devices to the engine's raw key
// state and hides settings the running platform cannot honour.
package platform

import (
	"fmt"
	"strings"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/charmbracelet/log"
)

// Feature is a device capability a source brings.
type Feature uint8

const (
	FeatureKeyboard Feature = 1 << iota
	FeatureMouse
	FeatureGamepad
	FeatureTouch
	// FeatureWindow means the game runs in a resizable desktop window
	FeatureWindow
)

// Source is an engine input source that declares its capabilities.
type Source interface {
	engine.Source
	Features() Feature
}

// Kind selects the set of sources for a platform.
type Kind int

const (
	Desktop Kind = iota
	Mobile
	Headless
)

var kindNames = map[Kind]string{
	Desktop:  "desktop",
	Mobile:   "mobile",
	Headless: "headless",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the names printed by Kind.String, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return Desktop, fmt.Errorf("platform: unknown platform %q", s)
}

// Selection is the set of sources chosen for a platform.
type Selection struct {
	Kind    Kind
	Sources []Source
	// Virtual is set when the platform accepts virtual key presses
	Virtual *Virtual
}

// Features is the union of every source's features.
func (s Selection) Features() Feature {
	var f Feature
	for _, src := range s.Sources {
		f |= src.Features()
	}
	return f
}

// EngineSources converts the selection for engine.WithSources.
func (s Selection) EngineSources() []engine.Source {
	out := make([]engine.Source, len(s.Sources))
	for i, src := range s.Sources {
		out[i] = src
	}
	return out
}

// Select builds the sources for kind. cfg supplies the gamepad swap options.
func Select(kind Kind, cfg *config.Input) Selection {
	sel := Selection{Kind: kind}
	switch kind {
	case Desktop:
		sel.Sources = []Source{Keyboard{}, NewGamepad(cfg)}
	case Mobile:
		sel.Virtual = NewVirtual()
		sel.Sources = []Source{sel.Virtual, NewGamepad(cfg)}
	case Headless:
		sel.Virtual = NewVirtual()
		sel.Sources = []Source{sel.Virtual}
	}
	log.Debug("input sources selected", "platform", kind, "count", len(sel.Sources))
	return sel
}

// Setup hides what the selection cannot honour and points the gamepads at
// cfg's swap options. It fits config.WithSetup.
func (s Selection) Setup(cfg *config.Config) {
	HideUnsupported(cfg, s.Features())
	for _, src := range s.Sources {
		if g, ok := src.(*Gamepad); ok {
			g.Bind(cfg.Input)
		}
	}
}

// Renderer names the renderer reported by the locked Video.Renderer param.
func (s Selection) Renderer() string {
	if s.Kind == Headless {
		return "none"
	}
	return "ebiten"
}

// HideUnsupported hides parameters the selected features cannot honour.
// Call once before loading the config so hidden values are neither loaded
// nor saved.
func HideUnsupported(cfg *config.Config, features Feature) {
	if features&FeatureGamepad == 0 {
		cfg.Input.GamepadSwapAnalog.Hide()
		cfg.Input.GamepadSwapDpad.Hide()
		cfg.Input.GamepadSwapAbxy.Hide()
	}
	if features&FeatureTouch == 0 {
		cfg.Video.TouchUi.Hide()
	}
	if features&FeatureWindow == 0 {
		for _, p := range []config.Param{
			cfg.Video.Fullscreen, cfg.Video.FpsRenderWindow, cfg.Video.WindowZoom,
			cfg.Video.WindowX, cfg.Video.WindowY, cfg.Video.WindowWidth, cfg.Video.WindowHeight,
		} {
			p.Hide()
		}
	}
	if features == 0 {
		cfg.Video.Hide()
		cfg.Audio.Hide()
	}
}

// Swaps are the gamepad remapping options.
type Swaps struct {
	Analog bool
	Dpad   bool
	ABXY   bool
}

var (
	analogPairs = [][2]keys.Key{
		{keys.JoyLStickUp, keys.JoyRStickUp},
		{keys.JoyLStickDown, keys.JoyRStickDown},
		{keys.JoyLStickLeft, keys.JoyRStickLeft},
		{keys.JoyLStickRight, keys.JoyRStickRight},
		{keys.JoyLStick, keys.JoyRStick},
	}
	// The face buttons sit where the D-Pad directions point
	dpadPairs = [][2]keys.Key{
		{keys.JoyDpadUp, keys.JoyY},
		{keys.JoyDpadDown, keys.JoyA},
		{keys.JoyDpadLeft, keys.JoyX},
		{keys.JoyDpadRight, keys.JoyB},
	}
	abxyPairs = [][2]keys.Key{
		{keys.JoyA, keys.JoyX},
		{keys.JoyB, keys.JoyY},
	}
)

// Swap applies the gamepad remapping options to st in place. The analog
// swap runs first, then the D-Pad swap, then the face button swap.
func Swap(st *keys.State, s Swaps) {
	if s.Analog {
		swapPairs(st, analogPairs)
	}
	if s.Dpad {
		swapPairs(st, dpadPairs)
	}
	if s.ABXY {
		swapPairs(st, abxyPairs)
	}
}

func swapPairs(st *keys.State, pairs [][2]keys.Key) {
	for _, p := range pairs {
		a, b := st.Pressed(p[0]), st.Pressed(p[1])
		st.Set(p[0], b)
		st.Set(p[1], a)
	}
}
