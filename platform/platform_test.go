package platform

import (
	"testing"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressedKeys(st *keys.State) []keys.Key {
	var out []keys.Key
	for k := keys.None + 1; k < keys.Count; k++ {
		if st.Pressed(k) {
			out = append(out, k)
		}
	}
	return out
}

func TestSwap(t *testing.T) {
	tests := []struct {
		name  string
		press []keys.Key
		swaps Swaps
		want  []keys.Key
	}{
		{"no swaps", []keys.Key{keys.JoyA, keys.JoyLStickUp}, Swaps{}, []keys.Key{keys.JoyA, keys.JoyLStickUp}},
		{"analog", []keys.Key{keys.JoyLStickUp, keys.JoyRStickLeft}, Swaps{Analog: true}, []keys.Key{keys.JoyRStickUp, keys.JoyLStickLeft}},
		{"dpad", []keys.Key{keys.JoyDpadDown, keys.JoyB}, Swaps{Dpad: true}, []keys.Key{keys.JoyA, keys.JoyDpadRight}},
		{"abxy", []keys.Key{keys.JoyA, keys.JoyY}, Swaps{ABXY: true}, []keys.Key{keys.JoyX, keys.JoyB}},
		{"dpad then abxy", []keys.Key{keys.JoyDpadDown}, Swaps{Dpad: true, ABXY: true}, []keys.Key{keys.JoyX}},
		{"keyboard untouched", []keys.Key{keys.Z}, Swaps{Analog: true, Dpad: true, ABXY: true}, []keys.Key{keys.Z}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st keys.State
			st.Press(tt.press...)
			Swap(&st, tt.swaps)
			assert.ElementsMatch(t, tt.want, pressedKeys(&st))
		})
	}
}

func TestVirtualSource(t *testing.T) {
	v := NewVirtual()
	v.SetKey(keys.Z, true)
	v.SetKey(keys.Up, true)
	v.SetKey(keys.Up, false)

	var st keys.State
	v.Poll(&st)
	assert.Equal(t, []keys.Key{keys.Z}, pressedKeys(&st))

	v.ReleaseAll()
	st.Clear()
	v.Poll(&st)
	assert.Empty(t, pressedKeys(&st))
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Desktop, Mobile, Headless} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("MOBILE")
	require.NoError(t, err)
	assert.Equal(t, Mobile, got)

	_, err = ParseKind("console")
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	cfg := config.Default()

	desktop := Select(Desktop, cfg.Input)
	assert.Nil(t, desktop.Virtual)
	assert.Equal(t, FeatureKeyboard|FeatureMouse|FeatureWindow|FeatureGamepad, desktop.Features())
	assert.Len(t, desktop.EngineSources(), 2)

	mobile := Select(Mobile, cfg.Input)
	require.NotNil(t, mobile.Virtual)
	assert.Equal(t, FeatureTouch|FeatureGamepad, mobile.Features())

	headless := Select(Headless, cfg.Input)
	assert.Equal(t, FeatureTouch, headless.Features())
}

func TestHideUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		features Feature
		hidden   func(c *config.Config) []config.Param
		shown    func(c *config.Config) []config.Param
	}{
		{
			name:     "desktop without gamepad",
			features: FeatureKeyboard | FeatureMouse | FeatureWindow,
			hidden: func(c *config.Config) []config.Param {
				return []config.Param{c.Input.GamepadSwapAnalog, c.Input.GamepadSwapDpad, c.Input.GamepadSwapAbxy, c.Video.TouchUi}
			},
			shown: func(c *config.Config) []config.Param {
				return []config.Param{c.Video.Fullscreen, c.Video.WindowZoom}
			},
		},
		{
			name:     "mobile",
			features: FeatureTouch | FeatureGamepad,
			hidden: func(c *config.Config) []config.Param {
				return []config.Param{c.Video.Fullscreen, c.Video.WindowZoom, c.Video.WindowX}
			},
			shown: func(c *config.Config) []config.Param {
				return []config.Param{c.Video.TouchUi, c.Input.GamepadSwapDpad, c.Video.Vsync}
			},
		},
		{
			name:     "nothing",
			features: 0,
			hidden: func(c *config.Config) []config.Param {
				return []config.Param{c.Video.Vsync, c.Audio.MusicVolume}
			},
			shown: func(c *config.Config) []config.Param {
				return []config.Param{c.Input.SpeedModifierA}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			HideUnsupported(c, tt.features)
			for _, p := range tt.hidden(c) {
				assert.True(t, p.IsHidden(), p.Key())
			}
			for _, p := range tt.shown(c) {
				assert.False(t, p.IsHidden(), p.Key())
			}
		})
	}
}

func TestEbitenKeyCoversKeyboard(t *testing.T) {
	for k := keys.None + 1; k < keys.Count; k++ {
		if !k.IsKeyboard() {
			continue
		}
		_, ok := EbitenKey(k)
		assert.True(t, ok, k.String())
	}
	_, ok := EbitenKey(keys.JoyA)
	assert.False(t, ok)
}

func TestSelectionSetup(t *testing.T) {
	sel := Select(Mobile, nil)
	cfg, err := config.Create(nil, config.NewMemoryStore(), config.WithSetup(sel.Setup), config.WithRenderer(sel.Renderer()))
	require.NoError(t, err)

	assert.True(t, cfg.Video.Fullscreen.IsHidden())
	assert.False(t, cfg.Video.TouchUi.IsHidden())
	assert.Equal(t, "ebiten", cfg.Video.Renderer.Get())

	var gp *Gamepad
	for _, src := range sel.Sources {
		if g, ok := src.(*Gamepad); ok {
			gp = g
		}
	}
	require.NotNil(t, gp)
	assert.Same(t, cfg.Input, gp.cfg)
}
