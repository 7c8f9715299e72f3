package systems

import (
	"testing"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/locale"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsMenuNavigation(t *testing.T) {
	h := newHarness(t, nil)
	cfg := h.eng.Config()
	menu := GetOrCreateSettingsMenu(h.system)

	h.tap(keys.F1)
	require.True(t, IsSettingsOpen(h.system))
	assert.Equal(t, components.PageMain, menu.Page)
	assert.Zero(t, menu.Selected)

	// Player, Video, Audio, Input, Keys, Reset, Save
	h.tap(keys.Down)
	assert.Equal(t, 1, menu.Selected)
	h.tap(keys.Z)
	assert.Equal(t, components.PageOptions, menu.Page)
	assert.Equal(t, config.SectionVideo, menu.Section)
	assert.Zero(t, menu.Selected)

	// Renderer is locked and stays put
	h.tap(keys.Right)
	assert.Equal(t, "ebiten", cfg.Video.Renderer.Get())

	h.tap(keys.Down)
	require.True(t, cfg.Video.Vsync.Get())
	h.tap(keys.Right)
	assert.False(t, cfg.Video.Vsync.Get())
	h.tap(keys.Z)
	assert.True(t, cfg.Video.Vsync.Get())

	h.tap(keys.Up)
	h.tap(keys.Up)
	assert.Equal(t, len(optionRows(cfg, config.SectionVideo))-1, menu.Selected, "wraps to the last row")

	h.tap(keys.X)
	assert.Equal(t, components.PageMain, menu.Page)
	assert.Equal(t, 1, menu.Selected, "back on the page that was opened")

	h.tap(keys.X)
	assert.False(t, IsSettingsOpen(h.system))
}

func TestSettingsMenuBlocksHotkeys(t *testing.T) {
	h := newHarness(t, nil)
	OpenSettings(h.system)

	h.tap(keys.F12)
	assert.False(t, h.eng.State().ResetRequested)

	c := GetOrCreateCursor(h.system)
	before := *c
	h.tap(keys.Right)
	assert.Equal(t, before.X, c.X, "cursor is frozen while the overlay is open")
}

func TestSettingsMenuRebind(t *testing.T) {
	h := newHarness(t, nil)
	m := h.eng.Config().Input.Buttons
	menu := GetOrCreateSettingsMenu(h.system)
	*menu = components.SettingsMenuData{IsOpen: true, Page: components.PageKeys, Selected: int(input.DebugMenu)}

	h.tap(keys.Z)
	require.True(t, menu.Capturing)

	h.press(keys.H)
	assert.False(t, menu.Capturing)
	assert.Contains(t, m.Right(input.DebugMenu), keys.H)
	assert.Equal(t, keys.H, menu.HeldKey)

	h.frame()
	assert.Equal(t, keys.H, menu.HeldKey, "waits until the new key is let go")
	h.release(keys.H)
	assert.Equal(t, keys.None, menu.HeldKey)
	assert.True(t, menu.IsOpen)
}

func TestSettingsMenuRebindTakesKeyFromOthers(t *testing.T) {
	h := newHarness(t, nil)
	m := h.eng.Config().Input.Buttons
	menu := GetOrCreateSettingsMenu(h.system)
	*menu = components.SettingsMenuData{IsOpen: true, Page: components.PageKeys, Selected: int(input.DebugSave)}

	h.tap(keys.Z)
	h.tap(keys.F9)

	assert.Contains(t, m.Right(input.DebugSave), keys.F9)
	assert.NotContains(t, m.Right(input.DebugMenu), keys.F9)
}

func TestSettingsMenuCaptureTimesOut(t *testing.T) {
	h := newHarness(t, nil)
	menu := GetOrCreateSettingsMenu(h.system)
	*menu = components.SettingsMenuData{IsOpen: true, Page: components.PageKeys, Selected: int(input.DebugMenu)}

	h.tap(keys.Z)
	require.True(t, menu.Capturing)
	h.frames(captureTicks)
	assert.False(t, menu.Capturing)
	assert.Equal(t, []keys.Key{keys.F9}, h.eng.Config().Input.Buttons.Right(input.DebugMenu))
}

func TestSettingsMenuRemoveLastKey(t *testing.T) {
	h := newHarness(t, nil)
	m := h.eng.Config().Input.Buttons
	menu := GetOrCreateSettingsMenu(h.system)
	*menu = components.SettingsMenuData{IsOpen: true, Page: components.PageKeys, Selected: int(input.SettingsMenu)}
	require.Len(t, m.Right(input.SettingsMenu), 2)

	h.tap(keys.LShift)
	assert.Len(t, m.Right(input.SettingsMenu), 1)
	assert.Empty(t, menu.Message)

	h.tap(keys.LShift)
	assert.Len(t, m.Right(input.SettingsMenu), 1, "a protected button keeps its last key")
	assert.Contains(t, menu.Message, input.SettingsMenu.String())
}

func TestStrandedOwner(t *testing.T) {
	m := input.DefaultButtonMappings()
	require.NoError(t, input.Unbind(m, input.SettingsMenu, keys.JoyStart))

	assert.Equal(t, input.SettingsMenu, strandedOwner(m, input.ToggleFps, keys.F1))
	assert.Equal(t, input.ToggleFps, strandedOwner(m, input.ToggleFps, keys.Z), "Decision has keys to spare")
}

func TestMainRowsSkipHiddenGroups(t *testing.T) {
	cat, err := locale.Load("en")
	require.NoError(t, err)

	kinds := func(rows []settingsRow) (pages []string, hasKeys bool) {
		for _, r := range rows {
			switch r.kind {
			case rowPage:
				pages = append(pages, r.section)
			case rowKeys:
				hasKeys = true
			}
		}
		return pages, hasKeys
	}

	cfg := config.Default()
	pages, hasKeys := kinds(mainRows(cfg, cat))
	assert.Equal(t, []string{config.SectionPlayer, config.SectionVideo, config.SectionAudio, config.SectionInput}, pages)
	assert.True(t, hasKeys)

	cfg.Audio.Hide()
	cfg.Input.Hide()
	rows := mainRows(cfg, cat)
	pages, hasKeys = kinds(rows)
	assert.Equal(t, []string{config.SectionPlayer, config.SectionVideo}, pages)
	assert.False(t, hasKeys)
	assert.Equal(t, rowSave, rows[len(rows)-1].kind)
}

func TestOptionRowsOnlyVisible(t *testing.T) {
	cfg := config.Default()
	cfg.Video.TouchUi.Hide()

	var keysShown []string
	for _, r := range optionRows(cfg, config.SectionVideo) {
		keysShown = append(keysShown, r.param.Key())
	}
	assert.Contains(t, keysShown, "Vsync")
	assert.NotContains(t, keysShown, "TouchUi")
	assert.NotContains(t, keysShown, "WindowX")

	assert.Nil(t, optionRows(cfg, "Nope"))
}

func TestAdjustParam(t *testing.T) {
	tests := []struct {
		name    string
		param   func(c *config.Config) config.Param
		prepare func(c *config.Config)
		dir     int
		big     bool
		changed bool
		check   func(t *testing.T, c *config.Config)
	}{
		{
			name:    "bool toggles",
			param:   func(c *config.Config) config.Param { return c.Video.Stretch },
			dir:     -1,
			changed: true,
			check:   func(t *testing.T, c *config.Config) { assert.True(t, c.Video.Stretch.Get()) },
		},
		{
			name:    "range step",
			param:   func(c *config.Config) config.Param { return c.Audio.SoundVolume },
			dir:     -1,
			changed: true,
			check:   func(t *testing.T, c *config.Config) { assert.Equal(t, 99, c.Audio.SoundVolume.Get()) },
		},
		{
			name:    "range big step",
			param:   func(c *config.Config) config.Param { return c.Audio.SoundVolume },
			dir:     -1,
			big:     true,
			changed: true,
			check:   func(t *testing.T, c *config.Config) { assert.Equal(t, 90, c.Audio.SoundVolume.Get()) },
		},
		{
			name:  "range at max",
			param: func(c *config.Config) config.Param { return c.Audio.MusicVolume },
			dir:   1,
			check: func(t *testing.T, c *config.Config) { assert.Equal(t, 100, c.Audio.MusicVolume.Get()) },
		},
		{
			name:    "zoom clamps",
			param:   func(c *config.Config) config.Param { return c.Video.WindowZoom },
			prepare: func(c *config.Config) { c.Video.WindowZoom.Set(MaxWindowZoom) },
			dir:     1,
			check:   func(t *testing.T, c *config.Config) { assert.Equal(t, MaxWindowZoom, c.Video.WindowZoom.Get()) },
		},
		{
			name:    "enum cycles back",
			param:   func(c *config.Config) config.Param { return c.Video.ScalingMode },
			dir:     -1,
			changed: true,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.ScalingBilinear, c.Video.ScalingMode.Get())
			},
		},
		{
			name:  "locked",
			param: func(c *config.Config) config.Param { return c.Video.Renderer },
			dir:   1,
			check: func(t *testing.T, c *config.Config) { assert.Equal(t, "ebiten", c.Video.Renderer.Get()) },
		},
		{
			name:  "string has no steps",
			param: func(c *config.Config) config.Param { return c.Player.EnemyAiAlgo },
			dir:   1,
			check: func(t *testing.T, c *config.Config) { assert.Empty(t, c.Player.EnemyAiAlgo.Get()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			if tt.prepare != nil {
				tt.prepare(c)
			}
			assert.Equal(t, tt.changed, adjustParam(c, tt.param(c), tt.dir, tt.big))
			tt.check(t, c)
		})
	}
}

func TestFormatValue(t *testing.T) {
	cat, err := locale.Load("en")
	require.NoError(t, err)
	c := config.Default()

	assert.Equal(t, "ON", formatValue(c, cat, c.Video.Vsync))
	assert.Equal(t, "OFF", formatValue(c, cat, c.Video.Stretch))
	assert.Equal(t, "x2", formatValue(c, cat, c.Video.WindowZoom))
	assert.Equal(t, "Nearest", formatValue(c, cat, c.Video.ScalingMode))
	assert.Equal(t, "100", formatValue(c, cat, c.Audio.SoundVolume))
	assert.Equal(t, "60", formatValue(c, cat, c.Video.FpsLimit))

	c.Video.FpsLimit.Set(0)
	assert.Equal(t, "Unlimited", formatValue(c, cat, c.Video.FpsLimit))
}

func TestResetDefaultsRow(t *testing.T) {
	h := newHarness(t, nil)
	cfg := h.eng.Config()
	cfg.Audio.SoundVolume.Set(10)
	require.NoError(t, input.Unbind(cfg.Input.Buttons, input.DebugMenu, keys.F9))

	menu := GetOrCreateSettingsMenu(h.system)
	OpenSettings(h.system)
	rows := mainRows(cfg, getRuntime(h.system).Catalog)
	for i, r := range rows {
		if r.kind == rowReset {
			menu.Selected = i
		}
	}

	h.tap(keys.Z)
	assert.Equal(t, 100, cfg.Audio.SoundVolume.Get())
	assert.Equal(t, []keys.Key{keys.F9}, cfg.Input.Buttons.Right(input.DebugMenu))
	assert.NotEmpty(t, menu.Message)
}
