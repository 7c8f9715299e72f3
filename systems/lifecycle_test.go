package systems

import (
	"path/filepath"
	"testing"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestedSettingsOpenOverlay(t *testing.T) {
	h := newHarness(t, nil)
	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.RequestSettings() }))

	h.frame()
	assert.True(t, IsSettingsOpen(h.system))
}

func TestRequestsLandWhilePaused(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	c.X = 0
	require.NoError(t, h.eng.Submit(func(e *engine.Engine) {
		e.Pause()
		e.RequestSettings()
	}))

	h.frame()
	assert.True(t, IsSettingsOpen(h.system))

	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.RequestReset() }))
	h.frame()
	assert.False(t, IsSettingsOpen(h.system))
	assert.Equal(t, newCursor().X, c.X)
	assert.True(t, h.eng.State().Paused)
}

func TestResetGame(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	c.X, c.Y = 0, 0
	Notify(h.system, "one")
	Notify(h.system, "two")
	OpenSettings(h.system)

	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.RequestReset() }))
	h.frame()

	assert.False(t, IsSettingsOpen(h.system))
	assert.Equal(t, newCursor(), *c)
	hud := GetOrCreateHUD(h.system)
	require.Len(t, hud.Messages, 1)
	assert.Equal(t, "Reset", hud.Messages[0].Text)
	assert.False(t, h.eng.State().ResetRequested)
}

func TestResetHotkey(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	c.X = 0

	h.tap(keys.F12)
	assert.Equal(t, newCursor().X, c.X)
}

func TestSystemHotkeysWorkWhilePaused(t *testing.T) {
	h := newHarness(t, nil)
	v := h.eng.Config().Video
	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.Pause() }))

	h.tap(keys.F2)
	assert.True(t, v.ShowFps.Get())

	hud := GetOrCreateHUD(h.system)
	h.tap(keys.F3)
	assert.True(t, hud.ShowLog)
	h.tap(keys.F8)
	assert.True(t, hud.ScreenshotRequested)

	// Zoom only cycles in window mode
	h.tap(keys.F5)
	assert.Equal(t, 2, v.WindowZoom.Get())
	v.Fullscreen.Set(false)
	h.tap(keys.F5)
	assert.Equal(t, 3, v.WindowZoom.Get())
}

func TestHiddenParamsIgnoreHotkeys(t *testing.T) {
	cfg := config.Default()
	cfg.Video.ShowFps.Hide()
	cfg.Video.Fullscreen.Hide()
	h := newHarness(t, cfg)

	h.tap(keys.F2)
	h.tap(keys.F4)
	assert.False(t, cfg.Video.ShowFps.Get())
	assert.True(t, cfg.Video.Fullscreen.Get())
}

func TestFullscreenHotkey(t *testing.T) {
	h := newHarness(t, nil)
	v := h.eng.Config().Video

	h.tap(keys.F4)
	assert.False(t, v.Fullscreen.Get())
	h.tap(keys.F4)
	assert.True(t, v.Fullscreen.Get())
}

func TestExitSavesOnce(t *testing.T) {
	tests := []struct {
		name     string
		autosave bool
		saved    bool
	}{
		{"autosave on", true, true},
		{"autosave off", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &config.FileStore{Path: filepath.Join(t.TempDir(), "config.ini")}
			cfg := config.Default()
			cfg.Player.SettingsAutosave.Set(tt.autosave)
			h := newHarness(t, cfg, engine.WithStore(store, nil))

			require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.RequestExit() }))
			h.frame()
			if !tt.saved {
				assert.NoFileExists(t, store.Path)
				return
			}
			require.FileExists(t, store.Path)
			assert.True(t, getRuntime(h.system).Exited)

			loaded := config.Default()
			require.NoError(t, loaded.Load(store))
			assert.True(t, loaded.Player.SettingsAutosave.Get())

			// No second save
			cfg.Audio.SoundVolume.Set(5)
			h.frame()
			loaded = config.Default()
			require.NoError(t, loaded.Load(store))
			assert.Equal(t, 100, loaded.Audio.SoundVolume.Get())
		})
	}
}

func TestSaveSettingsReportsOnHUD(t *testing.T) {
	store := config.NewMemoryStore()
	h := newHarness(t, nil, engine.WithStore(store, nil))
	h.eng.Config().Audio.MusicVolume.Set(40)

	require.NoError(t, SaveSettings(h.system))
	hud := GetOrCreateHUD(h.system)
	require.NotEmpty(t, hud.Messages)
	assert.Equal(t, "Settings saved", hud.Messages[len(hud.Messages)-1].Text)

	loaded := config.Default()
	require.NoError(t, loaded.Load(store))
	assert.Equal(t, 40, loaded.Audio.MusicVolume.Get())
}
