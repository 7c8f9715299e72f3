package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolSetText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		ok    bool
	}{
		{"true", "true", true, true},
		{"false", "false", false, true},
		{"numeric on", "1", true, true},
		{"numeric off", "0", false, true},
		{"yes with padding", "  Yes ", true, true},
		{"off", "OFF", false, true},
		{"garbage", "maybe", true, false},
		{"empty", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBool(SectionVideo, "Vsync", "V-Sync", "", true)
			assert.Equal(t, tt.ok, p.SetText(tt.input))
			assert.Equal(t, tt.want, p.Get())
		})
	}
}

func TestBoolTextRoundTrip(t *testing.T) {
	p := NewBool(SectionVideo, "Stretch", "Stretch", "", false)
	p.Toggle()
	assert.Equal(t, "true", p.Text())

	q := NewBool(SectionVideo, "Stretch", "Stretch", "", false)
	require.True(t, q.SetText(p.Text()))
	assert.Equal(t, p.Get(), q.Get())
}

func TestRangeClamps(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		want   int
		result SetResult
	}{
		{"inside", 50, 50, Accepted},
		{"lower bound", 0, 0, Accepted},
		{"upper bound", 100, 100, Accepted},
		{"below", -5, 0, Clamped},
		{"above", 250, 100, Clamped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRange(SectionAudio, "MusicVolume", "BGM Volume", "", 0, 100, 100)
			assert.Equal(t, tt.result, p.Set(tt.value))
			assert.Equal(t, tt.want, p.Get())
			assert.GreaterOrEqual(t, p.Get(), p.Min())
			assert.LessOrEqual(t, p.Get(), p.Max())
		})
	}
}

func TestRangeSetTextClamps(t *testing.T) {
	p := NewRange(SectionInput, "SpeedModifierA", "", "", 2, 100, 3)

	assert.True(t, p.SetText("1000"))
	assert.Equal(t, 100, p.Get())

	assert.False(t, p.SetText("fast"))
	assert.Equal(t, 100, p.Get())

	p.Reset()
	assert.Equal(t, 3, p.Get())
}

func TestRangeDefaultIsClamped(t *testing.T) {
	p := NewRange(SectionAudio, "SoundVolume", "", "", 0, 100, 500)
	assert.Equal(t, 100, p.Default())
}

func TestRangeStep(t *testing.T) {
	p := NewRange(SectionVideo, "FpsLimit", "", "", 0, 99999, 60)
	assert.Equal(t, Accepted, p.Step(1))
	assert.Equal(t, 61, p.Get())
	assert.Equal(t, Clamped, p.Step(-100))
	assert.Equal(t, 0, p.Get())
}

func TestLockedRejectsWrites(t *testing.T) {
	p := NewLocked(SectionVideo, "Renderer", "Renderer", "", "opengl")

	assert.True(t, p.IsLocked())
	assert.Equal(t, Rejected, p.Set("metal"))
	assert.False(t, p.SetText("metal"))
	p.Reset()
	assert.Equal(t, "opengl", p.Get())
	assert.False(t, p.IsPersisted())
}

func TestStringPersistedOnlyWhenSet(t *testing.T) {
	p := NewString(SectionPlayer, "AutobattleAlgo", "", "", "")
	assert.False(t, p.IsPersisted())
	assert.False(t, p.IsVisible())

	require.True(t, p.SetText("RPG_RT+"))
	assert.True(t, p.IsPersisted())
	assert.Equal(t, "RPG_RT+", p.Text())
}

func TestHiddenParam(t *testing.T) {
	p := NewBool(SectionVideo, "ShowFps", "Show FPS", "", false)
	require.True(t, p.IsVisible())

	p.Hide()
	assert.False(t, p.IsVisible())
	assert.False(t, p.IsPersisted())

	p.Show()
	assert.True(t, p.IsVisible())
}

func TestSetLabels(t *testing.T) {
	p := NewBool(SectionVideo, "ShowFps", "Show FPS", "Toggle display", false)
	p.SetLabels("显示FPS", "切换FPS显示")
	assert.Equal(t, "显示FPS", p.Name())
	assert.Equal(t, "切换FPS显示", p.Description())

	// Unnamed params stay unnamed so they never become visible
	geom := NewInt(SectionVideo, "WindowX", "", "", -1)
	geom.SetLabels("X", "")
	assert.Empty(t, geom.Name())
	assert.False(t, geom.IsVisible())
}
