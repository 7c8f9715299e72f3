package input

import (
	"testing"

	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(opts ...Option) *Resolver {
	return NewResolver(DefaultButtonMappings(), nil, opts...)
}

func rawOf(ks ...keys.Key) *keys.State {
	var s keys.State
	s.Press(ks...)
	return &s
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name     string
		policy   CancelPolicy
		pressed  []keys.Key
		wantDir4 Direction
		wantDir8 Direction
	}{
		{"nothing", CancelAll, nil, DirNone, DirNone},
		{"up only", CancelAll, []keys.Key{keys.Up}, DirUp, DirUp},
		{"up via gamepad", CancelAll, []keys.Key{keys.JoyDpadUp}, DirUp, DirUp},
		{"up left", CancelAll, []keys.Key{keys.Up, keys.Left}, DirLeft, DirUpLeft},
		{"down right", CancelAll, []keys.Key{keys.Down, keys.Right}, DirDown, DirDownRight},
		{"left right cancel", CancelAll, []keys.Key{keys.Left, keys.Right}, DirNone, DirNone},
		{"up down cancel", CancelAll, []keys.Key{keys.Up, keys.Down}, DirNone, DirNone},
		{"opposite plus up cancels all", CancelAll, []keys.Key{keys.Left, keys.Right, keys.Up}, DirNone, DirNone},
		{"axis policy keeps up", CancelAxis, []keys.Key{keys.Left, keys.Right, keys.Up}, DirUp, DirUp},
		{"axis policy both axes", CancelAxis, []keys.Key{keys.Left, keys.Right, keys.Up, keys.Down}, DirNone, DirNone},
		{"axis policy plain diagonal", CancelAxis, []keys.Key{keys.Up, keys.Right}, DirRight, DirUpRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(WithCancelPolicy(tt.policy))
			r.Update(rawOf(tt.pressed...))
			assert.Equal(t, tt.wantDir4, r.Dir4())
			assert.Equal(t, tt.wantDir8, r.Dir8())
		})
	}
}

func TestDir4PrefersMostRecentPress(t *testing.T) {
	r := newTestResolver()

	r.Update(rawOf(keys.Up))
	r.Update(rawOf(keys.Up))
	r.Update(rawOf(keys.Up, keys.Right))

	assert.Equal(t, DirRight, r.Dir4())
	assert.Equal(t, DirUpRight, r.Dir8())
	assert.Equal(t, 4, r.DirPress(DirUpRight))
}

func TestCenterIsNeverDerived(t *testing.T) {
	r := newTestResolver(WithCancelPolicy(CancelAxis))
	combos := [][]keys.Key{
		nil,
		{keys.Up},
		{keys.Up, keys.Down},
		{keys.Left, keys.Right, keys.Up, keys.Down},
		{keys.Down, keys.Left},
	}
	for _, combo := range combos {
		r.Update(rawOf(combo...))
		assert.NotEqual(t, DirCenter, r.Dir4())
		assert.NotEqual(t, DirCenter, r.Dir8())
	}
}

func TestButtonEdges(t *testing.T) {
	r := newTestResolver()

	r.Update(rawOf(keys.Z))
	assert.True(t, r.IsPressed(Decision))
	assert.True(t, r.IsTriggered(Decision))
	assert.True(t, r.IsRepeated(Decision))
	assert.True(t, r.IsAnyTriggered())

	r.Update(rawOf(keys.Enter))
	assert.True(t, r.IsPressed(Decision), "alternate binding keeps the button held")
	assert.False(t, r.IsTriggered(Decision))
	assert.Equal(t, 2, r.PressTime(Decision))

	r.Update(rawOf())
	assert.False(t, r.IsPressed(Decision))
	assert.True(t, r.IsReleased(Decision))
	assert.False(t, r.IsAnyPressed())

	r.Update(rawOf())
	assert.False(t, r.IsReleased(Decision))
}

func TestRepeatTiming(t *testing.T) {
	r := newTestResolver(WithRepeat(3, 2))

	var repeats []int
	for frame := 1; frame <= 8; frame++ {
		r.Update(rawOf(keys.Z))
		if r.IsRepeated(Decision) {
			repeats = append(repeats, frame)
		}
	}
	assert.Equal(t, []int{1, 3, 5, 7}, repeats)
}

func TestSystemButtonsFollowPhysicalTick(t *testing.T) {
	r := newTestResolver()
	raw := rawOf(keys.F2, keys.Z)

	r.UpdateSystem(raw)
	assert.True(t, r.IsPressed(ToggleFps))
	assert.False(t, r.IsPressed(Decision), "logic buttons wait for the logic tick")

	r.Update(raw)
	assert.True(t, r.IsPressed(Decision))
	assert.Equal(t, 1, r.PressTime(ToggleFps), "logic tick leaves system buttons alone")
}

func TestRebindingTakesEffect(t *testing.T) {
	r := newTestResolver()
	require.NoError(t, Rebind(r.Buttons(), Shift, keys.Q))

	r.Update(rawOf(keys.Q))
	assert.True(t, r.IsPressed(Shift))

	r.SetButtons(DefaultButtonMappings())
	assert.False(t, r.IsPressed(Shift))
	r.Update(rawOf(keys.Q))
	assert.False(t, r.IsPressed(Shift))
}

func TestCustomDirectionMapping(t *testing.T) {
	dirs := DefaultDirectionMappings()
	dirs.RemoveLeft(DirUpLeft)
	r := NewResolver(DefaultButtonMappings(), dirs)

	r.Update(rawOf(keys.Up, keys.Left))
	assert.Equal(t, DirLeft, r.Dir8(), "unmapped diagonal falls back to the four-way result")
}
