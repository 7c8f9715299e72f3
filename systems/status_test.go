package systems

import (
	"testing"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name         string
		from         components.CursorData
		dx, dy       int
		throughWalls bool
		wantX, wantY int
		moved        bool
		blocked      bool
	}{
		{"step right", components.CursorData{X: 3, Y: 3}, 1, 0, false, 4, 3, true, false},
		{"diagonal", components.CursorData{X: 3, Y: 3}, -1, 1, false, 2, 4, true, false},
		{"left wall", components.CursorData{X: 0, Y: 3}, -1, 0, false, 0, 3, false, true},
		{"corner slides along the wall", components.CursorData{X: 0, Y: 3}, -1, -1, false, 0, 2, true, true},
		{"bottom right corner", components.CursorData{X: FieldCols - 1, Y: FieldRows - 1}, 1, 1, false, FieldCols - 1, FieldRows - 1, false, true},
		{"wraps through walls", components.CursorData{X: 0, Y: 0}, -1, -1, true, FieldCols - 1, FieldRows - 1, true, false},
		{"wraps right", components.CursorData{X: FieldCols - 1, Y: 2}, 1, 0, true, 0, 2, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.from
			assert.Equal(t, tt.moved, MoveCursor(&c, tt.dx, tt.dy, tt.throughWalls))
			assert.Equal(t, tt.wantX, c.X)
			assert.Equal(t, tt.wantY, c.Y)
			assert.Equal(t, tt.blocked, c.Blocked)
		})
	}
}

func TestUpdateCursorRepeatsWhileHeld(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	startX := c.X

	h.press(keys.Right)
	assert.Equal(t, startX+1, c.X)

	h.frames(CursorStepTicks)
	assert.Equal(t, startX+1, c.X, "waits out the step delay")
	h.frame()
	assert.Equal(t, startX+2, c.X)

	h.release(keys.Right)
	h.tap(keys.Right)
	assert.Equal(t, startX+3, c.X, "a fresh press steps at once")
}

func TestUpdateCursorFrozenWhilePaused(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	startX := c.X

	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.Pause() }))
	h.tap(keys.Right)
	assert.Equal(t, startX, c.X)
	assert.True(t, GetOrCreatePause(h.system).IsPaused)

	require.NoError(t, h.eng.Submit(func(e *engine.Engine) { e.Resume() }))
	h.tap(keys.Right)
	assert.Equal(t, startX+1, c.X)
	assert.False(t, GetOrCreatePause(h.system).IsPaused)
}

func TestDebugThroughWraps(t *testing.T) {
	h := newHarness(t, nil)
	c := GetOrCreateCursor(h.system)
	c.X = FieldCols - 1

	h.tap(keys.Right)
	assert.Equal(t, FieldCols-1, c.X)
	assert.True(t, c.Blocked)

	h.tap(keys.LCtrl)
	require.True(t, h.eng.State().ThroughWalls)
	h.tap(keys.Right)
	assert.Zero(t, c.X)
	assert.False(t, c.Blocked)
}

func TestHeldButtons(t *testing.T) {
	h := newHarness(t, nil)
	h.keys.down[keys.Z] = true
	h.keys.down[keys.LShift] = true
	h.frame()

	held := heldButtons(h.eng.Resolver())
	assert.Contains(t, held, "DECISION")
	assert.Contains(t, held, "SHIFT")
	assert.NotContains(t, held, "CANCEL")
}
