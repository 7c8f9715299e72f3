package engine

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource presses a fixed set of keys every frame
type fakeSource struct {
	pressed []keys.Key
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Poll(st *keys.State) {
	st.Press(f.pressed...)
}

func TestQueueRunsTasksInOrder(t *testing.T) {
	e := New(config.Default())
	var got []int
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Submit(func(*Engine) { got = append(got, i) }))
	}

	assert.Equal(t, 5, e.queue.Len())
	assert.Equal(t, 5, e.queue.Drain(e))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Zero(t, e.queue.Len())
}

func TestQueueConcurrentSubmit(t *testing.T) {
	e := New(config.Default())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = e.Submit(func(e *Engine) { e.state.SpeedFactor++ })
			}
		}()
	}
	wg.Wait()

	e.queue.Drain(e)
	assert.Equal(t, 801.0, e.state.SpeedFactor)
}

func TestQueueTaskSubmittedWhileDraining(t *testing.T) {
	e := New(config.Default())
	ran := 0
	require.NoError(t, e.Submit(func(e *Engine) {
		ran++
		_ = e.Submit(func(*Engine) { ran++ })
	}))

	assert.Equal(t, 1, e.queue.Drain(e))
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, e.queue.Drain(e))
	assert.Equal(t, 2, ran)
}

func TestQueueClosed(t *testing.T) {
	e := New(config.Default())
	e.Close()
	assert.ErrorIs(t, e.Submit(func(*Engine) {}), ErrClosed)
}

func TestClockSteps(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		want  []int
	}{
		{"normal", 1, []int{1, 1, 1, 1}},
		{"half", 0.5, []int{0, 1, 0, 1}},
		{"triple", 3, []int{3, 3, 3, 3}},
		{"stopped", 0, []int{0, 0, 0, 0}},
		{"capped", MaxStepsPerFrame * 2, []int{MaxStepsPerFrame, MaxStepsPerFrame, MaxStepsPerFrame, MaxStepsPerFrame}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			got := make([]int, 0, len(tt.want))
			for range tt.want {
				got = append(got, c.Steps(tt.speed))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrameRunsLogicTicks(t *testing.T) {
	e := New(config.Default())
	system, logic := 0, 0
	hooks := Hooks{
		System: func() { system++ },
		Logic:  func() { logic++ },
	}

	assert.Equal(t, 1, e.Frame(hooks))
	assert.Equal(t, 1, system)
	assert.Equal(t, 1, logic)
	assert.Equal(t, uint64(1), e.Snapshot().Frame)
}

func TestFramePausedSkipsLogic(t *testing.T) {
	src := &fakeSource{pressed: []keys.Key{keys.F2, keys.Z}}
	e := New(config.Default(), WithSources(src))
	logic := 0

	require.NoError(t, e.Submit(func(e *Engine) { e.Pause() }))
	assert.Zero(t, e.Frame(Hooks{Logic: func() { logic++ }}))
	assert.Zero(t, logic)
	assert.True(t, e.Snapshot().Paused)

	// System buttons keep refreshing while paused
	assert.True(t, e.Resolver().IsTriggered(input.ToggleFps))
	assert.False(t, e.Resolver().IsPressed(input.Decision))

	require.NoError(t, e.Submit(func(e *Engine) { e.Resume() }))
	assert.Equal(t, 1, e.Frame(Hooks{Logic: func() { logic++ }}))
	assert.True(t, e.Resolver().IsTriggered(input.Decision))
}

func TestFastForward(t *testing.T) {
	tests := []struct {
		name    string
		pressed []keys.Key
		want    int
	}{
		{"none", nil, 1},
		{"a", []keys.Key{keys.F}, 3},
		{"b", []keys.Key{keys.G}, 10},
		{"b wins", []keys.Key{keys.F, keys.G}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(config.Default(), WithSources(&fakeSource{pressed: tt.pressed}))
			assert.Equal(t, tt.want, e.Frame(Hooks{}))
		})
	}
}

func TestFrameRateCompensation(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		want []int
	}{
		{"default", 0, []int{1, 1, 1, 1}},
		{"half rate", 30, []int{2, 2, 2, 2}},
		{"double rate", 120, []int{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(config.Default())
			e.SetFrameRate(tt.fps)
			var got []int
			for range tt.want {
				got = append(got, e.Frame(Hooks{}))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpeedFactorClamped(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2, 2},
		{0, MinSpeedFactor},
		{-3, MinSpeedFactor},
		{50, MaxSpeedFactor},
	}
	for _, tt := range tests {
		e := New(config.Default())
		e.SetSpeedFactor(tt.in)
		assert.Equal(t, tt.want, e.State().SpeedFactor)
	}
}

func TestSetFastForwardMultiplier(t *testing.T) {
	cfg := config.Default()
	e := New(cfg)

	e.SetFastForwardMultiplier(7)
	assert.Equal(t, 7, cfg.Input.SpeedModifierA.Get())
	e.SetFastForwardMultiplier(1)
	assert.Equal(t, 2, cfg.Input.SpeedModifierA.Get())
}

func TestRequestsAreTakenOnce(t *testing.T) {
	e := New(config.Default())
	e.RequestReset()
	e.RequestSettings()

	assert.True(t, e.TakeReset())
	assert.False(t, e.TakeReset())
	assert.True(t, e.TakeSettings())
	assert.False(t, e.TakeSettings())
}

func TestExitStopsLogic(t *testing.T) {
	e := New(config.Default())
	require.NoError(t, e.Submit(func(e *Engine) { e.RequestExit() }))
	assert.Zero(t, e.Frame(Hooks{}))
	assert.True(t, e.Snapshot().Exiting)
}

func TestSaveAndReload(t *testing.T) {
	store := &config.FileStore{Path: filepath.Join(t.TempDir(), "config.ini")}
	cfg := config.Default()
	e := New(cfg, WithStore(store, nil))

	cfg.Video.FpsLimit.Set(30)
	require.NoError(t, e.Save())

	cfg.Video.FpsLimit.Set(90)
	require.NoError(t, e.Reload())
	assert.Equal(t, 30, cfg.Video.FpsLimit.Get())
}
