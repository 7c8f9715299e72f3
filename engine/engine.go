// Package engine runs the per-frame input and logic loop. It owns the
// config tree, the input resolver and the run state, and is only driven
// from the logic goroutine. Other goroutines talk to it through Submit.
package engine

import (
	"context"
	"sync/atomic"

	"github.com/automoto/rpgplayer/config"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// Source feeds physical key state into the engine once per frame.
type Source interface {
	Name() string
	Poll(st *keys.State)
}

// Hooks are the per-frame callbacks of the surrounding game.
type Hooks struct {
	// System runs every physical frame after system buttons refresh,
	// including while paused.
	System func()
	// Logic runs once per logic tick after the resolver update.
	Logic func()
}

type Engine struct {
	cfg      *config.Config
	resolver *input.Resolver
	queue    *Queue
	sources  []Source

	store config.Store
	flags *pflag.FlagSet

	state    State
	clock    Clock
	rate     float64
	raw      keys.State
	frame    uint64
	snapshot atomic.Pointer[Snapshot]
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithSources sets the physical input sources polled every frame.
func WithSources(sources ...Source) Option {
	return func(e *Engine) { e.sources = append(e.sources, sources...) }
}

// WithStore enables Save and Reload. flags is re-applied after every reload.
func WithStore(store config.Store, flags *pflag.FlagSet) Option {
	return func(e *Engine) {
		e.store = store
		e.flags = flags
	}
}

// WithResolverOptions forwards options to the input resolver.
func WithResolverOptions(opts ...input.Option) Option {
	return func(e *Engine) {
		e.resolver = input.NewResolver(e.cfg.Input.Buttons, nil, opts...)
	}
}

func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		queue: NewQueue(),
		state: newState(),
		rate:  config.DefaultFPS,
	}
	e.resolver = input.NewResolver(cfg.Input.Buttons, nil)
	for _, opt := range opts {
		opt(e)
	}
	e.publish()
	return e
}

func (e *Engine) Config() *config.Config {
	return e.cfg
}

func (e *Engine) Resolver() *input.Resolver {
	return e.resolver
}

// State returns a copy of the run state.
func (e *Engine) State() State {
	return e.state
}

// Raw returns the physical key state polled this frame.
func (e *Engine) Raw() *keys.State {
	return &e.raw
}

// Submit queues t for the next frame. Safe from any goroutine.
func (e *Engine) Submit(t Task) error {
	return e.queue.Submit(t)
}

// Snapshot returns the state published at the end of the last frame.
// Safe from any goroutine.
func (e *Engine) Snapshot() Snapshot {
	return *e.snapshot.Load()
}

func (e *Engine) publish() {
	e.snapshot.Store(&Snapshot{
		Paused:       e.state.Paused,
		Exiting:      e.state.ExitRequested,
		SpeedFactor:  e.state.SpeedFactor,
		ThroughWalls: e.state.ThroughWalls,
		Frame:        e.frame,
	})
}

// Frame runs one physical frame: pending tasks, input polling, the system
// tick and then as many logic ticks as the current speed asks for. Returns
// the number of logic ticks run.
func (e *Engine) Frame(h Hooks) int {
	e.queue.Drain(e)

	e.raw.Clear()
	for _, s := range e.sources {
		s.Poll(&e.raw)
	}
	e.resolver.UpdateSystem(&e.raw)
	if h.System != nil {
		h.System()
	}

	steps := 0
	if !e.state.Paused && !e.state.ExitRequested {
		steps = e.clock.Steps(e.Speed())
		for i := 0; i < steps; i++ {
			e.resolver.Update(&e.raw)
			if h.Logic != nil {
				h.Logic()
			}
		}
	}

	e.frame++
	e.publish()
	return steps
}

// SetFrameRate tells the engine how many physical frames run per second.
// Logic keeps ticking at config.DefaultFPS whatever the frame rate is.
// Non-positive rates are ignored.
func (e *Engine) SetFrameRate(fps float64) {
	if fps > 0 {
		e.rate = fps
	}
}

// Speed is the effective logic ticks per frame: the speed factor times the
// held fast forward modifier. B wins when both are held.
func (e *Engine) Speed() float64 {
	speed := e.state.SpeedFactor * config.DefaultFPS / e.rate
	switch {
	case e.resolver.IsPressed(input.FastForwardB):
		speed *= float64(e.cfg.Input.SpeedModifierB.Get())
	case e.resolver.IsPressed(input.FastForwardA):
		speed *= float64(e.cfg.Input.SpeedModifierA.Get())
	}
	return speed
}

// The mutators below must run on the logic goroutine, usually as tasks.

func (e *Engine) Pause() {
	e.state.Paused = true
}

// Resume forgets the logic input state, so keys still held read as fresh
// presses on the next tick.
func (e *Engine) Resume() {
	if !e.state.Paused {
		return
	}
	e.state.Paused = false
	e.resolver.Reset()
	e.clock.Reset()
}

func (e *Engine) RequestExit() {
	e.state.ExitRequested = true
}

func (e *Engine) RequestReset() {
	e.state.ResetRequested = true
}

func (e *Engine) RequestSettings() {
	e.state.SettingsRequested = true
}

// TakeReset reports and clears a pending reset request.
func (e *Engine) TakeReset() bool {
	r := e.state.ResetRequested
	e.state.ResetRequested = false
	return r
}

// TakeSettings reports and clears a pending request to open the settings.
func (e *Engine) TakeSettings() bool {
	r := e.state.SettingsRequested
	e.state.SettingsRequested = false
	return r
}

// SetSpeedFactor clamps f to [MinSpeedFactor, MaxSpeedFactor].
func (e *Engine) SetSpeedFactor(f float64) {
	e.state.SpeedFactor = clampSpeed(f)
}

// SetFastForwardMultiplier changes the fast forward A speed, clamped by its parameter.
func (e *Engine) SetFastForwardMultiplier(n int) {
	if e.cfg.Input.SpeedModifierA.Set(n) == config.Clamped {
		log.Debug("fast forward multiplier clamped", "requested", n, "applied", e.cfg.Input.SpeedModifierA.Get())
	}
}

func (e *Engine) SetThroughWalls(on bool) {
	e.state.ThroughWalls = on
}

// Save writes the config to the engine's store, if any.
func (e *Engine) Save() error {
	return e.cfg.Save(e.store)
}

// Reload re-reads the stored config, keeping command line precedence.
// Input state is cleared since bindings may have changed.
func (e *Engine) Reload() error {
	err := e.cfg.Reload(e.store, e.flags)
	e.resolver.Reset()
	return err
}

// WatchConfig queues a Reload for every change w reports until ctx is done
// or w is closed. Run it on its own goroutine.
func (e *Engine) WatchConfig(ctx context.Context, w *config.Watcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-w.Changes:
			if !ok {
				return
			}
			log.Info("config file changed, reloading", "path", w.Path())
			if err := e.Submit(func(e *Engine) { _ = e.Reload() }); err != nil {
				return
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}

// Close stops accepting tasks.
func (e *Engine) Close() {
	e.queue.Close()
}
