// Package bridge exposes the engine to platform lifecycle callbacks that run
// on their own threads. Every mutator is marshalled through the engine's
// task queue; getters read the last published snapshot.
package bridge

import (
	"fmt"

	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/charmbracelet/log"
)

// Host is the part of the engine the bridge needs.
type Host interface {
	Submit(t engine.Task) error
	Snapshot() engine.Snapshot
}

// KeyPresser receives virtual key presses, such as from a touch overlay.
type KeyPresser interface {
	SetKey(k keys.Key, down bool)
}

type Bridge struct {
	host    Host
	virtual KeyPresser
}

// New builds a bridge over host. virtual may be nil when the platform has
// no virtual keys.
func New(host Host, virtual KeyPresser) *Bridge {
	return &Bridge{host: host, virtual: virtual}
}

func (b *Bridge) submit(what string, t engine.Task) error {
	if err := b.host.Submit(t); err != nil {
		log.Warn("dropping lifecycle request", "request", what, "err", err)
		return fmt.Errorf("bridge: %s: %w", what, err)
	}
	return nil
}

// EndGame asks the engine to quit after the current frame.
func (b *Bridge) EndGame() error {
	return b.submit("end game", func(e *engine.Engine) { e.RequestExit() })
}

// ResetGame asks the engine to return to the title screen.
func (b *Bridge) ResetGame() error {
	return b.submit("reset game", func(e *engine.Engine) { e.RequestReset() })
}

func (b *Bridge) PauseGame() error {
	return b.submit("pause game", func(e *engine.Engine) { e.Pause() })
}

func (b *Bridge) ResumeGame() error {
	return b.submit("resume game", func(e *engine.Engine) { e.Resume() })
}

// SetFastForwardMultiplier changes the fast forward A speed.
func (b *Bridge) SetFastForwardMultiplier(n int) error {
	return b.submit("set fast forward", func(e *engine.Engine) { e.SetFastForwardMultiplier(n) })
}

func (b *Bridge) SetGameSpeedFactor(f float64) error {
	return b.submit("set speed factor", func(e *engine.Engine) { e.SetSpeedFactor(f) })
}

// GameSpeedFactor returns the factor in effect at the end of the last frame.
func (b *Bridge) GameSpeedFactor() float64 {
	return b.host.Snapshot().SpeedFactor
}

func (b *Bridge) SwitchWalkThroughWalls(on bool) error {
	return b.submit("walk through walls", func(e *engine.Engine) { e.SetThroughWalls(on) })
}

func (b *Bridge) WalkThroughWalls() bool {
	return b.host.Snapshot().ThroughWalls
}

// OpenSettings asks the game to show the settings overlay. The game ignores
// the request when the overlay is already open.
func (b *Bridge) OpenSettings() error {
	return b.submit("open settings", func(e *engine.Engine) { e.RequestSettings() })
}

// PressVirtualKey forwards a touch button to the virtual key source.
func (b *Bridge) PressVirtualKey(k keys.Key, down bool) error {
	if !k.Valid() {
		return fmt.Errorf("bridge: press key %d: invalid key", k)
	}
	if b.virtual == nil {
		return fmt.Errorf("bridge: press key %s: no virtual key source", k)
	}
	return b.submit("press key", func(*engine.Engine) { b.virtual.SetKey(k, down) })
}
