package archetypes

import (
	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Runtime holds the per-world state tied to the engine and devices
	Runtime = newArchetype(
		tags.Runtime,
		components.Runtime,
		components.Input,
		components.Audio,
		components.Video,
	)
	// Overlay holds everything drawn over the game
	Overlay = newArchetype(
		tags.Overlay,
		components.SettingsMenu,
		components.Pause,
		components.HUD,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Cursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
