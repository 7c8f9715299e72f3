package systems

import (
	"github.com/automoto/rpgplayer/archetypes"
	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/locale"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnRuntime links the world to eng. Call it once per world before any
// system runs.
func SpawnRuntime(e *ecs.ECS, eng *engine.Engine, cat *locale.Catalog, title string) *donburi.Entry {
	entry := archetypes.Runtime.Spawn(e)
	components.Runtime.SetValue(entry, components.RuntimeData{
		Engine:  eng,
		Catalog: cat,
		Title:   title,
	})
	return entry
}

// SpawnOverlay creates the settings, pause and HUD singletons.
func SpawnOverlay(e *ecs.ECS) *donburi.Entry {
	return archetypes.Overlay.Spawn(e)
}

func getRuntime(e *ecs.ECS) *components.RuntimeData {
	entry, ok := components.Runtime.First(e.World)
	if !ok {
		panic("systems: world has no runtime, call SpawnRuntime first")
	}
	return components.Runtime.Get(entry)
}

func getEngine(e *ecs.ECS) *engine.Engine {
	return getRuntime(e).Engine
}
