package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/locale"
	"github.com/automoto/rpgplayer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configure a GameScene.
type Options struct {
	Title string
	// Headless skips everything that needs a window or an audio device
	Headless bool
}

// GameScene drives the engine over one world. The system runner works on
// every physical frame, the logic runner once per logic tick and owns the
// renderers.
type GameScene struct {
	engine  *engine.Engine
	catalog *locale.Catalog
	opts    Options

	system *ecs.ECS
	logic  *ecs.ECS
	canvas *ebiten.Image
	once   sync.Once
}

// NewGameScene creates a new game scene
func NewGameScene(eng *engine.Engine, cat *locale.Catalog, opts Options) *GameScene {
	return &GameScene{engine: eng, catalog: cat, opts: opts}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.engine.Frame(engine.Hooks{
		System: gs.system.Update,
		Logic:  gs.logic.Update,
	})
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.logic == nil {
		return
	}

	v := gs.engine.Config().Video
	w, h := v.GameResolution.Get().Size()
	if gs.canvas == nil || gs.canvas.Bounds().Dx() != w || gs.canvas.Bounds().Dy() != h {
		if gs.canvas != nil {
			gs.canvas.Deallocate()
		}
		gs.canvas = ebiten.NewImage(w, h)
	}
	gs.canvas.Fill(systems.ColorBackground)
	gs.logic.Draw(gs.canvas)
	systems.CaptureScreenshot(gs.system, gs.canvas)
	systems.Present(screen, gs.canvas, v)
}

// World exposes the scene's world, mainly for tests and tooling.
func (gs *GameScene) World() donburi.World {
	gs.once.Do(gs.configure)
	return gs.system.World
}

func (gs *GameScene) configure() {
	world := donburi.NewWorld()
	gs.system = ecs.NewECS(world)
	gs.logic = ecs.NewECS(world)

	systems.SpawnRuntime(gs.system, gs.engine, gs.catalog, gs.opts.Title)
	systems.SpawnOverlay(gs.system)
	systems.GetOrCreateCursor(gs.system)

	// Every physical frame, paused or not
	gs.system.AddSystem(systems.UpdateInput)
	gs.system.AddSystem(systems.UpdatePause)
	gs.system.AddSystem(systems.UpdateSystemHotkeys)
	gs.system.AddSystem(systems.UpdateLifecycle)
	if gs.opts.Headless {
		gs.system.AddSystem(systems.AgeMessages)
		gs.system.AddSystem(systems.HandleExit)
	} else {
		gs.system.AddSystem(systems.UpdateAudio)
		gs.system.AddSystem(systems.UpdateVideo)
		gs.system.AddSystem(systems.UpdateHUD)
		gs.system.AddSystem(systems.UpdateExit)
	}

	// Logic ticks. The overlay runs before the hotkeys so the key that
	// opens it doesn't act on it in the same tick.
	gs.logic.AddSystem(systems.UpdateSettingsMenu)
	gs.logic.AddSystem(systems.UpdateHotkeys)
	gs.logic.AddSystem(systems.WithPauseCheck(systems.UpdateCursor))

	// Renderers (overlays draw on top of the status screen)
	gs.logic.AddRenderer(components.LayerDefault, systems.DrawStatus)
	gs.logic.AddRenderer(components.LayerDefault, systems.DrawPause)
	gs.logic.AddRenderer(components.LayerDefault, systems.DrawSettingsMenu)
	gs.logic.AddRenderer(components.LayerDefault, systems.DrawHUD)
}
