package systems

import (
	"github.com/automoto/rpgplayer/components"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLifecycle consumes the requests made through the bridge or the
// hotkeys. Runs every physical frame so requests land while paused.
func UpdateLifecycle(e *ecs.ECS) {
	eng := getEngine(e)
	if eng.TakeSettings() {
		OpenSettings(e)
	}
	if eng.TakeReset() {
		ResetGame(e)
	}
}

// ResetGame returns the world to its start state. Settings are kept.
func ResetGame(e *ecs.ECS) {
	CloseSettings(e)
	*GetOrCreateCursor(e) = newCursor()
	hud := GetOrCreateHUD(e)
	hud.Messages = hud.Messages[:0]
	getEngine(e).Resolver().Reset()
	log.Info("game reset")
	Notify(e, getRuntime(e).Catalog.Text("game_reset"))
}

// UpdateExit asks the engine to stop when the window is closed, and saves
// once the engine is stopping. Runs every physical frame.
func UpdateExit(e *ecs.ECS) {
	eng := getEngine(e)
	if ebiten.IsWindowBeingClosed() {
		eng.RequestExit()
	}
	HandleExit(e)
}

// HandleExit saves the settings once after an exit was requested.
func HandleExit(e *ecs.ECS) {
	rt := getRuntime(e)
	if !rt.Engine.State().ExitRequested || rt.Exited {
		return
	}
	rt.Exited = true
	if err := SaveOnExit(e); err != nil {
		log.Warn("settings not saved on exit", "err", err)
	}
}

func onOff(rt *components.RuntimeData, on bool) string {
	if on {
		return rt.Catalog.Text("on")
	}
	return rt.Catalog.Text("off")
}
