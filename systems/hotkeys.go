package systems

import (
	"fmt"

	"github.com/automoto/rpgplayer/input"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSystemHotkeys handles the buttons refreshed every physical frame.
// They keep working while paused.
func UpdateSystemHotkeys(e *ecs.ECS) {
	rt := getRuntime(e)
	r := rt.Engine.Resolver()
	v := rt.Engine.Config().Video

	if r.IsTriggered(input.ToggleFps) && !v.ShowFps.IsHidden() {
		v.ShowFps.Toggle()
		Notify(e, fmt.Sprintf("%s: %s", v.ShowFps.Name(), onOff(rt, v.ShowFps.Get())))
	}
	if r.IsTriggered(input.ToggleZoom) && !v.WindowZoom.IsHidden() && !v.Fullscreen.Get() {
		Notify(e, fmt.Sprintf("%s: x%d", v.WindowZoom.Name(), CycleZoom(v)))
	}
	if r.IsTriggered(input.TakeScreenshot) {
		GetOrCreateHUD(e).ScreenshotRequested = true
	}
	if r.IsTriggered(input.ShowLog) {
		hud := GetOrCreateHUD(e)
		hud.ShowLog = !hud.ShowLog
	}
}

// UpdateHotkeys handles the global buttons that belong to game logic.
// The settings overlay owns the input while open.
func UpdateHotkeys(e *ecs.ECS) {
	if IsSettingsOpen(e) {
		return
	}
	rt := getRuntime(e)
	eng := rt.Engine
	v := eng.Config().Video

	if GetAction(e, input.ToggleFullscreen).JustPressed && !v.Fullscreen.IsHidden() {
		v.Fullscreen.Toggle()
	}
	if GetAction(e, input.SettingsMenu).JustPressed {
		OpenSettings(e)
	}
	if GetAction(e, input.Reset).JustPressed {
		eng.RequestReset()
	}
	if GetAction(e, input.DebugThrough).JustPressed {
		on := !eng.State().ThroughWalls
		eng.SetThroughWalls(on)
		Notify(e, fmt.Sprintf("%s: %s", input.DebugThrough, onOff(rt, on)))
	}
}
