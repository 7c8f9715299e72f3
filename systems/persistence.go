package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// SaveSettings writes the config to the engine's store and reports the
// result on the HUD.
func SaveSettings(e *ecs.ECS) error {
	rt := getRuntime(e)
	CaptureWindowGeometry(rt.Engine.Config().Video)
	if err := rt.Engine.Save(); err != nil {
		Notify(e, rt.Catalog.Text("save_failed"))
		return err
	}
	Notify(e, rt.Catalog.Text("saved"))
	return nil
}

// SaveOnExit saves when the player asked for settings to be kept
// automatically.
func SaveOnExit(e *ecs.ECS) error {
	if !getEngine(e).Config().Player.SettingsAutosave.Get() {
		return nil
	}
	return SaveSettings(e)
}
