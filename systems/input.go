package systems

import (
	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/input"
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput tracks physical key presses between frames. It runs every
// physical frame, before anything that reads NewKey.
func UpdateInput(e *ecs.ECS) {
	state := getOrCreateInput(e)
	raw := getEngine(e).Raw()

	for k := keys.None + 1; k < keys.Count; k++ {
		if !raw.Pressed(k) || state.Previous.Pressed(k) {
			continue
		}
		// NewKey sticks until consumed, logic may not tick this frame
		if state.NewKey == keys.None {
			state.NewKey = k
		}
		state.LastInputMethod = inputMethodOf(k)
	}
	state.Previous = *raw
}

// TakeNewKey returns and clears the last fresh key press.
func TakeNewKey(e *ecs.ECS) (keys.Key, bool) {
	state := getOrCreateInput(e)
	k := state.NewKey
	state.NewKey = keys.None
	return k, k != keys.None
}

func inputMethodOf(k keys.Key) components.InputMethod {
	switch {
	case k.IsGamepad():
		return components.InputGamepad
	case k.IsMouse():
		return components.InputMouse
	}
	return components.InputKeyboard
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (nothing pressed)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState of a logical button as resolved
// on the last tick.
func GetAction(e *ecs.ECS, b input.Button) components.ActionState {
	r := getEngine(e).Resolver()
	return components.ActionState{
		Pressed:      r.IsPressed(b),
		JustPressed:  r.IsTriggered(b),
		Repeated:     r.IsRepeated(b),
		JustReleased: r.IsReleased(b),
	}
}
