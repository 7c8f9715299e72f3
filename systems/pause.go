package systems

import (
	"github.com/automoto/rpgplayer/components"
	"github.com/automoto/rpgplayer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// pauseBlinkFrames is the half period of the PAUSED label blink
const pauseBlinkFrames = 30

// UpdatePause mirrors the engine's lifecycle pause. Runs every physical
// frame, logic does not tick while paused.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = getEngine(ecs).State().Paused
	if pause.IsPaused {
		pause.Frames++
	} else {
		pause.Frames = 0
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		ColorPauseOverlay,
		false,
	)

	if (pause.Frames/pauseBlinkFrames)%2 == 1 {
		return
	}
	face := fonts.Title.Get()
	label := "PAUSED"
	w := text.BoundString(face, label).Dx() //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, label, face, int(width-float64(w))/2, int(height)/2, ColorText)
}

// WithPauseCheck wraps a system to skip execution when paused or while the
// settings overlay has the input.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		if IsSettingsOpen(e) {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
