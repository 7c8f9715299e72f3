package components

import "github.com/yohamta/donburi"

// PauseData mirrors the engine's lifecycle pause for the overlay
type PauseData struct {
	IsPaused bool
	Frames   int // Physical frames spent paused, drives the blink
}

var Pause = donburi.NewComponentType[PauseData]()
