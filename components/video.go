package components

import "github.com/yohamta/donburi"

// VideoState is the subset of video options pushed to the window
type VideoState struct {
	Vsync      bool
	Fullscreen bool
	FpsLimit   int
	Zoom       int
	Width      int // Game resolution
	Height     int
}

// VideoData remembers what was last applied so only changes reach ebiten
type VideoData struct {
	Applied     VideoState
	Initialized bool
}

var Video = donburi.NewComponentType[VideoData]()
