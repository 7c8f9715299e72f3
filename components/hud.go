package components

import "github.com/yohamta/donburi"

// HUDMessage is a notification shown at the bottom of the screen
type HUDMessage struct {
	Text  string
	Timer int // Frames left on screen, 0 once expired
}

// HUDData is a singleton holding notifications and system toggles
type HUDData struct {
	Messages []HUDMessage // Oldest first, bounded
	ShowLog  bool         // Keep expired messages visible

	ScreenshotRequested bool
	Title               string // Window title last set
}

var HUD = donburi.NewComponentType[HUDData]()
