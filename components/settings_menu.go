package components

import (
	"github.com/automoto/rpgplayer/shared/keys"
	"github.com/yohamta/donburi"
)

// SettingsPage is the screen the settings overlay shows
type SettingsPage int

const (
	PageMain SettingsPage = iota
	PageOptions
	PageKeys
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen   bool
	Page     SettingsPage
	Section  string // Group listed on PageOptions
	Selected int
	Scroll   int // First visible row

	// Selection on the main page, restored when going back
	MainSelected int

	// Waiting for a key to bind to the selected button
	Capturing    bool
	CaptureTimer int
	// Input is ignored until this key is let go, so a freshly bound key
	// doesn't act on the menu
	HeldKey keys.Key

	Message      string
	MessageTimer int
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
