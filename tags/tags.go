package tags

import "github.com/yohamta/donburi"

var (
	Runtime = donburi.NewTag().SetName("Runtime")
	Overlay = donburi.NewTag().SetName("Overlay")
	Cursor  = donburi.NewTag().SetName("Cursor")
)
