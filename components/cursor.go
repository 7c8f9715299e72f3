package components

import "github.com/yohamta/donburi"

// CursorData is a marker moved around the status screen by the resolved
// direction, one cell per step.
type CursorData struct {
	X, Y      int
	StepTimer int // Ticks until the next step while a direction is held
	Blocked   bool
}

var Cursor = donburi.NewComponentType[CursorData]()
