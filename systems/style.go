package systems

import "image/color"

// Overlay colors and layout, in game resolution pixels
var (
	ColorBackground   = color.RGBA{16, 20, 36, 255}
	ColorPanel        = color.RGBA{0, 0, 0, 200}
	ColorPauseOverlay = color.RGBA{0, 0, 0, 140}
	ColorText         = color.RGBA{230, 230, 230, 255}
	ColorTextDim      = color.RGBA{140, 140, 150, 255}
	ColorSelected     = color.RGBA{255, 220, 90, 255}
	ColorHighlight    = color.RGBA{60, 70, 120, 255}
	ColorWarning      = color.RGBA{255, 120, 100, 255}
	ColorGrid         = color.RGBA{50, 56, 80, 255}
	ColorCursor       = color.RGBA{90, 200, 255, 255}
	ColorBlocked      = color.RGBA{255, 90, 90, 255}
)

const (
	marginX    = 8
	titleY     = 20
	rowsTop    = 34
	rowHeight  = 13
	hintMargin = 6
)
