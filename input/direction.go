package input

import (
	"fmt"

	"github.com/automoto/rpgplayer/shared/multimap"
)

// Direction is a compound direction using numpad numbering.
type Direction int

const (
	DirNone      Direction = 0
	DirDownLeft  Direction = 1
	DirDown      Direction = 2
	DirDownRight Direction = 3
	DirLeft      Direction = 4
	DirCenter    Direction = 5
	DirRight     Direction = 6
	DirUpLeft    Direction = 7
	DirUp        Direction = 8
	DirUpRight   Direction = 9
	DirCount     Direction = 10
)

var directionNames = [DirCount]string{
	DirNone:      "NONE",
	DirDownLeft:  "DOWNLEFT",
	DirDown:      "DOWN",
	DirDownRight: "DOWNRIGHT",
	DirLeft:      "LEFT",
	DirCenter:    "CENTER",
	DirRight:     "RIGHT",
	DirUpLeft:    "UPLEFT",
	DirUp:        "UP",
	DirUpRight:   "UPRIGHT",
}

var directionsByName = map[string]Direction{}

func init() {
	for d, name := range directionNames {
		if _, dup := directionsByName[name]; dup {
			panic(fmt.Sprintf("input: duplicate direction name %q", name))
		}
		directionsByName[name] = Direction(d)
	}
}

func (d Direction) String() string {
	if d < 0 || d >= DirCount {
		return fmt.Sprintf("DIRECTION(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionFromName looks up a direction by its canonical token.
func DirectionFromName(name string) (Direction, bool) {
	d, ok := directionsByName[name]
	return d, ok
}

// IsDiagonal reports whether d combines two axes.
func (d Direction) IsDiagonal() bool {
	switch d {
	case DirUpLeft, DirUpRight, DirDownLeft, DirDownRight:
		return true
	}
	return false
}

// Delta returns the unit step for d with y growing downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirDownLeft, DirLeft, DirUpLeft:
		dx = -1
	case DirDownRight, DirRight, DirUpRight:
		dx = 1
	}
	switch d {
	case DirUpLeft, DirUp, DirUpRight:
		dy = -1
	case DirDownLeft, DirDown, DirDownRight:
		dy = 1
	}
	return dx, dy
}

// DirectionMapping binds compound directions to the logical buttons that form them.
type DirectionMapping = multimap.Table[Direction, Button]

// DirectionPair is a single direction binding.
type DirectionPair = multimap.Pair[Direction, Button]

// DefaultDirectionMappings pairs each of the eight real directions with its
// constituent directional buttons. NONE and CENTER are never bound.
func DefaultDirectionMappings() *DirectionMapping {
	return multimap.New(
		DirectionPair{DirDown, Down},
		DirectionPair{DirLeft, Left},
		DirectionPair{DirRight, Right},
		DirectionPair{DirUp, Up},
		DirectionPair{DirDownLeft, Down},
		DirectionPair{DirDownLeft, Left},
		DirectionPair{DirDownRight, Down},
		DirectionPair{DirDownRight, Right},
		DirectionPair{DirUpLeft, Up},
		DirectionPair{DirUpLeft, Left},
		DirectionPair{DirUpRight, Up},
		DirectionPair{DirUpRight, Right},
	)
}
