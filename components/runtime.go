package components

import (
	"github.com/automoto/rpgplayer/engine"
	"github.com/automoto/rpgplayer/locale"
	"github.com/yohamta/donburi"
)

// RuntimeData links the world to the engine driving it
type RuntimeData struct {
	Engine  *engine.Engine
	Catalog *locale.Catalog
	Title   string // Base window title
	Exited  bool   // Exit handling already ran
}

var Runtime = donburi.NewComponentType[RuntimeData]()
