package main

import (
	"github.com/automoto/rpgplayer/engine"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene  Scene
	engine *engine.Engine
}

func NewGame(scene Scene, eng *engine.Engine) *Game {
	return &Game{scene: scene, engine: eng}
}

// Update ends the run once the engine has handled an exit request.
func (g *Game) Update() error {
	g.scene.Update()
	if g.engine.State().ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the window's size, the scene scales the game image itself.
func (g *Game) Layout(width, height int) (int, int) {
	return width, height
}
