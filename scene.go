package gobble

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. Enter receives the payload passed to
// Transition; every hook is optional.
type Scene struct {
	Enter  func(w *World, payload any)
	Tick   GameLoop
	Render func(screen *ebiten.Image)
	Leave  func(w *World)
}

type sceneSwitch struct {
	name    string
	payload any
}
