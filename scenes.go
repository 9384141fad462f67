package gobble

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rhpo/gobble/arcade"
)

func (w *World) defaultScenes() map[string]Scene {
	return map[string]Scene{
		ScenePreload:  w.preloadScene(),
		SceneGame:     w.gameScene(),
		SceneMainMenu: w.menuScene(),
	}
}

// preloadScene produces every texture and tone, then starts the first
// round.
func (w *World) preloadScene() Scene {
	return Scene{
		Tick: func(LoopData) {
			if !w.Textures.Loaded() {
				w.Preload()
			}
			w.Machine.Start()
			w.Transition(SceneGame, nil)
		},
		Render: func(screen *ebiten.Image) {
			DrawText(screen, &TextProps{Text: "Loading...", Y: float64(w.Height) / 2, Centered: true})
		},
	}
}

func (w *World) Preload() {
	cfg := w.Machine.Config()
	w.Textures = GenerateTextures(cfg.BaseSize)
	if w.AudioManager != nil {
		w.AudioManager.SynthesizeTone(string(arcade.SoundCollect), CollectFrequency, CollectDuration)
		w.AudioManager.SynthesizeTone(string(arcade.SoundExplosion), ExplosionFrequency, ExplosionDuration)
		log.Printf("gobble: synthesized sounds %v", w.AudioManager.GetSoundNames())
	}
}

func (w *World) gameScene() Scene {
	return Scene{
		Enter: func(w *World, _ any) {
			r := w.Machine.Round()
			w.bindRound(r)
			if r != nil {
				w.Register(w.panel(float64(w.Width)-scorePanelWidth-4, float64(w.Height)-scorePanelHeight-4,
					scorePanelWidth, scorePanelHeight))
				w.Camera.Follow(r.Player.Position, r.Bounds())
				w.Emit(EventRoundStart, r)
			}
		},
		Tick: func(ld LoopData) {
			w.Machine.Update(arcade.Input{Pointer: w.click}, ld.Delta)
			if r := w.Machine.Round(); r != nil && r.Player.Alive {
				w.Camera.Follow(r.Player.Position, r.Bounds())
			}
		},
		Render: func(screen *ebiten.Image) {
			DrawText(screen, &TextProps{
				Text:       fmt.Sprintf("Score: %d", w.Score()),
				X:          12,
				Y:          12,
				FromEnd:    true,
				FromBottom: true,
			})
		},
	}
}

// Score is the live score while playing and the final one afterwards.
func (w *World) Score() int {
	if w.round != nil {
		return w.round.Player.Score
	}
	return w.lastResult.Score
}

const (
	scorePanelWidth  = 110
	scorePanelHeight = 30

	menuPanelWidth  = 320
	menuPanelHeight = 64
)

// panel is a backdrop for text. It is fixed to the screen, so the camera
// never moves it.
func (w *World) panel(x, y, width, height float64) *Shape {
	return NewShape(&ShapeProps{
		Name:       "panel",
		Tag:        TagHUD,
		Type:       ShapeRectangle,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		ZIndex:     10,
		Opacity:    0.6,
		Fixed:      true,
		Background: ColorPanel,
		Border:     &Border{Width: 1, Background: ColorText},
	})
}

func (w *World) menuScene() Scene {
	return Scene{
		Enter: func(w *World, payload any) {
			res, _ := payload.(arcade.Result)
			w.lastResult = res
			w.bindRound(nil)
			w.Register(w.panel((float64(w.Width)-menuPanelWidth)/2, (float64(w.Height)-menuPanelHeight)/2,
				menuPanelWidth, menuPanelHeight))
			w.Emit(EventGameOver, res)
		},
		Tick: func(LoopData) {
			if w.click != nil && w.Machine.State() == arcade.StateGameOver {
				w.Machine.Start()
				w.Transition(SceneGame, nil)
			}
		},
		Render: func(screen *ebiten.Image) {
			mid := float64(w.Height) / 2
			DrawText(screen, &TextProps{Text: fmt.Sprintf("Game over. Score: %d", w.lastResult.Score), Y: mid - 10, Centered: true})
			DrawText(screen, &TextProps{Text: "Click to play again, Esc to quit", Y: mid + 10, Centered: true})
		},
	}
}
