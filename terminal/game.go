// Package terminal runs the game in a terminal: tcell draws the arena and
// reads the mouse, beep plays the tones.
package terminal

import (
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/gobble/arcade"
	"github.com/rhpo/gobble/physics"
)

const DefaultFrame = 16 * time.Millisecond

type Options struct {
	Game  arcade.Config
	Seed  int64
	Frame time.Duration

	// Sounds is optional; a nil board keeps the game silent.
	Sounds *SoundBoard
}

// Game drives an arcade.Machine on a tcell screen and is its host.
type Game struct {
	screen  tcell.Screen
	canvas  Canvas
	machine *arcade.Machine
	sounds  *SoundBoard
	view    Viewport
	frame   time.Duration

	bursts  []burst
	menu    *arcade.Result
	pointer *arcade.Vector2
	buttons tcell.ButtonMask
}

// New wraps an initialized screen. Run owns the screen afterwards and
// finalizes it on return.
func New(screen tcell.Screen, opts Options) (*Game, error) {
	return newGame(screen, screen, opts)
}

func newGame(screen tcell.Screen, canvas Canvas, opts Options) (*Game, error) {
	if opts.Frame == 0 {
		opts.Frame = DefaultFrame
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := &Game{
		screen: screen,
		canvas: canvas,
		sounds: opts.Sounds,
		frame:  opts.Frame,
	}
	machine, err := arcade.NewMachine(opts.Game, g,
		arcade.WithRNG(arcade.NewRNG(opts.Seed)),
		arcade.WithMover(physics.NewWorld(physics.DefaultStep)),
	)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	g.machine = machine
	g.resize()
	return g, nil
}

func (g *Game) Machine() *arcade.Machine {
	return g.machine
}

// PlaySound implements arcade.Host.
func (g *Game) PlaySound(id arcade.Sound) {
	if g.sounds != nil {
		g.sounds.Play(id)
	}
}

// Explode implements arcade.Host.
func (g *Game) Explode(at arcade.Vector2) {
	g.bursts = append(g.bursts, burst{at: at})
}

// Transition implements arcade.Host. The only screen besides the arena is
// the main menu.
func (g *Game) Transition(name string, payload any) {
	if name != arcade.StateMainMenu {
		log.Printf("terminal: transition to unknown screen %q", name)
		return
	}
	res, _ := payload.(arcade.Result)
	g.menu = &res
}

// InMenu reports whether the main menu is showing, with the last result.
func (g *Game) InMenu() (arcade.Result, bool) {
	if g.menu == nil {
		return arcade.Result{}, false
	}
	return *g.menu, true
}

func (g *Game) resize() {
	w, h := g.canvas.Size()
	g.view = NewViewport(w, h, g.machine.Config().Bounds())
}

// HandleEvent applies one terminal event and returns false when the
// player asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyEnter && g.menu != nil:
			g.restart()
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && g.buttons&tcell.Button1 == 0
		g.buttons = ev.Buttons()
		if !pressed {
			break
		}
		x, y := ev.Position()
		if y >= g.view.Rows {
			break
		}
		if g.menu != nil {
			g.restart()
			break
		}
		at := g.view.ToWorld(x, y)
		g.pointer = &at

	case *tcell.EventResize:
		if g.screen != nil {
			g.screen.Sync()
		}
		g.resize()
	}
	return true
}

func (g *Game) restart() {
	g.menu = nil
	g.bursts = g.bursts[:0]
	g.machine.Start()
}

// Step advances one frame of dt. The first step leaves preloading.
func (g *Game) Step(dt time.Duration) {
	if g.machine.State() == arcade.StatePreloading {
		g.machine.Start()
	}

	g.machine.Update(arcade.Input{Pointer: g.pointer}, dt)
	g.pointer = nil

	for i := range g.bursts {
		g.bursts[i].age += dt
	}
	g.bursts = slices.DeleteFunc(g.bursts, func(b burst) bool { return !b.alive() })
}

func (g *Game) Draw() {
	g.canvas.Clear()
	w, _ := g.canvas.Size()
	fill(g.canvas, 0, 0, w-1, g.view.Rows-1, ' ', styleArena)

	if r := g.machine.Round(); r != nil {
		drawRound(g.canvas, g.view, r)
	}
	for _, b := range g.bursts {
		drawBurst(g.canvas, g.view, b)
	}

	if res, ok := g.InMenu(); ok {
		mid := g.view.Rows / 2
		drawCentered(g.canvas, mid-1, fmt.Sprintf("Game over. Score: %d", res.Score), styleText)
		drawCentered(g.canvas, mid+1, "Click or press Enter to play again, q to quit", styleText)
		drawStatus(g.canvas, scoreLine(res.Score))
		return
	}
	score := 0
	if r := g.machine.Round(); r != nil {
		score = r.Player.Score
	}
	drawStatus(g.canvas, scoreLine(score))
}

// Run polls terminal events on a goroutine and runs frames on a ticker
// until the player quits.
func (g *Game) Run() error {
	if g.screen == nil {
		return fmt.Errorf("terminal: run without a screen")
	}
	defer g.screen.Fini()
	g.screen.EnableMouse()
	g.screen.HideCursor()

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen.PollEvent, events, done)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			g.Step(g.frame)
			g.Draw()
			g.screen.Show()
		}
	}
}

// pumpEvents forwards polled events until poll returns nil, closing events,
// or until done is closed.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
