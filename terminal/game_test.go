package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/gobble/arcade"
)

const frame = 16 * time.Millisecond

func newTestGame(t *testing.T, sounds *SoundBoard) (*Game, *gridCanvas) {
	t.Helper()
	canvas := newGridCanvas(80, 24)
	g, err := newGame(nil, canvas, Options{Seed: 3, Sounds: sounds})
	if err != nil {
		t.Fatal(err)
	}
	g.Step(frame)
	if g.Machine().State() != arcade.StatePlaying {
		t.Fatalf("state = %v after the first step", g.Machine().State())
	}
	return g, canvas
}

func click(g *Game, x, y int) {
	g.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	g.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func TestDrawShowsPlayerAndScore(t *testing.T) {
	g, canvas := newTestGame(t, nil)
	g.Draw()

	if c := canvas.at(40, 11); c.r != glyphPlayer || c.style != stylePlayer {
		t.Errorf("center cell = %q, want the player", c.r)
	}
	if !canvas.contains("Score: 0") {
		t.Errorf("status row = %q", canvas.row(23))
	}

	r := g.Machine().Round()
	food := 0
	r.Food.Each(func(int, *arcade.Body) { food++ })
	glyphs := 0
	for _, c := range canvas.cells {
		if c.r == glyphFood {
			glyphs++
		}
	}
	if glyphs == 0 || glyphs > food {
		t.Errorf("food glyphs = %d for %d live food", glyphs, food)
	}
}

func TestMouseClickSteers(t *testing.T) {
	g, _ := newTestGame(t, nil)
	r := g.Machine().Round()

	click(g, 70, 11)
	g.Step(frame)

	if r.Player.Velocity.X < 100 {
		t.Fatalf("velocity %+v, want mostly right", r.Player.Velocity)
	}
}

func TestClickOnStatusRowIsIgnored(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.HandleEvent(tcell.NewEventMouse(70, 23, tcell.Button1, tcell.ModNone))
	if g.pointer != nil {
		t.Fatal("status row click became a pointer")
	}
}

func TestHeldButtonIsOneClick(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.HandleEvent(tcell.NewEventMouse(70, 11, tcell.Button1, tcell.ModNone))
	g.pointer = nil
	g.HandleEvent(tcell.NewEventMouse(10, 11, tcell.Button1, tcell.ModNone))
	if g.pointer != nil {
		t.Fatal("drag with the button held issued a second click")
	}
}

func TestQuitKeys(t *testing.T) {
	g, _ := newTestGame(t, nil)
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}
	for _, ev := range quits {
		if g.HandleEvent(ev) {
			t.Errorf("%v did not quit", ev.Name())
		}
	}
	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("x quit the game")
	}
}

func TestDeathShowsMenuAndRestarts(t *testing.T) {
	sounds := NewSoundBoard(1)
	g, canvas := newTestGame(t, sounds)
	r := g.Machine().Round()
	r.Player.Score = 3

	e := r.Enemies.At(0)
	e.Alive = true
	e.Scale = 2
	e.Position = r.Player.Position
	e.Velocity = arcade.Vector2{}
	queued := sounds.Pending()

	g.Step(frame)
	if r.Player.Alive {
		t.Fatal("player survived a bigger enemy")
	}
	if len(g.bursts) != 1 {
		t.Fatalf("bursts = %d, want 1", len(g.bursts))
	}
	if sounds.Pending() != queued+1 {
		t.Fatalf("queued tones = %d, want %d", sounds.Pending(), queued+1)
	}
	g.Draw()
	if c := canvas.at(40, 11); c.r != glyphBurst {
		t.Errorf("death cell = %q, want the burst", c.r)
	}

	for i := 0; i < 100; i++ {
		if _, ok := g.InMenu(); ok {
			break
		}
		g.Step(frame)
	}
	res, ok := g.InMenu()
	if !ok || res.Score != 3 {
		t.Fatalf("menu = %+v, %v; want score 3", res, ok)
	}
	g.Draw()
	if !canvas.contains("Game over. Score: 3") {
		t.Error("menu text missing")
	}

	click(g, 5, 5)
	if _, ok := g.InMenu(); ok {
		t.Fatal("click did not leave the menu")
	}
	if g.Machine().Rounds() != 2 || g.Machine().State() != arcade.StatePlaying {
		t.Fatalf("rounds = %d, state = %v", g.Machine().Rounds(), g.Machine().State())
	}
}

func TestBurstExpires(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Explode(arcade.Vector2{X: 100, Y: 100})
	for elapsed := time.Duration(0); elapsed < burstLifespan; elapsed += frame {
		g.Step(frame)
	}
	if len(g.bursts) != 0 {
		t.Fatalf("bursts = %d after the lifespan", len(g.bursts))
	}
}

func TestRunsOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(60, 20)

	g, err := New(screen, Options{Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	if g.view.Cols != 60 || g.view.Rows != 19 {
		t.Fatalf("viewport %dx%d", g.view.Cols, g.view.Rows)
	}
	for range 10 {
		g.Step(frame)
		g.Draw()
		screen.Show()
	}
	if g.Machine().Round().Frame != 10 {
		t.Fatalf("frames = %d", g.Machine().Round().Frame)
	}
}

func TestEventPumpStopsWhenRunReturns(t *testing.T) {
	poll := func() tcell.Event { return tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone) }
	events := make(chan tcell.Event)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		pumpEvents(poll, events, done)
		close(stopped)
	}()

	<-events
	close(done)

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked on a full channel")
	}
}

func TestEventPumpClosesOnFinalEvent(t *testing.T) {
	polled := 0
	poll := func() tcell.Event {
		polled++
		if polled > 2 {
			return nil
		}
		return tcell.NewEventResize(10, 10)
	}
	events := make(chan tcell.Event, 4)
	pumpEvents(poll, events, make(chan struct{}))

	n := 0
	for range events {
		n++
	}
	if n != 2 {
		t.Fatalf("forwarded %d events, want 2", n)
	}
}
