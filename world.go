package gobble

import (
	"fmt"
	"image/color"
	"log"
	"slices"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rhpo/gobble/arcade"
	"github.com/rhpo/gobble/physics"
)

type WorldProps struct {
	// Width and Height are the window size in pixels; the arena itself is
	// sized by Game.
	Width      int
	Height     int
	Title      string
	Background color.Color

	Game arcade.Config
	Seed int64

	AudioProps *AudioProps
	Mute       bool

	Particles *ParticleProps

	// Scenes replaces the built-in Preload, Game and MainMenu scenes.
	Scenes  map[string]Scene
	Initial string
}

// World is the desktop host of an arcade.Machine: it owns the window
// state, scenes, sprites, camera, particles and sounds.
type World struct {
	*EventEmitter

	Width  int
	Height int
	Title  string

	Background color.Color

	Machine   *arcade.Machine
	Physics   *physics.World
	Camera    Camera
	Particles *ParticleSystem
	Textures  Textures

	AudioManager *AudioManager

	Objects []*Shape

	Mouse struct {
		X, Y          float64
		IsLeftClicked bool
	}

	Paused bool

	Scenes       map[string]Scene
	CurrentScene string
	Initial      string

	arena        *Shape
	levels       AudioProps
	muted        bool
	clock        LoopData
	click        *arcade.Vector2
	round        *arcade.Round
	lastResult   arcade.Result
	pendingScene *sceneSwitch
}

func NewWorld(props *WorldProps) (*World, error) {
	if props == nil {
		props = &WorldProps{}
	}

	if props.Width == 0 {
		props.Width = 800
	}
	if props.Height == 0 {
		props.Height = 600
	}
	if props.Title == "" {
		props.Title = "Gobble"
	}
	if props.Background == nil {
		props.Background = ColorBackground
	}
	if props.Seed == 0 {
		props.Seed = time.Now().UnixNano()
	}
	if props.Initial == "" {
		props.Initial = ScenePreload
	}

	world := &World{
		EventEmitter: NewEventEmitter(),
		Width:        props.Width,
		Height:       props.Height,
		Title:        props.Title,
		Background:   props.Background,
		Physics:      physics.NewWorld(physics.DefaultStep),
		Camera:       Camera{Width: float64(props.Width), Height: float64(props.Height)},
		Particles:    NewParticleSystem(arcade.NewRNG(props.Seed+1), props.Particles),
		Initial:      props.Initial,
	}

	machine, err := arcade.NewMachine(props.Game, world,
		arcade.WithRNG(arcade.NewRNG(props.Seed)),
		arcade.WithMover(world.Physics),
	)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}
	world.Machine = machine

	world.levels = AudioProps{MasterVolume: 1, SoundVolume: 0.8}
	if props.AudioProps != nil {
		world.levels = *props.AudioProps
	}
	if !props.Mute {
		world.AudioManager = NewAudioManager(&world.levels)
	}
	world.SetVolume(world.levels.SoundVolume)

	world.Scenes = props.Scenes
	if world.Scenes == nil {
		world.Scenes = world.defaultScenes()
	}
	if _, ok := world.Scenes[world.Initial]; !ok {
		return nil, fmt.Errorf("creating world: unknown initial scene %q", world.Initial)
	}

	return world, nil
}

// PlaySound implements arcade.Host.
func (w *World) PlaySound(id arcade.Sound) {
	w.Emit(EventSound, id)
	if w.AudioManager == nil {
		return
	}
	if err := w.AudioManager.PlaySound(string(id)); err != nil {
		log.Printf("gobble: %v", err)
	}
}

// Explode implements arcade.Host.
func (w *World) Explode(at arcade.Vector2) {
	w.Emit(EventExplode, at)
	w.Particles.Burst(at)
}

// Transition implements arcade.Host. The switch happens at the start of
// the next frame so the current scene finishes its tick.
func (w *World) Transition(name string, payload any) {
	if _, ok := w.Scenes[name]; !ok {
		log.Printf("gobble: transition to unknown scene %q", name)
		return
	}
	w.pendingScene = &sceneSwitch{name: name, payload: payload}
}

func (w *World) enterScene(name string, payload any) {
	from := w.CurrentScene
	if prev, ok := w.Scenes[from]; ok && from != "" {
		if prev.Leave != nil {
			prev.Leave(w)
		}
		w.Emit(EventSceneLeave, EventSceneData{From: from, To: name})
	}

	w.CurrentScene = name
	if next := w.Scenes[name]; next.Enter != nil {
		next.Enter(w, payload)
	}
	w.Emit(EventSceneEnter, EventSceneData{From: from, To: name, Payload: payload})
}

func (w *World) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.Paused = !w.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		w.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		w.SetVolume(w.Volume() - VolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		w.SetVolume(w.Volume() + VolumeStep)
	}
	if w.Paused {
		return nil
	}

	w.updateInput()
	w.Step(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Step runs one frame of dt: the pending scene switch if any, otherwise
// particles and the current scene's tick.
func (w *World) Step(dt time.Duration) {
	w.clock.Frame++
	w.clock.Delta = dt
	w.clock.Time += dt
	defer func() { w.click = nil }()

	if w.CurrentScene == "" {
		w.enterScene(w.Initial, nil)
		return
	}
	if w.pendingScene != nil {
		next := *w.pendingScene
		w.pendingScene = nil
		w.enterScene(next.name, next.payload)
		return
	}

	if w.AudioManager != nil {
		w.AudioManager.Update()
	}
	w.Particles.Update(dt)

	if scene := w.Scenes[w.CurrentScene]; scene.Tick != nil {
		scene.Tick(w.clock)
	}
}

func (w *World) Clock() LoopData {
	return w.clock
}

func (w *World) updateInput() {
	x, y := ebiten.CursorPosition()
	w.pointer(float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// pointer records the cursor. Only the frame the left button goes down
// counts as a click; holding it does not steer again.
func (w *World) pointer(x, y float64, pressed bool) {
	w.Mouse.X, w.Mouse.Y = x, y
	if pressed && !w.Mouse.IsLeftClicked {
		w.PressAt(x, y)
	}
	w.Mouse.IsLeftClicked = pressed
}

// Volume is the sound volume in [0, 1], kept while muted.
func (w *World) Volume() float64 {
	return w.levels.SoundVolume
}

func (w *World) SetVolume(volume float64) {
	w.levels.SoundVolume = clampVolume(volume)
	if w.AudioManager != nil {
		w.AudioManager.SetSoundVolume(w.levels.SoundVolume)
	}
}

func (w *World) Muted() bool {
	return w.muted
}

// ToggleMute silences every sound, or restores the master volume.
func (w *World) ToggleMute() {
	w.muted = !w.muted
	if w.AudioManager == nil {
		return
	}
	if w.muted {
		w.AudioManager.SetMasterVolume(0)
	} else {
		w.AudioManager.SetMasterVolume(w.levels.MasterVolume)
	}
}

// PressAt records a click at a screen position for the next Step.
func (w *World) PressAt(x, y float64) {
	at := w.Camera.ToWorld(arcade.Vector2{X: x, Y: y})
	w.click = &at
	w.Emit(EventClick, at)
}

// Click is the world position clicked this frame, or nil.
func (w *World) Click() *arcade.Vector2 {
	return w.click
}

func (w *World) Register(object *Shape) {
	w.Objects = append(w.Objects, object)
}

func (w *World) Unregister(object *Shape) {
	w.Objects = slices.DeleteFunc(w.Objects, func(s *Shape) bool { return s == object })
}

func (w *World) ClearObjects() {
	w.Objects = w.Objects[:0]
}

func (w *World) GetElementsByTagName(tag string) []*Shape {
	var result []*Shape
	for _, obj := range w.Objects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// bindRound replaces the sprites with one per body of r. Pools never grow,
// so this happens once per round.
func (w *World) bindRound(r *arcade.Round) {
	w.ClearObjects()
	w.round = r
	if r == nil {
		return
	}

	for _, pool := range []*arcade.Pool{r.Food, r.Enemies} {
		for slot := range pool.Cap() {
			b := pool.At(slot)
			w.Register(NewBodyShape(b, w.Textures.For(b.Kind)))
		}
	}
	w.Register(NewBodyShape(&r.Player.Body, w.Textures.Player))
}

func (w *World) Draw(screen *ebiten.Image) {
	screen.Fill(w.Background)
	w.drawArena(screen)

	sort.SliceStable(w.Objects, func(i, j int) bool {
		return w.Objects[i].ZIndex < w.Objects[j].ZIndex
	})
	for _, obj := range w.Objects {
		obj.Update()
		obj.Draw(screen, &w.Camera)
	}

	w.Particles.Draw(screen, &w.Camera)

	if scene := w.Scenes[w.CurrentScene]; scene.Render != nil {
		scene.Render(screen)
	}
}

func (w *World) drawArena(screen *ebiten.Image) {
	if w.arena == nil {
		bounds := w.Machine.Config().Bounds()
		w.arena = NewShape(&ShapeProps{
			Name:       "arena",
			Tag:        "arena",
			Width:      bounds.Width,
			Height:     bounds.Height,
			ZIndex:     -1,
			Background: ColorArena,
			Border:     &Border{Width: 4, Background: ColorRim},
		})
	}
	w.arena.Draw(screen, &w.Camera)
}

func (w *World) Destroy() {
	w.ClearObjects()
	w.Particles.Clear()
	if w.AudioManager != nil {
		w.AudioManager.Cleanup()
	}
}
