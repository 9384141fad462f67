package gobble

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rhpo/gobble/arcade"
)

type Border struct {
	Width      float64
	Background color.Color
}

// Shape is something drawn in the world. A shape bound to an arcade body
// follows it on every Update; unbound shapes stay where they are put.
type Shape struct {
	Name    string
	Tag     string
	Type    ShapeType
	X, Y    float64
	Width   float64
	Height  float64
	Radius  float64
	ZIndex  int
	Scale   float64
	Opacity float64
	Visible bool

	// Fixed shapes are drawn in screen space and ignore the camera.
	Fixed bool

	Pattern    PatternType
	Background color.Color
	Image      *ebiten.Image
	Border     *Border

	Body *arcade.Body

	cachedColorImage *ebiten.Image
	lastBackground   color.Color
}

type ShapeProps struct {
	Name          string
	Tag           string
	Type          ShapeType
	X, Y          float64
	Width, Height float64
	Radius        float64
	ZIndex        int
	Scale         float64
	Opacity       float64
	Fixed         bool
	Pattern       PatternType
	Background    color.Color
	Image         *ebiten.Image
	Border        *Border
	Body          *arcade.Body
}

func NewShape(props *ShapeProps) *Shape {
	if props == nil {
		props = &ShapeProps{}
	}

	if props.Type == "" {
		props.Type = ShapeRectangle
	}
	if props.Tag == "" {
		props.Tag = "unknown"
	}
	if props.Width == 0 {
		props.Width = 10
	}
	if props.Height == 0 {
		props.Height = 10
	}
	if props.Scale == 0 {
		props.Scale = 1
	}
	if props.Opacity == 0 {
		props.Opacity = 1
	}
	if props.Background == nil {
		props.Background = color.RGBA{0, 0, 0, 255}
	}
	if props.Pattern == "" {
		props.Pattern = PatternColor
		if props.Image != nil {
			props.Pattern = PatternImage
		}
	}
	if props.Radius == 0 && props.Type == ShapeCircle {
		props.Radius = props.Width / 2
	}

	shape := &Shape{
		Name:       props.Name,
		Tag:        props.Tag,
		Type:       props.Type,
		X:          props.X,
		Y:          props.Y,
		Width:      props.Width,
		Height:     props.Height,
		Radius:     props.Radius,
		ZIndex:     props.ZIndex,
		Scale:      props.Scale,
		Opacity:    props.Opacity,
		Visible:    true,
		Fixed:      props.Fixed,
		Pattern:    props.Pattern,
		Background: props.Background,
		Image:      props.Image,
		Border:     props.Border,
		Body:       props.Body,
	}

	if shape.Type == ShapeCircle {
		shape.Width = shape.Radius * 2
		shape.Height = shape.Radius * 2
	}
	shape.Update()

	return shape
}

// NewBodyShape builds the circle drawn for b. tex may be nil before the
// textures are generated, the shape then falls back to a flat color.
func NewBodyShape(b *arcade.Body, tex *ebiten.Image) *Shape {
	z := 0
	switch b.Kind {
	case arcade.KindEnemy:
		z = 1
	case arcade.KindPlayer:
		z = 2
	}
	var border *Border
	if b.Kind == arcade.KindPlayer {
		border = &Border{Width: 2, Background: ColorText}
	}
	return NewShape(&ShapeProps{
		Name:       b.Kind.String(),
		Tag:        b.Kind.String(),
		Type:       ShapeCircle,
		Radius:     b.Size / 2,
		ZIndex:     z,
		Background: kindColor(b.Kind),
		Image:      tex,
		Border:     border,
		Body:       b,
	})
}

// Update copies the bound body's state into the shape.
func (s *Shape) Update() {
	if s.Body == nil {
		return
	}
	s.Visible = s.Body.Alive
	s.Scale = s.Body.Scale
	s.X = s.Body.Position.X - s.Width/2
	s.Y = s.Body.Position.Y - s.Height/2
}

func (s *Shape) Center() arcade.Vector2 {
	return arcade.Vector2{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
}

// Contains reports whether the world point p lies on the scaled shape.
func (s *Shape) Contains(p arcade.Vector2) bool {
	d := p.Sub(s.Center())
	if s.Type == ShapeCircle {
		r := s.Radius * s.Scale
		return d.X*d.X+d.Y*d.Y <= r*r
	}
	hw, hh := s.Width*s.Scale/2, s.Height*s.Scale/2
	return d.X >= -hw && d.X <= hw && d.Y >= -hh && d.Y <= hh
}

func (s *Shape) getColorImage(width, height int) *ebiten.Image {
	if s.cachedColorImage == nil || s.lastBackground != s.Background {
		s.cachedColorImage = ebiten.NewImage(max(width, 1), max(height, 1))
		s.cachedColorImage.Fill(s.Background)
		s.lastBackground = s.Background
	}
	return s.cachedColorImage
}

func (s *Shape) Draw(screen *ebiten.Image, cam *Camera) {
	if !s.Visible || s.Opacity <= 0 {
		return
	}

	switch s.Type {
	case ShapeRectangle:
		s.drawRectangle(screen, cam)
	case ShapeCircle:
		s.drawCircle(screen, cam)
	}
}

// screenCenter is where the shape's center lands on screen.
func (s *Shape) screenCenter(cam *Camera) arcade.Vector2 {
	c := s.Center()
	if s.Fixed || cam == nil {
		return c
	}
	return cam.ToScreen(c)
}

func (s *Shape) drawRectangle(screen *ebiten.Image, cam *Camera) {
	op := &ebiten.DrawImageOptions{}

	switch s.Pattern {
	case PatternColor:
		img := s.getColorImage(int(s.Width), int(s.Height))
		s.applyTransformations(op, cam, s.Width, s.Height)
		screen.DrawImage(img, op)

	case PatternImage:
		if s.Image != nil {
			b := s.Image.Bounds()
			s.applyTransformations(op, cam, float64(b.Dx()), float64(b.Dy()))
			screen.DrawImage(s.Image, op)
		}
	}

	if s.Border != nil && s.Border.Width > 0 {
		c := s.screenCenter(cam)
		w, h := s.Width*s.Scale, s.Height*s.Scale
		vector.StrokeRect(screen, float32(c.X-w/2), float32(c.Y-h/2), float32(w), float32(h),
			float32(s.Border.Width), s.Border.Background, true)
	}
}

func (s *Shape) drawCircle(screen *ebiten.Image, cam *Camera) {
	c := s.screenCenter(cam)
	r := s.Radius * s.Scale

	switch {
	case s.Pattern == PatternImage && s.Image != nil:
		op := &ebiten.DrawImageOptions{}
		b := s.Image.Bounds()
		s.applyTransformations(op, cam, float64(b.Dx()), float64(b.Dy()))
		screen.DrawImage(s.Image, op)
	default:
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(r), fade(s.Background, s.Opacity), true)
	}

	if s.Border != nil && s.Border.Width > 0 {
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(r), float32(s.Border.Width), s.Border.Background, true)
	}
}

func (s *Shape) applyTransformations(op *ebiten.DrawImageOptions, cam *Camera, originalWidth, originalHeight float64) {
	op.GeoM.Translate(-originalWidth/2, -originalHeight/2)
	op.Filter = ebiten.FilterLinear

	scaleX := s.Width / originalWidth * s.Scale
	scaleY := s.Height / originalHeight * s.Scale
	op.GeoM.Scale(scaleX, scaleY)

	c := s.screenCenter(cam)
	op.GeoM.Translate(c.X, c.Y)

	if s.Opacity < 1.0 {
		op.ColorScale.ScaleAlpha(float32(s.Opacity))
	}
}

// fade scales a color's alpha, keeping it premultiplied.
func fade(c color.Color, alpha float64) color.Color {
	alpha = min(max(alpha, 0), 1)
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}
