package render

import (
	"image"
	"image/color"
	"image/draw"

	"panel-sim/internal/core"
	"panel-sim/internal/panel"

	"golang.org/x/image/font"
)

// Palette holds the colors used for button overlays.
type Palette struct {
	Pressed  color.RGBA
	Released color.RGBA
	Label    color.RGBA
}

// DefaultPalette returns the accent/neutral palette of the simulator.
func DefaultPalette() Palette {
	return Palette{
		Pressed:  color.RGBA{R: 255, G: 180, B: 40, A: 255},
		Released: color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Label:    color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}
}

// ButtonColor picks the fill color for a button.
func (p Palette) ButtonColor(pressed bool) color.RGBA {
	if pressed {
		return p.Pressed
	}
	return p.Released
}

// Scene bundles the read-only inputs of every frame.
type Scene struct {
	Size       core.Size
	Background image.Image
	LCD        image.Image
	LCDOrigin  image.Point
	LabelFace  font.Face
	Palette    Palette
}

// Compositor redraws the whole panel into a reusable RGBA frame.
type Compositor struct {
	scene Scene
	frame *image.RGBA
}

// NewCompositor allocates a frame for the scene size.
func NewCompositor(scene Scene) *Compositor {
	return &Compositor{
		scene: scene,
		frame: image.NewRGBA(image.Rect(0, 0, scene.Size.W, scene.Size.H)),
	}
}

// Size returns the frame dimensions.
func (c *Compositor) Size() core.Size { return c.scene.Size }

// Compose renders the current simulator state and returns the frame. The
// returned image is reused by the next call.
func (c *Compositor) Compose(sim *panel.Simulator) *image.RGBA {
	dst := c.frame
	if c.scene.Background != nil {
		draw.Draw(dst, dst.Rect, c.scene.Background, c.scene.Background.Bounds().Min, draw.Src)
	} else {
		draw.Draw(dst, dst.Rect, image.Black, image.Point{}, draw.Src)
	}
	if c.scene.LCD != nil {
		lb := c.scene.LCD.Bounds()
		r := image.Rectangle{Min: c.scene.LCDOrigin, Max: c.scene.LCDOrigin.Add(lb.Size())}
		draw.Draw(dst, r, c.scene.LCD, lb.Min, draw.Src)
	}
	for i := 0; i < sim.Len(); i++ {
		b := sim.Button(i)
		center := image.Pt(b.Anchor.X, b.Anchor.Y)
		fillCircle(dst, center, b.Radius, c.scene.Palette.ButtonColor(sim.Pressed(i)))
		DrawTextCentered(dst, c.scene.LabelFace, b.Name, center, c.scene.Palette.Label)
	}
	return dst
}
