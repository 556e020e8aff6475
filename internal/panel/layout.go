package panel

import (
	"image"

	"panel-sim/internal/core"
)

// Window and LCD geometry of the simulated device, in logical pixels.
var (
	WindowSize = core.Size{W: 400, H: 600}
	LCDSize    = core.Size{W: 240, H: 320}
	LCDOrigin  = image.Pt(90, 62)
)

// DefaultRadius is the hotspot radius shared by every button in the default
// layout.
const DefaultRadius = 25

// Button describes one hotspot on the front panel. Buttons are values and
// are never modified after the layout is built.
type Button struct {
	Name   string
	Anchor core.Point
	Radius int
	Key    core.Key
}

// Contains reports whether p lies strictly inside the hotspot.
func (b Button) Contains(p core.Point) bool {
	return within(b.Anchor.DistSq(p), b.Radius)
}

func within(distSq, radius int) bool { return distSq < radius*radius }

// DefaultLayout returns the compiled-in button layout. Index i of the result
// is bit i of Simulator.Mask.
func DefaultLayout() []Button {
	return []Button{
		{Name: "PWR", Anchor: core.Point{X: 340, Y: 90}, Radius: DefaultRadius, Key: core.KeyEscape},
		{Name: "SET", Anchor: core.Point{X: 60, Y: 90}, Radius: DefaultRadius, Key: core.KeyEnter},
		{Name: "UP", Anchor: core.Point{X: 90, Y: 420}, Radius: DefaultRadius, Key: core.KeyW},
		{Name: "DOWN", Anchor: core.Point{X: 90, Y: 500}, Radius: DefaultRadius, Key: core.KeyS},
		{Name: "LEFT", Anchor: core.Point{X: 55, Y: 460}, Radius: DefaultRadius, Key: core.KeyA},
		{Name: "RIGHT", Anchor: core.Point{X: 125, Y: 460}, Radius: DefaultRadius, Key: core.KeyD},
		{Name: "X", Anchor: core.Point{X: 310, Y: 420}, Radius: DefaultRadius, Key: core.KeyI},
		{Name: "B", Anchor: core.Point{X: 310, Y: 500}, Radius: DefaultRadius, Key: core.KeyK},
		{Name: "Y", Anchor: core.Point{X: 275, Y: 460}, Radius: DefaultRadius, Key: core.KeyJ},
		{Name: "A", Anchor: core.Point{X: 345, Y: 460}, Radius: DefaultRadius, Key: core.KeyL},
	}
}
