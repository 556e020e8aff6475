//go:build ebiten

package app

import (
	"panel-sim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	from ebiten.Key
	to   core.Key
}{
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyA, core.KeyA},
	{ebiten.KeyD, core.KeyD},
	{ebiten.KeyI, core.KeyI},
	{ebiten.KeyK, core.KeyK},
	{ebiten.KeyJ, core.KeyJ},
	{ebiten.KeyL, core.KeyL},
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Input polls ebiten's input state and turns edges into core events.
type Input struct {
	events []core.Event
}

// NewInput intercepts the window close button so it arrives as an event.
func NewInput() *Input {
	ebiten.SetWindowClosingHandled(true)
	return &Input{}
}

// Poll returns the events that happened since the previous tick. The slice
// is reused by the next call.
func (in *Input) Poll() []core.Event {
	in.events = in.events[:0]
	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, core.Close())
	}
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.from) {
			in.events = append(in.events, core.KeyDown(m.to))
		}
		if inpututil.IsKeyJustReleased(m.from) {
			in.events = append(in.events, core.KeyUp(m.to))
		}
	}
	mx, my := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.events = append(in.events, core.MouseDown(mx, my))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.events = append(in.events, core.MouseUp(mx, my))
		}
	}
	return in.events
}
