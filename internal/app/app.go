//go:build ebiten

package app

import (
	"panel-sim/internal/panel"
	"panel-sim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts the panel simulator to the ebiten.Game interface.
type Game struct {
	sim        *panel.Simulator
	compositor *render.Compositor
	painter    *render.FramePainter
	input      *Input
}

// New constructs a Game drawing scene for sim.
func New(sim *panel.Simulator, scene render.Scene) *Game {
	return &Game{
		sim:        sim,
		compositor: render.NewCompositor(scene),
		painter:    render.NewFramePainter(scene.Size.W, scene.Size.H),
		input:      NewInput(),
	}
}

// Simulator returns the simulator driven by the game.
func (g *Game) Simulator() *panel.Simulator { return g.sim }

// Update applies the input events of this tick. It returns
// ebiten.Termination once the simulator has terminated so no further frame
// is drawn.
func (g *Game) Update() error {
	g.sim.HandleAll(g.input.Poll())
	if !g.sim.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw composes the panel and presents it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.compositor.Compose(g.sim))
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.compositor.Size()
	return s.W, s.H
}
