package app

import (
	"image"

	"panel-sim/internal/core"
	"panel-sim/internal/panel"
	"panel-sim/internal/render"
)

// EventSource yields the input events pending since the previous poll.
type EventSource interface {
	Poll() []core.Event
}

// FrameSink presents a composed frame. The frame is reused after Present
// returns.
type FrameSink interface {
	Present(frame *image.RGBA) error
}

// Limiter blocks until the next frame may start.
type Limiter interface {
	Wait()
}

// Loop drives a simulator without a window: poll, apply, compose, present,
// wait.
type Loop struct {
	Sim        *panel.Simulator
	Compositor *render.Compositor
	Source     EventSource
	Sink       FrameSink
	Limiter    Limiter

	frames int
}

// Frames reports how many frames have been presented.
func (l *Loop) Frames() int { return l.frames }

// Step runs one iteration. It reports false once the simulator has
// terminated, in which case nothing is rendered.
func (l *Loop) Step() (bool, error) {
	l.Sim.HandleAll(l.Source.Poll())
	if !l.Sim.Running() {
		return false, nil
	}
	if err := l.Sink.Present(l.Compositor.Compose(l.Sim)); err != nil {
		return false, err
	}
	l.frames++
	if l.Limiter != nil {
		l.Limiter.Wait()
	}
	return true, nil
}

// Run steps until the simulator terminates or presenting fails.
func (l *Loop) Run() error {
	for {
		ok, err := l.Step()
		if err != nil || !ok {
			return err
		}
	}
}
