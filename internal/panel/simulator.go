package panel

import "panel-sim/internal/core"

// State is the lifecycle state of the simulator loop.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "invalid"
	}
}

// Simulator owns the button layout and the pressed state of every button.
// It is not safe for concurrent use; the loop goroutine owns it.
type Simulator struct {
	buttons []Button
	pressed []bool
	state   State

	// Logf, when set, receives one line per button state change.
	Logf func(format string, args ...any)
}

// New constructs a Simulator for the given layout. The layout is copied so
// later changes by the caller do not affect the simulator.
func New(buttons []Button) *Simulator {
	bs := make([]Button, len(buttons))
	copy(bs, buttons)
	return &Simulator{buttons: bs, pressed: make([]bool, len(bs))}
}

// Len returns the number of buttons.
func (s *Simulator) Len() int { return len(s.buttons) }

// Button returns the descriptor at index i.
func (s *Simulator) Button(i int) Button { return s.buttons[i] }

// Pressed reports whether button i is currently held.
func (s *Simulator) Pressed(i int) bool { return s.pressed[i] }

// Index returns the index of the first button called name, or -1.
func (s *Simulator) Index(name string) int {
	for i, b := range s.buttons {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Mask packs the pressed state into a bitmask, bit i for button i. Buttons
// beyond the 32nd are not represented.
func (s *Simulator) Mask() uint32 {
	var m uint32
	for i, p := range s.pressed {
		if p && i < 32 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// State returns the current lifecycle state.
func (s *Simulator) State() State { return s.state }

// Running reports whether the loop should keep going.
func (s *Simulator) Running() bool { return s.state == Running }

// Quit moves the simulator to Terminated.
func (s *Simulator) Quit() { s.state = Terminated }

// Handle applies a single input event. Events the simulator does not
// recognise are ignored.
func (s *Simulator) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventClose:
		s.Quit()
	case core.EventKeyDown, core.EventKeyUp:
		down := ev.Kind == core.EventKeyDown
		for i, b := range s.buttons {
			if b.Key == ev.Key {
				s.set(i, down)
			}
		}
	case core.EventMouseDown, core.EventMouseUp:
		// Overlapping hotspots all change; there is no first-hit rule.
		down := ev.Kind == core.EventMouseDown
		for i, b := range s.buttons {
			if b.Contains(ev.Pos) {
				s.set(i, down)
			}
		}
	}
}

// HandleAll applies events in order.
func (s *Simulator) HandleAll(evs []core.Event) {
	for _, ev := range evs {
		s.Handle(ev)
	}
}

func (s *Simulator) set(i int, down bool) {
	if s.pressed[i] == down {
		return
	}
	s.pressed[i] = down
	if s.Logf != nil {
		verb := "released"
		if down {
			verb = "pressed"
		}
		s.Logf("button %d (%s) %s", i, s.buttons[i].Name, verb)
	}
}
