package core

import "strings"

// Size describes the dimensions of a surface in logical pixels.
type Size struct {
	W int
	H int
}

// Point is an integer screen coordinate.
type Point struct {
	X int
	Y int
}

// DistSq returns the squared Euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Key identifies a keyboard key independently of the windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyW
	KeyS
	KeyA
	KeyD
	KeyI
	KeyK
	KeyJ
	KeyL
	maxKey
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyEnter:   "enter",
	KeyW:       "w",
	KeyS:       "s",
	KeyA:       "a",
	KeyD:       "d",
	KeyI:       "i",
	KeyK:       "k",
	KeyJ:       "j",
	KeyL:       "l",
}

func (k Key) String() string {
	if k < 0 || k >= maxKey {
		return "unknown"
	}
	return keyNames[k]
}

// ParseKey maps a key name (case-insensitive) to a Key. "return" is accepted
// as an alias for enter and "esc" for escape.
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "return":
		return KeyEnter, true
	case "esc":
		return KeyEscape, true
	}
	for k := KeyEscape; k < maxKey; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyUnknown, false
}

// EventKind enumerates the input events the simulator understands.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventMouseDown
	EventMouseUp
	EventClose
)

// Event is a single backend-neutral input event. Key is only meaningful for
// key events and Pos only for mouse events.
type Event struct {
	Kind EventKind
	Key  Key
	Pos  Point
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// MouseDown returns a mouse-button-down event at (x, y).
func MouseDown(x, y int) Event { return Event{Kind: EventMouseDown, Pos: Point{X: x, Y: y}} }

// MouseUp returns a mouse-button-up event at (x, y).
func MouseUp(x, y int) Event { return Event{Kind: EventMouseUp, Pos: Point{X: x, Y: y}} }

// Close returns a window-close event.
func Close() Event { return Event{Kind: EventClose} }
