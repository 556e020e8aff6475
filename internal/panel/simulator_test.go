package panel

import (
	"fmt"
	"testing"

	"panel-sim/internal/core"
)

func TestStateLengthMatchesLayout(t *testing.T) {
	sim := New(DefaultLayout())
	if sim.Len() != len(DefaultLayout()) || len(sim.pressed) != sim.Len() {
		t.Fatalf("pressed=%d buttons=%d", len(sim.pressed), sim.Len())
	}
	sim.HandleAll([]core.Event{
		core.KeyDown(core.KeyW),
		core.MouseDown(340, 90),
		core.KeyUp(core.KeyW),
		core.Close(),
	})
	if len(sim.pressed) != sim.Len() {
		t.Fatalf("pressed length changed to %d", len(sim.pressed))
	}
	for i := 0; i < sim.Len(); i++ {
		_ = sim.Pressed(i)
	}
}

func TestInitialStateUnpressed(t *testing.T) {
	sim := New(DefaultLayout())
	if sim.State() != Running {
		t.Fatalf("initial state %v, want running", sim.State())
	}
	for i := 0; i < sim.Len(); i++ {
		if sim.Pressed(i) {
			t.Fatalf("button %s pressed at start", sim.Button(i).Name)
		}
	}
	if sim.Mask() != 0 {
		t.Fatalf("mask %#x, want 0", sim.Mask())
	}
}

func TestKeyDownIdempotent(t *testing.T) {
	sim := New(DefaultLayout())
	up := sim.Index("UP")
	sim.Handle(core.KeyDown(core.KeyW))
	sim.Handle(core.KeyDown(core.KeyW))
	if !sim.Pressed(up) {
		t.Fatal("UP not pressed after repeated key-down")
	}
	sim.Handle(core.KeyUp(core.KeyW))
	if sim.Pressed(up) {
		t.Fatal("UP still pressed after key-up")
	}
}

func TestDuplicateKeyBindingsUpdateAll(t *testing.T) {
	layout := []Button{
		{Name: "one", Anchor: core.Point{X: 10, Y: 10}, Radius: 5, Key: core.KeyA},
		{Name: "two", Anchor: core.Point{X: 100, Y: 100}, Radius: 5, Key: core.KeyA},
		{Name: "three", Anchor: core.Point{X: 200, Y: 200}, Radius: 5, Key: core.KeyD},
	}
	sim := New(layout)
	sim.Handle(core.KeyDown(core.KeyA))
	if !sim.Pressed(0) || !sim.Pressed(1) || sim.Pressed(2) {
		t.Fatalf("mask %#b, want 0b011", sim.Mask())
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	sim := New(DefaultLayout())
	sim.Handle(core.KeyDown(core.KeyUnknown))
	sim.Handle(core.Event{Kind: core.EventKind(99)})
	if sim.Mask() != 0 || !sim.Running() {
		t.Fatalf("mask=%#x state=%v after ignorable events", sim.Mask(), sim.State())
	}
}

func TestClickAtAnchorHits(t *testing.T) {
	for _, b := range DefaultLayout() {
		sim := New(DefaultLayout())
		sim.Handle(core.MouseDown(b.Anchor.X, b.Anchor.Y))
		i := sim.Index(b.Name)
		if !sim.Pressed(i) {
			t.Fatalf("click at anchor of %s missed", b.Name)
		}
		sim.Handle(core.MouseUp(b.Anchor.X, b.Anchor.Y))
		if sim.Pressed(i) {
			t.Fatalf("release at anchor of %s left it pressed", b.Name)
		}
	}
}

func TestClickAtRadiusMisses(t *testing.T) {
	sim := New(DefaultLayout())
	up := sim.Button(sim.Index("UP"))
	// Offsets at squared distance exactly 625 from the anchor.
	offsets := []core.Point{{X: 25, Y: 0}, {X: 0, Y: -25}, {X: 15, Y: 20}, {X: -7, Y: 24}}
	for _, off := range offsets {
		sim.Handle(core.MouseDown(up.Anchor.X+off.X, up.Anchor.Y+off.Y))
		if sim.Mask() != 0 {
			t.Fatalf("click at offset %+v registered (mask %#x)", off, sim.Mask())
		}
	}
	sim.Handle(core.MouseDown(up.Anchor.X+24, up.Anchor.Y+6))
	if !sim.Pressed(sim.Index("UP")) {
		t.Fatal("click at squared distance 612 missed")
	}
}

func TestWithinBoundary(t *testing.T) {
	if !within(624, 25) {
		t.Fatal("624 < 625 should hit")
	}
	if within(625, 25) {
		t.Fatal("625 should not hit")
	}
	if !within(0, 1) {
		t.Fatal("anchor should hit")
	}
}

func TestOverlappingHotspotsAllPressed(t *testing.T) {
	layout := []Button{
		{Name: "L", Anchor: core.Point{X: 100, Y: 100}, Radius: 25, Key: core.KeyA},
		{Name: "R", Anchor: core.Point{X: 130, Y: 100}, Radius: 25, Key: core.KeyD},
		{Name: "far", Anchor: core.Point{X: 300, Y: 300}, Radius: 25, Key: core.KeyW},
	}
	sim := New(layout)
	sim.Handle(core.MouseDown(115, 100))
	if !sim.Pressed(0) || !sim.Pressed(1) {
		t.Fatalf("overlap click mask %#b, want both hotspots", sim.Mask())
	}
	if sim.Pressed(2) {
		t.Fatal("distant hotspot pressed")
	}
	sim.Handle(core.MouseUp(115, 100))
	if sim.Mask() != 0 {
		t.Fatalf("mask %#b after release", sim.Mask())
	}
}

func TestCloseTerminates(t *testing.T) {
	sim := New(DefaultLayout())
	sim.Handle(core.Close())
	if sim.State() != Terminated || sim.Running() {
		t.Fatalf("state %v after close", sim.State())
	}
}

func TestMaskBits(t *testing.T) {
	sim := New(DefaultLayout())
	sim.Handle(core.KeyDown(core.KeyEscape))
	sim.Handle(core.KeyDown(core.KeyL))
	want := uint32(1<<0 | 1<<9)
	if got := sim.Mask(); got != want {
		t.Fatalf("mask %#b, want %#b", got, want)
	}
}

func TestLogfOnlyOnChange(t *testing.T) {
	sim := New(DefaultLayout())
	var lines []string
	sim.Logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	sim.Handle(core.KeyDown(core.KeyW))
	sim.Handle(core.KeyDown(core.KeyW))
	sim.Handle(core.KeyUp(core.KeyW))
	want := []string{"button 2 (UP) pressed", "button 2 (UP) released"}
	if len(lines) != len(want) {
		t.Fatalf("log lines %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("log line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestNewCopiesLayout(t *testing.T) {
	layout := DefaultLayout()
	sim := New(layout)
	layout[0].Name = "changed"
	if sim.Button(0).Name != "PWR" {
		t.Fatalf("simulator layout aliased caller slice: %q", sim.Button(0).Name)
	}
}

func TestDefaultLayoutFitsWindow(t *testing.T) {
	seen := map[core.Key]string{}
	for _, b := range DefaultLayout() {
		if b.Anchor.X < 0 || b.Anchor.X >= WindowSize.W || b.Anchor.Y < 0 || b.Anchor.Y >= WindowSize.H {
			t.Fatalf("%s anchor %+v outside window", b.Name, b.Anchor)
		}
		if prev, ok := seen[b.Key]; ok {
			t.Fatalf("%s and %s share key %v", prev, b.Name, b.Key)
		}
		seen[b.Key] = b.Name
	}
}
