package xytable_test

import (
	"testing"

	"github.com/go-theft-auto/xytable"
)

func TestInputEdges(t *testing.T) {
	in := xytable.NewInputState()

	in.SetMouseButton(xytable.MouseButtonLeft, true)
	if !in.MouseClicked(xytable.MouseButtonLeft) || !in.MouseDown(xytable.MouseButtonLeft) {
		t.Fatal("press not recorded")
	}

	in.Reset()
	if in.MouseClicked(xytable.MouseButtonLeft) {
		t.Error("click edge survived Reset")
	}
	if !in.MouseDown(xytable.MouseButtonLeft) {
		t.Error("held button lost on Reset")
	}

	// Repeated down events are not new clicks.
	in.SetMouseButton(xytable.MouseButtonLeft, true)
	if in.MouseClicked(xytable.MouseButtonLeft) {
		t.Error("repeat reported as click")
	}

	in.SetMouseButton(xytable.MouseButtonLeft, false)
	if !in.MouseReleased(xytable.MouseButtonLeft) || in.MouseDown(xytable.MouseButtonLeft) {
		t.Error("release not recorded")
	}
}

func TestInputResetClearsWheelKeepsPointer(t *testing.T) {
	in := xytable.NewInputState()
	in.SetMousePos(10, 20)
	in.SetMouseWheel(0, -1)
	in.SetKey(xytable.KeyEnd, true)

	in.Reset()
	if in.Wheel != (xytable.Vec2{}) {
		t.Errorf("wheel = %v after Reset, want zero", in.Wheel)
	}
	if in.MousePos() != (xytable.Vec2{X: 10, Y: 20}) {
		t.Errorf("pointer = %v after Reset", in.MousePos())
	}
	if in.KeyPressed(xytable.KeyEnd) {
		t.Error("key edge survived Reset")
	}
}

func TestInputIgnoresUnknownCodes(t *testing.T) {
	in := xytable.NewInputState()
	in.SetMouseButton(xytable.MouseButtonCount, true)
	in.SetMouseButton(-1, true)
	in.SetKey(xytable.KeyNone, true)
	in.SetKey(xytable.KeyCount, true)

	if in.MouseDown(xytable.MouseButtonCount) || in.KeyPressed(xytable.KeyNone) || in.KeyPressed(xytable.KeyCount) {
		t.Error("out-of-range codes must be ignored")
	}
}

func TestRectHelpers(t *testing.T) {
	r := xytable.Rect{X: 10, Y: 10, W: 100, H: 40}

	if got := r.Inset(5); got != (xytable.Rect{X: 15, Y: 15, W: 90, H: 30}) {
		t.Errorf("Inset(5) = %v", got)
	}
	if got := r.Inset(30); !got.Empty() || got.W != 40 || got.H != 0 {
		t.Errorf("Inset(30) = %v, want zero height", got)
	}
	if !r.Contains(xytable.Vec2{X: 10, Y: 10}) || r.Contains(xytable.Vec2{X: 110, Y: 20}) {
		t.Error("Contains edges wrong")
	}
	// Touching edges do not intersect.
	if r.Intersects(xytable.Rect{X: 110, Y: 10, W: 5, H: 5}) {
		t.Error("edge-adjacent rects intersect")
	}
}
