package xytable

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a navigation key. Scroll regions only react to these.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCount
)

// press tracks one button or key: whether it is held, and the edges seen
// since the last Reset.
type press struct {
	down     bool
	pressed  bool
	released bool
}

func (p *press) set(down bool) {
	switch {
	case down && !p.down:
		p.pressed = true
	case !down && p.down:
		p.released = true
	}
	p.down = down
}

// InputState is one frame of pointer and keyboard input. The platform
// layer fills it between Reset and Engine.Begin; widgets only read it.
type InputState struct {
	Mouse Vec2 // Pointer position in screen coordinates
	Wheel Vec2 // Wheel notches this frame; negative Y scrolls content up
	Shift bool // Shift held: vertical wheel pans horizontally

	buttons [MouseButtonCount]press
	keys    [KeyCount]press
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears the per-frame edges and the wheel. Held buttons, held keys
// and the pointer position carry over.
func (s *InputState) Reset() {
	for i := range s.buttons {
		s.buttons[i].pressed, s.buttons[i].released = false, false
	}
	for i := range s.keys {
		s.keys[i].pressed, s.keys[i].released = false, false
	}
	s.Wheel = Vec2{}
}

// SetMousePos records the pointer position.
func (s *InputState) SetMousePos(x, y float32) {
	s.Mouse = Vec2{X: x, Y: y}
}

// SetMouseWheel records the wheel movement for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.Wheel = Vec2{X: x, Y: y}
}

// SetMouseButton records a button going down or up.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button >= 0 && button < MouseButtonCount {
		s.buttons[button].set(down)
	}
}

// SetKey records a key going down or up.
func (s *InputState) SetKey(key Key, down bool) {
	if key > KeyNone && key < KeyCount {
		s.keys[key].set(down)
	}
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 { return s.Mouse }

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.buttons[button].down
}

// MouseClicked reports whether button went down this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.buttons[button].pressed
}

// MouseReleased reports whether button went up this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.buttons[button].released
}

// KeyPressed reports whether key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keys[key].pressed
}
