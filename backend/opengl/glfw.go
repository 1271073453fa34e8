package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/xytable"
)

var glfwKeys = map[glfw.Key]xytable.Key{
	glfw.KeyLeft:     xytable.KeyLeft,
	glfw.KeyRight:    xytable.KeyRight,
	glfw.KeyUp:       xytable.KeyUp,
	glfw.KeyDown:     xytable.KeyDown,
	glfw.KeyPageUp:   xytable.KeyPageUp,
	glfw.KeyPageDown: xytable.KeyPageDown,
	glfw.KeyHome:     xytable.KeyHome,
	glfw.KeyEnd:      xytable.KeyEnd,
}

var glfwButtons = map[glfw.MouseButton]xytable.MouseButton{
	glfw.MouseButtonLeft:   xytable.MouseButtonLeft,
	glfw.MouseButtonRight:  xytable.MouseButtonRight,
	glfw.MouseButtonMiddle: xytable.MouseButtonMiddle,
}

// GLFWInputAdapter collects a GLFW window's events into one
// xytable.InputState per frame.
//
//	in := opengl.NewGLFWInputAdapter(window)
//	for !window.ShouldClose() {
//	    state := in.Update()
//	    glfw.PollEvents()
//	    ctx := engine.Begin(state, size, dt)
//	    ...
//	}
type GLFWInputAdapter struct {
	window *glfw.Window
	state  *xytable.InputState
}

// NewGLFWInputAdapter installs input callbacks on window. It replaces any
// key, button, scroll or cursor callbacks already set.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, state: xytable.NewInputState()}
	window.SetKeyCallback(a.onKey)
	window.SetMouseButtonCallback(a.onButton)
	window.SetScrollCallback(a.onScroll)
	window.SetCursorPosCallback(a.onCursor)
	return a
}

// Update starts a new frame of input and returns the state that the next
// glfw.PollEvents fills.
func (a *GLFWInputAdapter) Update() *xytable.InputState {
	a.state.Reset()
	x, y := a.window.GetCursorPos()
	a.state.SetMousePos(float32(x), float32(y))
	a.state.Shift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	return a.state
}

// Input returns the state without starting a new frame.
func (a *GLFWInputAdapter) Input() *xytable.InputState { return a.state }

func (a *GLFWInputAdapter) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.state.SetKey(k, true)
	case glfw.Repeat:
		// A held key scrolls again on every repeat.
		a.state.SetKey(k, false)
		a.state.SetKey(k, true)
	case glfw.Release:
		a.state.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) onButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if b, ok := glfwButtons[button]; ok && action != glfw.Repeat {
		a.state.SetMouseButton(b, action == glfw.Press)
	}
}

func (a *GLFWInputAdapter) onScroll(_ *glfw.Window, dx, dy float64) {
	a.state.SetMouseWheel(float32(dx), float32(dy))
}

func (a *GLFWInputAdapter) onCursor(_ *glfw.Window, x, y float64) {
	a.state.SetMousePos(float32(x), float32(y))
}
