package xytable

// Context holds all state for drawing a single frame.
// This is NOT context.Context; it is rebuilt by Engine.Begin every frame.
type Context struct {
	// Drawing output
	DrawList *DrawList

	style Style

	// Panels
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack []ID

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// activeID is the widget holding the mouse (e.g. a dragged scroll region).
	activeID ID

	// regions holds scroll region state between frames.
	regions *FrameStore[ScrollRegionState]

	// Font texture ID (set by the renderer)
	FontTextureID uint32

	// WantCaptureMouse tells the application the mouse is over a region.
	WantCaptureMouse bool
}

// NewContext creates a new context with default settings.
func NewContext() *Context {
	return &Context{
		style:       DefaultStyle(),
		layoutStack: make([]*Layout, 0, 8),
		idStack:     make([]ID, 0, 16),
		regions:     NewFrameStore[ScrollRegionState](),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	// Forget regions that were not drawn last frame.
	ctx.regions.Advance()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false

	// A drag ends as soon as the button is up, even outside any region.
	if ctx.Input == nil || !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

// isHovered returns true if the mouse is inside rect and inside the active
// clip rectangle, so regions scrolled out of a parent never react.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.Input.MousePos()
	if !rect.Contains(p) {
		return false
	}
	if ctx.DrawList == nil {
		return true
	}
	c := ctx.DrawList.ClipRect()
	return p.X >= c[0] && p.Y >= c[1] && p.X < c[2] && p.Y < c[3]
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of rendered text in the built-in monospace
// font. Wide runes take two cells.
func (ctx *Context) MeasureText(text string) Vec2 {
	cells := 0
	for _, r := range text {
		cells += runeCells(r)
	}
	return Vec2{
		X: float32(cells) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
}

// AddText draws text at (x, y) with the built-in font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}
