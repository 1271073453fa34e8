package xytable

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Engine drives frames: Begin hands out a Context, End renders what was
// drawn into it.
type Engine struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStyle sets the engine style.
func WithStyle(style Style) EngineOption {
	return func(e *Engine) { e.style = style }
}

// New creates a new Engine rendering through renderer.
func New(renderer Renderer, opts ...EngineOption) *Engine {
	e := &Engine{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Begin starts a new frame and returns the frame context.
// Call this at the start of each frame before drawing any table.
func (e *Engine) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := e.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.SetStyle(e.style)
	ctx.FontTextureID = e.renderer.FontTextureID()
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders it.
// Call this after all drawing is complete.
func (e *Engine) End() error {
	dl := e.ctx.DrawList
	if dl == nil {
		return nil
	}
	e.ctx.DrawList = nil
	defer ReleaseDrawList(dl)

	dl.Finalize()
	if verbose() {
		logger.Debug("frame rendered",
			"frame", e.ctx.FrameCount,
			"commands", len(dl.CmdBuffer),
			"vertices", len(dl.VtxBuffer))
	}
	return e.renderer.Render(dl)
}

// Context returns the current frame context.
// Only valid between Begin and End.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Style returns the engine style.
func (e *Engine) Style() Style {
	return e.style
}

// SetStyle sets the style used from the next frame on.
func (e *Engine) SetStyle(style Style) {
	e.style = style
}

// Resize notifies the renderer of a display size change.
func (e *Engine) Resize(width, height int) {
	e.renderer.Resize(width, height)
}
