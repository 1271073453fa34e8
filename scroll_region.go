package xytable

// ScrollRegionState is the persisted state of one scroll region.
// Offset is the content displacement: zero at rest, negative once the
// user has panned right or down.
type ScrollRegionState struct {
	Offset      Vec2
	ContentSize Vec2

	// Pointer drag on the content (pan) or on a scrollbar thumb.
	Dragging        bool
	DragAxis        dragAxis
	DragStart       Vec2
	DragStartOffset Vec2

	reported     bool
	lastReported Vec2
}

type dragAxis uint8

const (
	dragContent dragAxis = iota
	dragVerticalBar
	dragHorizontalBar
)

// ScrollRegion is a clipped viewport onto a larger content area.
// Content is drawn between BeginScrollRegion and End at positions relative
// to Origin.
type ScrollRegion struct {
	ctx         *Context
	id          ID
	viewport    Rect
	contentSize Vec2
	state       *ScrollRegionState
	opts        options
	ended       bool
}

// BeginScrollRegion opens a scroll region over viewport for content of the
// given size. Input is handled here, before any content is drawn, so that
// observers see this frame's offset while the frame is still being built.
//
// Usage:
//
//	r := ctx.BeginScrollRegion("body", viewport, contentSize,
//	    xytable.WithOffsetObserver(func(o xytable.Vec2) { sync.Observe(o) }))
//	origin := r.Origin()
//	ctx.DrawList.AddRect(origin.X+10, origin.Y+10, 50, 20, xytable.ColorOrange)
//	r.End()
func (ctx *Context) BeginScrollRegion(id string, viewport Rect, contentSize Vec2, opts ...Option) *ScrollRegion {
	r := &ScrollRegion{
		ctx:         ctx,
		id:          ctx.GetID(id),
		viewport:    viewport,
		contentSize: Vec2{X: max(0, contentSize.X), Y: max(0, contentSize.Y)},
		opts:        applyOptions(opts),
	}
	r.state = ctx.regions.Get(r.id, ScrollRegionState{})
	r.state.ContentSize = r.contentSize

	if !GetOpt(r.opts, OptInputDisabled) {
		r.handleInput()
	}
	r.notify()

	ctx.DrawList.PushClipRect(viewport.X, viewport.Y, viewport.X+viewport.W, viewport.Y+viewport.H)
	ctx.DrawList.AddRect(viewport.X, viewport.Y, viewport.W, viewport.H, GetOpt(r.opts, OptBackground))
	return r
}

// Options returns the options the region was opened with.
func (r *ScrollRegion) Options() options { return r.opts }

// ID returns the region's widget ID.
func (r *ScrollRegion) ID() ID { return r.id }

// Viewport returns the on-screen rectangle of the region.
func (r *ScrollRegion) Viewport() Rect { return r.viewport }

// Offset returns the current content displacement.
func (r *ScrollRegion) Offset() Vec2 { return r.state.Offset }

// Origin returns the screen position of the content's top-left corner.
func (r *ScrollRegion) Origin() Vec2 {
	return r.viewport.Min().Add(r.state.Offset)
}

// SetOffset sets the content displacement as given, without clamping.
// Input-disabled header strips are driven this way.
func (r *ScrollRegion) SetOffset(offset Vec2) {
	r.state.Offset = offset
	r.notify()
}

// ScrollTo sets the content displacement clamped to the content bounds.
func (r *ScrollRegion) ScrollTo(offset Vec2) {
	r.state.Offset = r.clamp(offset)
	r.notify()
}

// End closes the region and draws its scrollbars.
func (r *ScrollRegion) End() {
	if r.ended {
		return
	}
	r.ended = true
	r.ctx.DrawList.PopClipRect()

	v, h := r.scrollbars()
	style := r.ctx.style
	if v {
		track, thumb := r.verticalBar()
		r.ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, style.ScrollbarBgColor)
		r.ctx.DrawList.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, r.thumbColor(thumb, dragVerticalBar))
	}
	if h {
		track, thumb := r.horizontalBar()
		r.ctx.DrawList.AddRect(track.X, track.Y, track.W, track.H, style.ScrollbarBgColor)
		r.ctx.DrawList.AddRect(thumb.X, thumb.Y, thumb.W, thumb.H, r.thumbColor(thumb, dragHorizontalBar))
	}
}

// maxScroll returns the most negative offset per axis (zero or less).
func (r *ScrollRegion) maxScroll() Vec2 {
	return Vec2{
		X: min(0, r.viewport.W-r.contentSize.X),
		Y: min(0, r.viewport.H-r.contentSize.Y),
	}
}

func (r *ScrollRegion) clamp(offset Vec2) Vec2 {
	lo := r.maxScroll()
	return Vec2{X: clampf(offset.X, lo.X, 0), Y: clampf(offset.Y, lo.Y, 0)}
}

// handleInput applies wheel, drag and key input to the offset.
func (r *ScrollRegion) handleInput() {
	ctx := r.ctx
	in := ctx.Input
	if in == nil {
		return
	}
	st := r.state
	horizontal := GetOpt(r.opts, OptHorizontalScroll)
	vertical := GetOpt(r.opts, OptVerticalScroll)
	step := ctx.style.WheelStep
	if s := GetOpt(r.opts, OptWheelStep); s > 0 {
		step = s
	}
	next := st.Offset

	hovered := ctx.isHovered(r.viewport)
	if hovered {
		ctx.WantCaptureMouse = true
	}

	// Drag: started by a click inside the region, kept while the button is held.
	if st.Dragging {
		if !in.MouseDown(MouseButtonLeft) || ctx.activeID != r.id {
			st.Dragging = false
		} else {
			delta := in.MousePos().Sub(st.DragStart)
			switch st.DragAxis {
			case dragContent:
				next = st.DragStartOffset.Add(delta)
			case dragVerticalBar:
				next.Y = st.DragStartOffset.Y - delta.Y*r.barRatio(r.viewport.H, r.contentSize.Y)
			case dragHorizontalBar:
				next.X = st.DragStartOffset.X - delta.X*r.barRatio(r.viewport.W, r.contentSize.X)
			}
		}
	} else if hovered && in.MouseClicked(MouseButtonLeft) && ctx.activeID == 0 {
		st.Dragging = true
		st.DragAxis = r.dragAxisAt(in.MousePos())
		st.DragStart = in.MousePos()
		st.DragStartOffset = st.Offset
		ctx.activeID = r.id
	}

	if hovered {
		wheelX, wheelY := in.Wheel.X, in.Wheel.Y
		if in.Shift && wheelX == 0 {
			wheelX, wheelY = wheelY, 0
		}
		next.X += wheelX * step
		next.Y += wheelY * step

		page := r.viewport.H * 0.8
		switch {
		case in.KeyPressed(KeyUp):
			next.Y += step
		case in.KeyPressed(KeyDown):
			next.Y -= step
		case in.KeyPressed(KeyLeft):
			next.X += step
		case in.KeyPressed(KeyRight):
			next.X -= step
		case in.KeyPressed(KeyPageUp):
			next.Y += page
		case in.KeyPressed(KeyPageDown):
			next.Y -= page
		case in.KeyPressed(KeyHome):
			next = Vec2{}
		case in.KeyPressed(KeyEnd):
			// End goes to the bottom, or to the right edge of a region
			// that only pans horizontally.
			if vertical {
				next.Y = r.maxScroll().Y
			} else {
				next.X = r.maxScroll().X
			}
		}
	}

	if !horizontal {
		next.X = st.Offset.X
	}
	if !vertical {
		next.Y = st.Offset.Y
	}
	st.Offset = r.clamp(next)
}

// notify reports the offset to the observer when it changed since the last
// report, and once when the region first appears.
func (r *ScrollRegion) notify() {
	st := r.state
	if st.reported && st.lastReported == st.Offset {
		return
	}
	st.reported = true
	st.lastReported = st.Offset
	if verbose() {
		logger.Debug("scroll offset changed", "region", r.id, "x", st.Offset.X, "y", st.Offset.Y)
	}
	if fn := GetOpt(r.opts, OptOffsetObserver); fn != nil {
		fn(st.Offset)
	}
}

// scrollbars reports which scrollbars are visible.
func (r *ScrollRegion) scrollbars() (vertical, horizontal bool) {
	if r.ctx.style.ScrollbarSize <= 0 {
		return false, false
	}
	switch GetOpt(r.opts, OptScrollbarVisibility) {
	case ScrollbarNever:
		return false, false
	case ScrollbarAlways:
		return GetOpt(r.opts, OptVerticalScroll), GetOpt(r.opts, OptHorizontalScroll)
	}
	return GetOpt(r.opts, OptVerticalScroll) && r.contentSize.Y > r.viewport.H,
		GetOpt(r.opts, OptHorizontalScroll) && r.contentSize.X > r.viewport.W
}

const minThumbLength = 20

// thumbSpan returns the thumb position and length along a track.
func thumbSpan(track, content, offset float32) (pos, length float32) {
	if content <= track || track <= 0 {
		return 0, track
	}
	length = max(minThumbLength, track*track/content)
	length = min(length, track)
	maxScroll := content - track
	pos = clampf(-offset/maxScroll, 0, 1) * (track - length)
	return pos, length
}

// barRatio converts thumb movement into content movement.
func (r *ScrollRegion) barRatio(track, content float32) float32 {
	_, length := thumbSpan(track, content, 0)
	if free := track - length; free > 0 {
		return (content - track) / free
	}
	return 0
}

func (r *ScrollRegion) verticalBar() (track, thumb Rect) {
	size := r.ctx.style.ScrollbarSize
	v := r.viewport
	track = Rect{X: v.X + v.W - size, Y: v.Y, W: size, H: v.H}
	pos, length := thumbSpan(v.H, r.contentSize.Y, r.state.Offset.Y)
	thumb = Rect{X: track.X, Y: v.Y + pos, W: size, H: length}
	return track, thumb
}

func (r *ScrollRegion) horizontalBar() (track, thumb Rect) {
	size := r.ctx.style.ScrollbarSize
	v := r.viewport
	track = Rect{X: v.X, Y: v.Y + v.H - size, W: v.W, H: size}
	pos, length := thumbSpan(v.W, r.contentSize.X, r.state.Offset.X)
	thumb = Rect{X: v.X + pos, Y: track.Y, W: length, H: size}
	return track, thumb
}

// dragAxisAt picks what a click at p grabs: a scrollbar thumb or the content.
func (r *ScrollRegion) dragAxisAt(p Vec2) dragAxis {
	v, h := r.scrollbars()
	if v {
		if _, thumb := r.verticalBar(); thumb.Contains(p) {
			return dragVerticalBar
		}
	}
	if h {
		if _, thumb := r.horizontalBar(); thumb.Contains(p) {
			return dragHorizontalBar
		}
	}
	return dragContent
}

func (r *ScrollRegion) thumbColor(thumb Rect, axis dragAxis) uint32 {
	if (r.state.Dragging && r.state.DragAxis == axis) || r.ctx.isHovered(thumb) {
		return r.ctx.style.ScrollbarGrabHovered
	}
	return r.ctx.style.ScrollbarGrabColor
}
