package xytable

// Layout is a column of items inside a panel. Items stack downwards, Gap
// apart, starting at Origin; Used grows as they are placed.
type Layout struct {
	Origin Vec2
	Avail  Vec2 // space granted by the panel, padding and title excluded
	Used   Vec2
	Gap    float32
	Items  int
}

// LayoutOption sizes a panel.
type LayoutOption func(*panelSize)

type panelSize struct {
	w, h float32
}

// Width fixes a panel's outer width. Zero fills the available width.
func Width(w float32) LayoutOption {
	return func(s *panelSize) { s.w = w }
}

// Height fixes a panel's outer height. Zero fills the available height.
func Height(h float32) LayoutOption {
	return func(s *panelSize) { s.h = h }
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// AvailableSize returns the space left below the cursor in the current
// panel, or in the display outside any panel. Tables placed without an
// explicit size fill it.
func (ctx *Context) AvailableSize() Vec2 {
	limit := ctx.DisplaySize
	if l := ctx.currentLayout(); l != nil {
		limit = l.Origin.Add(l.Avail)
	}
	return Vec2{X: max(0, limit.X-ctx.cursor.X), Y: max(0, limit.Y-ctx.cursor.Y)}
}

// ItemPos returns where the next item goes, with the gap to the previous
// item applied.
func (ctx *Context) ItemPos() Vec2 {
	if l := ctx.currentLayout(); l != nil && l.Items > 0 {
		ctx.cursor.Y += l.Gap
	}
	return ctx.cursor
}

// AdvanceCursor moves the cursor below an item of the given size placed at
// ItemPos.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	ctx.cursor.Y += size.Y
	l.Used.X = max(l.Used.X, ctx.cursor.X-l.Origin.X+size.X)
	l.Used.Y = ctx.cursor.Y - l.Origin.Y
	l.Items++
}

// Panel draws a titled, padded background around its contents and stacks
// the contents vertically inside it. The panel grows to fit content larger
// than its fixed size.
//
//	ctx.Panel("Timetable", xytable.Width(640), xytable.Height(480))(func() {
//	    table.Draw(ctx)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		var size panelSize
		for _, opt := range opts {
			opt(&size)
		}

		st := ctx.style
		pad := st.PanelPadding
		start := ctx.ItemPos()

		titleH := float32(0)
		if title != "" {
			titleH = ctx.LineHeight() + pad*2
		}

		outer := ctx.AvailableSize()
		if size.w > 0 {
			outer.X = size.w
		}
		if size.h > 0 {
			outer.Y = size.h
		}

		l := &Layout{
			Origin: Vec2{X: start.X + pad, Y: start.Y + pad + titleH},
			Avail:  Vec2{X: max(0, outer.X-pad*2), Y: max(0, outer.Y-pad*2-titleH)},
			Gap:    st.ItemSpacing,
		}
		ctx.layoutStack = append(ctx.layoutStack, l)
		ctx.cursor = l.Origin
		contents()
		ctx.layoutStack = ctx.layoutStack[:len(ctx.layoutStack)-1]

		frame := Rect{
			X: start.X,
			Y: start.Y,
			W: max(l.Used.X+pad*2, size.w),
			H: max(l.Used.Y+pad*2+titleH, size.h),
		}

		// The background goes under everything the contents drew.
		ctx.DrawList.InsertRect(frame.X, frame.Y, frame.W, frame.H, st.PanelColor)
		if title != "" {
			ctx.DrawList.AddRect(frame.X, frame.Y, frame.W, titleH, st.PanelHeaderBgColor)
			ctx.AddText(frame.X+pad, frame.Y+(titleH-ctx.LineHeight())/2, title, headerTextColor(ctx))
		}
		if st.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(frame.X, frame.Y, frame.W, frame.H, st.PanelBorderColor, st.BorderSize)
		}
		if ctx.isHovered(frame) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = start
		if parent := ctx.currentLayout(); parent != nil {
			ctx.AdvanceCursor(frame.Size())
		} else {
			ctx.cursor.Y += frame.H
		}
	}
}

// Text draws one line of text at the cursor.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}
