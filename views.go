package xytable

// Stock views for header items and cells. Each returns a View that draws
// into whatever bounds the table hands it.

// TextView draws text centered in its bounds, truncated to fit.
func TextView(text string) View {
	return func(ctx *Context, bounds Rect) {
		drawFittedText(ctx, bounds, text, textColor(ctx), true)
	}
}

// LeadingTextView draws text at the top-left of its bounds, truncated to fit.
func LeadingTextView(text string) View {
	return func(ctx *Context, bounds Rect) {
		drawFittedText(ctx, bounds, text, textColor(ctx), false)
	}
}

// HeaderTextView draws text in the header text color.
func HeaderTextView(text string) View {
	return func(ctx *Context, bounds Rect) {
		drawFittedText(ctx, bounds, text, headerTextColor(ctx), true)
	}
}

// LabelView draws a Label's text as a header item.
func LabelView(l Label) View {
	return HeaderTextView(l.Text)
}

// BoxView fills its bounds with the cell color, inset by the cell padding,
// and draws text at the top-left.
func BoxView(text string) View {
	return ColorBoxView(text, 0)
}

// ColorBoxView is BoxView with an explicit fill. A zero color uses the
// style's cell color.
func ColorBoxView(text string, color uint32) View {
	return func(ctx *Context, bounds Rect) {
		if color == 0 {
			color = ctx.style.CellColor
		}
		pad := ctx.style.CellPadding
		inner := bounds.Inset(pad)
		if inner.Empty() {
			return
		}
		ctx.DrawList.AddRect(inner.X, inner.Y, inner.W, inner.H, color)
		drawFittedText(ctx, inner.Inset(pad), text, textColor(ctx), false)
	}
}

// Stack draws views on top of each other in the same bounds.
func Stack(views ...View) View {
	return func(ctx *Context, bounds Rect) {
		for _, v := range views {
			if v != nil {
				v(ctx, bounds)
			}
		}
	}
}

func textColor(ctx *Context) uint32 { return ctx.style.TextColor }

// headerTextColor falls back to the body text colour when the style sets
// no header colour.
func headerTextColor(ctx *Context) uint32 {
	if c := ctx.style.HeaderTextColor; c != 0 {
		return c
	}
	return ctx.style.TextColor
}

// drawFittedText draws as many leading runes of text as fit in bounds.
func drawFittedText(ctx *Context, bounds Rect, text string, color uint32, centered bool) {
	if text == "" || bounds.H < ctx.LineHeight() {
		return
	}
	text = fitText(text, bounds.W, ctx.style.CharWidth*ctx.style.FontScale)
	if text == "" {
		return
	}
	x, y := bounds.X, bounds.Y
	if centered {
		size := ctx.MeasureText(text)
		x += (bounds.W - size.X) / 2
		y += (bounds.H - size.Y) / 2
	}
	ctx.AddText(x, y, text, color)
}

// fitText truncates text to at most maxWidth pixels of cellWidth-wide cells.
func fitText(text string, maxWidth, cellWidth float32) string {
	if cellWidth <= 0 {
		return ""
	}
	budget := int(maxWidth / cellWidth)
	used := 0
	for i, r := range text {
		used += runeCells(r)
		if used > budget {
			return text[:i]
		}
	}
	return text
}
