package xytable

// GridPlan is the number of dividers per axis and whether each axis is drawn.
type GridPlan struct {
	Horizontal     int // Dividers between rows
	Vertical       int // Dividers between columns
	DrawHorizontal bool
	DrawVertical   bool
}

// PlanGrid computes divider counts. There is one horizontal divider per
// row. Centered column headers label the span between two dividers, so the
// last column gets no trailing divider; otherwise every column gets one.
func PlanGrid(rowCount, columnCount int, cfg *LayoutConfig) GridPlan {
	rowCount = max(rowCount, 0)
	columnCount = max(columnCount, 0)

	vertical := columnCount
	if cfg.ColumnHeaderAlignment() == ColumnCentered {
		vertical = max(columnCount-1, 0)
	}
	return GridPlan{
		Horizontal:     rowCount,
		Vertical:       vertical,
		DrawHorizontal: cfg.GridLines().Has(GridRows),
		DrawVertical:   cfg.GridLines().Has(GridColumns),
	}
}

// Segment is a divider line in content coordinates.
type Segment struct {
	From, To Vec2
}

// Segments returns the dividers to draw. Horizontal divider i sits at
// y = i*rowPitch and vertical divider i at x = (i+1)*columnPitch; both span
// the whole content.
func (p GridPlan) Segments(rowPitch, columnPitch float32, contentSize Vec2) (horizontal, vertical []Segment) {
	if p.DrawHorizontal {
		horizontal = make([]Segment, p.Horizontal)
		for i := range horizontal {
			y := float32(i) * rowPitch
			horizontal[i] = Segment{From: Vec2{Y: y}, To: Vec2{X: contentSize.X, Y: y}}
		}
	}
	if p.DrawVertical {
		vertical = make([]Segment, p.Vertical)
		for i := range vertical {
			x := float32(i+1) * columnPitch
			vertical[i] = Segment{From: Vec2{X: x}, To: Vec2{X: x, Y: contentSize.Y}}
		}
	}
	return horizontal, vertical
}

// visibleDividers returns the dividers of segs, divider i at lead+i*pitch,
// that can fall inside a viewport of the given length displaced by offset.
func visibleDividers(segs []Segment, pitch, lead, offset, viewport float32) []Segment {
	if len(segs) == 0 || pitch <= 0 {
		// Dividers with no pitch all coincide.
		return segs[:min(len(segs), 1)]
	}
	first, last := Span{Count: len(segs), Pitch: pitch, Lead: lead}.Visible(offset, viewport)
	if first == last {
		return nil
	}
	// A divider on the viewport's far edge starts the next, unseen item.
	return segs[first:min(last+1, len(segs))]
}
