package xytable

// TableLayout is a snapshot of where every part of a table goes for one
// frame. Item, line and cell frames are relative to their region's content
// origin; strip and body rects are in screen coordinates.
type TableLayout struct {
	RowStrip    Rect
	ColumnStrip Rect
	Body        Rect

	// Content sizes of the three scroll regions.
	ContentSize        Vec2
	RowStripContent    Vec2
	ColumnStripContent Vec2

	RowItems    []Rect // One per row header item
	ColumnItems []Rect // One per column header item
	Lines       []Rect // One strip per line
	Cells       [][]Rect

	// LineHeaders maps each line to the index of its header item on the
	// line axis, or -1 when HeaderID does not resolve.
	LineHeaders []int
	Orphans     []int

	// Item runs of the two header strips and of the lines across the body.
	RowSpan    Span
	ColumnSpan Span
	LineSpan   Span

	Grid               GridPlan
	HorizontalDividers []Segment
	VerticalDividers   []Segment

	BodyOffset        Vec2
	RowTranslation    Vec2
	ColumnTranslation Vec2
}

// staticLayout is the part of a TableLayout that only depends on data and
// config, cached between frames.
type staticLayout struct {
	contentSize        Vec2
	rowStripContent    Vec2
	columnStripContent Vec2
	rowSpacer          float32

	rowItems    []Rect
	columnItems []Rect
	lines       []Rect
	cells       [][]Rect
	lineHeaders []int
	orphans     []int

	rowSpan    Span
	columnSpan Span
	lineSpan   Span

	grid       GridPlan
	horizontal []Segment
	vertical   []Segment
}

// buildStatic lays out the data in content coordinates.
func (t *Table[C, R, P]) buildStatic() *staticLayout {
	cw := max(t.columns.Size, 0)
	rh := max(t.rows.Size, 0)
	columnMajor := t.cfg.PriorityAxis() == ColumnMajor

	s := &staticLayout{
		rowItems:    make([]Rect, t.rows.ItemCount()),
		columnItems: make([]Rect, t.columns.ItemCount()),
		lines:       make([]Rect, len(t.lines)),
		cells:       make([][]Rect, len(t.lines)),
		lineHeaders: make([]int, len(t.lines)),
	}

	// The row strip starts below a spacer as tall as the column strip so a
	// row label shifted up by the correction stays visible.
	s.rowSpacer = t.columns.CrossSize + t.columns.Spacing
	for i := range s.rowItems {
		s.rowItems[i] = Rect{X: 0, Y: s.rowSpacer + float32(i)*rh, W: t.rows.CrossSize, H: rh}
	}
	for i := range s.columnItems {
		s.columnItems[i] = Rect{X: float32(i) * cw, Y: 0, W: cw, H: t.columns.CrossSize}
	}

	// Content spans every header item and every placed cell.
	extent := Vec2{
		X: float32(t.columns.ItemCount()) * cw,
		Y: float32(t.rows.ItemCount()) * rh,
	}
	for i, line := range t.lines {
		var strip Rect
		if columnMajor {
			strip = Rect{X: float32(i) * cw, W: cw}
			s.lineHeaders[i] = t.columns.IndexOf(line.HeaderID)
		} else {
			strip = Rect{Y: float32(i) * rh, H: rh}
			s.lineHeaders[i] = t.rows.IndexOf(line.HeaderID)
		}
		if s.lineHeaders[i] < 0 {
			s.orphans = append(s.orphans, i)
		}

		frames := make([]Rect, len(line.Cells))
		for j, cell := range line.Cells {
			if columnMajor {
				frames[j] = Rect{X: strip.X, Y: cell.Offset, W: cw, H: cell.Extent()}
				extent.Y = max(extent.Y, cell.End())
			} else {
				frames[j] = Rect{X: cell.Offset, Y: strip.Y, W: cell.Extent(), H: rh}
				extent.X = max(extent.X, cell.End())
			}
		}
		s.cells[i] = frames
		s.lines[i] = strip
		if columnMajor {
			extent.X = max(extent.X, strip.X+cw)
		} else {
			extent.Y = max(extent.Y, strip.Y+rh)
		}
	}
	// Strips along the line axis run the full content length.
	for i := range s.lines {
		if columnMajor {
			s.lines[i].H = extent.Y
		} else {
			s.lines[i].W = extent.X
		}
	}

	s.rowSpan = Span{Count: t.rows.ItemCount(), Pitch: rh, Lead: s.rowSpacer}
	s.columnSpan = Span{Count: t.columns.ItemCount(), Pitch: cw}
	s.lineSpan = Span{Count: len(t.lines), Pitch: rh}
	if columnMajor {
		s.lineSpan.Pitch = cw
	}

	s.contentSize = extent
	s.rowStripContent = Vec2{X: t.rows.CrossSize, Y: s.rowSpacer + extent.Y}
	s.columnStripContent = Vec2{X: extent.X, Y: t.columns.CrossSize}

	s.grid = PlanGrid(t.rows.ItemCount(), t.columns.ItemCount(), t.cfg)
	s.horizontal, s.vertical = s.grid.Segments(rh, cw, extent)

	if verbose() {
		logger.Debug("table layout rebuilt",
			"table", t.id,
			"lines", len(t.lines),
			"rows", t.rows.ItemCount(),
			"columns", t.columns.ItemCount(),
			"orphans", len(s.orphans),
			"content_w", extent.X,
			"content_h", extent.Y)
	}
	return s
}

// static returns the cached static layout, rebuilding it when stale.
func (t *Table[C, R, P]) static() *staticLayout {
	if t.cache == nil {
		t.cache = t.buildStatic()
	}
	return t.cache
}

// Layout computes the table's layout inside the rectangle at origin with
// the given size, using the last observed body offset. It draws nothing.
func (t *Table[C, R, P]) Layout(origin, size Vec2) TableLayout {
	s := t.static()

	rowW := max(t.rows.CrossSize, 0)
	colH := max(t.columns.CrossSize, 0)
	bodyW := max(0, size.X-rowW-t.rows.Spacing)
	bodyH := max(0, size.Y-colH-t.columns.Spacing)

	bodyX := origin.X + rowW + t.rows.Spacing
	rowX := origin.X
	if t.cfg.HeaderPosition() == HeaderTrailing {
		bodyX = origin.X
		rowX = origin.X + bodyW + t.rows.Spacing
	}

	return TableLayout{
		RowStrip:    Rect{X: rowX, Y: origin.Y, W: rowW, H: size.Y},
		ColumnStrip: Rect{X: bodyX, Y: origin.Y, W: bodyW, H: colH},
		Body:        Rect{X: bodyX, Y: origin.Y + colH + t.columns.Spacing, W: bodyW, H: bodyH},

		ContentSize:        s.contentSize,
		RowStripContent:    s.rowStripContent,
		ColumnStripContent: s.columnStripContent,

		RowItems:    s.rowItems,
		ColumnItems: s.columnItems,
		Lines:       s.lines,
		Cells:       s.cells,
		LineHeaders: s.lineHeaders,
		Orphans:     s.orphans,

		RowSpan:    s.rowSpan,
		ColumnSpan: s.columnSpan,
		LineSpan:   s.lineSpan,

		Grid:               s.grid,
		HorizontalDividers: s.horizontal,
		VerticalDividers:   s.vertical,

		BodyOffset:        t.sync.Offset(),
		RowTranslation:    t.sync.RowHeader(),
		ColumnTranslation: t.sync.ColumnHeader(),
	}
}
