package xytable

import (
	"github.com/google/uuid"
)

// View is a deferred draw of one table element into bounds.
type View func(ctx *Context, bounds Rect)

// TableState is the lifecycle state of a Table.
type TableState uint8

const (
	StateUninitialized TableState = iota // No data supplied yet
	StateReady                           // SetData has been called
)

func (s TableState) String() string {
	if s == StateReady {
		return "ready"
	}
	return "uninitialized"
}

// Table composes a scrollable body of cells with a row header strip and a
// column header strip that follow the body's offset. C and R are the column
// and row header item types, P the cell payload.
//
// The body is the only scroll source. Both header strips ignore input and
// get their offset from the body in the same frame the body moved.
//
//	t := xytable.NewTable[xytable.Label, xytable.Label, string]("timetable", cfg).
//	    SetData(columns, rows, lines).
//	    ColumnHeaderLabel(func(c xytable.Label) xytable.View { return xytable.TextView(c.Text) }).
//	    CellLabel(func(s string) xytable.View { return xytable.BoxView(s) })
//	t.Draw(ctx)
type Table[C, R Identifiable, P any] struct {
	id          string
	cfg         *LayoutConfig
	unsubscribe func()
	sync        *Synchronizer

	state   TableState
	columns Header[C]
	rows    Header[R]
	lines   []Line[P]

	rowLabel    func(R) View
	columnLabel func(C) View
	cellLabel   func(P) View

	cache         *staticLayout
	pendingScroll *Vec2
	pendingReveal *reveal
}

// reveal is a request to bring one row or column into view.
type reveal struct {
	row   bool
	index int
}

// NewTable returns an uninitialized table bound to cfg. A nil cfg gets a
// fresh default config. id keeps scroll state apart between tables.
func NewTable[C, R Identifiable, P any](id string, cfg *LayoutConfig) *Table[C, R, P] {
	if cfg == nil {
		cfg = NewLayoutConfig()
	}
	t := &Table[C, R, P]{
		id:   id,
		cfg:  cfg,
		sync: NewSynchronizer(cfg),
	}
	t.unsubscribe = cfg.Subscribe(func(_ *LayoutConfig, field ConfigField) {
		logger.Debug("table config changed", "table", t.id, "field", field.String())
		t.Invalidate()
	})
	return t
}

// Close detaches the table from its config.
func (t *Table[C, R, P]) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

// Config returns the shared layout config.
func (t *Table[C, R, P]) Config() *LayoutConfig { return t.cfg }

// State returns the lifecycle state.
func (t *Table[C, R, P]) State() TableState { return t.state }

// Columns returns the column header.
func (t *Table[C, R, P]) Columns() Header[C] { return t.columns }

// Rows returns the row header.
func (t *Table[C, R, P]) Rows() Header[R] { return t.rows }

// Lines returns the lines in layout order.
func (t *Table[C, R, P]) Lines() []Line[P] { return t.lines }

// SetData replaces the table's data and makes it ready. Empty collections
// are valid and draw empty regions.
func (t *Table[C, R, P]) SetData(columns Header[C], rows Header[R], lines []Line[P]) *Table[C, R, P] {
	t.columns = columns
	t.rows = rows
	t.lines = lines
	if t.state != StateReady {
		t.state = StateReady
		logger.Debug("table state changed", "table", t.id, "state", t.state.String())
	}
	t.Invalidate()
	return t
}

// AppendLine adds a line after the existing ones.
func (t *Table[C, R, P]) AppendLine(line Line[P]) *Table[C, R, P] {
	t.lines = append(t.lines, line)
	t.Invalidate()
	return t
}

// RemoveLine removes the line with the given ID and reports whether it
// was present.
func (t *Table[C, R, P]) RemoveLine(id uuid.UUID) bool {
	for i, line := range t.lines {
		if line.ID == id {
			t.lines = append(t.lines[:i:i], t.lines[i+1:]...)
			t.Invalidate()
			return true
		}
	}
	return false
}

// Invalidate drops the cached layout. Call it after mutating header items
// or cells in place.
func (t *Table[C, R, P]) Invalidate() {
	t.cache = nil
}

// Offset returns the last offset reported by the body.
func (t *Table[C, R, P]) Offset() Vec2 { return t.sync.Offset() }

// ScrollTo requests a body offset. It is applied, clamped to the content,
// the next time the table is drawn.
func (t *Table[C, R, P]) ScrollTo(offset Vec2) *Table[C, R, P] {
	t.pendingScroll = &offset
	return t
}

// RevealRow scrolls the body on the next draw just far enough to show
// row index in full.
func (t *Table[C, R, P]) RevealRow(index int) *Table[C, R, P] {
	t.pendingReveal = &reveal{row: true, index: index}
	return t
}

// RevealColumn scrolls the body on the next draw just far enough to show
// column index in full.
func (t *Table[C, R, P]) RevealColumn(index int) *Table[C, R, P] {
	t.pendingReveal = &reveal{index: index}
	return t
}

// --- Fluent configuration ---

// HeaderPosition places the row header on the shared config.
func (t *Table[C, R, P]) HeaderPosition(p HeaderPosition) *Table[C, R, P] {
	t.cfg.SetHeaderPosition(p)
	return t
}

// GridLines selects the drawn divider axes on the shared config.
func (t *Table[C, R, P]) GridLines(g GridLines) *Table[C, R, P] {
	t.cfg.SetGridLines(g)
	return t
}

// Priority selects the line axis on the shared config.
func (t *Table[C, R, P]) Priority(a PriorityAxis) *Table[C, R, P] {
	t.cfg.SetPriorityAxis(a)
	return t
}

// RowHeaderAlignment sets the row label alignment on the shared config.
func (t *Table[C, R, P]) RowHeaderAlignment(a RowAlignment) *Table[C, R, P] {
	t.cfg.SetRowHeaderAlignment(a)
	return t
}

// ColumnHeaderAlignment sets the column label alignment on the shared
// config.
func (t *Table[C, R, P]) ColumnHeaderAlignment(a ColumnAlignment) *Table[C, R, P] {
	t.cfg.SetColumnHeaderAlignment(a)
	return t
}

// HeaderAlignment sets both label alignments on the shared config.
func (t *Table[C, R, P]) HeaderAlignment(row RowAlignment, column ColumnAlignment) *Table[C, R, P] {
	t.cfg.SetHeaderAlignment(row, column)
	return t
}

// CorrectionOffset sets the leading row label shift on the shared config.
func (t *Table[C, R, P]) CorrectionOffset(v float32) *Table[C, R, P] {
	t.cfg.SetCorrectionOffset(v)
	return t
}

// RowHeaderLabel sets the row header renderer. nil renders nothing.
func (t *Table[C, R, P]) RowHeaderLabel(fn func(R) View) *Table[C, R, P] {
	t.rowLabel = fn
	return t
}

// ColumnHeaderLabel sets the column header renderer. nil renders nothing.
func (t *Table[C, R, P]) ColumnHeaderLabel(fn func(C) View) *Table[C, R, P] {
	t.columnLabel = fn
	return t
}

// CellLabel sets the cell renderer. nil renders nothing.
func (t *Table[C, R, P]) CellLabel(fn func(P) View) *Table[C, R, P] {
	t.cellLabel = fn
	return t
}

// --- Drawing ---

// Draw draws the table at the cursor, filling the space available in the
// current layout.
func (t *Table[C, R, P]) Draw(ctx *Context) {
	pos := ctx.ItemPos()
	size := ctx.AvailableSize()
	t.DrawIn(ctx, Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y})
	ctx.AdvanceCursor(size)
}

// DrawIn draws the table inside bounds. The body handles input first and
// reports its offset, then the headers are drawn at the translations
// derived from that offset.
func (t *Table[C, R, P]) DrawIn(ctx *Context, bounds Rect) {
	if t.state != StateReady {
		return
	}

	ctx.PushID(t.id)
	defer ctx.PopID()

	lay := t.Layout(bounds.Min(), bounds.Size())
	body := ctx.BeginScrollRegion("body", lay.Body, lay.ContentSize,
		WithOffsetObserver(t.sync.Observe),
		WithBackground(ctx.style.BodyBgColor))
	if t.pendingScroll != nil {
		body.ScrollTo(*t.pendingScroll)
		t.pendingScroll = nil
	}
	if t.pendingReveal != nil {
		body.ScrollTo(revealOffset(*t.pendingReveal, lay, body))
		t.pendingReveal = nil
	}

	// The body has reported this frame's offset; refresh the translations.
	lay.BodyOffset = t.sync.Offset()
	lay.RowTranslation = t.sync.RowHeader()
	lay.ColumnTranslation = t.sync.ColumnHeader()

	t.drawBody(ctx, body, lay)
	body.End()

	t.drawColumnStrip(ctx, lay)
	t.drawRowStrip(ctx, lay)
}

func (t *Table[C, R, P]) drawBody(ctx *Context, body *ScrollRegion, lay TableLayout) {
	origin := body.Origin()
	viewport := body.Viewport()
	style := ctx.style
	dl := ctx.DrawList

	offset := body.Offset()
	rowPitch, columnPitch := lay.RowSpan.Pitch, lay.ColumnSpan.Pitch
	dividers := [][]Segment{
		visibleDividers(lay.HorizontalDividers, rowPitch, 0, offset.Y, viewport.H),
		visibleDividers(lay.VerticalDividers, columnPitch, columnPitch, offset.X, viewport.W),
	}
	for _, segs := range dividers {
		for _, seg := range segs {
			dl.AddLine(origin.X+seg.From.X, origin.Y+seg.From.Y, origin.X+seg.To.X, origin.Y+seg.To.Y,
				style.GridLineColor, style.GridLineWidth)
		}
	}

	if t.cellLabel == nil {
		return
	}
	along, length := offset.X, viewport.W
	if t.cfg.PriorityAxis() == RowMajor {
		along, length = offset.Y, viewport.H
	}
	first, last := lay.LineSpan.Visible(along, length)
	for i := first; i < last; i++ {
		for j, cell := range t.lines[i].Cells {
			frame := lay.Cells[i][j].Translate(origin)
			if frame.Empty() || !frame.Intersects(viewport) {
				continue
			}
			if view := t.cellLabel(cell.Payload); view != nil {
				view(ctx, frame)
			}
		}
	}
}

func (t *Table[C, R, P]) drawColumnStrip(ctx *Context, lay TableLayout) {
	drawStripBackground(ctx, lay.ColumnStrip)

	r := ctx.BeginScrollRegion("columns", lay.ColumnStrip, lay.ColumnStripContent,
		WithInputDisabled(), ShowScrollbar(ScrollbarNever))
	r.SetOffset(lay.ColumnTranslation)
	if t.columnLabel != nil {
		origin := r.Origin()
		first, last := lay.ColumnSpan.Visible(lay.ColumnTranslation.X, lay.ColumnStrip.W)
		for i := first; i < last; i++ {
			frame := lay.ColumnItems[i].Translate(origin)
			if view := t.columnLabel(t.columns.Items[i]); view != nil {
				view(ctx, frame)
			}
		}
	}
	r.End()
}

func (t *Table[C, R, P]) drawRowStrip(ctx *Context, lay TableLayout) {
	drawStripBackground(ctx, lay.RowStrip)

	r := ctx.BeginScrollRegion("rows", lay.RowStrip, lay.RowStripContent,
		WithInputDisabled(), ShowScrollbar(ScrollbarNever))
	r.SetOffset(lay.RowTranslation)
	if t.rowLabel != nil {
		origin := r.Origin()
		first, last := lay.RowSpan.Visible(lay.RowTranslation.Y, lay.RowStrip.H)
		for i := first; i < last; i++ {
			frame := lay.RowItems[i].Translate(origin)
			if view := t.rowLabel(t.rows.Items[i]); view != nil {
				view(ctx, frame)
			}
		}
	}
	r.End()
}

// revealOffset returns the body offset that shows the requested row or
// column. Body rows start at the top of the content, without the row
// strip's spacer.
func revealOffset(r reveal, lay TableLayout, body *ScrollRegion) Vec2 {
	offset := body.Offset()
	viewport := body.Viewport()
	if r.row {
		rows := Span{Count: lay.RowSpan.Count, Pitch: lay.RowSpan.Pitch}
		offset.Y = rows.Reveal(r.index, offset.Y, viewport.H)
	} else {
		offset.X = lay.ColumnSpan.Reveal(r.index, offset.X, viewport.W)
	}
	return offset
}

// drawStripBackground paints a header strip's backdrop with its corners
// cut by the style's rounding.
func drawStripBackground(ctx *Context, r Rect) {
	ctx.DrawList.AddRoundedRect(r.X, r.Y, r.W, r.H, ctx.style.HeaderRounding, ctx.style.HeaderBgColor)
}
