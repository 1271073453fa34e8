package xytable

import "github.com/google/uuid"

// Identifiable is implemented by header items. Identities must be stable
// for the item's lifetime and unique within a header.
type Identifiable interface {
	Identity() uuid.UUID
}

// Header describes one axis's header strip.
type Header[T Identifiable] struct {
	// Size is the primary dimension: the width of one column for the column
	// header, the height of one row for the row header.
	Size float32
	// CrossSize is the strip's thickness.
	CrossSize float32
	// Spacing is the gap between the strip and the body.
	Spacing float32

	Items []T
}

// ItemCount returns the number of header items.
func (h Header[T]) ItemCount() int { return len(h.Items) }

// IndexOf returns the index of the item with the given identity, or -1.
func (h Header[T]) IndexOf(id uuid.UUID) int {
	for i, item := range h.Items {
		if item.Identity() == id {
			return i
		}
	}
	return -1
}

// Lookup returns the item with the given identity.
func (h Header[T]) Lookup(id uuid.UUID) (T, bool) {
	if i := h.IndexOf(id); i >= 0 {
		return h.Items[i], true
	}
	var zero T
	return zero, false
}

// Label is a ready-made header item carrying display text.
type Label struct {
	ID   uuid.UUID
	Text string
}

// NewLabel returns a label with a fresh identity.
func NewLabel(text string) Label {
	return Label{ID: uuid.New(), Text: text}
}

// Identity implements Identifiable.
func (l Label) Identity() uuid.UUID { return l.ID }

func (l Label) String() string { return l.Text }

// CellPlacement places one cell inside its line. Offset is measured from the
// line start along the line axis; placements may overlap or leave gaps.
type CellPlacement[P any] struct {
	ID      uuid.UUID
	Length  float32
	Offset  float32
	Payload P
}

// NewCell returns a placement with a fresh identity.
func NewCell[P any](offset, length float32, payload P) CellPlacement[P] {
	return CellPlacement[P]{ID: uuid.New(), Length: length, Offset: offset, Payload: payload}
}

// Extent returns the length used for layout. Negative lengths count as zero.
func (c CellPlacement[P]) Extent() float32 {
	return max(c.Length, 0)
}

// End returns the position just past the cell along the line axis.
func (c CellPlacement[P]) End() float32 {
	return c.Offset + c.Extent()
}

// Line is one row or one column of cells. HeaderID refers to the header
// item labelling the line; it is only ever looked up, never followed.
type Line[P any] struct {
	ID       uuid.UUID
	HeaderID uuid.UUID
	Cells    []CellPlacement[P]
}

// NewLine returns an empty line labelled by the header item headerID.
func NewLine[P any](headerID uuid.UUID, cells ...CellPlacement[P]) Line[P] {
	return Line[P]{ID: uuid.New(), HeaderID: headerID, Cells: cells}
}

// CellCount returns the number of cells in the line.
func (l Line[P]) CellCount() int { return len(l.Cells) }

// Append adds a cell with a fresh identity and returns it.
func (l *Line[P]) Append(offset, length float32, payload P) CellPlacement[P] {
	c := NewCell(offset, length, payload)
	l.Cells = append(l.Cells, c)
	return c
}

// LineCount returns the number of lines.
func LineCount[P any](lines []Line[P]) int { return len(lines) }
