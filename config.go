package xytable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when a configuration value or key is not
// recognized.
var ErrUnknownOption = errors.New("unknown layout option")

// HeaderPosition places the row header strip relative to the body.
type HeaderPosition uint8

const (
	HeaderLeading  HeaderPosition = iota // Row header left of the body
	HeaderTrailing                       // Row header right of the body
)

// GridLines is a set of divider axes.
type GridLines uint8

const (
	GridRows    GridLines = 1 << iota // Horizontal dividers between rows
	GridColumns                       // Vertical dividers between columns

	GridNone GridLines = 0
	GridAll            = GridRows | GridColumns
)

// Has reports whether all flags in f are set.
func (g GridLines) Has(f GridLines) bool { return g&f == f }

// PriorityAxis selects how lines are laid out in the body.
type PriorityAxis uint8

const (
	ColumnMajor PriorityAxis = iota // Each line is a column strip
	RowMajor                        // Each line is a row strip
)

// RowAlignment anchors row header items against the body.
type RowAlignment uint8

const (
	RowCentered RowAlignment = iota // Label the boundary between two rows
	RowLeading                      // Label the top edge of a row
)

// ColumnAlignment anchors column header items against the body.
type ColumnAlignment uint8

const (
	ColumnCentered ColumnAlignment = iota // Label the span between two dividers
	ColumnTrailing                        // Label a column anchored at a divider
)

// ConfigField names a LayoutConfig field in change notifications.
type ConfigField uint8

const (
	FieldHeaderPosition ConfigField = iota
	FieldGridLines
	FieldPriorityAxis
	FieldRowHeaderAlignment
	FieldColumnHeaderAlignment
	FieldCorrectionOffset
)

var fieldNames = [...]string{
	FieldHeaderPosition:        "header_position",
	FieldGridLines:             "grid_lines",
	FieldPriorityAxis:          "priority_axis",
	FieldRowHeaderAlignment:    "row_header_alignment",
	FieldColumnHeaderAlignment: "column_header_alignment",
	FieldCorrectionOffset:      "correction_offset",
}

func (f ConfigField) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("ConfigField(%d)", f)
}

// ConfigListener is called after a LayoutConfig field changed.
type ConfigListener func(cfg *LayoutConfig, field ConfigField)

// LayoutConfig holds the options that affect table geometry. It is shared
// by reference between the table and its owner; only the owner mutates it.
// Setters return the config for chaining and notify listeners synchronously
// when the value actually changes.
//
//	cfg := xytable.NewLayoutConfig().
//	    SetGridLines(xytable.GridRows).
//	    SetRowHeaderAlignment(xytable.RowLeading).
//	    SetCorrectionOffset(12)
type LayoutConfig struct {
	headerPosition        HeaderPosition
	gridLines             GridLines
	priorityAxis          PriorityAxis
	rowHeaderAlignment    RowAlignment
	columnHeaderAlignment ColumnAlignment
	correctionOffset      float32

	listeners []listenerEntry
	nextToken uint64
}

type listenerEntry struct {
	token uint64
	fn    ConfigListener
}

// NewLayoutConfig returns a config with the default values.
func NewLayoutConfig() *LayoutConfig {
	return &LayoutConfig{
		headerPosition:        HeaderLeading,
		gridLines:             GridAll,
		priorityAxis:          ColumnMajor,
		rowHeaderAlignment:    RowCentered,
		columnHeaderAlignment: ColumnCentered,
	}
}

// HeaderPosition returns which side of the body the row header sits on.
func (c *LayoutConfig) HeaderPosition() HeaderPosition { return c.headerPosition }

// GridLines returns the divider axes drawn over the body.
func (c *LayoutConfig) GridLines() GridLines { return c.gridLines }

// PriorityAxis returns whether lines are columns or rows.
func (c *LayoutConfig) PriorityAxis() PriorityAxis { return c.priorityAxis }

// RowHeaderAlignment returns how row labels sit against the body rows.
func (c *LayoutConfig) RowHeaderAlignment() RowAlignment { return c.rowHeaderAlignment }

// ColumnHeaderAlignment returns how column labels sit against the body
// columns.
func (c *LayoutConfig) ColumnHeaderAlignment() ColumnAlignment { return c.columnHeaderAlignment }

// CorrectionOffset returns the upward shift applied to leading row labels.
func (c *LayoutConfig) CorrectionOffset() float32 { return c.correctionOffset }

// SetHeaderPosition places the row header left or right of the body.
func (c *LayoutConfig) SetHeaderPosition(p HeaderPosition) *LayoutConfig {
	if c.headerPosition != p {
		c.headerPosition = p
		c.notify(FieldHeaderPosition)
	}
	return c
}

// SetGridLines selects the divider axes drawn over the body.
func (c *LayoutConfig) SetGridLines(g GridLines) *LayoutConfig {
	if c.gridLines != g {
		c.gridLines = g
		c.notify(FieldGridLines)
	}
	return c
}

// SetPriorityAxis selects whether lines are columns or rows.
func (c *LayoutConfig) SetPriorityAxis(a PriorityAxis) *LayoutConfig {
	if c.priorityAxis != a {
		c.priorityAxis = a
		c.notify(FieldPriorityAxis)
	}
	return c
}

// SetRowHeaderAlignment sets how row labels sit against the body rows.
func (c *LayoutConfig) SetRowHeaderAlignment(a RowAlignment) *LayoutConfig {
	if c.rowHeaderAlignment != a {
		c.rowHeaderAlignment = a
		c.notify(FieldRowHeaderAlignment)
	}
	return c
}

// SetColumnHeaderAlignment sets how column labels sit against the body
// columns. It also decides whether the last vertical divider is drawn.
func (c *LayoutConfig) SetColumnHeaderAlignment(a ColumnAlignment) *LayoutConfig {
	if c.columnHeaderAlignment != a {
		c.columnHeaderAlignment = a
		c.notify(FieldColumnHeaderAlignment)
	}
	return c
}

// SetHeaderAlignment sets both header alignments.
func (c *LayoutConfig) SetHeaderAlignment(row RowAlignment, column ColumnAlignment) *LayoutConfig {
	return c.SetRowHeaderAlignment(row).SetColumnHeaderAlignment(column)
}

// SetCorrectionOffset sets the upward shift of leading row labels.
func (c *LayoutConfig) SetCorrectionOffset(v float32) *LayoutConfig {
	if c.correctionOffset != v {
		c.correctionOffset = v
		c.notify(FieldCorrectionOffset)
	}
	return c
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Calling the returned function more than once is a no-op.
func (c *LayoutConfig) Subscribe(fn ConfigListener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	c.nextToken++
	token := c.nextToken
	c.listeners = append(c.listeners, listenerEntry{token: token, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.token == token {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *LayoutConfig) notify(field ConfigField) {
	if verbose() {
		logger.Debug("layout config changed", "field", field.String(), "listeners", len(c.listeners))
	}
	// Listeners may unsubscribe while being notified.
	listeners := append([]listenerEntry(nil), c.listeners...)
	for _, l := range listeners {
		l.fn(c, field)
	}
}

// ConfigValues is a plain copy of a LayoutConfig's fields, as read from
// and written to configuration files.
type ConfigValues struct {
	HeaderPosition        HeaderPosition  `toml:"header_position"`
	GridLines             []string        `toml:"grid_lines"`
	PriorityAxis          PriorityAxis    `toml:"priority_axis"`
	RowHeaderAlignment    RowAlignment    `toml:"row_header_alignment"`
	ColumnHeaderAlignment ColumnAlignment `toml:"column_header_alignment"`
	CorrectionOffset      float32         `toml:"correction_offset"`
}

// Snapshot returns the current field values.
func (c *LayoutConfig) Snapshot() ConfigValues {
	return ConfigValues{
		HeaderPosition:        c.headerPosition,
		GridLines:             c.gridLines.Names(),
		PriorityAxis:          c.priorityAxis,
		RowHeaderAlignment:    c.rowHeaderAlignment,
		ColumnHeaderAlignment: c.columnHeaderAlignment,
		CorrectionOffset:      c.correctionOffset,
	}
}

// Apply copies v into the config, notifying listeners once per changed
// field.
func (c *LayoutConfig) Apply(v ConfigValues) error {
	grid, err := ParseGridLines(v.GridLines)
	if err != nil {
		return err
	}
	c.SetHeaderPosition(v.HeaderPosition).
		SetGridLines(grid).
		SetPriorityAxis(v.PriorityAxis).
		SetRowHeaderAlignment(v.RowHeaderAlignment).
		SetColumnHeaderAlignment(v.ColumnHeaderAlignment).
		SetCorrectionOffset(v.CorrectionOffset)
	return nil
}

// --- Text forms ---

func (p HeaderPosition) String() string {
	if p == HeaderTrailing {
		return "trailing"
	}
	return "leading"
}

// MarshalText implements encoding.TextMarshaler.
func (p HeaderPosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText accepts "leading" (or "left") and "trailing" (or "right").
func (p *HeaderPosition) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "leading", "left":
		*p = HeaderLeading
	case "trailing", "right":
		*p = HeaderTrailing
	default:
		return fmt.Errorf("header position %q: %w", b, ErrUnknownOption)
	}
	return nil
}

// Names returns the set flags as "rows" and "columns".
func (g GridLines) Names() []string {
	names := []string{}
	if g.Has(GridRows) {
		names = append(names, "rows")
	}
	if g.Has(GridColumns) {
		names = append(names, "columns")
	}
	return names
}

func (g GridLines) String() string {
	if g == GridNone {
		return "none"
	}
	return strings.Join(g.Names(), "|")
}

// ParseGridLines builds a flag set from names such as "rows" and "columns".
func ParseGridLines(names []string) (GridLines, error) {
	var g GridLines
	for _, n := range names {
		switch strings.ToLower(n) {
		case "rows", "row":
			g |= GridRows
		case "columns", "column":
			g |= GridColumns
		default:
			return GridNone, fmt.Errorf("grid lines %q: %w", n, ErrUnknownOption)
		}
	}
	return g, nil
}

func (a PriorityAxis) String() string {
	if a == RowMajor {
		return "row"
	}
	return "column"
}

// MarshalText implements encoding.TextMarshaler.
func (a PriorityAxis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts "column" and "row", with or without "-major".
func (a *PriorityAxis) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "column", "columns", "column-major":
		*a = ColumnMajor
	case "row", "rows", "row-major":
		*a = RowMajor
	default:
		return fmt.Errorf("priority axis %q: %w", b, ErrUnknownOption)
	}
	return nil
}

func (a RowAlignment) String() string {
	if a == RowLeading {
		return "leading"
	}
	return "center"
}

// MarshalText implements encoding.TextMarshaler.
func (a RowAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts "center" and "leading" (or "top").
func (a *RowAlignment) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "center", "centered":
		*a = RowCentered
	case "leading", "top":
		*a = RowLeading
	default:
		return fmt.Errorf("row header alignment %q: %w", b, ErrUnknownOption)
	}
	return nil
}

func (a ColumnAlignment) String() string {
	if a == ColumnTrailing {
		return "trailing"
	}
	return "center"
}

// MarshalText implements encoding.TextMarshaler.
func (a ColumnAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText accepts "center" and "trailing" (or "right", "leading").
func (a *ColumnAlignment) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "center", "centered":
		*a = ColumnCentered
	case "trailing", "right", "leading":
		*a = ColumnTrailing
	default:
		return fmt.Errorf("column header alignment %q: %w", b, ErrUnknownOption)
	}
	return nil
}
