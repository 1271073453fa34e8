package xytable

// RowHeaderTranslation returns the translation of the row header strip for
// the body offset. Centered rows follow the body exactly; leading rows are
// shifted up by the correction offset.
func RowHeaderTranslation(offset Vec2, cfg *LayoutConfig) Vec2 {
	if cfg.RowHeaderAlignment() == RowLeading {
		return Vec2{Y: offset.Y - cfg.CorrectionOffset()}
	}
	return Vec2{Y: offset.Y}
}

// ColumnHeaderTranslation returns the translation of the column header
// strip for the body offset. Alignment never affects it.
func ColumnHeaderTranslation(offset Vec2) Vec2 {
	return Vec2{X: offset.X}
}

// HalfCellCorrection returns half a row height, the correction that lines a
// leading row label up with the top edge of its row.
func HalfCellCorrection[T Identifiable](rowHeader Header[T]) float32 {
	return rowHeader.Size / 2
}

// Synchronizer derives header translations from the body's scroll offset.
// The body is the only writer; Observe records its latest offset and the
// translation getters are pure functions of that offset and the config.
// No clamping is applied.
type Synchronizer struct {
	cfg    *LayoutConfig
	offset Vec2
}

// NewSynchronizer returns a synchronizer reading alignment from cfg.
// The offset starts at (0, 0).
func NewSynchronizer(cfg *LayoutConfig) *Synchronizer {
	return &Synchronizer{cfg: cfg}
}

// Observe records the body offset.
func (s *Synchronizer) Observe(offset Vec2) {
	s.offset = offset
}

// Offset returns the last observed body offset.
func (s *Synchronizer) Offset() Vec2 { return s.offset }

// RowHeader returns the row header translation for the observed offset.
func (s *Synchronizer) RowHeader() Vec2 {
	return RowHeaderTranslation(s.offset, s.cfg)
}

// ColumnHeader returns the column header translation for the observed offset.
func (s *Synchronizer) ColumnHeader() Vec2 {
	return ColumnHeaderTranslation(s.offset)
}

// Translations observes offset and returns both header translations.
func (s *Synchronizer) Translations(offset Vec2) (row, column Vec2) {
	s.Observe(offset)
	return s.RowHeader(), s.ColumnHeader()
}
