package xytable_test

import (
	"testing"

	"github.com/go-theft-auto/xytable"
)

var sampleOffsets = []xytable.Vec2{
	{X: 0, Y: 0},
	{X: -150, Y: -80},
	{X: 35.5, Y: 12.25},
	{X: -1e4, Y: 2e3},
	{X: 0, Y: -0.5},
}

func TestRowHeaderTranslation(t *testing.T) {
	for _, correction := range []float32{0, 12, -7.5, 40} {
		centered := xytable.NewLayoutConfig().SetCorrectionOffset(correction)
		leading := xytable.NewLayoutConfig().
			SetRowHeaderAlignment(xytable.RowLeading).
			SetCorrectionOffset(correction)

		for _, o := range sampleOffsets {
			if got := xytable.RowHeaderTranslation(o, centered); got != (xytable.Vec2{Y: o.Y}) {
				t.Errorf("centered(%v, c=%v) = %v, want (0, %v)", o, correction, got, o.Y)
			}
			want := xytable.Vec2{Y: o.Y - correction}
			if got := xytable.RowHeaderTranslation(o, leading); got != want {
				t.Errorf("leading(%v, c=%v) = %v, want %v", o, correction, got, want)
			}
		}
	}
}

func TestColumnHeaderTranslationIgnoresAlignment(t *testing.T) {
	configs := []*xytable.LayoutConfig{
		xytable.NewLayoutConfig(),
		xytable.NewLayoutConfig().SetColumnHeaderAlignment(xytable.ColumnTrailing),
		xytable.NewLayoutConfig().SetHeaderAlignment(xytable.RowLeading, xytable.ColumnTrailing).SetCorrectionOffset(12),
	}
	for _, cfg := range configs {
		s := xytable.NewSynchronizer(cfg)
		for _, o := range sampleOffsets {
			s.Observe(o)
			if got := s.ColumnHeader(); got != (xytable.Vec2{X: o.X}) {
				t.Errorf("column(%v) = %v, want (%v, 0)", o, got, o.X)
			}
		}
	}
}

func TestSynchronizerDefaultsToZero(t *testing.T) {
	cfg := xytable.NewLayoutConfig()
	s := xytable.NewSynchronizer(cfg)

	if s.Offset() != (xytable.Vec2{}) {
		t.Errorf("Offset = %v, want zero", s.Offset())
	}
	if s.RowHeader() != (xytable.Vec2{}) || s.ColumnHeader() != (xytable.Vec2{}) {
		t.Errorf("headers shifted before any offset: row %v column %v", s.RowHeader(), s.ColumnHeader())
	}
}

func TestSynchronizerScenarioC(t *testing.T) {
	cfg := xytable.NewLayoutConfig().
		SetRowHeaderAlignment(xytable.RowLeading).
		SetCorrectionOffset(12)
	s := xytable.NewSynchronizer(cfg)

	s.Observe(xytable.Vec2{})
	row, column := s.Translations(xytable.Vec2{X: -150, Y: -80})

	if row != (xytable.Vec2{X: 0, Y: -92}) {
		t.Errorf("row = %v, want (0, -92)", row)
	}
	if column != (xytable.Vec2{X: -150, Y: 0}) {
		t.Errorf("column = %v, want (-150, 0)", column)
	}
}

func TestSynchronizerIdempotent(t *testing.T) {
	cfg := xytable.NewLayoutConfig().
		SetRowHeaderAlignment(xytable.RowLeading).
		SetCorrectionOffset(12)
	s := xytable.NewSynchronizer(cfg)

	for _, o := range sampleOffsets {
		row1, col1 := s.Translations(o)
		row2, col2 := s.Translations(o)
		if row1 != row2 || col1 != col2 {
			t.Errorf("offset %v: first (%v, %v) second (%v, %v)", o, row1, col1, row2, col2)
		}
	}
}

func TestSynchronizerFollowsConfigChanges(t *testing.T) {
	cfg := xytable.NewLayoutConfig()
	s := xytable.NewSynchronizer(cfg)
	s.Observe(xytable.Vec2{X: -10, Y: -20})

	if got := s.RowHeader(); got.Y != -20 {
		t.Fatalf("centered row = %v", got)
	}
	cfg.SetRowHeaderAlignment(xytable.RowLeading).SetCorrectionOffset(5)
	if got := s.RowHeader(); got.Y != -25 {
		t.Errorf("leading row = %v, want (0, -25)", got)
	}
}

func TestHalfCellCorrection(t *testing.T) {
	rows := xytable.Header[xytable.Label]{Size: 80, CrossSize: 110}
	if got := xytable.HalfCellCorrection(rows); got != 40 {
		t.Errorf("HalfCellCorrection = %v, want 40", got)
	}
}
