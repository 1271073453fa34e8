package xytable_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/xytable"
)

func TestLayoutConfigDefaults(t *testing.T) {
	cfg := xytable.NewLayoutConfig()

	if cfg.HeaderPosition() != xytable.HeaderLeading {
		t.Errorf("HeaderPosition = %v, want leading", cfg.HeaderPosition())
	}
	if cfg.GridLines() != xytable.GridAll {
		t.Errorf("GridLines = %v, want rows|columns", cfg.GridLines())
	}
	if cfg.PriorityAxis() != xytable.ColumnMajor {
		t.Errorf("PriorityAxis = %v, want column", cfg.PriorityAxis())
	}
	if cfg.RowHeaderAlignment() != xytable.RowCentered {
		t.Errorf("RowHeaderAlignment = %v, want center", cfg.RowHeaderAlignment())
	}
	if cfg.ColumnHeaderAlignment() != xytable.ColumnCentered {
		t.Errorf("ColumnHeaderAlignment = %v, want center", cfg.ColumnHeaderAlignment())
	}
	if cfg.CorrectionOffset() != 0 {
		t.Errorf("CorrectionOffset = %v, want 0", cfg.CorrectionOffset())
	}
}

func TestLayoutConfigFluentSetters(t *testing.T) {
	cfg := xytable.NewLayoutConfig()
	got := cfg.
		SetHeaderPosition(xytable.HeaderTrailing).
		SetGridLines(xytable.GridRows).
		SetPriorityAxis(xytable.RowMajor).
		SetHeaderAlignment(xytable.RowLeading, xytable.ColumnTrailing).
		SetCorrectionOffset(12)

	if got != cfg {
		t.Fatal("setters must return the same config")
	}
	want := xytable.ConfigValues{
		HeaderPosition:        xytable.HeaderTrailing,
		GridLines:             []string{"rows"},
		PriorityAxis:          xytable.RowMajor,
		RowHeaderAlignment:    xytable.RowLeading,
		ColumnHeaderAlignment: xytable.ColumnTrailing,
		CorrectionOffset:      12,
	}
	snap := cfg.Snapshot()
	if snap.HeaderPosition != want.HeaderPosition ||
		strings.Join(snap.GridLines, ",") != "rows" ||
		snap.PriorityAxis != want.PriorityAxis ||
		snap.RowHeaderAlignment != want.RowHeaderAlignment ||
		snap.ColumnHeaderAlignment != want.ColumnHeaderAlignment ||
		snap.CorrectionOffset != want.CorrectionOffset {
		t.Errorf("Snapshot = %+v, want %+v", snap, want)
	}
}

func TestLayoutConfigNotifiesOnChange(t *testing.T) {
	cfg := xytable.NewLayoutConfig()

	var fields []xytable.ConfigField
	cfg.Subscribe(func(c *xytable.LayoutConfig, f xytable.ConfigField) {
		if c != cfg {
			t.Error("listener got a different config")
		}
		fields = append(fields, f)
	})

	cfg.SetGridLines(xytable.GridColumns).
		SetCorrectionOffset(8).
		SetRowHeaderAlignment(xytable.RowLeading)

	want := []xytable.ConfigField{
		xytable.FieldGridLines,
		xytable.FieldCorrectionOffset,
		xytable.FieldRowHeaderAlignment,
	}
	if len(fields) != len(want) {
		t.Fatalf("got %d notifications %v, want %v", len(fields), fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("notification %d = %v, want %v", i, fields[i], want[i])
		}
	}

	// Setting the current value is not a change.
	fields = nil
	cfg.SetCorrectionOffset(8).SetHeaderPosition(xytable.HeaderLeading)
	if len(fields) != 0 {
		t.Errorf("unchanged values notified %v", fields)
	}
}

func TestLayoutConfigUnsubscribe(t *testing.T) {
	cfg := xytable.NewLayoutConfig()

	var a, b int
	unsubA := cfg.Subscribe(func(*xytable.LayoutConfig, xytable.ConfigField) { a++ })
	cfg.Subscribe(func(*xytable.LayoutConfig, xytable.ConfigField) { b++ })

	cfg.SetCorrectionOffset(1)
	unsubA()
	unsubA() // no-op
	cfg.SetCorrectionOffset(2)

	if a != 1 {
		t.Errorf("unsubscribed listener called %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining listener called %d times, want 2", b)
	}
}

func TestLayoutConfigUnsubscribeDuringNotify(t *testing.T) {
	cfg := xytable.NewLayoutConfig()

	var calls, other int
	var unsub func()
	unsub = cfg.Subscribe(func(*xytable.LayoutConfig, xytable.ConfigField) {
		calls++
		unsub()
	})
	cfg.Subscribe(func(*xytable.LayoutConfig, xytable.ConfigField) { other++ })

	cfg.SetCorrectionOffset(1).SetCorrectionOffset(2)

	if calls != 1 {
		t.Errorf("self-removing listener called %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other listener called %d times, want 2", other)
	}
}

func TestLoadLayoutConfig(t *testing.T) {
	doc := `
header_position = "trailing"
grid_lines = ["rows"]
priority_axis = "row"
row_header_alignment = "top"
column_header_alignment = "right"
correction_offset = 12.0
`
	cfg, err := xytable.LoadLayoutConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadLayoutConfig: %v", err)
	}

	if cfg.HeaderPosition() != xytable.HeaderTrailing {
		t.Errorf("HeaderPosition = %v", cfg.HeaderPosition())
	}
	if cfg.GridLines() != xytable.GridRows {
		t.Errorf("GridLines = %v", cfg.GridLines())
	}
	if cfg.PriorityAxis() != xytable.RowMajor {
		t.Errorf("PriorityAxis = %v", cfg.PriorityAxis())
	}
	if cfg.RowHeaderAlignment() != xytable.RowLeading {
		t.Errorf("RowHeaderAlignment = %v", cfg.RowHeaderAlignment())
	}
	if cfg.ColumnHeaderAlignment() != xytable.ColumnTrailing {
		t.Errorf("ColumnHeaderAlignment = %v", cfg.ColumnHeaderAlignment())
	}
	if cfg.CorrectionOffset() != 12 {
		t.Errorf("CorrectionOffset = %v", cfg.CorrectionOffset())
	}
}

func TestLoadLayoutConfigKeepsDefaults(t *testing.T) {
	cfg, err := xytable.LoadLayoutConfig(strings.NewReader(`correction_offset = 4.5`))
	if err != nil {
		t.Fatalf("LoadLayoutConfig: %v", err)
	}
	if cfg.GridLines() != xytable.GridAll {
		t.Errorf("GridLines = %v, want default", cfg.GridLines())
	}
	if cfg.RowHeaderAlignment() != xytable.RowCentered {
		t.Errorf("RowHeaderAlignment = %v, want default", cfg.RowHeaderAlignment())
	}
	if cfg.CorrectionOffset() != 4.5 {
		t.Errorf("CorrectionOffset = %v, want 4.5", cfg.CorrectionOffset())
	}

	empty, err := xytable.LoadLayoutConfig(strings.NewReader(`grid_lines = []`))
	if err != nil {
		t.Fatalf("LoadLayoutConfig: %v", err)
	}
	if empty.GridLines() != xytable.GridNone {
		t.Errorf("GridLines = %v, want none", empty.GridLines())
	}
}

func TestLoadLayoutConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		unknown bool
	}{
		{"bad alignment", `row_header_alignment = "bottom"`, true},
		{"bad grid", `grid_lines = ["diagonal"]`, true},
		{"bad axis", `priority_axis = "z"`, true},
		{"unknown key", `zoom = 2.0`, true},
		{"syntax", `header_position = `, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := xytable.LoadLayoutConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, xytable.ErrUnknownOption); got != tt.unknown {
				t.Errorf("errors.Is(ErrUnknownOption) = %v, want %v (%v)", got, tt.unknown, err)
			}
		})
	}
}

func TestLayoutConfigFileRoundTrip(t *testing.T) {
	cfg := xytable.NewLayoutConfig().
		SetHeaderPosition(xytable.HeaderTrailing).
		SetGridLines(xytable.GridColumns).
		SetHeaderAlignment(xytable.RowLeading, xytable.ColumnCentered).
		SetCorrectionOffset(40)

	var buf bytes.Buffer
	if err := xytable.EncodeLayoutConfig(&buf, cfg); err != nil {
		t.Fatalf("EncodeLayoutConfig: %v", err)
	}
	if !strings.Contains(buf.String(), `row_header_alignment = "leading"`) {
		t.Errorf("encoded config lacks text enums:\n%s", buf.String())
	}

	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := xytable.LoadLayoutConfigFile(path)
	if err != nil {
		t.Fatalf("LoadLayoutConfigFile: %v", err)
	}
	if loaded.HeaderPosition() != xytable.HeaderTrailing ||
		loaded.GridLines() != xytable.GridColumns ||
		loaded.RowHeaderAlignment() != xytable.RowLeading ||
		loaded.CorrectionOffset() != 40 {
		t.Errorf("loaded %+v, want %+v", loaded.Snapshot(), cfg.Snapshot())
	}
}

func TestLoadLayoutConfigFileMissing(t *testing.T) {
	_, err := xytable.LoadLayoutConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}
