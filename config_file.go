package xytable

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadLayoutConfig decodes a TOML document into a new LayoutConfig.
// Keys missing from the document keep their defaults; unrecognized keys and
// values yield an error wrapping ErrUnknownOption.
//
//	header_position = "leading"
//	grid_lines = ["rows", "columns"]
//	priority_axis = "column"
//	row_header_alignment = "top"
//	column_header_alignment = "center"
//	correction_offset = 12.0
func LoadLayoutConfig(r io.Reader) (*LayoutConfig, error) {
	cfg := NewLayoutConfig()
	raw := rawValues(cfg.Snapshot())

	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decode layout config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("layout config keys %s: %w", strings.Join(keys, ", "), ErrUnknownOption)
	}

	values, err := raw.values()
	if err != nil {
		return nil, fmt.Errorf("decode layout config: %w", err)
	}
	if err := cfg.Apply(values); err != nil {
		return nil, fmt.Errorf("decode layout config: %w", err)
	}
	return cfg, nil
}

// fileValues is ConfigValues with the enums kept as text until validated.
type fileValues struct {
	HeaderPosition        string   `toml:"header_position"`
	GridLines             []string `toml:"grid_lines"`
	PriorityAxis          string   `toml:"priority_axis"`
	RowHeaderAlignment    string   `toml:"row_header_alignment"`
	ColumnHeaderAlignment string   `toml:"column_header_alignment"`
	CorrectionOffset      float32  `toml:"correction_offset"`
}

func rawValues(v ConfigValues) fileValues {
	return fileValues{
		HeaderPosition:        v.HeaderPosition.String(),
		GridLines:             v.GridLines,
		PriorityAxis:          v.PriorityAxis.String(),
		RowHeaderAlignment:    v.RowHeaderAlignment.String(),
		ColumnHeaderAlignment: v.ColumnHeaderAlignment.String(),
		CorrectionOffset:      v.CorrectionOffset,
	}
}

func (f fileValues) values() (ConfigValues, error) {
	v := ConfigValues{GridLines: f.GridLines, CorrectionOffset: f.CorrectionOffset}
	if err := v.HeaderPosition.UnmarshalText([]byte(f.HeaderPosition)); err != nil {
		return v, err
	}
	if err := v.PriorityAxis.UnmarshalText([]byte(f.PriorityAxis)); err != nil {
		return v, err
	}
	if err := v.RowHeaderAlignment.UnmarshalText([]byte(f.RowHeaderAlignment)); err != nil {
		return v, err
	}
	if err := v.ColumnHeaderAlignment.UnmarshalText([]byte(f.ColumnHeaderAlignment)); err != nil {
		return v, err
	}
	return v, nil
}

// LoadLayoutConfigFile reads a TOML layout config from path.
func LoadLayoutConfigFile(path string) (*LayoutConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadLayoutConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("layout config loaded", "path", path)
	return cfg, nil
}

// EncodeLayoutConfig writes cfg as a TOML document readable by
// LoadLayoutConfig.
func EncodeLayoutConfig(w io.Writer, cfg *LayoutConfig) error {
	if err := toml.NewEncoder(w).Encode(cfg.Snapshot()); err != nil {
		return fmt.Errorf("encode layout config: %w", err)
	}
	return nil
}
