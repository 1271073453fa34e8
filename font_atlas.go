package xytable

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// Built-in glyph atlas layout: printable ASCII (32-127) in a 16x6 grid of
// fixed-size cells. Renderers upload BuildFontAtlas as a single-channel
// texture and DrawList.AddText samples it with atlasUV.
const (
	AtlasColumns = 16
	AtlasRows    = 6
	AtlasCellW   = 8
	AtlasCellH   = 16
	AtlasWidth   = AtlasColumns * AtlasCellW
	AtlasHeight  = AtlasRows * AtlasCellH

	firstAtlasRune = 32
	lastAtlasRune  = firstAtlasRune + AtlasColumns*AtlasRows - 1
)

// BuildFontAtlas rasterizes the 7x13 fixed font into an alpha image laid out
// as described by the Atlas* constants.
func BuildFontAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, AtlasWidth, AtlasHeight))
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(firstAtlasRune); r <= lastAtlasRune; r++ {
		idx := int(r - firstAtlasRune)
		col, row := idx%AtlasColumns, idx/AtlasColumns
		d.Dot = fixed.P(col*AtlasCellW, row*AtlasCellH+ascent)
		d.DrawString(string(r))
	}
	return img
}

// atlasUV returns the texture coordinates of r's atlas cell.
// Runes outside the atlas map to an ASCII look-alike or '?'.
func atlasUV(r rune) (u0, v0, u1, v1 float32) {
	r = asciiFallback(r)
	if r < firstAtlasRune || r > lastAtlasRune {
		r = '?'
	}
	idx := int(r - firstAtlasRune)
	col := float32(idx % AtlasColumns)
	row := float32(idx / AtlasColumns)

	u0 = col * AtlasCellW / AtlasWidth
	v0 = row * AtlasCellH / AtlasHeight
	u1 = (col + 1) * AtlasCellW / AtlasWidth
	v1 = (row + 1) * AtlasCellH / AtlasHeight
	return u0, v0, u1, v1
}

// runeCells returns how many monospace cells r occupies: two for East Asian
// wide and fullwidth runes, one otherwise.
func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// asciiFallback maps common symbols to ASCII equivalents for the atlas.
func asciiFallback(r rune) rune {
	if r >= firstAtlasRune && r <= lastAtlasRune {
		return r
	}
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '▼', '↓':
		return 'v'
	case '▲', '↑':
		return '^'
	case '●', '•':
		return '*'
	case '—', '–':
		return '-'
	case '│':
		return '|'
	default:
		return r
	}
}
