package xytable

import (
	"math"
	"slices"
	"sync"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Vertex is one corner of a textured, coloured triangle. The field order
// matches the attribute layout the renderers upload.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // packed 0xAABBGGRR
}

// DrawCmd draws ElemCount indices with one texture and one scissor.
// Indices are relative to VertexOffset so each command fits uint16.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2 in screen pixels
	TextureID    uint32     // 0 draws untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// noClip is the clip rectangle used when nothing has been pushed.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// DrawList is one frame of geometry: shared vertex and index buffers cut
// into commands. A command ends whenever the texture or the clip rectangle
// changes, so each one can be drawn with a single scissor and texture.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack [][4]float32
	clip      [4]float32
	texture   uint32
	finalized bool
}

// Clear empties the list for a new frame, keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
	dl.texture = 0
	dl.finalized = false
}

// PushClipRect narrows drawing to (x1, y1)-(x2, y2) intersected with the
// current clip, so nested regions never draw outside their parents.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{
		max(x1, dl.clip[0]), max(y1, dl.clip[1]),
		min(x2, dl.clip[2]), min(y2, dl.clip[3]),
	}
	dl.startCommand()
}

// PopClipRect restores the clip rectangle active before the last push.
// Popping an empty stack does nothing.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.startCommand()
}

// ClipRect returns the active clip rectangle as (x1, y1, x2, y2).
func (dl *DrawList) ClipRect() [4]float32 { return dl.clip }

// SetTexture selects the texture for the primitives that follow. Zero
// draws untextured.
func (dl *DrawList) SetTexture(id uint32) {
	if dl.texture == id {
		return
	}
	dl.texture = id
	dl.startCommand()
}

// current returns the open command, starting one if there is none.
func (dl *DrawList) current() *DrawCmd {
	if len(dl.CmdBuffer) == 0 {
		dl.startCommand()
	}
	return &dl.CmdBuffer[len(dl.CmdBuffer)-1]
}

// closeCommand fixes the element count of the open command.
func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		cmd := &dl.CmdBuffer[n-1]
		cmd.ElemCount = uint32(len(dl.IdxBuffer)) - cmd.IndexOffset
	}
}

func (dl *DrawList) startCommand() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.texture,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
}

// maxCommandVertices is the most vertices one command can address with
// uint16 indices.
const maxCommandVertices = 1 << 16

// quad appends two triangles over four corners given clockwise from the
// top-left. Indices count from the open command's first vertex; a full
// command is continued in a new one with the same clip and texture.
func (dl *DrawList) quad(corners [4][2]float32, uv [4][2]float32, color uint32) {
	if uint32(len(dl.VtxBuffer))-dl.current().VertexOffset+4 > maxCommandVertices {
		dl.startCommand()
	}
	base := uint16(uint32(len(dl.VtxBuffer)) - dl.current().VertexOffset)
	for i := range corners {
		dl.VtxBuffer = append(dl.VtxBuffer, Vertex{Pos: corners[i], TexCoord: uv[i], Color: color})
	}
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

func rectCorners(x, y, w, h float32) [4][2]float32 {
	return [4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// opaque reports whether a colour has any alpha at all.
func opaque(color uint32) bool { return color>>24 != 0 }

// AddRect fills a rectangle. Empty rectangles and fully transparent
// colours add nothing.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if !opaque(color) || w <= 0 || h <= 0 {
		return
	}
	dl.quad(rectCorners(x, y, w, h), [4][2]float32{}, color)
}

// AddRectOutline strokes the inside edge of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	inner := h - 2*thickness
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, inner, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, inner, color)
}

// AddLine strokes the segment (x1, y1)-(x2, y2), thickness wide and
// centred on it.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if !opaque(color) || thickness <= 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Half the thickness along the segment's normal.
	nx, ny := -dy/length*thickness/2, dx/length*thickness/2
	dl.quad([4][2]float32{
		{x1 + nx, y1 + ny}, {x2 + nx, y2 + ny},
		{x2 - nx, y2 - ny}, {x1 - nx, y1 - ny},
	}, [4][2]float32{}, color)
}

// AddText draws text with the built-in glyph atlas, one cell per narrow
// rune and two per wide rune. charWidth and charHeight are the cell size
// before scale. The caller selects the atlas texture.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if !opaque(color) || text == "" {
		return
	}
	cw, ch := charWidth*scale, charHeight*scale
	for _, r := range text {
		u0, v0, u1, v1 := atlasUV(r)
		dl.quad(rectCorners(x, y, cw, ch), [4][2]float32{{u0, v0}, {u1, v0}, {u1, v1}, {u0, v1}}, color)
		x += cw * float32(runeCells(r))
	}
}

// AddRoundedRect fills a rectangle with its corners notched by radius.
func (dl *DrawList) AddRoundedRect(x, y, w, h, radius float32, color uint32) {
	radius = clampf(radius, 0, min(w, h)/2)
	if radius == 0 {
		dl.AddRect(x, y, w, h, color)
		return
	}
	dl.AddRect(x+radius, y, w-2*radius, h, color)
	dl.AddRect(x, y+radius, radius, h-2*radius, color)
	dl.AddRect(x+w-radius, y+radius, radius, h-2*radius, color)
}

// InsertRect fills a rectangle underneath everything drawn so far. Panels
// paint their background this way once their content size is known.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if !opaque(color) || w <= 0 || h <= 0 {
		return
	}
	dl.current()

	var verts [4]Vertex
	for i, p := range rectCorners(x, y, w, h) {
		verts[i] = Vertex{Pos: p, Color: color}
	}
	dl.VtxBuffer = append(verts[:], dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Existing indices stay valid because they are relative.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	bg := DrawCmd{ElemCount: 6, ClipRect: dl.clip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the open command and drops empty ones. Renderers call it
// before drawing; later calls are no-ops.
func (dl *DrawList) Finalize() {
	if dl.finalized {
		return
	}
	dl.finalized = true
	dl.closeCommand()
	dl.CmdBuffer = slices.DeleteFunc(dl.CmdBuffer, func(c DrawCmd) bool { return c.ElemCount == 0 })
}
