// Package opengl draws xytable frames with OpenGL 4.1 and feeds it input
// from a GLFW window.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/xytable"
)

var (
	vertexSize  = int32(unsafe.Sizeof(xytable.Vertex{}))
	uvOffset    = unsafe.Offsetof(xytable.Vertex{}.TexCoord)
	colorOffset = unsafe.Offsetof(xytable.Vertex{}.Color)
)

// Renderer uploads each frame's DrawList and replays its commands. It
// implements xytable.Renderer. All methods must run on the thread that
// owns the GL context.
type Renderer struct {
	prog          program
	vao, vbo, ebo uint32
	atlas         uint32
	width, height int
}

// NewRenderer creates a renderer for a framebuffer of the given size.
// A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	prog, err := newProgram()
	if err != nil {
		return nil, fmt.Errorf("shader program: %w", err)
	}
	r := &Renderer{prog: prog, width: width, height: height}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, vertexSize, uvOffset)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, vertexSize, colorOffset)
	gl.BindVertexArray(0)

	r.atlas = uploadAtlas()
	return r, nil
}

// FontTextureID returns the glyph atlas texture.
func (r *Renderer) FontTextureID() uint32 { return r.atlas }

// Resize sets the framebuffer size used for projection and scissoring.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Render draws dl over whatever is in the framebuffer and leaves the GL
// state the way it found it.
func (r *Renderer) Render(dl *xytable.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	saved := saveState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	proj := screenProjection(float32(r.width), float32(r.height))
	gl.UseProgram(r.prog.id)
	gl.UniformMatrix4fv(r.prog.projection, 1, false, &proj[0])
	gl.Uniform1i(r.prog.atlas, 0)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(vertexSize), gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2, gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		box, ok := scissorBox(cmd.ClipRect, r.width, r.height)
		if cmd.ElemCount == 0 || !ok {
			continue
		}
		gl.Scissor(box[0], box[1], box[2], box[3])

		textured := int32(0)
		if cmd.TextureID != 0 {
			textured = 1
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
		}
		gl.Uniform1i(r.prog.textured, textured)

		// Indices are relative to the command's first vertex.
		gl.DrawElementsBaseVertexWithOffset(gl.TRIANGLES, int32(cmd.ElemCount), gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2, int32(cmd.VertexOffset))
	}
	return nil
}

// Delete releases the renderer's GL objects.
func (r *Renderer) Delete() {
	if r.atlas != 0 {
		gl.DeleteTextures(1, &r.atlas)
	}
	buffers := []uint32{r.vbo, r.ebo}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog.id != 0 {
		gl.DeleteProgram(r.prog.id)
	}
	*r = Renderer{}
}

// glState is the slice of GL state Render changes.
type glState struct {
	program          int32
	blendSrc         int32
	blendDst         int32
	scissor          [4]int32
	blend, depth     bool
	cull, scissoring bool
}

func saveState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissoring = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
	for capability, on := range map[uint32]bool{
		gl.BLEND:        s.blend,
		gl.DEPTH_TEST:   s.depth,
		gl.CULL_FACE:    s.cull,
		gl.SCISSOR_TEST: s.scissoring,
	} {
		if on {
			gl.Enable(capability)
		} else {
			gl.Disable(capability)
		}
	}
}

// scissorBox converts a clip rectangle (x1, y1, x2, y2 from the top-left)
// into GL's bottom-left scissor box, clamped to the framebuffer. It
// reports false when nothing of the rectangle is on screen.
func scissorBox(clip [4]float32, width, height int) ([4]int32, bool) {
	fw, fh := float32(width), float32(height)
	x1, y1 := max(clip[0], 0), max(clip[1], 0)
	x2, y2 := min(clip[2], fw), min(clip[3], fh)
	if x2 <= x1 || y2 <= y1 {
		return [4]int32{}, false
	}
	return [4]int32{int32(x1), int32(fh - y2), int32(x2 - x1), int32(y2 - y1)}, true
}

// uploadAtlas uploads the built-in glyph atlas as a single-channel texture.
func uploadAtlas() uint32 {
	img := xytable.BuildFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, xytable.AtlasWidth, xytable.AtlasHeight, 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
