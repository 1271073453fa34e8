package opengl

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
layout (location = 2) in vec4 aColor;

uniform mat4 projection;

out vec2 uv;
out vec4 tint;

void main() {
    uv = aUV;
    tint = aColor;
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

// The glyph atlas is single-channel coverage, tinted by the vertex colour.
const fragmentShaderSource = `
#version 410 core
in vec2 uv;
in vec4 tint;

uniform sampler2D atlas;
uniform bool textured;

out vec4 fragColor;

void main() {
    float coverage = textured ? texture(atlas, uv).r : 1.0;
    fragColor = vec4(tint.rgb, tint.a * coverage);
}
` + "\x00"

// program is a linked shader program and the uniforms the renderer sets.
type program struct {
	id         uint32
	projection int32
	atlas      int32
	textured   int32
}

func newProgram() (program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexShaderSource)
	if err != nil {
		return program{}, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSource)
	if err != nil {
		return program{}, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var ok int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(id, n, nil, &msg[0])
		gl.DeleteProgram(id)
		return program{}, fmt.Errorf("link: %s", bytes.TrimRight(msg, "\x00"))
	}

	return program{
		id:         id,
		projection: gl.GetUniformLocation(id, gl.Str("projection\x00")),
		atlas:      gl.GetUniformLocation(id, gl.Str("atlas\x00")),
		textured:   gl.GetUniformLocation(id, gl.Str("textured\x00")),
	}, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	id := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(id, 1, src, nil)
	free()
	gl.CompileShader(id)

	var ok int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(id, n, nil, &msg[0])
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile: %s", bytes.TrimRight(msg, "\x00"))
	}
	return id, nil
}

// screenProjection maps screen pixels (origin top-left, Y down) to clip
// space. The matrix is column-major.
func screenProjection(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}
