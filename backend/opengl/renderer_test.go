package opengl

import (
	"math"
	"testing"
)

func TestScissorBox(t *testing.T) {
	tests := []struct {
		name string
		clip [4]float32
		want [4]int32
		ok   bool
	}{
		{"inside", [4]float32{10, 20, 110, 70}, [4]int32{10, 530, 100, 50}, true},
		{"clamped", [4]float32{-50, -50, 1e9, 100}, [4]int32{0, 500, 800, 100}, true},
		{"offscreen", [4]float32{900, 0, 1000, 100}, [4]int32{}, false},
		{"empty", [4]float32{10, 10, 10, 50}, [4]int32{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scissorBox(tt.clip, 800, 600)
			if got != tt.want || ok != tt.ok {
				t.Errorf("scissorBox(%v) = %v, %v, want %v, %v", tt.clip, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestScreenProjection(t *testing.T) {
	m := screenProjection(800, 600)
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	corners := []struct{ x, y, cx, cy float32 }{
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{400, 300, 0, 0},
	}
	for _, c := range corners {
		cx, cy := apply(c.x, c.y)
		if math.Abs(float64(cx-c.cx)) > 1e-5 || math.Abs(float64(cy-c.cy)) > 1e-5 {
			t.Errorf("(%v, %v) -> (%v, %v), want (%v, %v)", c.x, c.y, cx, cy, c.cx, c.cy)
		}
	}
}

func TestKeyMapping(t *testing.T) {
	for from, to := range glfwKeys {
		if to == 0 {
			t.Errorf("glfw key %v maps to KeyNone", from)
		}
	}
}
