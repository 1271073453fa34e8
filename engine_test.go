package xytable_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/xytable"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastVtx     int
	err         error
}

func (m *mockRenderer) Render(dl *xytable.DrawList) error {
	m.renderCalls++
	m.lastVtx = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestEngineBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	engine := xytable.New(renderer, xytable.WithStyle(xytable.GTAStyle()))

	input := xytable.NewInputState()
	ctx := engine.Begin(input, xytable.Vec2{X: 1920, Y: 1080}, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if ctx.FontTextureID != 1 {
		t.Errorf("FontTextureID = %d, want 1", ctx.FontTextureID)
	}

	ctx.Text("Hello World")

	if err := engine.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	if renderer.lastVtx != 4*len("Hello World") {
		t.Errorf("rendered %d vertices, want %d", renderer.lastVtx, 4*len("Hello World"))
	}
}

func TestEngineEndPropagatesRendererError(t *testing.T) {
	errBoom := errors.New("boom")
	engine := xytable.New(&mockRenderer{err: errBoom})

	engine.Begin(xytable.NewInputState(), xytable.Vec2{X: 800, Y: 600}, 0.016)
	if err := engine.End(); !errors.Is(err, errBoom) {
		t.Fatalf("End() = %v, want %v", err, errBoom)
	}
}

func TestEngineEndWithoutBegin(t *testing.T) {
	renderer := &mockRenderer{}
	engine := xytable.New(renderer)

	if err := engine.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
	if renderer.renderCalls != 0 {
		t.Errorf("expected no render call, got %d", renderer.renderCalls)
	}
}

func TestEngineStyle(t *testing.T) {
	engine := xytable.New(&mockRenderer{})
	engine.SetStyle(xytable.LightStyle())

	ctx := engine.Begin(xytable.NewInputState(), xytable.Vec2{X: 800, Y: 600}, 0.016)
	defer engine.End()

	if ctx.Style().BodyBgColor != xytable.LightStyle().BodyBgColor {
		t.Error("frame context should use the engine style")
	}
}

func TestPanelAvailableSize(t *testing.T) {
	engine := xytable.New(&mockRenderer{})
	ctx := engine.Begin(xytable.NewInputState(), xytable.Vec2{X: 800, Y: 600}, 0.016)

	style := ctx.Style()
	headerH := ctx.LineHeight() + style.PanelPadding*2

	var avail xytable.Vec2
	ctx.Panel("Timetable", xytable.Width(400), xytable.Height(300))(func() {
		avail = ctx.AvailableSize()
	})

	wantW := 400 - style.PanelPadding*2
	wantH := 300 - style.PanelPadding*2 - headerH
	if avail.X != wantW || avail.Y != wantH {
		t.Errorf("available size inside panel = %v, want {%v %v}", avail, wantW, wantH)
	}
	if got := ctx.GetCursorPos().Y; got != 300 {
		t.Errorf("cursor after panel = %v, want 300", got)
	}

	_ = engine.End()
}

func TestMeasureTextWideRunes(t *testing.T) {
	engine := xytable.New(&mockRenderer{})
	ctx := engine.Begin(xytable.NewInputState(), xytable.Vec2{X: 800, Y: 600}, 0.016)
	defer engine.End()

	cw := ctx.Style().CharWidth
	tests := []struct {
		text  string
		cells float32
	}{
		{"", 0},
		{"ab", 2},
		{"月曜", 4},
		{"Mon 月", 6},
	}
	for _, tt := range tests {
		if got := ctx.MeasureText(tt.text).X; got != tt.cells*cw {
			t.Errorf("MeasureText(%q).X = %v, want %v", tt.text, got, tt.cells*cw)
		}
	}
}
