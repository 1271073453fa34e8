// Command gen renders the sample timetable under several layout configs,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -out /tmp/shots -style light
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/xytable"
	"github.com/go-theft-auto/xytable/backend/opengl"
	"github.com/go-theft-auto/xytable/internal/sample"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	styleName := flag.String("style", "gta", "style: default, gta or light")
	flag.Parse()

	if err := run(*outDir, *styleName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured table configuration.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	config func(cfg *xytable.LayoutConfig)
	scroll xytable.Vec2 // body offset to capture at
}

func run(outDir, styleName string) error {
	style, err := xytable.StyleByName(styleName)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, style, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, style xytable.Style, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)
	engine := xytable.New(renderer, xytable.WithStyle(style))

	cfg := xytable.NewLayoutConfig()
	if s.config != nil {
		s.config(cfg)
	}
	columns, rows, lines := sample.Timetable()
	table := xytable.NewTable[xytable.Label, xytable.Label, string]("shot-"+s.name, cfg).
		SetData(columns, rows, lines).
		ColumnHeaderLabel(xytable.LabelView).
		RowHeaderLabel(xytable.LabelView).
		CellLabel(func(text string) xytable.View { return xytable.BoxView(text) }).
		ScrollTo(s.scroll)
	defer table.Close()

	// The first frame applies the scroll; the second draws the settled state.
	for range 2 {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := xytable.Vec2{X: float32(s.width), Y: float32(s.height)}
		ctx := engine.Begin(xytable.NewInputState(), displaySize, 1.0/60.0)
		table.DrawIn(ctx, xytable.Rect{X: 12, Y: 12, W: displaySize.X - 24, H: displaySize.Y - 24})
		if err := engine.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up.
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	_, rows, _ := sample.Timetable()
	correction := xytable.HalfCellCorrection(rows)

	return []screenshot{
		{name: "table_centered", width: 800, height: 600},
		{
			name: "table_leading_rows", width: 800, height: 600,
			config: func(cfg *xytable.LayoutConfig) {
				cfg.SetRowHeaderAlignment(xytable.RowLeading).SetCorrectionOffset(correction)
			},
		},
		{
			name: "table_trailing_header", width: 800, height: 600,
			config: func(cfg *xytable.LayoutConfig) {
				cfg.SetHeaderPosition(xytable.HeaderTrailing).
					SetColumnHeaderAlignment(xytable.ColumnTrailing)
			},
		},
		{
			name: "table_row_major", width: 800, height: 600,
			config: func(cfg *xytable.LayoutConfig) {
				cfg.SetPriorityAxis(xytable.RowMajor).SetGridLines(xytable.GridRows)
			},
		},
		{
			name: "table_no_grid", width: 800, height: 600,
			config: func(cfg *xytable.LayoutConfig) {
				cfg.SetGridLines(xytable.GridNone)
			},
		},
		{
			name: "table_scrolled", width: 800, height: 600,
			config: func(cfg *xytable.LayoutConfig) {
				cfg.SetRowHeaderAlignment(xytable.RowLeading).SetCorrectionOffset(correction)
			},
			scroll: xytable.Vec2{X: -600, Y: -450},
		},
	}
}
