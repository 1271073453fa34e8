// Example shows a weekly timetable: twenty columns of irregularly placed
// cells under a column header, with a row header that follows the body as
// it scrolls.
//
//	go run ./example/
//	go run ./example/ -config layout.toml -style gta -verbose
//
// The optional config file uses the keys accepted by
// xytable.LoadLayoutConfig.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/xytable"
	"github.com/go-theft-auto/xytable/backend/opengl"
	"github.com/go-theft-auto/xytable/internal/sample"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "xytable example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML layout config")
	styleName := flag.String("style", "default", "style: default, gta or light")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	xytable.SetVerbose(*verbose)

	if err := run(*configPath, *styleName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, styleName string) error {
	cfg := xytable.NewLayoutConfig().
		SetPriorityAxis(xytable.ColumnMajor).
		SetHeaderAlignment(xytable.RowLeading, xytable.ColumnCentered)
	if configPath != "" {
		loaded, err := xytable.LoadLayoutConfigFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("table renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	engine := xytable.New(renderer, xytable.WithStyle(style))

	columns, rows, lines := sample.Timetable()
	table := xytable.NewTable[xytable.Label, xytable.Label, string]("timetable", cfg).
		SetData(columns, rows, lines).
		CorrectionOffset(xytable.HalfCellCorrection(rows)).
		ColumnHeaderLabel(xytable.LabelView).
		RowHeaderLabel(xytable.LabelView).
		CellLabel(func(s string) xytable.View { return xytable.BoxView(s) })
	defer table.Close()

	for !window.ShouldClose() {
		input := inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		engine.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := engine.Begin(input, xytable.Vec2{X: float32(w), Y: float32(h)}, 1.0/60.0)
		ctx.Panel("Timetable", xytable.Width(float32(w)), xytable.Height(float32(h)))(func() {
			ctx.Text(fmt.Sprintf("offset %.0f, %.0f", table.Offset().X, table.Offset().Y))
			table.Draw(ctx)
		})
		if err := engine.End(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
