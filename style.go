package xytable

import "fmt"

// Packed 0xAABBGGRR colours, the byte order the vertex buffers use.
const (
	ColorTransparent uint32 = 0x00000000
	ColorBlack       uint32 = 0xFF000000
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorOrange      uint32 = 0xFF00A5FF
)

// RGBA packs 8-bit channels into a vertex colour.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// WithAlpha returns c with its alpha byte replaced.
func WithAlpha(c uint32, a uint8) uint32 {
	return c&0x00FFFFFF | uint32(a)<<24
}

// Style defines the visual appearance of tables and scroll regions.
type Style struct {
	// Text
	TextColor       uint32
	HeaderTextColor uint32 // 0 = use TextColor

	// Panels hosting tables
	PanelColor         uint32
	PanelBorderColor   uint32
	PanelHeaderBgColor uint32

	// Header strips
	HeaderBgColor  uint32
	HeaderRounding float32 // Corner inset of the strip background

	// Body and grid
	BodyBgColor   uint32
	GridLineColor uint32
	GridLineWidth float32
	CellColor     uint32 // Fill used by the stock CellBox view

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32
	ScrollbarSize        float32

	// Font
	FontScale  float32
	CharWidth  float32
	CharHeight float32

	// Sizing
	ItemSpacing  float32
	PanelPadding float32
	CellPadding  float32 // Inset applied by the stock views
	BorderSize   float32

	// WheelStep is how many pixels one wheel notch pans a scroll region.
	WheelStep float32
}

// DefaultStyle returns a neutral dark style.
func DefaultStyle() Style {
	return Style{
		TextColor: ColorWhite,

		PanelColor:         RGBA(20, 20, 20, 230),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		HeaderBgColor:  WithAlpha(ColorGray, 77),
		HeaderRounding: 4,

		BodyBgColor:   RGBA(28, 28, 30, 255),
		GridLineColor: RGBA(80, 80, 80, 255),
		GridLineWidth: 1,
		CellColor:     ColorOrange,

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),
		ScrollbarSize:        0, // hidden, the headers carry the position

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 16,

		ItemSpacing:  4,
		PanelPadding: 8,
		CellPadding:  2,
		BorderSize:   1,

		WheelStep: 30,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style: dark panels with cyan
// headers and yellow text.
func GTAStyle() Style {
	s := DefaultStyle()
	s.HeaderTextColor = RGBA(255, 200, 0, 255)
	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(100, 100, 100, 255)
	s.PanelHeaderBgColor = RGBA(0, 60, 90, 255)
	s.HeaderBgColor = RGBA(0, 80, 120, 255)
	s.HeaderRounding = 0
	s.BodyBgColor = RGBA(10, 10, 10, 230)
	s.GridLineColor = RGBA(0, 100, 150, 255)
	s.CellColor = RGBA(0, 120, 180, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ScrollbarGrabHovered = RGBA(0, 150, 200, 255)
	s.ScrollbarSize = 10
	s.ItemSpacing = 6
	s.PanelPadding = 12
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.HeaderBgColor = RGBA(225, 225, 225, 255)
	s.BodyBgColor = ColorWhite
	s.GridLineColor = RGBA(200, 200, 200, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	return s
}

// StyleByName returns one of the stock styles: "default", "gta" or "light".
func StyleByName(name string) (Style, error) {
	switch name {
	case "", "default":
		return DefaultStyle(), nil
	case "gta":
		return GTAStyle(), nil
	case "light":
		return LightStyle(), nil
	default:
		return Style{}, fmt.Errorf("unknown style %q", name)
	}
}
