// ABOUTME: Colors and node styles for every diagram and chart renderer
// ABOUTME: Presentation is derived here from node kind, priority, and theme
package viz

import (
	"fmt"
	"image/color"

	"github.com/harperreed/rolodex/layout"
	"github.com/harperreed/rolodex/models"
)

var (
	colorHigh    = color.RGBA{0xef, 0x44, 0x44, 0xff}
	colorMedium  = color.RGBA{0xf5, 0x9e, 0x0b, 0xff}
	colorLow     = color.RGBA{0x10, 0xb9, 0x81, 0xff}
	colorUnknown = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorBar     = color.RGBA{0x88, 0x84, 0xd8, 0xff}
	colorWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

type Palette struct {
	Background   color.RGBA
	HeaderFill   color.RGBA
	HeaderText   color.RGBA
	HeaderBorder color.RGBA
	CardFill     color.RGBA
	Text         color.RGBA
	Subtle       color.RGBA
	Grid         color.RGBA
}

var (
	lightPalette = Palette{
		Background:   color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		HeaderFill:   color.RGBA{0xe5, 0xe7, 0xeb, 0xff},
		HeaderText:   color.RGBA{0x11, 0x18, 0x27, 0xff},
		HeaderBorder: color.RGBA{0x4b, 0x55, 0x63, 0xff},
		CardFill:     colorWhite,
		Text:         color.RGBA{0x11, 0x18, 0x27, 0xff},
		Subtle:       color.RGBA{0x6b, 0x72, 0x80, 0xff},
		Grid:         color.RGBA{0xd1, 0xd5, 0xdb, 0xff},
	}
	darkPalette = Palette{
		Background:   color.RGBA{0x03, 0x07, 0x12, 0xff},
		HeaderFill:   color.RGBA{0x1f, 0x29, 0x37, 0xff},
		HeaderText:   color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		HeaderBorder: color.RGBA{0x4b, 0x55, 0x63, 0xff},
		CardFill:     color.RGBA{0x11, 0x18, 0x27, 0xff},
		Text:         color.RGBA{0xf9, 0xfa, 0xfb, 0xff},
		Subtle:       color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		Grid:         color.RGBA{0x37, 0x41, 0x51, 0xff},
	}
)

func PaletteFor(theme layout.Theme) Palette {
	if theme == layout.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// PriorityColor is the badge, border, and edge color for a priority.
func PriorityColor(p models.Priority) color.RGBA {
	switch p {
	case models.PriorityHigh:
		return colorHigh
	case models.PriorityMedium:
		return colorMedium
	case models.PriorityLow:
		return colorLow
	default:
		return colorUnknown
	}
}

// Box sizes for the two node kinds.
const (
	HeaderWidth  = 160.0
	HeaderHeight = 40.0
	CardWidth    = 220.0
	CardHeight   = 130.0
)

type NodeStyle struct {
	Fill        color.RGBA
	Text        color.RGBA
	Border      color.RGBA
	BorderWidth float64
	Radius      float64
	Width       float64
	Height      float64
}

func StyleFor(n layout.Node, theme layout.Theme) NodeStyle {
	p := PaletteFor(theme)
	if n.Kind == layout.KindHeader {
		return NodeStyle{
			Fill:        p.HeaderFill,
			Text:        p.HeaderText,
			Border:      p.HeaderBorder,
			BorderWidth: 2,
			Radius:      8,
			Width:       HeaderWidth,
			Height:      HeaderHeight,
		}
	}
	return NodeStyle{
		Fill:        p.CardFill,
		Text:        p.Text,
		Border:      PriorityColor(n.Priority),
		BorderWidth: 2,
		Radius:      10,
		Width:       CardWidth,
		Height:      CardHeight,
	}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
