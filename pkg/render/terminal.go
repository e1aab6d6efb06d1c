package render

import (
	"fmt"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Draw converts the internal framebuffer to terminal cells and draws them on
// the screen.
// The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

var (
	ColorBlack     = color.RGBA{0, 0, 0, 255}
	ColorWhite     = color.RGBA{255, 255, 255, 255}
	ColorGray      = color.RGBA{128, 128, 128, 255}
	ColorSelection = color.RGBA{255, 210, 60, 255}
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// ParseColor turns a face color string into a pixel color. Shaded faces
// carry "rgb(r,g,b)" strings; unshaded ones may still be hex. Anything
// else paints gray rather than dropping the face.
func ParseColor(s string) color.RGBA {
	var r, g, b int
	if n, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err == nil && n == 3 {
		return RGB(uint8(r), uint8(g), uint8(b))
	}
	if c, err := colorful.Hex(s); err == nil {
		cr, cg, cb := c.RGB255()
		return RGB(cr, cg, cb)
	}
	return ColorGray
}
