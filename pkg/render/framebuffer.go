package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sort"

	"github.com/facetlab/facet/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that can be drawn to the terminal.
// We use double vertical resolution by using half-block characters (▀▄).
type Framebuffer struct {
	Width  int          // Width in "pixels" (same as terminal columns)
	Height int          // Height in "pixels" (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills a closed polygon with a solid color using scanline
// even-odd filling. Points are screen-space vertices in loop order.
func (fb *Framebuffer) FillPolygon(points []math3d.Vec2, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Ceil(minY)), 0)
	y1 := min(int(math.Floor(maxY)), fb.Height-1)

	var xs []float64
	for y := y0; y <= y1; y++ {
		fy := float64(y)
		xs = xs[:0]
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(int(math.Ceil(xs[i])), 0)
			x1 := min(int(math.Floor(xs[i+1])), fb.Width-1)
			for x := x0; x <= x1; x++ {
				fb.Pixels[y*fb.Width+x] = c
			}
		}
	}
}

// DrawOutline strokes a polygon's edges.
func (fb *Framebuffer) DrawOutline(points []math3d.Vec2, c color.RGBA) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		fb.DrawLine(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), c)
	}
}

// Paint fills projected faces in slice order, so a back-to-front sorted
// list composes correctly without a depth buffer. Selected faces get an
// outline on top of the fill.
func (fb *Framebuffer) Paint(faces []ProjectedFace) {
	for _, f := range faces {
		fb.FillPolygon(f.Points, ParseColor(f.Color))
	}
	for _, f := range faces {
		if f.Selected {
			fb.DrawOutline(f.Points, ColorSelection)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
