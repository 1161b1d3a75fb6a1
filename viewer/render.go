package viewer

// Rendering utilities: the drivers.Displayer adapter over the framebuffer,
// the line rasterizer, and the world-to-screen mapping.

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"

	"glint/geom"
	"glint/hal"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorHeaderBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorGrid     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorAxis     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorVecA     = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorVecB     = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colorSum      = color.RGBA{R: 0x7F, G: 0xFF, B: 0x7F, A: 0xFF}
	colorUnit     = color.RGBA{R: 0x7F, G: 0xFF, B: 0xFF, A: 0xFF}
	colorOrtho    = color.RGBA{R: 0xFF, G: 0x7F, B: 0xFF, A: 0xFF}
	colorMix      = color.RGBA{R: 0xFF, G: 0x5A, B: 0x5A, A: 0xFF}
)

type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// drawLine rasterizes the segment (x0,y0)-(x1,y1) with Bresenham stepping.
func (d *fbDisplay) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := absInt(int(x1) - int(x0))
	dy := -absInt(int(y1) - int(y0))
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	x := int(x0)
	y := int(y0)
	for {
		d.SetPixel(int16(x), int16(y), c)
		if x == int(x1) && y == int(y1) {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// drawMarker draws a small filled square centered on (x, y).
func (d *fbDisplay) drawMarker(x, y int16, c color.RGBA) {
	_ = d.FillRectangle(x-1, y-1, 3, 3, c)
}

// worldToScreen maps world coordinates to pixels. The world window
// [-viewRange, viewRange] on both axes is centered in a w by h screen with
// y pointing up. Far off-screen coordinates are clamped so huge or infinite
// components cannot overflow the rasterizer.
func worldToScreen(v geom.Vec2, w, h int, viewRange float64) (x, y int16) {
	scale := float64(minInt(w, h)) / (2 * viewRange)
	px := float64(w)/2 + v.X*scale
	py := float64(h)/2 - v.Y*scale
	return clampCoord(px), clampCoord(py)
}

func clampCoord(p float64) int16 {
	const lim = 8192
	if math.IsNaN(p) {
		return -1
	}
	if p < -lim {
		return -lim
	}
	if p > lim {
		return lim
	}
	return int16(p)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
