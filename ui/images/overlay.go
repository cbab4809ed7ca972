package images

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/opensarlab/osl-notebook-kit/ui/theme"
)

// Canvas is an RGBA copy of a base image with selection overlays drawn on it.
type Canvas struct {
	*image.RGBA
}

// NewCanvas copies base into a fresh RGBA canvas.
func NewCanvas(base image.Image) Canvas {
	b := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), base, b.Min, draw.Src)
	return Canvas{dst}
}

// Rect draws a selection rectangle in display coordinates: a translucent
// face blended over the image and a one pixel edge.
func (c Canvas) Rect(x1, y1, x2, y2 float64, s theme.Style) {
	r := AOIRect(x1, y1, x2, y2, c.Bounds())
	draw.Draw(c.RGBA, r, &image.Uniform{C: premultiply(s.Face)}, image.Point{}, draw.Over)
	c.outline(r, s.Edge)
}

// Extent outlines a rectangle without fill.
func (c Canvas) Extent(r image.Rectangle, col color.RGBA) {
	c.outline(r.Intersect(c.Bounds()), col)
}

// Point draws a filled circular marker of the given radius.
func (c Canvas) Point(x, y float64, radius int, col color.RGBA) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// Line draws a straight segment between two points (Bresenham).
func (c Canvas) Line(x1, y1, x2, y2 float64, col color.RGBA) {
	x0, y0 := int(math.Round(x1)), int(math.Round(y1))
	xe, ye := int(math.Round(x2)), int(math.Round(y2))
	dx := abs(xe - x0)
	dy := -abs(ye - y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c Canvas) outline(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		c.set(x, r.Min.Y, col)
		c.set(x, r.Max.Y-1, col)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.set(r.Min.X, y, col)
		c.set(r.Max.X-1, y, col)
	}
}

func (c Canvas) set(x, y int, col color.RGBA) {
	if image.Pt(x, y).In(c.Bounds()) {
		c.SetRGBA(x, y, col)
	}
}

// premultiply converts a straight-alpha color into the premultiplied form
// image/color expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
