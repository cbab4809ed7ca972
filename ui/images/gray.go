package images

import (
	"errors"
	"image"
	"image/color"
	"math"
	"sort"
)

// Raster is a single band of samples in row-major order. NaN marks no-data.
type Raster struct {
	W, H int
	Data []float64
}

// ErrRasterSize is returned when Data does not hold W*H samples.
var ErrRasterSize = errors.New("raster data length does not match dimensions")

// RasterFromImage converts an image to a luminance raster. Fully transparent
// pixels become NaN.
func RasterFromImage(img image.Image) Raster {
	b := img.Bounds()
	r := Raster{W: b.Dx(), H: b.Dy(), Data: make([]float64, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				r.Data[i] = math.NaN()
			} else {
				r.Data[i] = float64(color.Gray16Model.Convert(c).(color.Gray16).Y)
			}
			i++
		}
	}
	return r
}

// Percentile returns the p-th percentile (0..100) of the non-NaN samples
// using linear interpolation between closest ranks. ok is false when every
// sample is NaN.
func Percentile(data []float64, p float64) (float64, bool) {
	vals := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0, false
	}
	sort.Float64s(vals)
	p = clamp(p, 0, 100)
	pos := p / 100 * float64(len(vals)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return vals[lo] + (vals[hi]-vals[lo])*frac, true
}

// AutoRange returns the 1st and 99th percentiles used as default display
// limits.
func AutoRange(r Raster) (vmin, vmax float64) {
	vmin, _ = Percentile(r.Data, 1)
	vmax, _ = Percentile(r.Data, 99)
	return vmin, vmax
}

// Gray renders the raster linearly between vmin and vmax. Values outside
// are clipped and NaN samples render black. When vmin == vmax every valid
// sample renders mid-gray.
func Gray(r Raster, vmin, vmax float64) (*image.Gray, error) {
	if len(r.Data) != r.W*r.H {
		return nil, ErrRasterSize
	}
	out := image.NewGray(image.Rect(0, 0, r.W, r.H))
	span := vmax - vmin
	for i, v := range r.Data {
		var g uint8
		switch {
		case math.IsNaN(v):
			g = 0
		case span <= 0:
			g = 128
		default:
			g = uint8(clamp((v-vmin)/span, 0, 1)*255 + 0.5)
		}
		out.Pix[(i/r.W)*out.Stride+i%r.W] = g
	}
	return out, nil
}
