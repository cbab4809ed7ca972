package images

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// AOIRect converts two selection corners in image coordinates into a
// normalized pixel rectangle clamped to bounds. The result is at least 1x1
// and lies within bounds.
func AOIRect(x1, y1, x2, y2 float64, bounds image.Rectangle) image.Rectangle {
	x0, xMax := math.Min(x1, x2), math.Max(x1, x2)
	y0, yMax := math.Min(y1, y2), math.Max(y1, y2)
	r := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	).Add(bounds.Min).Intersect(bounds)
	if r.Empty() {
		px := bounds.Min.X + int(math.Floor(clamp(x0, 0, float64(bounds.Dx()-1))))
		py := bounds.Min.Y + int(math.Floor(clamp(y0, 0, float64(bounds.Dy()-1))))
		r = image.Rect(px, py, px+1, py+1)
	}
	return r
}

// ExtractAOI copies the area r out of frame. The returned image starts at
// the origin; the returned rectangle is r clamped to the frame.
func ExtractAOI(frame image.Image, r image.Rectangle) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	r = r.Intersect(frame.Bounds())
	if r.Empty() {
		return nil, image.Rectangle{}, errors.New("area outside frame")
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), frame, r.Min, draw.Src)
	return out, r, nil
}

// SubsetRaster returns the samples of r inside rect, which must lie within
// the raster.
func SubsetRaster(r Raster, rect image.Rectangle) (Raster, error) {
	if len(r.Data) != r.W*r.H {
		return Raster{}, ErrRasterSize
	}
	rect = rect.Intersect(image.Rect(0, 0, r.W, r.H))
	if rect.Empty() {
		return Raster{}, errors.New("area outside raster")
	}
	out := Raster{W: rect.Dx(), H: rect.Dy(), Data: make([]float64, 0, rect.Dx()*rect.Dy())}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		out.Data = append(out.Data, r.Data[y*r.W+rect.Min.X:y*r.W+rect.Max.X]...)
	}
	return out, nil
}
