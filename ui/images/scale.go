package images

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit performs a nearest-neighbour scale so that the returned image fits within
// maxW x maxH preserving aspect ratio. Smaller sources are enlarged. The
// Viewport describing the mapping is returned alongside.
func ScaleToFit(src image.Image, maxW, maxH int) (image.Image, Viewport) {
	if src == nil {
		return nil, Viewport{}
	}
	b := src.Bounds()
	vp := FitViewport(b.Dx(), b.Dy(), maxW, maxH)
	if vp.DstW == b.Dx() && vp.DstH == b.Dy() {
		return src, vp
	}
	dst := image.NewRGBA(image.Rect(0, 0, vp.DstW, vp.DstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, vp
}

// Viewport maps between image pixels and the displayed (scaled) pixels.
type Viewport struct {
	SrcW, SrcH int
	DstW, DstH int
}

// FitViewport computes the largest aspect-preserving display size within
// maxW x maxH.
func FitViewport(w, h, maxW, maxH int) Viewport {
	if w < 1 || h < 1 {
		return Viewport{}
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	dw := int(float64(w)*ratio + 0.5)
	dh := int(float64(h)*ratio + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	return Viewport{SrcW: w, SrcH: h, DstW: dw, DstH: dh}
}

func (v Viewport) valid() bool { return v.SrcW > 0 && v.SrcH > 0 && v.DstW > 0 && v.DstH > 0 }

// ToImage maps display coordinates to image coordinates, clamped to the
// image extent.
func (v Viewport) ToImage(x, y float64) (float64, float64) {
	if !v.valid() {
		return x, y
	}
	ix := clamp(x*float64(v.SrcW)/float64(v.DstW), 0, float64(v.SrcW))
	iy := clamp(y*float64(v.SrcH)/float64(v.DstH), 0, float64(v.SrcH))
	return ix, iy
}

// ToDisplay maps image coordinates to display coordinates.
func (v Viewport) ToDisplay(x, y float64) (float64, float64) {
	if !v.valid() {
		return x, y
	}
	return x * float64(v.DstW) / float64(v.SrcW), y * float64(v.DstH) / float64(v.SrcH)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
