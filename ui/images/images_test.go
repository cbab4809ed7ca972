package images

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/opensarlab/osl-notebook-kit/ui/theme"
)

func TestPercentile_IgnoresNaN(t *testing.T) {
	data := []float64{math.NaN(), 0, 1, 2, 3, 4, math.NaN()}
	if v, ok := Percentile(data, 50); !ok || v != 2 {
		t.Fatalf("median=%v ok=%v", v, ok)
	}
	if v, _ := Percentile(data, 25); v != 1 {
		t.Fatalf("p25=%v", v)
	}
	if v, _ := Percentile(data, 90); math.Abs(v-3.6) > 1e-9 {
		t.Fatalf("p90=%v", v)
	}
	if _, ok := Percentile([]float64{math.NaN()}, 50); ok {
		t.Fatalf("expected no percentile for all-NaN input")
	}
}

func TestGray_ClipsAndMarksNoData(t *testing.T) {
	r := Raster{W: 4, H: 1, Data: []float64{-5, 0, 10, math.NaN()}}
	img, err := Gray(r, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint8{0, 0, 255, 0}
	for i, w := range want {
		if img.Pix[i] != w {
			t.Fatalf("pixel %d = %d, want %d", i, img.Pix[i], w)
		}
	}
	if _, err := Gray(Raster{W: 2, H: 2, Data: []float64{1}}, 0, 1); err != ErrRasterSize {
		t.Fatalf("expected ErrRasterSize, got %v", err)
	}
}

func TestAutoRange_OutlierDoesNotDominate(t *testing.T) {
	data := make([]float64, 200)
	for i := range data {
		data[i] = float64(i % 10)
	}
	data[0] = 1e9
	r := Raster{W: 20, H: 10, Data: data}
	vmin, vmax := AutoRange(r)
	img, err := Gray(r, vmin, vmax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Pix[5] < 100 {
		t.Fatalf("mid-range sample rendered too dark: %d", img.Pix[5])
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	vp := FitViewport(400, 200, 200, 200)
	if vp.DstW != 200 || vp.DstH != 100 {
		t.Fatalf("unexpected viewport %+v", vp)
	}
	x, y := vp.ToImage(50, 25)
	if x != 100 || y != 50 {
		t.Fatalf("ToImage=(%v,%v)", x, y)
	}
	dx, dy := vp.ToDisplay(x, y)
	if dx != 50 || dy != 25 {
		t.Fatalf("ToDisplay=(%v,%v)", dx, dy)
	}
	if x, _ := vp.ToImage(-10, 0); x != 0 {
		t.Fatalf("expected clamp to 0, got %v", x)
	}
}

func TestScaleToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out, vp := ScaleToFit(src, 40, 40)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 20 || vp.SrcW != 100 {
		t.Fatalf("unexpected scaled size %v vp=%+v", out.Bounds(), vp)
	}
	if len(EncodePNG(out)) == 0 {
		t.Fatalf("expected PNG bytes")
	}
}

func TestAOIRect_NormalizesAndClamps(t *testing.T) {
	b := image.Rect(0, 0, 20, 20)
	r := AOIRect(15.5, 30, 2.2, 4, b)
	if r != image.Rect(2, 4, 16, 20) {
		t.Fatalf("unexpected rect %v", r)
	}
	r = AOIRect(5, 5, 5, 5, b)
	if r.Dx() != 1 || r.Dy() != 1 {
		t.Fatalf("expected 1x1 got %v", r)
	}
}

func TestExtractAOIAndSubset(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	frame.SetRGBA(3, 4, color.RGBA{R: 9, A: 255})
	out, rect, err := ExtractAOI(frame, image.Rect(3, 4, 30, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rect != image.Rect(3, 4, 10, 6) || out.RGBAAt(0, 0).R != 9 {
		t.Fatalf("unexpected crop %v %v", rect, out.RGBAAt(0, 0))
	}
	if _, _, err := ExtractAOI(frame, image.Rect(50, 50, 60, 60)); err == nil {
		t.Fatalf("expected error outside frame")
	}

	r := Raster{W: 3, H: 3, Data: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}}
	sub, err := SubsetRaster(r, image.Rect(1, 1, 3, 3))
	if err != nil || sub.W != 2 || sub.H != 2 || sub.Data[0] != 4 || sub.Data[3] != 8 {
		t.Fatalf("unexpected subset %+v err=%v", sub, err)
	}
}

func TestCanvas_Overlays(t *testing.T) {
	base := image.NewGray(image.Rect(0, 0, 10, 10))
	c := NewCanvas(base)
	s := theme.Default()
	c.Rect(2, 2, 6, 6, s)
	if c.RGBAAt(2, 2) != s.Edge {
		t.Fatalf("edge not drawn: %v", c.RGBAAt(2, 2))
	}
	if in := c.RGBAAt(4, 4); in.R == 0 || in.G != 0 {
		t.Fatalf("face not blended: %v", in)
	}
	c.Line(0, 9, 9, 9, s.Line)
	if c.RGBAAt(5, 9) != s.Line {
		t.Fatalf("line not drawn")
	}
	c.Point(0, 0, 1, s.Point)
	if c.RGBAAt(1, 0) != s.Point {
		t.Fatalf("point marker not drawn")
	}
	c.Point(-5, -5, 1, s.Point) // off canvas, must not panic
}
