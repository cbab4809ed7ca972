package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/opensarlab/osl-notebook-kit/domain/selection"
)

func gradient(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 255 / (w - 1))})
		}
	}
	return img
}

func TestLoad_PNGAndTIFF(t *testing.T) {
	dir := t.TempDir()
	src := gradient(40, 20)

	pngPath := filepath.Join(dir, "a.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tifPath := filepath.Join(dir, "a.tif")
	f, err = os.Create(tifPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := tiff.Encode(f, src, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, p := range []string{pngPath, tifPath} {
		pv, err := Load(p, Options{MaxW: 20, MaxH: 20})
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if pv.Display.Bounds().Dx() != 20 || pv.Display.Bounds().Dy() != 10 {
			t.Fatalf("%s: unexpected display size %v", p, pv.Display.Bounds())
		}
		if pv.View.SrcW != 40 || pv.VMin >= pv.VMax {
			t.Fatalf("%s: unexpected viewport/limits %+v %v..%v", p, pv.View, pv.VMin, pv.VMax)
		}
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(bad); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestStatsAndSaveCrop(t *testing.T) {
	pv, err := Render(gradient(40, 20), Options{MaxW: 40, MaxH: 20})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	r := pv.AOIRect(10.4, 5, 0, 0)
	if r != image.Rect(0, 0, 11, 5) {
		t.Fatalf("unexpected rect %v", r)
	}
	st, err := pv.Stats(r)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Min >= st.Max || st.String() == "" {
		t.Fatalf("unexpected stats %+v", st)
	}
	if _, err := pv.Stats(image.Rect(100, 100, 120, 120)); err == nil {
		t.Fatalf("expected error outside raster")
	}

	out := filepath.Join(t.TempDir(), "crop.png")
	if err := pv.SaveCrop(r, out); err != nil {
		t.Fatalf("save crop: %v", err)
	}
	crop, err := Open(out)
	if err != nil {
		t.Fatalf("reopen crop: %v", err)
	}
	if crop.Bounds().Dx() != 11 || crop.Bounds().Dy() != 5 {
		t.Fatalf("unexpected crop size %v", crop.Bounds())
	}
}

func TestExporter_WritesCrop(t *testing.T) {
	pv, err := Render(gradient(40, 20), Options{MaxW: 40, MaxH: 20})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	e := Exporter{Preview: pv}
	got, err := e.ExportAOI(selection.Point{X: 0, Y: 0}, selection.Point{X: 10, Y: 5})
	if err != nil || !strings.HasPrefix(got, "10x5 px") {
		t.Fatalf("unexpected summary %q err=%v", got, err)
	}

	e.CropPath = filepath.Join(t.TempDir(), "aoi.png")
	got, err = e.ExportAOI(selection.Point{X: 0, Y: 0}, selection.Point{X: 10, Y: 5})
	if err != nil || !strings.HasSuffix(got, e.CropPath) {
		t.Fatalf("unexpected summary %q err=%v", got, err)
	}
	if _, err := os.Stat(e.CropPath); err != nil {
		t.Fatalf("crop not written: %v", err)
	}
}

func TestRender_SingleLimitKeepsOtherAutomatic(t *testing.T) {
	src := gradient(40, 20)
	auto, err := Render(src, Options{MaxW: 40, MaxH: 20})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lo := 10.0
	pv, err := Render(src, Options{MaxW: 40, MaxH: 20, VMin: &lo})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pv.VMin != 10 || pv.VMax != auto.VMax {
		t.Fatalf("expected vmin=10 vmax=%v, got %v..%v", auto.VMax, pv.VMin, pv.VMax)
	}
	left := color.GrayModel.Convert(pv.Display.At(0, 0)).(color.Gray).Y
	right := color.GrayModel.Convert(pv.Display.At(39, 0)).(color.Gray).Y
	if left != 0 || right != 255 {
		t.Fatalf("expected full contrast, got left=%d right=%d", left, right)
	}

	hi := 30000.0
	pv, err = Render(src, Options{MaxW: 40, MaxH: 20, VMax: &hi})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if pv.VMin != auto.VMin || pv.VMax != 30000 {
		t.Fatalf("expected vmin=%v vmax=30000, got %v..%v", auto.VMin, pv.VMin, pv.VMax)
	}
}
