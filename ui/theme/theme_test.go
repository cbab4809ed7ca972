package theme

import (
	"image/color"
	"testing"

	"github.com/opensarlab/osl-notebook-kit/config"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.FontSize != 12 {
		t.Fatalf("font size %d", s.FontSize)
	}
	if s.Face != (color.RGBA{R: 255, A: 77}) {
		t.Fatalf("unexpected face %+v", s.Face)
	}
	if s.Edge != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Fatalf("unexpected edge %+v", s.Edge)
	}
	if s.Extent != (color.RGBA{R: 255, G: 165, A: 255}) || s.Common != (color.RGBA{G: 128, A: 255}) {
		t.Fatalf("unexpected extent colors %+v %+v", s.Extent, s.Common)
	}
	if s.Palette().AppBg != lightPalette.AppBg {
		t.Fatalf("expected light palette")
	}
}

func TestFromConfig_BadColorFallsBack(t *testing.T) {
	cs := config.DefaultStyle()
	cs.EdgeColor = "banana"
	cs.Dark = true
	s, err := FromConfig(cs)
	if err == nil {
		t.Fatalf("expected error for bad color")
	}
	if s.Edge != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Fatalf("expected fallback edge, got %+v", s.Edge)
	}
	if s.Palette().AppBg != darkPalette.AppBg {
		t.Fatalf("expected dark palette")
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#0f8")
	if err != nil || c != (color.RGBA{G: 0xff, B: 0x88, A: 0xff}) {
		t.Fatalf("unexpected %+v err=%v", c, err)
	}
	if _, err := ParseHex("#12345"); err == nil {
		t.Fatalf("expected error")
	}
}
