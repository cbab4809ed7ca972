// Package theme holds the plot and widget styling passed explicitly to the
// renderers and views. Nothing here is global; callers construct a Style and
// hand it down.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/config"
)

// Palette defines core semantic colors used across widgets.
type Palette struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

var lightPalette = Palette{
	AppBg:     "#f7f9fb",
	Surface:   "#ffffff",
	Border:    "#d0d7de",
	Primary:   "#2563eb",
	Danger:    "#dc2626",
	Accent:    "#10b981",
	Text:      "#1e293b",
	TextMuted: "#64748b",
}

var darkPalette = Palette{
	AppBg:     "#0f172a",
	Surface:   "#1e293b",
	Border:    "#334155",
	Primary:   "#3b82f6",
	Danger:    "#ef4444",
	Accent:    "#10b981",
	Text:      "#f1f5f9",
	TextMuted: "#94a3b8",
}

// StylePrimaryButton is the ttk style name configured by the view layer.
const StylePrimaryButton = "primary.TButton"

// Style is the resolved plot style.
type Style struct {
	FontSize int
	Dark     bool
	Face     color.RGBA // rectangle fill, alpha already applied
	Edge     color.RGBA
	Point    color.RGBA
	Line     color.RGBA
	Extent   color.RGBA // full stack extent
	Common   color.RGBA // extent shared by every scene in the stack
}

// Default returns the light style with a red translucent rectangle and a
// yellow edge.
func Default() Style {
	s, _ := FromConfig(config.DefaultStyle())
	return s
}

// FromConfig resolves hex colors from cfg. Unparseable colors fall back to
// the defaults and are reported in the returned error.
func FromConfig(cfg config.Style) (Style, error) {
	def := config.DefaultStyle()
	var errs []string
	pick := func(name, v, fallback string) color.RGBA {
		c, err := ParseHex(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			c, _ = ParseHex(fallback)
		}
		return c
	}
	alpha := cfg.FaceAlpha
	if alpha < 0 || alpha > 1 {
		alpha = def.FaceAlpha
	}
	face := pick("face_color", cfg.FaceColor, def.FaceColor)
	face.A = uint8(alpha*255 + 0.5)
	s := Style{
		FontSize: cfg.FontSize,
		Dark:     cfg.Dark,
		Face:     face,
		Edge:     pick("edge_color", cfg.EdgeColor, def.EdgeColor),
		Point:    pick("point_color", cfg.PointColor, def.PointColor),
		Line:     pick("line_color", cfg.LineColor, def.LineColor),
		Extent:   pick("extent_color", cfg.ExtentColor, def.ExtentColor),
		Common:   pick("common_color", cfg.CommonColor, def.CommonColor),
	}
	if s.FontSize <= 0 {
		s.FontSize = def.FontSize
	}
	if len(errs) > 0 {
		return s, fmt.Errorf("theme: %s", strings.Join(errs, "; "))
	}
	return s, nil
}

// Palette returns widget colors for the style's mode.
func (s Style) Palette() Palette {
	if s.Dark {
		return darkPalette
	}
	return lightPalette
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
