package presenter

import (
	"image"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/domain/selection"
	"github.com/opensarlab/osl-notebook-kit/ui/images"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"
)

const markerRadius = 3

// LinePresenter feeds clicks to the line selector and draws the retained
// points and the segment between them.
type LinePresenter struct {
	sel   *selection.LineSelector
	view  CanvasView
	base  image.Image
	vp    images.Viewport
	style theme.Style
}

func NewLinePresenter(sel *selection.LineSelector, view CanvasView, base image.Image, vp images.Viewport, style theme.Style) *LinePresenter {
	p := &LinePresenter{sel: sel, view: view, base: base, vp: vp, style: style}
	if sel != nil {
		sel.AddListener(func(pts []selection.Point) {
			p.view.SetStatus(formatPoints(pts))
			p.Redraw()
		})
	}
	return p
}

// Click handles a click at display coordinates.
func (p *LinePresenter) Click(x, y float64, button int) {
	if p == nil || p.sel == nil {
		return
	}
	ix, iy := p.vp.ToImage(x, y)
	p.sel.OnClick(selection.PointerEvent{
		Data:   selection.Point{X: ix, Y: iy},
		Pixel:  selection.Point{X: x, Y: y},
		Button: selection.MouseButton(button),
	})
}

// SetStyle swaps the marker and line colors and redraws.
func (p *LinePresenter) SetStyle(s theme.Style) {
	if p == nil {
		return
	}
	p.style = s
	p.Redraw()
}

// Refresh re-renders the status and overlay from the retained points, as
// needed when the window is (re)opened.
func (p *LinePresenter) Refresh() {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.view.SetStatus(formatPoints(p.sel.Points()))
	p.Redraw()
}

// Clear drops the retained points.
func (p *LinePresenter) Clear() {
	if p == nil || p.sel == nil {
		return
	}
	p.sel.Reset()
}

// Redraw renders markers for the retained points and the connecting line.
func (p *LinePresenter) Redraw() {
	if p == nil || p.view == nil || p.base == nil || p.sel == nil {
		return
	}
	c := images.NewCanvas(p.base)
	if seg, ok := p.sel.Line(); ok {
		x1, y1 := p.vp.ToDisplay(seg.From.X, seg.From.Y)
		x2, y2 := p.vp.ToDisplay(seg.To.X, seg.To.Y)
		c.Line(x1, y1, x2, y2, p.style.Line)
	}
	for _, pt := range p.sel.Points() {
		x, y := p.vp.ToDisplay(pt.X, pt.Y)
		c.Point(x, y, markerRadius, p.style.Point)
	}
	p.view.ShowImage(c)
}

func formatPoints(pts []selection.Point) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " --> ")
}
