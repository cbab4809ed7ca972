package presenter

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/opensarlab/osl-notebook-kit/domain/selection"
	"github.com/opensarlab/osl-notebook-kit/ui/images"
	"github.com/opensarlab/osl-notebook-kit/ui/model"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"
)

// CanvasView displays the rendered preview and a one-line status.
type CanvasView interface {
	ShowImage(image.Image)
	SetStatus(string)
}

// AOIStore persists a confirmed area of interest.
type AOIStore interface {
	SaveAOI(p1, p2 selection.Point) error
}

// AOIExporter receives each confirmed area in image coordinates with
// min <= max on both axes and returns a short summary for the status line.
type AOIExporter interface {
	ExportAOI(min, max selection.Point) (string, error)
}

// AOIPresenter routes pointer and key events from the view to the
// rectangle selector and redraws the overlay after each selection.
type AOIPresenter struct {
	sel    *selection.RectangleSelector
	model  *model.AOIModel
	store  AOIStore
	export AOIExporter
	view   CanvasView
	base   image.Image // display-sized preview
	vp     images.Viewport
	style  theme.Style
	logger *slog.Logger
	inside bool // pointer over the preview

	stack, common *Extent
}

// NewAOIPresenter wires a selector to a view. base must already be scaled
// to the display size described by vp.
func NewAOIPresenter(sel *selection.RectangleSelector, m *model.AOIModel, store AOIStore, view CanvasView,
	base image.Image, vp images.Viewport, style theme.Style, logger *slog.Logger) *AOIPresenter {
	p := &AOIPresenter{sel: sel, model: m, store: store, view: view, base: base, vp: vp, style: style, logger: logger}
	if sel != nil {
		sel.AddListener(func(p1, p2 selection.Point) {
			p.view.SetStatus(FormatSelection(p1, p2))
			p.Redraw()
		})
	}
	return p
}

// FormatSelection renders corners as "(x1, y1) --> (x2, y2)".
func FormatSelection(p1, p2 selection.Point) string {
	return fmt.Sprintf("(%3.2f, %3.2f) --> (%3.2f, %3.2f)", p1.X, p1.Y, p2.X, p2.Y)
}

func (p *AOIPresenter) event(x, y float64, button int) selection.PointerEvent {
	ix, iy := p.vp.ToImage(x, y)
	return selection.PointerEvent{
		Data:   selection.Point{X: ix, Y: iy},
		Pixel:  selection.Point{X: x, Y: y},
		Button: selection.MouseButton(button),
	}
}

// SetStyle swaps the overlay style and redraws.
func (p *AOIPresenter) SetStyle(s theme.Style) {
	if p == nil {
		return
	}
	p.style = s
	p.Redraw()
}

// SetStackExtents sets the full-stack and common extents outlined beneath
// the selection. Either may be nil.
func (p *AOIPresenter) SetStackExtents(stack, common *Extent) {
	if p == nil {
		return
	}
	p.stack, p.common = stack, common
	p.Redraw()
}

// SetExporter installs e to run after every successful confirm.
func (p *AOIPresenter) SetExporter(e AOIExporter) {
	if p != nil {
		p.export = e
	}
}

// Press handles a button press at display coordinates.
func (p *AOIPresenter) Press(x, y float64, button int) {
	if p == nil || p.sel == nil {
		return
	}
	p.sel.OnPress(p.event(x, y, button))
}

// Release handles a button release at display coordinates.
func (p *AOIPresenter) Release(x, y float64, button int) {
	if p == nil || p.sel == nil {
		return
	}
	p.sel.OnRelease(p.event(x, y, button))
}

// Hover records whether the pointer is over the preview.
func (p *AOIPresenter) Hover(inside bool) {
	if p != nil {
		p.inside = inside
	}
}

// Key forwards a key press to the selector's toggle. Keys pressed while
// the pointer is away from the preview are dropped.
func (p *AOIPresenter) Key(key string) {
	if p == nil || p.sel == nil || !p.inside {
		return
	}
	p.sel.OnKey(selection.KeyEvent{Key: key})
}

// Confirm stores the current selection in the model and persists it.
func (p *AOIPresenter) Confirm() error {
	if p == nil || p.sel == nil {
		return nil
	}
	p1, p2, ok := p.sel.Selection().Corners()
	if !ok {
		return fmt.Errorf("no area selected")
	}
	p.model.Confirm(p1, p2)
	if p.store != nil && p.model.Dirty() {
		if err := p.store.SaveAOI(p1, p2); err != nil {
			return fmt.Errorf("save area: %w", err)
		}
		p.model.MarkSaved()
	}
	if p.logger != nil {
		p.logger.Info("area confirmed", "from", p1.String(), "to", p2.String())
	}
	status := "confirmed: " + FormatSelection(p1, p2)
	if p.export != nil {
		min, max, _ := p.sel.Selection().Bounds()
		summary, err := p.export.ExportAOI(min, max)
		if err != nil {
			return fmt.Errorf("export area: %w", err)
		}
		status += " | " + summary
	}
	p.view.SetStatus(status)
	p.Redraw()
	return nil
}

// Redraw renders the preview with the stack extents and the confirmed area
// outlined and the current selection filled.
func (p *AOIPresenter) Redraw() {
	if p == nil || p.view == nil || p.base == nil {
		return
	}
	c := images.NewCanvas(p.base)
	outline := func(a, b selection.Point, col color.RGBA) {
		x1, y1 := p.vp.ToDisplay(a.X, a.Y)
		x2, y2 := p.vp.ToDisplay(b.X, b.Y)
		c.Extent(images.AOIRect(x1, y1, x2, y2, c.Bounds()), col)
	}
	if p.stack != nil {
		outline(p.stack.P1, p.stack.P2, p.style.Extent)
	}
	if p.common != nil {
		outline(p.common.P1, p.common.P2, p.style.Common)
	}
	if a, b, ok := p.model.Corners(); ok {
		outline(a, b, p.style.Edge)
	}
	if p.sel != nil {
		if a, b, ok := p.sel.Selection().Corners(); ok {
			x1, y1 := p.vp.ToDisplay(a.X, a.Y)
			x2, y2 := p.vp.ToDisplay(b.X, b.Y)
			c.Rect(x1, y1, x2, y2, p.style)
		}
	}
	p.view.ShowImage(c)
}
