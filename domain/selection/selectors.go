package selection

import (
	"log/slog"
	"math"
)

// RectangleOptions configures a RectangleSelector.
type RectangleOptions struct {
	// Buttons accepted for dragging. Empty means left and right.
	Buttons []MouseButton
	// Minimum span of a drag in pixels; shorter drags are discarded.
	MinSpanX, MinSpanY float64
	Keys               KeyMap
}

// SelectionListener is notified after a completed drag updates the corners.
type SelectionListener func(p1, p2 Point)

// RectangleSelector turns press/release pairs into a bounding-box selection
// while the toggle is active.
type RectangleSelector struct {
	sel       Selection
	toggle    *Toggle
	opts      RectangleOptions
	logger    *slog.Logger
	pending   *PointerEvent
	listeners []SelectionListener
}

// NewRectangleSelector constructs a selector whose toggle starts active.
func NewRectangleSelector(opts RectangleOptions, logger *slog.Logger) *RectangleSelector {
	if len(opts.Buttons) == 0 {
		opts.Buttons = []MouseButton{ButtonLeft, ButtonRight}
	}
	if opts.MinSpanX < 0 {
		opts.MinSpanX = 0
	}
	if opts.MinSpanY < 0 {
		opts.MinSpanY = 0
	}
	return &RectangleSelector{toggle: NewToggle(opts.Keys, logger), opts: opts, logger: logger}
}

// Toggle exposes the controller so views can reflect its state.
func (r *RectangleSelector) Toggle() *Toggle { return r.toggle }

// Selection returns the underlying holder.
func (r *RectangleSelector) Selection() *Selection { return &r.sel }

// AddListener registers l for completed selections.
func (r *RectangleSelector) AddListener(l SelectionListener) {
	if l != nil {
		r.listeners = append(r.listeners, l)
	}
}

func (r *RectangleSelector) OnPress(e PointerEvent) {
	if !r.toggle.Active() || !r.accepts(e.Button) {
		return
	}
	ev := e
	r.pending = &ev
}

func (r *RectangleSelector) OnRelease(e PointerEvent) {
	press := r.pending
	r.pending = nil
	if press == nil || !r.toggle.Active() || e.Button != press.Button {
		return
	}
	if math.Abs(e.Pixel.X-press.Pixel.X) < r.opts.MinSpanX || math.Abs(e.Pixel.Y-press.Pixel.Y) < r.opts.MinSpanY {
		if r.logger != nil {
			r.logger.Debug("selection below minimum span", "press", press.Pixel.String(), "release", e.Pixel.String())
		}
		return
	}
	r.sel.Press(press.Data)
	r.sel.Release(e.Data)
	if r.logger != nil {
		r.logger.Info("area selected", "from", press.Data.String(), "to", e.Data.String(), "button", int(e.Button))
	}
	for _, l := range r.listeners {
		l(press.Data, e.Data)
	}
}

// SetButtons replaces the accepted drag buttons. An empty list restores
// left and right. A drag already in progress is dropped.
func (r *RectangleSelector) SetButtons(buttons []MouseButton) {
	if len(buttons) == 0 {
		buttons = []MouseButton{ButtonLeft, ButtonRight}
	}
	r.opts.Buttons = append([]MouseButton(nil), buttons...)
	r.pending = nil
}

// SetMinSpan changes the minimum drag span for later releases.
func (r *RectangleSelector) SetMinSpan(x, y float64) {
	r.opts.MinSpanX = math.Max(x, 0)
	r.opts.MinSpanY = math.Max(y, 0)
}

// OnClick is unused by the rectangle selector.
func (r *RectangleSelector) OnClick(PointerEvent) {}

func (r *RectangleSelector) OnKey(e KeyEvent) {
	if r.toggle.HandleKey(e.Key) && !r.toggle.Active() {
		r.pending = nil
	}
}

func (r *RectangleSelector) accepts(b MouseButton) bool {
	for _, ok := range r.opts.Buttons {
		if ok == b {
			return true
		}
	}
	return false
}

// LineSelector maintains a pair of clicked points and the line between them.
type LineSelector struct {
	pair      PointPair
	logger    *slog.Logger
	listeners []func(pts []Point)
}

func NewLineSelector(logger *slog.Logger) *LineSelector {
	return &LineSelector{logger: logger}
}

// AddListener registers l; it receives the current points after every click.
func (l *LineSelector) AddListener(fn func(pts []Point)) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

func (l *LineSelector) OnClick(e PointerEvent) {
	if evicted, ok := l.pair.Push(e.Data); ok && l.logger != nil {
		l.logger.Debug("point evicted", "point", evicted.String())
	}
	pts := l.pair.Points()
	for _, fn := range l.listeners {
		fn(pts)
	}
}

func (l *LineSelector) OnPress(PointerEvent)   {}
func (l *LineSelector) OnRelease(PointerEvent) {}
func (l *LineSelector) OnKey(KeyEvent)         {}

// Points returns the active points, oldest first.
func (l *LineSelector) Points() []Point { return l.pair.Points() }

// Line returns the segment between the two active points, if both exist.
func (l *LineSelector) Line() (Segment, bool) { return l.pair.Line() }

// Reset drops both points and notifies listeners with an empty set.
func (l *LineSelector) Reset() {
	l.pair.Reset()
	for _, fn := range l.listeners {
		fn(nil)
	}
}

// Ensure contract satisfaction
var (
	_ EventHandler = (*RectangleSelector)(nil)
	_ EventHandler = (*LineSelector)(nil)
)
