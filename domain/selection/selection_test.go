package selection

import (
	"log/slog"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestSelection_PressReleaseOverwrites(t *testing.T) {
	var s Selection
	if s.Complete() {
		t.Fatalf("zero selection should be empty")
	}
	s.Press(Point{1, 1})
	if s.Complete() {
		t.Fatalf("selection complete before release")
	}
	s.Release(Point{5, 5})
	p1, p2, ok := s.Corners()
	if !ok || p1 != (Point{1, 1}) || p2 != (Point{5, 5}) {
		t.Fatalf("unexpected corners %v %v ok=%v", p1, p2, ok)
	}
	s.Press(Point{9, 2})
	s.Release(Point{3, 7})
	p1, p2, _ = s.Corners()
	if p1 != (Point{9, 2}) || p2 != (Point{3, 7}) {
		t.Fatalf("second drag did not overwrite: %v %v", p1, p2)
	}
	min, max, _ := s.Bounds()
	if min != (Point{3, 2}) || max != (Point{9, 7}) {
		t.Fatalf("unexpected bounds %v %v", min, max)
	}
}

func TestToggle_Transitions(t *testing.T) {
	tg := NewToggle(KeyMap{}, discardLogger)
	var seq []ToolState
	tg.AddListener(func(_, next ToolState) { seq = append(seq, next) })
	if tg.Current() != StateActive {
		t.Fatalf("expected initial active, got %v", tg.Current())
	}
	if tg.HandleKey("a") {
		t.Fatalf("activate while active must be a no-op")
	}
	if !tg.HandleKey("q") || tg.Current() != StateInactive {
		t.Fatalf("deactivate failed: %v", tg.Current())
	}
	if tg.HandleKey("x") || tg.HandleKey("Q") {
		t.Fatalf("unexpected transition while inactive")
	}
	if !tg.HandleKey("A") || tg.Current() != StateActive {
		t.Fatalf("activate failed: %v", tg.Current())
	}
	if len(seq) != 2 || seq[0] != StateInactive || seq[1] != StateActive {
		t.Fatalf("unexpected listener sequence %v", seq)
	}
}

func TestPointPair_EvictsOldest(t *testing.T) {
	var r PointPair
	if _, ok := r.Line(); ok {
		t.Fatalf("empty pair has no line")
	}
	r.Push(Point{1, 1})
	if _, ok := r.Line(); ok {
		t.Fatalf("single point must not draw a line")
	}
	r.Push(Point{2, 2})
	evicted, ok := r.Push(Point{3, 3})
	if !ok || evicted != (Point{1, 1}) {
		t.Fatalf("expected p1 evicted, got %v ok=%v", evicted, ok)
	}
	pts := r.Points()
	if len(pts) != 2 || pts[0] != (Point{2, 2}) || pts[1] != (Point{3, 3}) {
		t.Fatalf("expected {p2,p3}, got %v", pts)
	}
	seg, ok := r.Line()
	if !ok || seg.From != (Point{2, 2}) || seg.To != (Point{3, 3}) {
		t.Fatalf("unexpected line %v", seg)
	}
}

func TestRectangleSelector_IgnoresWhileInactive(t *testing.T) {
	rs := NewRectangleSelector(RectangleOptions{}, discardLogger)
	var got int
	rs.AddListener(func(_, _ Point) { got++ })

	rs.OnPress(PointerEvent{Data: Point{1, 1}, Pixel: Point{1, 1}, Button: ButtonLeft})
	rs.OnRelease(PointerEvent{Data: Point{5, 5}, Pixel: Point{5, 5}, Button: ButtonLeft})
	if got != 1 || !rs.Selection().Complete() {
		t.Fatalf("expected one selection, got %d", got)
	}

	rs.OnKey(KeyEvent{Key: "q"})
	rs.OnPress(PointerEvent{Data: Point{7, 7}, Button: ButtonLeft})
	rs.OnRelease(PointerEvent{Data: Point{8, 8}, Button: ButtonLeft})
	p1, _, _ := rs.Selection().Corners()
	if got != 1 || p1 != (Point{1, 1}) {
		t.Fatalf("inactive selector changed selection: got=%d p1=%v", got, p1)
	}
}

func TestRectangleSelector_MiddleButtonAndMinSpan(t *testing.T) {
	rs := NewRectangleSelector(RectangleOptions{MinSpanX: 5, MinSpanY: 5}, nil)
	rs.OnPress(PointerEvent{Data: Point{0, 0}, Pixel: Point{0, 0}, Button: ButtonMiddle})
	rs.OnRelease(PointerEvent{Data: Point{50, 50}, Pixel: Point{50, 50}, Button: ButtonMiddle})
	if rs.Selection().Complete() {
		t.Fatalf("middle button must be ignored")
	}
	rs.OnPress(PointerEvent{Data: Point{0, 0}, Pixel: Point{0, 0}, Button: ButtonRight})
	rs.OnRelease(PointerEvent{Data: Point{2, 50}, Pixel: Point{2, 50}, Button: ButtonRight})
	if rs.Selection().Complete() {
		t.Fatalf("drag below min span must be ignored")
	}
	rs.OnPress(PointerEvent{Data: Point{0, 0}, Pixel: Point{0, 0}, Button: ButtonRight})
	rs.OnRelease(PointerEvent{Data: Point{20, 20}, Pixel: Point{20, 20}, Button: ButtonRight})
	if !rs.Selection().Complete() {
		t.Fatalf("expected selection from right button drag")
	}

	rs.SetMinSpan(0, -1)
	rs.OnPress(PointerEvent{Data: Point{7, 7}, Pixel: Point{7, 7}, Button: ButtonLeft})
	rs.OnRelease(PointerEvent{Data: Point{8, 8}, Pixel: Point{8, 8}, Button: ButtonLeft})
	if p1, _, _ := rs.Selection().Corners(); p1 != (Point{7, 7}) {
		t.Fatalf("expected short drag accepted after SetMinSpan, got %v", p1)
	}
}

func TestRectangleSelector_SetButtons(t *testing.T) {
	rs := NewRectangleSelector(RectangleOptions{}, nil)
	rs.SetButtons([]MouseButton{ButtonMiddle})
	rs.OnPress(PointerEvent{Data: Point{0, 0}, Pixel: Point{0, 0}, Button: ButtonLeft})
	rs.OnRelease(PointerEvent{Data: Point{9, 9}, Pixel: Point{9, 9}, Button: ButtonLeft})
	if rs.Selection().Complete() {
		t.Fatalf("left button accepted after SetButtons(middle)")
	}
	rs.OnPress(PointerEvent{Data: Point{0, 0}, Pixel: Point{0, 0}, Button: ButtonMiddle})
	rs.OnRelease(PointerEvent{Data: Point{9, 9}, Pixel: Point{9, 9}, Button: ButtonMiddle})
	if !rs.Selection().Complete() {
		t.Fatalf("middle button rejected after SetButtons(middle)")
	}

	rs.SetButtons(nil)
	rs.OnPress(PointerEvent{Data: Point{1, 1}, Pixel: Point{1, 1}, Button: ButtonRight})
	rs.OnRelease(PointerEvent{Data: Point{5, 5}, Pixel: Point{5, 5}, Button: ButtonRight})
	if p1, _, _ := rs.Selection().Corners(); p1 != (Point{1, 1}) {
		t.Fatalf("default buttons not restored, p1=%v", p1)
	}
}

func TestLineSelector_NotifiesPoints(t *testing.T) {
	ls := NewLineSelector(discardLogger)
	var last []Point
	ls.AddListener(func(pts []Point) { last = pts })
	for _, p := range []Point{{1, 1}, {2, 2}, {3, 3}} {
		ls.OnClick(PointerEvent{Data: p, Button: ButtonLeft})
	}
	if len(last) != 2 || last[0] != (Point{2, 2}) {
		t.Fatalf("unexpected points %v", last)
	}
	if _, ok := ls.Line(); !ok {
		t.Fatalf("expected line between two points")
	}
	ls.Reset()
	if len(last) != 0 || len(ls.Points()) != 0 {
		t.Fatalf("reset kept points: %v", ls.Points())
	}
}
