package selection

// Selection holds the two corners of a bounding-box selection. The zero
// value is empty and usable. Each press/release pair overwrites the previous
// corners; there is no history.
type Selection struct {
	p1, p2      Point
	havePress   bool
	haveRelease bool
}

// Press records corner 1. Corner 2 is invalid until the matching Release.
func (s *Selection) Press(p Point) {
	if s == nil {
		return
	}
	s.p1 = p
	s.havePress = true
	s.haveRelease = false
}

// Release records corner 2. No ordering check is applied: x1 may exceed x2.
func (s *Selection) Release(p Point) {
	if s == nil {
		return
	}
	s.p2 = p
	s.haveRelease = true
}

// Set overwrites both corners at once.
func (s *Selection) Set(p1, p2 Point) {
	if s == nil {
		return
	}
	s.p1, s.p2 = p1, p2
	s.havePress, s.haveRelease = true, true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if s == nil {
		return
	}
	*s = Selection{}
}

// Complete reports whether both corners of the latest drag are known.
func (s *Selection) Complete() bool {
	return s != nil && s.havePress && s.haveRelease
}

// Corners returns the raw corners in the order they were recorded.
func (s *Selection) Corners() (p1, p2 Point, ok bool) {
	if !s.Complete() {
		return Point{}, Point{}, false
	}
	return s.p1, s.p2, true
}

// Bounds returns the corners normalised so that min <= max on both axes.
func (s *Selection) Bounds() (min, max Point, ok bool) {
	p1, p2, ok := s.Corners()
	if !ok {
		return Point{}, Point{}, false
	}
	min = Point{X: minf(p1.X, p2.X), Y: minf(p1.Y, p2.Y)}
	max = Point{X: maxf(p1.X, p2.X), Y: maxf(p1.Y, p2.Y)}
	return min, max, true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
