package selection

// pairCapacity is the number of points a PointPair retains.
const pairCapacity = 2

// PointPair is a fixed-capacity FIFO of clicked points. Pushing onto a full
// pair evicts the oldest point first, so Len is always 0, 1 or 2.
// The zero value is empty and usable.
type PointPair struct {
	pts [pairCapacity]Point
	n   int
}

// Push appends p, evicting the oldest point when full. It returns the
// evicted point, if any.
func (r *PointPair) Push(p Point) (evicted Point, ok bool) {
	if r.n == pairCapacity {
		evicted, ok = r.pts[0], true
		r.pts[0] = r.pts[1]
		r.n--
	}
	r.pts[r.n] = p
	r.n++
	return evicted, ok
}

// Len returns the number of stored points.
func (r *PointPair) Len() int { return r.n }

// Points returns the stored points, oldest first.
func (r *PointPair) Points() []Point {
	out := make([]Point, r.n)
	copy(out, r.pts[:r.n])
	return out
}

// Line returns the connecting segment. A single point draws no line.
func (r *PointPair) Line() (Segment, bool) {
	if r.n < pairCapacity {
		return Segment{}, false
	}
	return Segment{From: r.pts[0], To: r.pts[1]}, true
}

// Reset empties the pair.
func (r *PointPair) Reset() { r.n = 0 }
