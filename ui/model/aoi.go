package model

import "github.com/opensarlab/osl-notebook-kit/domain/selection"

// AOIModel holds the last confirmed area of interest in image coordinates.
// The zero value holds no area and is usable.
type AOIModel struct {
	p1, p2 selection.Point
	set    bool
	dirty  bool
}

// Confirm stores a new area and marks it unsaved.
func (m *AOIModel) Confirm(p1, p2 selection.Point) {
	if m == nil {
		return
	}
	if m.set && m.p1 == p1 && m.p2 == p2 {
		return
	}
	m.p1, m.p2, m.set, m.dirty = p1, p2, true, true
}

// Restore loads a persisted area without marking it unsaved.
func (m *AOIModel) Restore(p1, p2 selection.Point) {
	if m == nil {
		return
	}
	m.p1, m.p2, m.set, m.dirty = p1, p2, true, false
}

// Corners returns the confirmed area. ok is false when none was confirmed.
func (m *AOIModel) Corners() (p1, p2 selection.Point, ok bool) {
	if m == nil || !m.set {
		return selection.Point{}, selection.Point{}, false
	}
	return m.p1, m.p2, true
}

// Dirty reports whether the area changed since the last MarkSaved.
func (m *AOIModel) Dirty() bool { return m != nil && m.dirty }

// MarkSaved clears the unsaved flag.
func (m *AOIModel) MarkSaved() {
	if m != nil {
		m.dirty = false
	}
}
