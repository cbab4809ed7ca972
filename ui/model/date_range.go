package model

import (
	"errors"
	"time"

	"github.com/opensarlab/osl-notebook-kit/domain/granule"
	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
)

// OptionLayout is the label format of each daily option.
const OptionLayout = "01/02/2006"

// ErrNoDates is returned when a date range model is built from no dates.
var ErrNoDates = errors.New("no dates")

// DateRangeModel offers one option per day between the earliest and latest
// acquisition date and tracks the selected [start, end] index pair.
// It is decoupled from the UI; presenters read Values() after each change.
type DateRangeModel struct {
	days       []time.Time
	start, end int
}

// NewDateRangeModel builds daily options from YYYYMMDD dates. The initial
// selection spans every option.
func NewDateRangeModel(dates []string) (*DateRangeModel, error) {
	if len(dates) == 0 {
		return nil, ErrNoDates
	}
	var lo, hi time.Time
	for i, d := range dates {
		t, err := granule.ParseDay(d)
		if err != nil {
			return nil, err
		}
		if i == 0 || t.Before(lo) {
			lo = t
		}
		if i == 0 || t.After(hi) {
			hi = t
		}
	}
	m := &DateRangeModel{}
	for d := lo; !d.After(hi); d = d.AddDate(0, 0, 1) {
		m.days = append(m.days, d)
	}
	m.end = len(m.days) - 1
	return m, nil
}

// Options returns the formatted day labels.
func (m *DateRangeModel) Options() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.days))
	for i, d := range m.days {
		out[i] = d.Format(OptionLayout)
	}
	return out
}

// Index returns the selected option indices.
func (m *DateRangeModel) Index() (start, end int) {
	if m == nil {
		return 0, 0
	}
	return m.start, m.end
}

// SetStart moves the start index, pushing end forward when they would cross.
func (m *DateRangeModel) SetStart(i int) {
	if m == nil || len(m.days) == 0 {
		return
	}
	m.start = m.clamp(i)
	if m.end < m.start {
		m.end = m.start
	}
}

// SetEnd moves the end index, pulling start back when they would cross.
func (m *DateRangeModel) SetEnd(i int) {
	if m == nil || len(m.days) == 0 {
		return
	}
	m.end = m.clamp(i)
	if m.start > m.end {
		m.start = m.end
	}
}

// Values returns the selected start and end days.
func (m *DateRangeModel) Values() (start, end time.Time) {
	if m == nil || len(m.days) == 0 {
		return time.Time{}, time.Time{}
	}
	return m.days[m.start], m.days[m.end]
}

// Range returns the selection as a job filter range.
func (m *DateRangeModel) Range() jobs.DateRange {
	s, e := m.Values()
	return jobs.DateRange{Start: s, End: e}
}

func (m *DateRangeModel) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(m.days) {
		return len(m.days) - 1
	}
	return i
}
