package view

import (
	"log/slog"
	"strconv"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// JobFilterHandlers receive picker changes. Nil handlers are skipped.
type JobFilterHandlers struct {
	StartChanged func(index int)
	EndChanged   func(index int)
	PathChanged  func(path string)
	OrbitChanged func(orbit string)
}

var orbitOptions = []string{"Any", "ASCENDING", "DESCENDING"}

// JobFilterPanel shows date, path and orbit pickers with the filter result.
type JobFilterPanel struct {
	logger *slog.Logger
	h      JobFilterHandlers

	start  *TComboboxWidget
	end    *TComboboxWidget
	path   *TComboboxWidget
	orbit  *TComboboxWidget
	result *LabelWidget
	paths  []string
}

// NewJobFilterPanel builds the pickers starting at row and returns the
// panel with the next free row.
func NewJobFilterPanel(row int, h JobFilterHandlers, logger *slog.Logger) (*JobFilterPanel, int) {
	v := &JobFilterPanel{logger: logger, h: h}
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	makePicker := func(col int, label string, values []string) *TComboboxWidget {
		Grid(Label(Txt(label), Anchor("w")), In(frame), Row(0), Column(col), Sticky("w"), Padx("0.2m"))
		cb := TCombobox(Values(values), Width(14))
		Grid(cb, In(frame), Row(1), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		return cb
	}
	v.start = makePicker(0, "Start", []string{"-"})
	v.end = makePicker(1, "End", []string{"-"})
	v.path = makePicker(2, "Path", []string{"-"})
	v.orbit = makePicker(3, "Orbit", orbitOptions)
	v.orbit.Current(0)

	v.result = Label(Txt(" "), Anchor("w"))
	Grid(v.result, Row(row+1), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"))

	Bind(v.start, "<<ComboboxSelected>>", Command(func() {
		if i, ok := v.selected(v.start); ok && v.h.StartChanged != nil {
			v.h.StartChanged(i)
		}
	}))
	Bind(v.end, "<<ComboboxSelected>>", Command(func() {
		if i, ok := v.selected(v.end); ok && v.h.EndChanged != nil {
			v.h.EndChanged(i)
		}
	}))
	Bind(v.path, "<<ComboboxSelected>>", Command(func() {
		if i, ok := v.selected(v.path); ok && i < len(v.paths) && v.h.PathChanged != nil {
			v.h.PathChanged(v.paths[i])
		}
	}))
	Bind(v.orbit, "<<ComboboxSelected>>", Command(func() {
		if i, ok := v.selected(v.orbit); ok && v.h.OrbitChanged != nil {
			v.h.OrbitChanged(orbitOptions[i])
		}
	}))
	return v, row + 2
}

func (v *JobFilterPanel) selected(cb *TComboboxWidget) (int, bool) {
	idx, err := strconv.Atoi(cb.Current(nil))
	if err != nil || idx < 0 {
		if v.logger != nil {
			v.logger.Error("picker selection parse error", "error", err)
		}
		return 0, false
	}
	return idx, true
}

func (v *JobFilterPanel) SetDateOptions(opts []string, start, end int) {
	if v == nil || len(opts) == 0 {
		return
	}
	v.start.Configure(Values(opts))
	v.end.Configure(Values(opts))
	v.start.Current(start)
	v.end.Current(end)
}

func (v *JobFilterPanel) SetPathOptions(paths []string) {
	if v == nil || len(paths) == 0 {
		return
	}
	v.paths = append(v.paths[:0], paths...)
	v.path.Configure(Values(paths))
	v.path.Current(0)
}

func (v *JobFilterPanel) SetResult(text string) {
	if v != nil && v.result != nil {
		v.result.Configure(Txt(text))
	}
}

func (v *JobFilterPanel) ShowError(err error) {
	if v == nil || err == nil {
		return
	}
	if v.logger != nil {
		v.logger.Error("job filter failed", "error", err)
	}
	v.SetResult("error: " + err.Error())
}
