package view

import (
	"github.com/opensarlab/osl-notebook-kit/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the selector tool state.
type StatusBar interface {
	SetToolState(text string)
}

type statusBar struct {
	toolLbl *LabelWidget
}

// NewStatusBar creates the tool state label at (row, col) of parent, or of
// the App root when parent is nil.
func NewStatusBar(parent *FrameWidget, row, col int, style theme.Style) StatusBar {
	pal := style.Palette()
	s := &statusBar{toolLbl: Label(Width(22), Txt("Selector: -"), Foreground("white"), Background(pal.Accent), Borderwidth(1), Relief("groove"))}
	if parent != nil {
		Grid(s.toolLbl, In(parent), Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.toolLbl, Row(row), Column(col), Sticky("w"), Padx("0.2m"))
	}
	return s
}

func (s *statusBar) SetToolState(text string) {
	if s != nil && s.toolLbl != nil {
		s.toolLbl.Configure(Txt(text))
	}
}
