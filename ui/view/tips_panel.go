package view

import (
	"fmt"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/assets"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// NewTipsPanel lays out embedded usage tips in column col, spanning rows
// from row. It returns the next free row.
func NewTipsPanel(text string, row, col int, style theme.Style) int {
	pal := style.Palette()
	title, lines := assets.Tips(text)
	head := Label(Txt(title), Anchor("w"), Font(fmt.Sprintf("helvetica %d bold", style.FontSize)), Foreground(pal.Primary), Background(pal.AppBg))
	Grid(head, Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.3m"))
	body := Label(Txt(strings.Join(lines, "\n")), Anchor("nw"), Justify("left"), Foreground(pal.Text), Background(pal.AppBg))
	Grid(body, Row(row+1), Column(col), Sticky("nw"), Padx("0.4m"))
	return row + 2
}
