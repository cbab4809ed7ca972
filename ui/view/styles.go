package view

import (
	"github.com/opensarlab/osl-notebook-kit/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ApplyStyles activates the base theme and configures the semantic widget
// styles for s.
func ApplyStyles(s theme.Style) {
	pal := s.Palette()
	if s.Dark {
		_ = ActivateTheme("azure dark")
	} else {
		_ = ActivateTheme("azure light")
	}
	App.Configure(Background(pal.AppBg))
	StyleConfigure(theme.StylePrimaryButton,
		Background(pal.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}
