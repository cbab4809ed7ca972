package view

import (
	"image"
	"log/slog"

	"github.com/opensarlab/osl-notebook-kit/assets"
	"github.com/opensarlab/osl-notebook-kit/config"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	style   theme.Style
	logger  *slog.Logger

	// Subviews
	Status      StatusBar
	ConfigPanel ConfigPanel
	Canvas      SelectorCanvas
	Lines       LineWindow
	Jobs        *JobFilterPanel
}

// Handlers groups the callbacks RootView wires to widgets. Nil entries
// leave the corresponding control out.
type Handlers struct {
	Pointer     PointerHandlers
	LineClick   func(x, y float64, button int)
	LineOpened  func()
	Confirm     func()
	Clear       func()
	Toggle      func()
	Exit        func()
	ConfigApply func(*config.Config)
	Jobs        *JobFilterHandlers
}

func NewRootView(cfg *config.Config, cfgPath string, style theme.Style, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, style: style, logger: logger}
}

// Build constructs the layout around preview, which must already be scaled
// to display size.
func (rv *RootView) Build(preview image.Image, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: tool state and buttons
	rv.Status = NewStatusBar(nil, 0, 0, rv.style)

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(1), Columnspan(3), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addButton := func(label string, fn func()) {
		if fn == nil {
			return
		}
		b := TButton(Txt(label), Command(fn), Style(theme.StylePrimaryButton))
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	addButton("Confirm [Enter]", h.Confirm)
	addButton("Clear", h.Clear)
	addButton("Selector On/Off", h.Toggle)
	if h.LineClick != nil {
		rv.Lines = NewLineWindow(preview, rv.style, h.LineClick, h.LineOpened)
		addButton("Line Selector", rv.Lines.OpenOrFocus)
	}
	addButton("Exit", h.Exit)

	// Row 1-2: preview and selection status; tips and settings on the right.
	pointer := h.Pointer
	pointer.Submit = h.Confirm
	rv.Canvas = NewSelectorCanvas(1, preview, pointer)
	next := NewTipsPanel(assets.AOITipsText, 1, 4, rv.style)
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, h.ConfigApply, rv.logger)
	rv.ConfigPanel.Build(next)

	if h.Jobs != nil {
		rv.Jobs, _ = NewJobFilterPanel(3, *h.Jobs, rv.logger)
	}
}

// ShowImage proxies to the selector canvas.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowImage(img)
	}
}

// SetStatus proxies to the selector canvas.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetStatus(text)
	}
}

// SetToolState proxies to the status bar.
func (rv *RootView) SetToolState(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetToolState(text)
	}
}
