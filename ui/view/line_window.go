package view

import (
	"image"

	"github.com/opensarlab/osl-notebook-kit/assets"
	"github.com/opensarlab/osl-notebook-kit/ui/images"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// LineWindow manages the optional two-point selection window.
type LineWindow interface {
	OpenOrFocus()
	ShowImage(img image.Image)
	SetStatus(text string)
}

type lineWindow struct {
	initial   image.Image
	style     theme.Style
	onClick   func(x, y float64, button int)
	onOpen    func()
	win       *ToplevelWidget
	label     *LabelWidget
	status    *LabelWidget
	prevPhoto *Img
}

// NewLineWindow creates a manager; the window itself opens on OpenOrFocus.
// onOpen, if set, runs once the window's widgets exist.
func NewLineWindow(initial image.Image, style theme.Style, onClick func(x, y float64, button int), onOpen func()) LineWindow {
	return &lineWindow{initial: initial, style: style, onClick: onClick, onOpen: onOpen}
}

func (v *lineWindow) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	pal := v.style.Palette()
	win := App.Toplevel(Borderwidth(2), Background(pal.AppBg))
	win.WmTitle("Line Selector")
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.destroy)
	v.win = win

	title, lines := assets.Tips(assets.LineTipsText)
	head := win.Label(Txt(title), Anchor("w"), Foreground(pal.Primary), Background(pal.AppBg))
	Grid(head, Row(0), Column(0), Sticky("w"), Padx("0.4m"))
	for i, l := range lines {
		Grid(win.Label(Txt(l), Anchor("w"), Foreground(pal.Text), Background(pal.AppBg)), Row(1+i), Column(0), Sticky("w"), Padx("0.4m"))
	}
	row := 1 + len(lines)

	v.prevPhoto = NewPhoto(Data(images.EncodePNG(v.initial)))
	v.label = win.Label(Image(v.prevPhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.label, Row(row), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v.status = win.Label(Txt(" "), Anchor("w"))
	Grid(v.status, Row(row+1), Column(0), Sticky("we"), Padx("0.4m"))
	closeBtn := win.Button(Txt("Close [Esc]"), Command(v.destroy))
	Grid(closeBtn, Row(row+2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	bindPointer(v.label, PointerHandlers{Click: v.onClick})
	Bind(win, "<Escape>", Command(v.destroy))
	if v.onOpen != nil {
		v.onOpen()
	}
}

func (v *lineWindow) ShowImage(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *lineWindow) SetStatus(text string) {
	if v.status != nil {
		v.status.Configure(Txt(text))
	}
}

func (v *lineWindow) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win, v.label, v.status, v.prevPhoto = nil, nil, nil, nil
	}
}
