package view

import (
	"fmt"
	"image"

	"github.com/opensarlab/osl-notebook-kit/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandlers receive pointer and key events in display coordinates.
// Nil handlers are skipped. Keys are bound on the preview label only, so
// typing into other widgets never reaches them.
type PointerHandlers struct {
	Press   func(x, y float64, button int)
	Release func(x, y float64, button int)
	Click   func(x, y float64, button int)
	Key     func(key string)
	Submit  func()            // Return on the preview
	Hover   func(inside bool) // pointer entered or left the preview
}

// SelectorCanvas shows the rendered preview in a photo label and forwards
// mouse events on it.
type SelectorCanvas interface {
	ShowImage(img image.Image)
	SetStatus(text string)
}

type selectorCanvas struct {
	label     *LabelWidget
	status    *LabelWidget
	prevPhoto *Img // last Tk photo image instance, deleted on replace
}

// NewSelectorCanvas creates the preview label and its status line on the
// main window at row and binds the handlers.
func NewSelectorCanvas(row int, initial image.Image, h PointerHandlers) SelectorCanvas {
	if initial == nil {
		initial = image.NewRGBA(image.Rect(0, 0, 200, 120))
	}
	photo := NewPhoto(Data(images.EncodePNG(initial)))
	v := &selectorCanvas{
		label:     Label(Image(photo), Borderwidth(1), Relief("sunken")),
		status:    Label(Txt(" "), Anchor("w")),
		prevPhoto: photo,
	}
	Grid(v.label, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(v.status, Row(row+1), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"))
	bindPointer(v.label, h)
	return v
}

func bindPointer(w *LabelWidget, h PointerHandlers) {
	for _, b := range []int{1, 2, 3} {
		button := b
		if h.Press != nil || h.Click != nil {
			Bind(w, fmt.Sprintf("<ButtonPress-%d>", button), Command(func(e *Event) {
				if h.Press != nil {
					h.Press(float64(e.X), float64(e.Y), button)
				}
				if h.Click != nil {
					h.Click(float64(e.X), float64(e.Y), button)
				}
			}))
		}
		if h.Release != nil {
			Bind(w, fmt.Sprintf("<ButtonRelease-%d>", button), Command(func(e *Event) {
				h.Release(float64(e.X), float64(e.Y), button)
			}))
		}
	}
	// The label takes keyboard focus while the pointer is over it.
	Bind(w, "<Enter>", Command(func() {
		Focus(w)
		if h.Hover != nil {
			h.Hover(true)
		}
	}))
	if h.Hover != nil {
		Bind(w, "<Leave>", Command(func() { h.Hover(false) }))
	}
	if h.Key != nil {
		Bind(w, "<KeyPress>", Command(func(e *Event) { h.Key(e.Keysym) }))
	}
	if h.Submit != nil {
		Bind(w, "<Return>", Command(h.Submit))
	}
}

func (v *selectorCanvas) ShowImage(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *selectorCanvas) SetStatus(text string) {
	if v.status != nil {
		v.status.Configure(Txt(text))
	}
}
