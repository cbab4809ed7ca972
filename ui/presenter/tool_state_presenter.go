package presenter

import (
	"github.com/opensarlab/osl-notebook-kit/domain/selection"
)

// ToolSource provides the toggle methods the presenter requires.
type ToolSource interface {
	Current() selection.ToolState
}

// ToolStateView sets the tool state label in the view.
type ToolStateView interface{ SetToolState(string) }

// ToolStatePresenter receives toggle transitions and reflects the latest one
// in the view on the next Tick.
type ToolStatePresenter struct {
	src     ToolSource
	view    ToolStateView
	latest  selection.ToolState
	shown   bool
	pending []selection.ToolState
}

func NewToolStatePresenter(src ToolSource, view ToolStateView) *ToolStatePresenter {
	return &ToolStatePresenter{src: src, view: view}
}

// OnState queues a transitioned state from the toggle listener.
func (p *ToolStatePresenter) OnState(_, next selection.ToolState) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick processes queued states and updates the view with the most recent
// one. The first Tick always shows the current state.
func (p *ToolStatePresenter) Tick() {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	next := p.latest
	if len(p.pending) > 0 {
		next = p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
	} else if !p.shown {
		next = p.src.Current()
	}
	if !p.shown || next != p.latest {
		p.latest = next
		p.shown = true
		p.view.SetToolState("Selector: " + next.String())
	}
}
