package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/opensarlab/osl-notebook-kit/config"
	"github.com/opensarlab/osl-notebook-kit/debug"
	"github.com/opensarlab/osl-notebook-kit/preview"
	"github.com/opensarlab/osl-notebook-kit/ui/presenter"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"
	"github.com/opensarlab/osl-notebook-kit/ui/view"
)

const tick = 100 * time.Millisecond

type app struct {
	c       *AppContainer
	title   string
	ctx     context.Context
	cancel  context.CancelFunc
	afterID string
	closers []func() error
}

// NewApp prepares the main window for c. closers run on exit.
func NewApp(title string, c *AppContainer, closers ...func() error) *app {
	a := &app{c: c, title: title, closers: closers}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	App.WmTitle(title)
	w := c.Preview.Display.Bounds().Dx() + 360
	h := c.Preview.Display.Bounds().Dy() + 160
	if c.Jobs != nil {
		h += 90
	}
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", w, h))
	return a
}

// Start builds the views, wires presenters and blocks in the Tk loop.
func (a *app) Start() {
	c := a.c
	logger := c.Logger
	view.ApplyStyles(c.Style)

	h := view.Handlers{
		Pointer: view.PointerHandlers{
			Press:   func(x, y float64, b int) { c.AOIPresenter.Press(x, y, b) },
			Release: func(x, y float64, b int) { c.AOIPresenter.Release(x, y, b) },
			Key:     func(k string) { c.AOIPresenter.Key(k) },
			Hover:   func(in bool) { c.AOIPresenter.Hover(in) },
		},
		LineClick:  func(x, y float64, b int) { c.LinePresenter.Click(x, y, b) },
		LineOpened: func() { c.LinePresenter.Refresh() },
		Confirm: func() {
			if err := c.AOIPresenter.Confirm(); err != nil {
				c.RootView.SetStatus(err.Error())
			}
		},
		Clear: func() {
			c.Rectangle.Selection().Clear()
			c.LinePresenter.Clear()
			c.AOIPresenter.Redraw()
			c.RootView.SetStatus(" ")
		},
		Toggle: func() {
			tg := c.Rectangle.Toggle()
			tg.SetActive(!tg.Active())
		},
		Exit:        a.exitHandler,
		ConfigApply: a.applyConfig,
	}
	if c.Jobs != nil {
		h.Jobs = &view.JobFilterHandlers{
			StartChanged: func(i int) { c.JobPresenter.SetStart(i) },
			EndChanged:   func(i int) { c.JobPresenter.SetEnd(i) },
			PathChanged:  func(p string) { c.JobPresenter.SetPath(p) },
			OrbitChanged: func(o string) { c.JobPresenter.SetOrbit(o) },
		}
	}
	c.RootView.Build(c.Preview.Display, h)

	pv := c.Preview
	store := config.AOIStore{Cfg: c.Config, Path: c.ConfigPath}
	c.AOIPresenter = presenter.NewAOIPresenter(c.Rectangle, c.AOI, store, c.RootView, pv.Display, pv.View, c.Style, logger)
	c.AOIPresenter.SetExporter(preview.Exporter{Preview: pv, CropPath: c.CropPath, Logger: logger})
	c.AOIPresenter.SetStackExtents(c.StackExtent, c.CommonExtent)
	c.LinePresenter = presenter.NewLinePresenter(c.Line, c.RootView.Lines, pv.Display, pv.View, c.Style)
	c.ToolPresenter = presenter.NewToolStatePresenter(c.Rectangle.Toggle(), c.RootView)
	c.Rectangle.Toggle().AddListener(c.ToolPresenter.OnState)
	if c.Jobs != nil {
		jp, err := presenter.NewJobFilterPresenter(c.Jobs, c.RootView.Jobs, logger)
		if err != nil {
			c.RootView.Jobs.ShowError(err)
		} else {
			c.JobPresenter = jp
			jp.Refresh()
			if c.Lookup != nil {
				jp.StartEnrichment(a.ctx, c.Lookup)
			}
		}
	}
	c.AOIPresenter.Redraw()
	if p1, p2, ok := c.AOI.Corners(); ok {
		c.RootView.SetStatus("saved: " + presenter.FormatSelection(p1, p2))
	}

	if c.Config.Debug {
		debug.StartRuntimeLogger(a.ctx, 2*time.Second, logger)
	}

	c.Loop = presenter.NewLoop(c.ToolPresenter, c.JobPresenter, a.scheduleUpdate)
	c.Loop.Tick()
	App.Wait()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}

func (a *app) applyConfig(cfg *config.Config) {
	c := a.c
	c.Rectangle.SetMinSpan(cfg.MinSpanX, cfg.MinSpanY)
	c.Rectangle.SetButtons(selectorButtons(cfg))
	style, err := theme.FromConfig(cfg.Style)
	if err != nil && c.Logger != nil {
		c.Logger.Warn("style fallback", "error", err)
	}
	c.Style = style
	view.ApplyStyles(style)
	c.AOIPresenter.SetStyle(style)
	c.LinePresenter.SetStyle(style)
	if c.Logger != nil {
		c.Logger.Info("selector settings applied",
			slog.Float64("min_span_x", cfg.MinSpanX),
			slog.Float64("min_span_y", cfg.MinSpanY),
			slog.Any("buttons", cfg.Buttons),
			slog.Float64("face_alpha", cfg.Style.FaceAlpha),
			slog.Bool("dark", cfg.Style.Dark))
	}
}

func (a *app) exitHandler() {
	a.cancel()
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if jp := a.c.JobPresenter; jp != nil {
		jp.Close()
		if sel := jp.Filtered(); a.c.Logger != nil && len(sel) > 0 {
			ids := make([]string, len(sel))
			for i, j := range sel {
				ids[i] = j.ID
			}
			a.c.Logger.Info("jobs selected", "count", len(ids), "ids", ids)
		}
	}
	for _, fn := range a.closers {
		if err := fn(); err != nil && a.c.Logger != nil {
			a.c.Logger.Error("close failed", "error", err)
		}
	}
	Destroy(App)
}
