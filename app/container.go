package app

import (
	"log/slog"

	"github.com/opensarlab/osl-notebook-kit/config"
	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
	"github.com/opensarlab/osl-notebook-kit/domain/selection"
	"github.com/opensarlab/osl-notebook-kit/preview"
	"github.com/opensarlab/osl-notebook-kit/ui/model"
	"github.com/opensarlab/osl-notebook-kit/ui/presenter"
	"github.com/opensarlab/osl-notebook-kit/ui/theme"
	"github.com/opensarlab/osl-notebook-kit/ui/view"
)

// Container assembles models, selectors, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Style      theme.Style
	Preview    *preview.Preview
	CropPath   string // written on every confirm when set

	StackExtent, CommonExtent *presenter.Extent

	Rectangle *selection.RectangleSelector
	Line      *selection.LineSelector
	AOI       *model.AOIModel
	Jobs      jobs.Batch
	Lookup    jobs.MetadataLookup

	RootView *view.RootView

	// Presenters
	AOIPresenter  *presenter.AOIPresenter
	LinePresenter *presenter.LinePresenter
	ToolPresenter *presenter.ToolStatePresenter
	JobPresenter  *presenter.JobFilterPresenter
	Loop          *presenter.Loop
}

// BuildContainer constructs the non-view components. Presenters are wired by
// the app once the root view exists.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, pv *preview.Preview, batch jobs.Batch, lookup jobs.MetadataLookup) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger, Preview: pv, Jobs: batch, Lookup: lookup}
	style, err := theme.FromConfig(cfg.Style)
	if err != nil && logger != nil {
		logger.Warn("style fallback", "error", err)
	}
	c.Style = style

	c.Rectangle = selection.NewRectangleSelector(selection.RectangleOptions{
		Buttons:  selectorButtons(cfg),
		MinSpanX: cfg.MinSpanX,
		MinSpanY: cfg.MinSpanY,
		Keys:     selection.KeyMap{Deactivate: cfg.DeactivateKey, Activate: cfg.ActivateKeys},
	}, logger)
	c.Line = selection.NewLineSelector(logger)
	c.AOI = &model.AOIModel{}
	if cfg.HasAOI() {
		p1, p2 := cfg.AOI()
		c.AOI.Restore(p1, p2)
		c.Rectangle.Selection().Set(p1, p2)
	}
	c.RootView = view.NewRootView(cfg, cfgPath, c.Style, logger)
	return c
}

func selectorButtons(cfg *config.Config) []selection.MouseButton {
	buttons := make([]selection.MouseButton, 0, len(cfg.Buttons))
	for _, b := range cfg.Buttons {
		buttons = append(buttons, selection.MouseButton(b))
	}
	return buttons
}
