package presenter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
	"github.com/opensarlab/osl-notebook-kit/ui/model"
)

// JobFilterView shows the picker options and the filter outcome.
type JobFilterView interface {
	SetDateOptions(opts []string, start, end int)
	SetPathOptions(paths []string)
	SetResult(string)
	ShowError(error)
}

type enrichResult struct {
	batch jobs.Batch
	err   error
}

// JobFilterPresenter applies the date, path and orbit selections to a job
// batch and reports how many jobs remain.
type JobFilterPresenter struct {
	all    jobs.Batch
	dates  *model.DateRangeModel
	paths  []string
	orbit  jobs.OrbitDirection
	view   JobFilterView
	logger *slog.Logger

	result   jobs.Batch
	enriched chan enrichResult
	cancel   context.CancelFunc
}

// NewJobFilterPresenter builds the date options from every granule in batch.
func NewJobFilterPresenter(batch jobs.Batch, view JobFilterView, logger *slog.Logger) (*JobFilterPresenter, error) {
	dates, err := jobs.JobDates(batch)
	if err != nil {
		return nil, fmt.Errorf("job dates: %w", err)
	}
	dm, err := model.NewDateRangeModel(dates)
	if err != nil {
		return nil, fmt.Errorf("date range: %w", err)
	}
	p := &JobFilterPresenter{all: batch, dates: dm, paths: []string{jobs.AllPaths}, view: view, logger: logger}
	start, end := dm.Index()
	view.SetDateOptions(dm.Options(), start, end)
	view.SetPathOptions(jobs.Paths(batch))
	return p, nil
}

// SetStart selects the first day option.
func (p *JobFilterPresenter) SetStart(i int) {
	if p == nil {
		return
	}
	p.dates.SetStart(i)
	p.syncDates()
}

// SetEnd selects the last day option.
func (p *JobFilterPresenter) SetEnd(i int) {
	if p == nil {
		return
	}
	p.dates.SetEnd(i)
	p.syncDates()
}

func (p *JobFilterPresenter) syncDates() {
	start, end := p.dates.Index()
	p.view.SetDateOptions(p.dates.Options(), start, end)
	p.Refresh()
}

// SetPath selects a single path option, AllPaths included.
func (p *JobFilterPresenter) SetPath(path string) {
	if p == nil {
		return
	}
	p.paths = []string{path}
	p.Refresh()
}

// SetOrbit selects an orbit direction; an unrecognised value clears the
// orbit filter.
func (p *JobFilterPresenter) SetOrbit(s string) {
	if p == nil {
		return
	}
	d, _ := jobs.ParseOrbitDirection(s)
	p.orbit = d
	p.Refresh()
}

func (p *JobFilterPresenter) filters() []jobs.Filter {
	fs := []jobs.Filter{jobs.ByDate(p.dates.Range())}
	if !p.enrichedAll() {
		return fs
	}
	fs = append(fs, jobs.ByPath(p.paths))
	if p.orbit != "" {
		fs = append(fs, jobs.ByOrbit(p.orbit))
	}
	return fs
}

func (p *JobFilterPresenter) enrichedAll() bool {
	for _, j := range p.all {
		if !j.Enriched {
			return false
		}
	}
	return true
}

// Refresh re-applies every filter. Path and orbit filters only apply once
// the batch has been enriched.
func (p *JobFilterPresenter) Refresh() {
	if p == nil {
		return
	}
	out, err := jobs.Apply(p.all, p.filters()...)
	if err != nil {
		p.view.ShowError(err)
		return
	}
	p.result = out
	p.view.SetResult(fmt.Sprintf("%s of %s jobs", humanize.Comma(int64(len(out))), humanize.Comma(int64(len(p.all)))))
}

// Filtered returns the jobs kept by the last Refresh.
func (p *JobFilterPresenter) Filtered() jobs.Batch {
	if p == nil {
		return nil
	}
	return p.result
}

// StartEnrichment looks up path and orbit metadata in the background on a
// copy of the batch. Tick swaps the copy in once the lookup completes.
func (p *JobFilterPresenter) StartEnrichment(ctx context.Context, lookup jobs.MetadataLookup) {
	if p.enriched != nil {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)
	work := make(jobs.Batch, len(p.all))
	for i, j := range p.all {
		cp := *j
		cp.Granules = append([]string(nil), j.Granules...)
		work[i] = &cp
	}
	ch := make(chan enrichResult, 1)
	p.enriched = ch
	logger := p.logger
	go func() {
		err := jobs.EnrichPathsOrbits(ctx, work, lookup, logger)
		ch <- enrichResult{batch: work, err: err}
	}()
	p.view.SetResult("looking up paths and orbits...")
}

// Tick applies a finished enrichment. Call from the UI loop.
func (p *JobFilterPresenter) Tick() {
	if p == nil || p.enriched == nil {
		return
	}
	select {
	case res := <-p.enriched:
		p.enriched = nil
		if res.err != nil {
			if p.logger != nil {
				p.logger.Error("enrichment failed", "error", res.err)
			}
			p.view.ShowError(res.err)
			return
		}
		p.all = res.batch
		p.view.SetPathOptions(jobs.Paths(p.all))
		p.Refresh()
	default:
	}
}

// Close cancels an outstanding enrichment.
func (p *JobFilterPresenter) Close() {
	if p != nil && p.cancel != nil {
		p.cancel()
	}
}
