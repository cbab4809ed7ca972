package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/app"
	"github.com/opensarlab/osl-notebook-kit/asf"
	"github.com/opensarlab/osl-notebook-kit/cache"
	"github.com/opensarlab/osl-notebook-kit/config"
	"github.com/opensarlab/osl-notebook-kit/domain/jobs"
	"github.com/opensarlab/osl-notebook-kit/hyp3"
	"github.com/opensarlab/osl-notebook-kit/preview"
)

func main() {
	flags, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(flags.ConfigPath)
	logger := NewLogger(levelFor(cfg.Debug))
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", flags.ConfigPath, "error", err)
	}
	if flags.ImagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: osl-notebook-kit -image <raster> [-jobs listing.json]")
		os.Exit(2)
	}

	pv, err := preview.Load(flags.ImagePath, flags.previewOptions(cfg.FigWidth, cfg.FigHeight))
	if err != nil {
		logger.Error("preview failed", "error", err)
		os.Exit(1)
	}
	logger.Info("preview loaded", "path", flags.ImagePath, "vmin", pv.VMin, "vmax", pv.VMax,
		"width", pv.View.SrcW, "height", pv.View.SrcH)
	logProductInfo(flags.ImagePath, logger)

	var (
		batch   jobs.Batch
		lookup  jobs.MetadataLookup
		closers []func() error
	)
	if flags.JobsPath != "" {
		batch, err = loadJobs(flags.JobsPath, flags.Project, logger)
		if err != nil {
			logger.Error("job listing failed", "error", err)
			os.Exit(1)
		}
		if !flags.Offline {
			lookup, closers = metadataLookup(cfg, logger)
		}
	}

	c := app.BuildContainer(cfg, flags.ConfigPath, logger, pv, batch, lookup)
	c.CropPath = flags.CropPath
	c.StackExtent, c.CommonExtent = flags.StackExtent, flags.CommonExtent
	app.NewApp("Area of Interest Selector", c, closers...).Start()
}

func loadJobs(path, project string, logger *slog.Logger) (jobs.Batch, error) {
	batch, err := hyp3.LoadFile(path)
	if err != nil {
		return nil, err
	}
	batch, _ = hyp3.Succeeded(batch)
	if project = strings.TrimSpace(project); project == "" {
		if rtc := hyp3.RTCProjects(batch); len(rtc) > 0 {
			logger.Info("rtc projects available", "projects", rtc)
		}
		return batch, nil
	}
	names := jobs.ProjectNames(batch)
	filtered, _ := jobs.Apply(batch, jobs.ByProject(project))
	if len(filtered) == 0 {
		if s, ok := jobs.SuggestProject(project, names); ok {
			return nil, fmt.Errorf("no jobs in project %q, did you mean %q?", project, s)
		}
		return nil, fmt.Errorf("no jobs in project %q", project)
	}
	logger.Info("jobs loaded", "project", project, "count", len(filtered))
	return filtered, nil
}

func metadataLookup(cfg *config.Config, logger *slog.Logger) (jobs.MetadataLookup, []func() error) {
	client := asf.NewClientWithHTTP(cfg.SearchURL, &http.Client{Timeout: cfg.HTTPTimeout()})
	if cfg.CachePath == "" {
		return client, nil
	}
	mc, err := cache.Open(cfg.CachePath, client, logger)
	if err != nil {
		logger.Warn("metadata cache disabled", "path", cfg.CachePath, "error", err)
		return client, nil
	}
	return mc, []func() error{mc.Close}
}
