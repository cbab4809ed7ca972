package main

import (
	"flag"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/preview"
	"github.com/opensarlab/osl-notebook-kit/ui/presenter"
)

type cliFlags struct {
	ConfigPath string
	ImagePath  string
	JobsPath   string
	Project    string
	Offline    bool
	CropPath   string

	// Display limits as 16-bit luminance. nil keeps the percentile default.
	VMin, VMax *float64

	StackExtent, CommonExtent *presenter.Extent
}

func parseFlags(fs *flag.FlagSet, args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs.StringVar(&f.ConfigPath, "config", "osl-notebook-kit.json", "config file (.json, .yaml, .yml or .toml)")
	fs.StringVar(&f.ImagePath, "image", "", "raster to select on (PNG, JPEG or TIFF)")
	fs.StringVar(&f.JobsPath, "jobs", "", "optional HyP3 job listing (JSON) to filter")
	fs.StringVar(&f.Project, "project", "", "keep only jobs from this project")
	fs.BoolVar(&f.Offline, "offline", false, "skip path/orbit lookups")
	vmin := fs.Float64("vmin", 0, "display minimum as 16-bit luminance, 0..65535 (default 1st percentile)")
	vmax := fs.Float64("vmax", 0, "display maximum as 16-bit luminance, 0..65535 (default 99th percentile)")
	fs.StringVar(&f.CropPath, "crop", "", "write the confirmed area of the source raster to this PNG")
	stack := fs.String("stack-extent", "", "outline the full stack extent, x1,y1,x2,y2 in image pixels")
	common := fs.String("common-extent", "", "outline the extent common to the stack, x1,y1,x2,y2 in image pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "vmin":
			f.VMin = vmin
		case "vmax":
			f.VMax = vmax
		}
	})
	var err error
	if f.StackExtent, err = extentFlag(*stack); err != nil {
		return nil, err
	}
	if f.CommonExtent, err = extentFlag(*common); err != nil {
		return nil, err
	}
	return f, nil
}

// previewOptions sizes the preview to the configured figure.
func (f *cliFlags) previewOptions(maxW, maxH int) preview.Options {
	return preview.Options{MaxW: maxW, MaxH: maxH, VMin: f.VMin, VMax: f.VMax}
}

func extentFlag(v string) (*presenter.Extent, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	e, err := presenter.ParseExtent(v)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
