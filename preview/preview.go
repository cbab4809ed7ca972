// Package preview loads a raster file and renders the grayscale preview
// shown by the selectors.
package preview

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/tiff"

	"github.com/opensarlab/osl-notebook-kit/ui/images"
)

// Preview is a rendered raster ready for display.
type Preview struct {
	Source  image.Image // decoded file
	Raster  images.Raster
	Display image.Image // grayscale render scaled to the display size
	View    images.Viewport
	VMin    float64
	VMax    float64
}

// AOIStats describes the samples inside a confirmed area.
type AOIStats struct {
	Rect     image.Rectangle
	Min, Max float64 // 1st and 99th percentiles
}

func (s AOIStats) String() string {
	return fmt.Sprintf("%dx%d px, %.2f..%.2f", s.Rect.Dx(), s.Rect.Dy(), s.Min, s.Max)
}

// Options controls rendering. A nil VMin or VMax selects the 1st or 99th
// percentile of the data respectively; each limit defaults on its own.
// Limits are 16-bit luminance values (0..65535).
type Options struct {
	MaxW, MaxH int
	VMin, VMax *float64
}

// Open decodes a PNG, JPEG or TIFF file.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster %s: %w", path, err)
	}
	return img, nil
}

// Render converts img to grayscale between the configured limits and scales
// it to fit opts.MaxW x opts.MaxH.
func Render(img image.Image, opts Options) (*Preview, error) {
	r := images.RasterFromImage(img)
	vmin, vmax := images.AutoRange(r)
	if opts.VMin != nil {
		vmin = *opts.VMin
	}
	if opts.VMax != nil {
		vmax = *opts.VMax
	}
	gray, err := images.Gray(r, vmin, vmax)
	if err != nil {
		return nil, err
	}
	display, vp := images.ScaleToFit(gray, opts.MaxW, opts.MaxH)
	return &Preview{Source: img, Raster: r, Display: display, View: vp, VMin: vmin, VMax: vmax}, nil
}

// AOIRect converts image-space corners to a pixel rectangle of the source.
func (p *Preview) AOIRect(x1, y1, x2, y2 float64) image.Rectangle {
	return images.AOIRect(x1, y1, x2, y2, image.Rect(0, 0, p.Raster.W, p.Raster.H))
}

// Stats summarizes the source samples inside r.
func (p *Preview) Stats(r image.Rectangle) (AOIStats, error) {
	sub, err := images.SubsetRaster(p.Raster, r)
	if err != nil {
		return AOIStats{}, fmt.Errorf("aoi stats: %w", err)
	}
	lo, hi := images.AutoRange(sub)
	return AOIStats{Rect: r, Min: lo, Max: hi}, nil
}

// SaveCrop writes the source pixels inside r to path as PNG.
func (p *Preview) SaveCrop(r image.Rectangle, path string) error {
	crop, _, err := images.ExtractAOI(p.Source, r.Add(p.Source.Bounds().Min))
	if err != nil {
		return fmt.Errorf("crop: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crop: %w", err)
	}
	if err := png.Encode(f, crop); err != nil {
		f.Close()
		return fmt.Errorf("crop: encode %s: %w", path, err)
	}
	return f.Close()
}

// Load opens path and renders it.
func Load(path string, opts Options) (*Preview, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Render(img, opts)
}
