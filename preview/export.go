package preview

import (
	"log/slog"

	"github.com/opensarlab/osl-notebook-kit/domain/selection"
)

// Exporter summarizes confirmed areas of a preview and, when CropPath is
// set, writes the source pixels of each area to that file.
type Exporter struct {
	Preview  *Preview
	CropPath string
	Logger   *slog.Logger
}

// ExportAOI implements the AOI presenter's export hook.
func (e Exporter) ExportAOI(min, max selection.Point) (string, error) {
	r := e.Preview.AOIRect(min.X, min.Y, max.X, max.Y)
	st, err := e.Preview.Stats(r)
	if err != nil {
		return "", err
	}
	if e.CropPath == "" {
		return st.String(), nil
	}
	if err := e.Preview.SaveCrop(r, e.CropPath); err != nil {
		return "", err
	}
	if e.Logger != nil {
		e.Logger.Info("aoi crop written", "path", e.CropPath, "rect", r.String())
	}
	return st.String() + ", saved " + e.CropPath, nil
}
