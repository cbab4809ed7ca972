package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opensarlab/osl-notebook-kit/domain/granule"
)

// logProductInfo logs what the raster file name and its surrounding RTC
// product directory reveal: acquisition date, polarization and the
// polarization combinations available across sibling products.
func logProductInfo(imagePath string, logger *slog.Logger) {
	attrs := []any{"path", imagePath}
	if d, err := granule.AcquisitionDate(filepath.Base(imagePath)); err == nil {
		attrs = append(attrs, "acquired", d.Format("2006-01-02"))
	}
	if pol, ok := granule.PolarityFromPath(imagePath); ok {
		attrs = append(attrs, "polarization", pol)
	}

	productDir := filepath.Dir(imagePath)
	if entries, err := os.ReadDir(productDir); err == nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if dates := granule.ProductDates(names); len(dates) > 0 {
			attrs = append(attrs, "product_dates", dates)
		}
	}
	if pols, err := granule.RTCPolarizations(os.DirFS(filepath.Dir(productDir))); err == nil && len(pols) > 0 {
		attrs = append(attrs, "polarization_options", granule.PowerSet(pols))
	}
	logger.Info("product info", attrs...)
}
