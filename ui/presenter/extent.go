package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opensarlab/osl-notebook-kit/domain/selection"
)

// Extent is a rectangle in image coordinates outlined under the selection.
type Extent struct {
	P1, P2 selection.Point
}

// ParseExtent reads "x1,y1,x2,y2".
func ParseExtent(s string) (Extent, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Extent{}, fmt.Errorf("extent %q: want x1,y1,x2,y2", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Extent{}, fmt.Errorf("extent %q: %w", s, err)
		}
		v[i] = f
	}
	return Extent{P1: selection.Point{X: v[0], Y: v[1]}, P2: selection.Point{X: v[2], Y: v[3]}}, nil
}
