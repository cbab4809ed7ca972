package jobs

import (
	"context"
	"errors"
	"strings"
)

// AllPaths selects every flight path in FilterByPath.
const AllPaths = "All Paths"

// ErrNotEnriched marks a job whose path and orbit have not been looked up.
var ErrNotEnriched = errors.New("job has no path/orbit metadata")

// OrbitDirection is the ascending/descending pass attribute of an acquisition.
type OrbitDirection string

const (
	Ascending  OrbitDirection = "ASCENDING"
	Descending OrbitDirection = "DESCENDING"
)

// ParseOrbitDirection normalises user or API spellings.
func ParseOrbitDirection(s string) (OrbitDirection, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASCENDING", "ASC", "A":
		return Ascending, true
	case "DESCENDING", "DESC", "D":
		return Descending, true
	default:
		return "", false
	}
}

// Job describes a unit of remote processing work and the granules it covers.
// Path and OrbitDirection are set once by EnrichPathsOrbits.
type Job struct {
	ID             string
	Name           string
	Type           string
	Status         string
	Granules       []string
	Path           int
	OrbitDirection OrbitDirection
	Enriched       bool
}

// Batch is an ordered collection of jobs. Filters return new batches that
// share the same *Job values.
type Batch []*Job

// GranuleMetadata is the per-granule result of a geodetic metadata lookup.
type GranuleMetadata struct {
	Path           int
	OrbitDirection OrbitDirection
}

// MetadataLookup resolves path number and flight direction for a granule.
type MetadataLookup interface {
	GranuleMetadata(ctx context.Context, granule string) (GranuleMetadata, error)
}
