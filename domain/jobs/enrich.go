package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// EnrichPathsOrbits sets Path and OrbitDirection on every job from the
// metadata of its first granule. Jobs already enriched are skipped. The
// first lookup error is returned unmodified apart from wrapping.
func EnrichPathsOrbits(ctx context.Context, jobs Batch, lookup MetadataLookup, logger *slog.Logger) error {
	if lookup == nil {
		return fmt.Errorf("enrich: nil metadata lookup")
	}
	for _, j := range jobs {
		if j.Enriched {
			continue
		}
		if len(j.Granules) == 0 {
			return fmt.Errorf("enrich job %s: no granules", j.ID)
		}
		md, err := lookup.GranuleMetadata(ctx, j.Granules[0])
		if err != nil {
			return fmt.Errorf("enrich job %s (%s): %w", j.ID, j.Granules[0], err)
		}
		j.Path = md.Path
		j.OrbitDirection = md.OrbitDirection
		j.Enriched = true
		if logger != nil {
			logger.Debug("job enriched", "job", j.ID, "path", md.Path, "orbit", string(md.OrbitDirection))
		}
	}
	return nil
}

// ProjectNames returns the sorted unique non-empty job names.
func ProjectNames(jobs Batch) []string {
	seen := make(map[string]struct{})
	for _, j := range jobs {
		if n := strings.TrimSpace(j.Name); n != "" {
			seen[n] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ByProject keeps jobs submitted under the given project name.
func ByProject(name string) Filter {
	return func(b Batch) (Batch, error) {
		out := make(Batch, 0, len(b))
		for _, j := range b {
			if j.Name == name {
				out = append(out, j)
			}
		}
		return out, nil
	}
}

// SuggestProject returns the known project name closest to name by
// case-insensitive edit distance. ok is false when names is empty or the
// best candidate differs in more than half of its characters.
func SuggestProject(name string, names []string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", -1
	for _, n := range names {
		d := levenshtein.ComputeDistance(target, strings.ToLower(n))
		if bestDist < 0 || d < bestDist {
			best, bestDist = n, d
		}
	}
	if bestDist < 0 || bestDist*2 > len(best) {
		return "", false
	}
	return best, true
}
