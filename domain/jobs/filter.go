// Package jobs filters remote processing jobs by acquisition date, flight
// path and orbit direction.
package jobs

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/opensarlab/osl-notebook-kit/domain/granule"
)

// DateRange is an inclusive range of acquisition days. Times are truncated
// to the day in UTC before comparison.
type DateRange struct {
	Start, End time.Time
}

// Contains reports whether d falls on or between Start and End.
func (r DateRange) Contains(d time.Time) bool {
	day := truncateDay(d)
	return !day.Before(truncateDay(r.Start)) && !day.After(truncateDay(r.End))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Filter narrows a batch. Filters never mutate their input.
type Filter func(Batch) (Batch, error)

// Apply runs filters in sequence and stops at the first error.
func Apply(jobs Batch, filters ...Filter) (Batch, error) {
	out := jobs
	for _, f := range filters {
		if f == nil {
			continue
		}
		var err error
		if out, err = f(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ByDate, ByPath and ByOrbit adapt the filter functions for Apply.
func ByDate(r DateRange) Filter {
	return func(b Batch) (Batch, error) { return FilterByDate(b, r) }
}

func ByPath(paths []string) Filter {
	return func(b Batch) (Batch, error) { return FilterByPath(b, paths) }
}

func ByOrbit(d OrbitDirection) Filter {
	return func(b Batch) (Batch, error) { return FilterByOrbit(b, d) }
}

// FilterByDate keeps jobs with at least one granule acquired within r.
// A granule without a date token aborts the filter with granule.ErrNoDate.
func FilterByDate(jobs Batch, r DateRange) (Batch, error) {
	out := make(Batch, 0, len(jobs))
	for _, j := range jobs {
		for _, g := range j.Granules {
			d, err := granule.AcquisitionDate(g)
			if err != nil {
				return nil, fmt.Errorf("job %s: %w", j.ID, err)
			}
			if r.Contains(d) {
				out = append(out, j)
				break
			}
		}
	}
	return out, nil
}

// FilterByPath keeps jobs whose path is listed in paths. A list containing
// AllPaths returns jobs unchanged. Jobs that were never enriched are reported
// with ErrNotEnriched.
func FilterByPath(jobs Batch, paths []string) (Batch, error) {
	want := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == AllPaths {
			return jobs, nil
		}
		want[p] = struct{}{}
	}
	out := make(Batch, 0, len(jobs))
	for _, j := range jobs {
		if !j.Enriched {
			return nil, fmt.Errorf("job %s: %w", j.ID, ErrNotEnriched)
		}
		if _, ok := want[strconv.Itoa(j.Path)]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

// FilterByOrbit keeps jobs flown in direction d. Like FilterByPath it
// requires enriched jobs.
func FilterByOrbit(jobs Batch, d OrbitDirection) (Batch, error) {
	out := make(Batch, 0, len(jobs))
	for _, j := range jobs {
		if !j.Enriched {
			return nil, fmt.Errorf("job %s: %w", j.ID, ErrNotEnriched)
		}
		if j.OrbitDirection == d {
			out = append(out, j)
		}
	}
	return out, nil
}

// JobDates returns the sorted unique YYYYMMDD acquisition dates of every
// granule in jobs.
func JobDates(jobs Batch) ([]string, error) {
	seen := make(map[string]struct{})
	for _, j := range jobs {
		for _, g := range j.Granules {
			tok, ok := granule.DateFromProductName(g)
			if !ok {
				return nil, fmt.Errorf("job %s: %q: %w", j.ID, g, granule.ErrNoDate)
			}
			seen[tok[:8]] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

// Paths returns AllPaths followed by the sorted unique paths of the
// enriched jobs, ready for a path picker.
func Paths(jobs Batch) []string {
	seen := make(map[int]struct{})
	for _, j := range jobs {
		if j.Enriched {
			seen[j.Path] = struct{}{}
		}
	}
	nums := make([]int, 0, len(seen))
	for p := range seen {
		nums = append(nums, p)
	}
	sort.Ints(nums)
	out := make([]string, 0, len(nums)+1)
	out = append(out, AllPaths)
	for _, p := range nums {
		out = append(out, strconv.Itoa(p))
	}
	return out
}
