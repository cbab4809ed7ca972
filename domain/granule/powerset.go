package granule

import "sort"

// PowerSet returns every non-empty combination of items joined with " and ",
// in the order the items were given (e.g. "VV and VH"). A single item yields
// itself; duplicates collapse. The result is sorted for stable display.
func PowerSet(items []string) []string {
	set := make(map[string]struct{})
	if len(items) <= 1 {
		for _, it := range items {
			set[it] = struct{}{}
		}
		return keys(set)
	}
	n := uint(len(items))
	for mask := 1; mask < 1<<n; mask++ {
		combo := ""
		for j := uint(0); j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			if combo == "" {
				combo = items[j]
			} else {
				combo = combo + " and " + items[j]
			}
		}
		set[combo] = struct{}{}
	}
	return keys(set)
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
