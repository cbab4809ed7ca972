// Package granule parses acquisition metadata out of SAR product and granule
// file names.
package granule

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrNoDate is returned when a name carries no acquisition timestamp.
var ErrNoDate = errors.New("no acquisition date in product name")

// dateRe matches the acquisition timestamp token, e.g. 20210704T161022.
// The leading \w matches the first digit of the year.
var dateRe = regexp.MustCompile(`\w[0-9]{7}T[0-9]{6}`)

// polarityRe matches a two-letter polarization such as VV or hv.
var polarityRe = regexp.MustCompile(`[vVhH]{2}`)

// rtcRe matches RTC product GeoTIFFs carrying a polarization suffix.
var rtcRe = regexp.MustCompile(`^\w[\--~]{5,300}(_|-)(vv|VV|vh|VH|hh|HH|hv|HV)\.(tif|tiff)$`)

// DateFromProductName returns the first date-time token in name.
func DateFromProductName(name string) (string, bool) {
	m := dateRe.FindString(name)
	return m, m != ""
}

// AcquisitionDate parses the YYYYMMDD part of the first date-time token of
// name by fixed-width slicing. The returned time is midnight UTC.
func AcquisitionDate(name string) (time.Time, error) {
	tok, ok := DateFromProductName(name)
	if !ok {
		return time.Time{}, fmt.Errorf("%q: %w", name, ErrNoDate)
	}
	return parseDay(tok[:8])
}

func parseDay(d string) (time.Time, error) {
	y, err := strconv.Atoi(d[:4])
	if err != nil {
		return time.Time{}, fmt.Errorf("year %q: %w", d, err)
	}
	m, err := strconv.Atoi(d[4:6])
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q: %w", d, err)
	}
	day, err := strconv.Atoi(d[6:8])
	if err != nil {
		return time.Time{}, fmt.Errorf("day %q: %w", d, err)
	}
	if m < 1 || m > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date %q out of range", d)
	}
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseDay parses a YYYYMMDD string.
func ParseDay(d string) (time.Time, error) {
	if len(d) != 8 {
		return time.Time{}, fmt.Errorf("date %q: want YYYYMMDD", d)
	}
	return parseDay(d)
}

// ProductDates returns the sorted, de-duplicated YYYYMMDD dates of every
// date-time token found in names. Names without a token are skipped.
func ProductDates(names []string) []string {
	seen := make(map[string]struct{})
	for _, n := range names {
		for _, tok := range dateRe.FindAllString(n, -1) {
			seen[tok[:8]] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// PolarityFromPath returns the polarization in the base name of p.
func PolarityFromPath(p string) (string, bool) {
	m := polarityRe.FindString(path.Base(filepathToSlash(p)))
	return m, m != ""
}

// RTCPolarizations lists the polarizations present among the RTC product
// GeoTIFFs one directory below the root of fsys.
func RTCPolarizations(fsys fs.FS) ([]string, error) {
	matches, err := fs.Glob(fsys, "*/*.tif*")
	if err != nil {
		return nil, fmt.Errorf("glob rtc products: %w", err)
	}
	seen := make(map[string]struct{})
	for _, m := range matches {
		base := path.Base(m)
		if !rtcRe.MatchString(base) {
			continue
		}
		stem := strings.SplitN(base, ".", 2)[0]
		seen[stem[len(stem)-2:]] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func filepathToSlash(p string) string { return strings.ReplaceAll(p, `\`, "/") }
