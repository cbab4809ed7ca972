package assets

import (
	_ "embed"
	"strings"
)

// AOITipsText holds the usage notes shown beside the area selector.
//
//go:embed aoi_tips.txt
var AOITipsText string

//go:embed line_tips.txt
var LineTipsText string

// Tips splits embedded tips into a title and its bullet lines.
func Tips(text string) (title string, lines []string) {
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if title == "" {
			title = l
			continue
		}
		lines = append(lines, l)
	}
	return title, lines
}
