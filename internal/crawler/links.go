package crawler

import (
	"regexp"

	"tool-scraper/internal"
)

// linkPattern matches "(" + http(s) URL + ")". Any parenthesised URL counts, not only
// markdown link targets; the upstream list has no stable format.
var linkPattern = regexp.MustCompile(`\((https?://[^\s)]+)\)`)

// ExtractLinks returns the unique URLs in markdown accepted by every filter, sorted.
func ExtractLinks(markdown string, filters ...URLFilter) []string {
	seen := internal.NewStringSet()

	for _, m := range linkPattern.FindAllStringSubmatch(markdown, -1) {
		link := m[1]
		if accepted(link, filters) {
			seen.Add(link)
		}
	}

	return seen.Sorted()
}

func accepted(link string, filters []URLFilter) bool {
	for _, f := range filters {
		if !f.Filter(link) {
			return false
		}
	}
	return true
}
