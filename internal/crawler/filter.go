package crawler

import (
	"strings"
)

type URLFilter interface {
	Filter(link string) bool
}

type AlwaysFilter struct{}

func (filter AlwaysFilter) Filter(link string) bool {
	return true
}

// ExcludeFilter rejects links containing Segment, e.g. links back to the source repository.
type ExcludeFilter struct {
	Segment string
}

func NewExcludeFilter(segment string) URLFilter {
	if segment == "" {
		return AlwaysFilter{}
	}
	return ExcludeFilter{Segment: segment}
}

func (filter ExcludeFilter) Filter(link string) bool {
	return !strings.Contains(link, filter.Segment)
}
