package models

import "strings"

type SocialPlatform int

const (
	LinkedIn SocialPlatform = iota
	Twitter
)

func (p SocialPlatform) String() string {
	switch p {
	case LinkedIn:
		return "LinkedIn"
	case Twitter:
		return "Twitter"
	default:
		return "None"
	}
}

// Matches is a plain substring test on the href, so "x.com" also hits hosts like "box.com".
func (p SocialPlatform) Matches(href string) bool {
	switch p {
	case LinkedIn:
		return strings.Contains(href, "linkedin.com")
	case Twitter:
		return strings.Contains(href, "twitter.com") || strings.Contains(href, "x.com")
	default:
		return false
	}
}
