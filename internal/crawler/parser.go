package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"tool-scraper/internal"
	"tool-scraper/pkg/models"
)

// Keep selects which segment SplitTitle returns.
type Keep int

const (
	KeepFirst Keep = iota
	KeepLast
)

// Checked in this order; the first one that yields a segment wins.
var titleSeparators = []string{"|", "–", "-", "•", "—"}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

var careersKeywords = []string{"careers", "jobs", "join-us", "joinus", "work-with-us", "work with us"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Extract runs every field heuristic over rawHTML. Missing signals leave fields empty.
func (p *Parser) Extract(rawHTML, pageURL string) (models.ToolRecord, error) {
	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return models.EmptyRecord(pageURL), err
	}
	doc := goquery.NewDocumentFromNode(node)

	product, company := GuessNameAndCompany(doc, pageURL)
	linkedin, twitter := ExtractSocialLinks(doc)

	return models.ToolRecord{
		ProductName: product,
		Company:     company,
		Email:       strings.Join(ExtractEmails(doc, rawHTML), models.EmailSeparator),
		LinkedInURL: linkedin,
		TwitterURL:  twitter,
		CareersPage: FindCareersPage(doc, pageURL),
		ToolURL:     pageURL,
	}, nil
}

// GuessNameAndCompany reads <title>, og:title and og:site_name. Titles shaped like
// "Product | Company" give the product the leading segment and the company the trailing one.
func GuessNameAndCompany(doc *goquery.Document, pageURL string) (product, company string) {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	ogSiteName := metaProperty(doc, "og:site_name")
	ogTitle := metaProperty(doc, "og:title")

	product = firstNonEmpty(ogTitle, title)
	company = firstNonEmpty(ogSiteName, title)

	product = SplitTitle(product, KeepFirst)
	company = SplitTitle(company, KeepLast)

	if company == "" {
		company = hostName(pageURL)
	}
	if product == "" {
		product = company
	}
	return product, company
}

// SplitTitle splits s on the first separator glyph present and returns the first or last
// non-empty trimmed segment. s is returned unchanged when no glyph produces a segment.
func SplitTitle(s string, keep Keep) string {
	for _, sep := range titleSeparators {
		if !strings.Contains(s, sep) {
			continue
		}

		var parts []string
		for _, part := range strings.Split(s, sep) {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}

		if keep == KeepLast {
			return parts[len(parts)-1]
		}
		return parts[0]
	}
	return s
}

// ExtractEmails unions mailto: targets with every address-looking string in the raw HTML.
func ExtractEmails(doc *goquery.Document, rawHTML string) []string {
	emails := internal.NewStringSet()

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.HasPrefix(href, "mailto:") {
			return
		}
		addr, _, _ := strings.Cut(strings.TrimPrefix(href, "mailto:"), "?")
		if addr != "" {
			emails.Add(addr)
		}
	})

	for _, addr := range emailPattern.FindAllString(rawHTML, -1) {
		emails.Add(addr)
	}

	return emails.Sorted()
}

// ExtractSocialLinks returns the first LinkedIn and the first Twitter/X href in document order.
func ExtractSocialLinks(doc *goquery.Document) (linkedin, twitter string) {
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if linkedin == "" && models.LinkedIn.Matches(href) {
			linkedin = href
		}
		if twitter == "" && models.Twitter.Matches(href) {
			twitter = href
		}
		return linkedin == "" || twitter == ""
	})
	return linkedin, twitter
}

// FindCareersPage returns the first link whose href or text mentions a careers keyword,
// resolved against pageURL.
func FindCareersPage(doc *goquery.Document, pageURL string) string {
	var careers string

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := strings.ToLower(strings.TrimSpace(a.Text()))

		if !containsAny(strings.ToLower(href), careersKeywords) && !containsAny(text, careersKeywords) {
			return true
		}

		careers = resolveURL(pageURL, href)
		if careers == "" {
			careers = href
		}
		return false
	})
	return careers
}

func metaProperty(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

func hostName(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Utility to resolve relative URLs (e.g. "/jobs" -> "https://site.com/jobs")
func resolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(u).String()
}
