// Package report renders the end-of-run summary table.
package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"tool-scraper/pkg/models"
)

type Summary struct {
	Total        int
	Failed       int
	WithEmail    int
	WithLinkedIn int
	WithTwitter  int
	WithCareers  int
}

func Summarize(records []models.ToolRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.IsEmpty() {
			s.Failed++
			continue
		}
		if r.Email != "" {
			s.WithEmail++
		}
		if r.LinkedInURL != "" {
			s.WithLinkedIn++
		}
		if r.TwitterURL != "" {
			s.WithTwitter++
		}
		if r.CareersPage != "" {
			s.WithCareers++
		}
	}
	return s
}

func (s Summary) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Field", "Records"})
	t.AppendRows([]table.Row{
		{"Fetched", s.Total - s.Failed},
		{"Failed", s.Failed},
		{"Email", s.WithEmail},
		{"LinkedIn", s.WithLinkedIn},
		{"Twitter", s.WithTwitter},
		{"Careers page", s.WithCareers},
	})
	t.AppendFooter(table.Row{"Total", s.Total})
	t.Render()
}
