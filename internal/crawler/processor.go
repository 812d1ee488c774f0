package crawler

import (
	"context"

	"tool-scraper/pkg/models"
)

// ToolProcessor implements engine.Processor for a single tool page.
type ToolProcessor struct {
	Fetcher *Fetcher
	Parser  *Parser
}

func NewToolProcessor(fetcher *Fetcher, parser *Parser) *ToolProcessor {
	return &ToolProcessor{Fetcher: fetcher, Parser: parser}
}

// Process fetches the page and runs the field heuristics on it.
// Fetch errors are returned as-is; the engine turns them into placeholder records.
func (p *ToolProcessor) Process(ctx context.Context, toolURL string) (models.ToolRecord, error) {
	body, err := p.Fetcher.Fetch(ctx, toolURL)
	if err != nil {
		return models.EmptyRecord(toolURL), err
	}

	return p.Parser.Extract(body, toolURL)
}
