package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"tool-scraper/internal/crawler"
	"tool-scraper/pkg/models"
)

// ErrSourceUnavailable means the markdown list itself could not be fetched. The run aborts.
var ErrSourceUnavailable = errors.New("source document unavailable")

// Fetcher retrieves a document as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Processor turns one tool URL into a record.
type Processor interface {
	Process(ctx context.Context, url string) (models.ToolRecord, error)
}

// Sink defines how to persist the data.
type Sink interface {
	Save(batch []models.ToolRecord) error
}

// Clock provides the politeness delay between items.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock sleeps on a timer and wakes early when ctx is done.
type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Config holds run settings.
type Config struct {
	SourceURL string
	// Limit keeps only the first Limit links. Zero or negative means all.
	Limit   int
	Delay   time.Duration
	Filters []crawler.URLFilter
}

// Engine drives a single sequential pass over the tool list.
type Engine struct {
	config    Config
	source    Fetcher
	processor Processor
	clock     Clock
	logger    *log.Logger
	sinks     []Sink
}

func NewEngine(cfg Config, source Fetcher, proc Processor, clock Clock, logger *log.Logger, sinks ...Sink) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		config:    cfg,
		source:    source,
		processor: proc,
		clock:     clock,
		logger:    logger,
		sinks:     sinks,
	}
}

// Run fetches the source list, processes every tool URL in order and hands the records to
// the sinks. One record is produced per URL; fetch failures become placeholder records.
func (engine *Engine) Run(ctx context.Context) ([]models.ToolRecord, error) {
	// 1. Source document, fatal on failure
	markdown, err := engine.source.Fetch(ctx, engine.config.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	// 2. Links
	toolURLs := crawler.ExtractLinks(markdown, engine.config.Filters...)
	engine.logger.Infof("Found %d candidate tool URLs", len(toolURLs))

	if engine.config.Limit > 0 && len(toolURLs) > engine.config.Limit {
		toolURLs = toolURLs[:engine.config.Limit]
	}

	// 3. One item at a time
	records := make([]models.ToolRecord, 0, len(toolURLs))
	for i, toolURL := range toolURLs {
		engine.logger.Infof("[%d/%d] Processing %s", i+1, len(toolURLs), toolURL)

		record, err := engine.processor.Process(ctx, toolURL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return records, ctxErr
			}
			engine.logger.Warn("Failed to fetch", "url", toolURL, "err", err)
			record = models.EmptyRecord(toolURL)
		} else {
			engine.logger.Debug("Extracted", "url", toolURL, "product", record.ProductName,
				"company", record.Company, "email", record.Email, "careers", record.CareersPage)
		}
		records = append(records, record)

		// Applies after failures too
		if err := engine.clock.Sleep(ctx, engine.config.Delay); err != nil {
			return records, err
		}
	}

	// 4. Export
	return records, engine.flush(records)
}

func (engine *Engine) flush(records []models.ToolRecord) error {
	var errs []error
	for _, sink := range engine.sinks {
		if err := sink.Save(records); err != nil {
			errs = append(errs, err)
			continue
		}
		engine.logger.Debug("Saved batch", "sink", fmt.Sprintf("%T", sink), "records", len(records))
	}
	return errors.Join(errs...)
}
