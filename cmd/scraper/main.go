package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"tool-scraper/internal/config"
	"tool-scraper/internal/crawler"
	"tool-scraper/internal/crawler/engine"
	"tool-scraper/internal/report"
	"tool-scraper/internal/storage"
)

const dbConnectAttempts = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}

	if err := newRootCmd(cfg, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Collect contact details for every tool in an AI tools list",
		Long: `Downloads the markdown tool list, visits each linked site and guesses the
product name, company, emails, social links and careers page. Results are
written to CSV and JSON.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, newLogger(logOut, cfg.Debug), cmd.OutOrStdout())
		},
	}

	// Flags override env / .env values
	flags := cmd.Flags()
	flags.StringVar(&cfg.SourceURL, "source", cfg.SourceURL, "URL of the markdown tool list")
	flags.IntVar(&cfg.Limit, "limit", cfg.Limit, "process only the first N tool URLs (0 = all)")
	flags.DurationVar(&cfg.Delay, "delay", cfg.Delay, "pause after each tool URL")
	flags.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "CSV output path")
	flags.StringVar(&cfg.JSONPath, "json", cfg.JSONPath, "JSON output path")
	flags.StringVar(&cfg.DatabaseURL, "db", cfg.DatabaseURL, "optional Postgres URL to upsert records into")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	return cmd
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "scraper",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := crawler.NewFetcher(nil, cfg.UserAgent, cfg.Timeout)
	processor := crawler.NewToolProcessor(fetcher, crawler.NewParser())

	sinks := []engine.Sink{
		storage.CSVSink{Path: cfg.CSVPath},
		storage.JSONSink{Path: cfg.JSONPath},
	}
	if cfg.DatabaseURL != "" {
		db, err := storage.WaitForDB(ctx, cfg.DatabaseURL, dbConnectAttempts, logger)
		if err != nil {
			logger.Error("Database unavailable", "err", err)
			return err
		}
		defer db.Close()

		pg := storage.NewPostgresSink(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("Failed to create tools table", "err", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
		sinks = append(sinks, pg)
	}

	e := engine.NewEngine(engine.Config{
		SourceURL: cfg.SourceURL,
		Limit:     cfg.Limit,
		Delay:     cfg.Delay,
		Filters:   []crawler.URLFilter{crawler.NewExcludeFilter(cfg.ExcludeSegment)},
	}, fetcher, processor, engine.RealClock{}, logger, sinks...)

	records, err := e.Run(ctx)
	if err != nil {
		logger.Error("Run failed", "err", err)
		return err
	}

	report.Summarize(records).Render(out)
	fmt.Fprintf(out, "Done. Saved %s and %s\n", cfg.CSVPath, cfg.JSONPath)
	return nil
}
