package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/jackc/pgx/v4/stdlib" // Import the driver

	"tool-scraper/pkg/models"
)

const createToolsTable = `
	CREATE TABLE IF NOT EXISTS tools (
		tool_url     TEXT PRIMARY KEY,
		product_name TEXT NOT NULL DEFAULT '',
		company      TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		linkedin_url TEXT NOT NULL DEFAULT '',
		twitter_url  TEXT NOT NULL DEFAULT '',
		careers_page TEXT NOT NULL DEFAULT '',
		scraped_at   TIMESTAMPTZ NOT NULL
	)`

const upsertTool = `
	INSERT INTO tools (product_name, company, email, linkedin_url, twitter_url, careers_page, tool_url, scraped_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (tool_url) DO UPDATE SET
		product_name = EXCLUDED.product_name,
		company      = EXCLUDED.company,
		email        = EXCLUDED.email,
		linkedin_url = EXCLUDED.linkedin_url,
		twitter_url  = EXCLUDED.twitter_url,
		careers_page = EXCLUDED.careers_page,
		scraped_at   = EXCLUDED.scraped_at`

type Storage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// WaitForDB opens a pgx connection pool and pings it until it answers or attempts run out.
func WaitForDB(ctx context.Context, url string, attempts int, logger *log.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			logger.Info("Connected to database")
			return db, nil
		}
		logger.Warn("Waiting for DB...", "attempt", i+1, "err", err)

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	db.Close()
	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", attempts, err)
}

// PostgresSink implements engine.Sink by upserting records into the tools table.
type PostgresSink struct {
	*Storage
}

func NewPostgresSink(db *sql.DB) *PostgresSink {
	return &PostgresSink{Storage: NewStorage(db)}
}

func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createToolsTable)
	return err
}

func (s *PostgresSink) Save(batch []models.ToolRecord) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertTool)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, r := range batch {
		if _, err := stmt.Exec(toolArgs(r, now)...); err != nil {
			return fmt.Errorf("upsert %s: %w", r.ToolURL, err)
		}
	}

	return tx.Commit()
}

// toolArgs lines up with the column list in upsertTool.
func toolArgs(r models.ToolRecord, scrapedAt time.Time) []any {
	row := r.Row()
	args := make([]any, 0, len(row)+1)
	for _, v := range row {
		args = append(args, v)
	}
	return append(args, scrapedAt)
}
