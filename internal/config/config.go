package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. SCRAPER_DELAY.
const Prefix = "SCRAPER"

type Config struct {
	// SourceURL is the markdown document listing the tools.
	SourceURL string `envconfig:"SOURCE_URL" default:"https://raw.githubusercontent.com/yousefebrahimi0/1000-AI-collection-tools/main/README.md"`

	// ExcludeSegment drops links back to the source repository itself.
	ExcludeSegment string `envconfig:"EXCLUDE_SEGMENT" default:"github.com/yousefebrahimi0/1000-AI-collection-tools"`

	UserAgent string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (compatible; ToolScraper/1.0; +https://example.com)"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"20s"`

	// Delay is slept after every tool URL, success or failure.
	Delay time.Duration `envconfig:"DELAY" default:"1s"`

	// Limit caps the number of tool URLs. Zero means no cap.
	Limit int `envconfig:"LIMIT" default:"0"`

	CSVPath  string `envconfig:"CSV_PATH" default:"tools_data.csv"`
	JSONPath string `envconfig:"JSON_PATH" default:"tools_data.json"`

	// DatabaseURL enables the Postgres export when set.
	DatabaseURL string `envconfig:"DB_URL"`

	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load processes environment variables and populates the Config struct.
func Load() (*Config, error) {
	// A missing .env is normal; only complain when one exists and is broken.
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: .env file found but could not be loaded: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
