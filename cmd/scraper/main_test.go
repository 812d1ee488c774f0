package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tool-scraper/internal/config"
	"tool-scraper/pkg/models"
)

func testConfig(t *testing.T, sourceURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		SourceURL:      sourceURL,
		ExcludeSegment: "github.com/yousefebrahimi0/1000-AI-collection-tools",
		UserAgent:      "Mozilla/5.0 (compatible; ToolScraper/1.0; +https://example.com)",
		Timeout:        5 * time.Second,
		Delay:          time.Second,
		CSVPath:        filepath.Join(dir, "tools_data.csv"),
		JSONPath:       filepath.Join(dir, "tools_data.json"),
	}
}

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/README.md", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "# Tools\n"+
			"- [Writer]("+srv.URL+"/writer)\n"+
			"- [Broken]("+srv.URL+"/broken)\n"+
			"- [Repo](https://github.com/yousefebrahimi0/1000-AI-collection-tools/blob/main/LICENSE)\n")
	})
	mux.HandleFunc("/writer", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html><head><title>Writer — Ink Labs</title></head><body>
			<a href="/careers">We're hiring</a>
			<a href="https://www.linkedin.com/company/ink">in</a>
			<a href="mailto:hello@ink.dev">mail</a></body></html>`)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCmd_EndToEnd(t *testing.T) {
	srv := fixtureServer(t)
	cfg := testConfig(t, "http://unused.invalid/README.md")

	var out, logs bytes.Buffer
	cmd := newRootCmd(cfg, &logs)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--source", srv.URL + "/README.md", "--delay", "0s", "--limit", "5"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	raw, err := os.ReadFile(cfg.JSONPath)
	require.NoError(t, err)

	var records []models.ToolRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	assert.Equal(t, []models.ToolRecord{
		models.EmptyRecord(srv.URL + "/broken"),
		{
			ProductName: "Writer",
			Company:     "Ink Labs",
			Email:       "hello@ink.dev",
			LinkedInURL: "https://www.linkedin.com/company/ink",
			CareersPage: srv.URL + "/careers",
			ToolURL:     srv.URL + "/writer",
		},
	}, records)

	_, err = os.Stat(cfg.CSVPath)
	assert.NoError(t, err)

	assert.Contains(t, out.String(), "Done. Saved")
	assert.Contains(t, logs.String(), "[1/2] Processing")
	assert.Contains(t, logs.String(), "Failed to fetch")
}

func TestRootCmd_SourceFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL+"/README.md")

	cmd := newRootCmd(cfg, io.Discard)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--delay", "0s"})

	require.Error(t, cmd.ExecuteContext(context.Background()))

	_, err := os.Stat(cfg.CSVPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(cfg.JSONPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(testConfig(t, "http://unused.invalid"), io.Discard)
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
