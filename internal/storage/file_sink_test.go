package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tool-scraper/pkg/models"
)

func sampleRecords() []models.ToolRecord {
	return []models.ToolRecord{
		{
			ProductName: "Café, \"AI\"",
			Company:     "R&D Labs",
			Email:       "a@cafe.ai; b@cafe.ai",
			LinkedInURL: "https://linkedin.com/company/cafe",
			TwitterURL:  "https://x.com/cafe",
			CareersPage: "https://cafe.ai/jobs",
			ToolURL:     "https://cafe.ai",
		},
		models.EmptyRecord("https://down.example"),
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools_data.csv")

	require.NoError(t, SaveCSV(sampleRecords(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"product_name", "company", "email", "linkedin_url", "twitter_url", "careers_page", "tool_url"}, rows[0])
	assert.Equal(t, "Café, \"AI\"", rows[1][0])
	assert.Equal(t, []string{"", "", "", "", "", "", "https://down.example"}, rows[2])
}

func TestSaveCSV_EmptyWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools_data.csv")

	require.NoError(t, SaveCSV(nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools_data.json")

	require.NoError(t, JSONSink{Path: path}.Save(sampleRecords()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"product_name": "Café, \"AI\""`)
	assert.Contains(t, string(raw), `"company": "R&D Labs"`)
	assert.Contains(t, string(raw), "\n  {\n    \"product_name\"")

	var decoded []models.ToolRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, sampleRecords(), decoded)
}

func TestSaveJSON_EmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools_data.json")

	require.NoError(t, SaveJSON(nil, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCSVSink_BadPath(t *testing.T) {
	err := CSVSink{Path: filepath.Join(t.TempDir(), "missing", "out.csv")}.Save(sampleRecords())
	assert.Error(t, err)
}
