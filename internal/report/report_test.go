package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/secscan/internal/types"
)

func sampleResult() *types.ScanResult {
	return &types.ScanResult{
		Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Entries: []types.ScanEntry{
			{
				Record: types.FilingRecord{
					CIK:         "320193",
					CompanyName: "Apple Inc.",
					FormType:    "8-K",
					DateFiled:   "20260201",
					Ticker:      "AAPL",
					Accession:   "0000320193-26-000011",
					DocumentURL: "https://www.sec.gov/Archives/edgar/data/320193/000032019326000011/aapl8k.htm",
				},
				Items: []types.ExtractedItem{
					{Code: "Item 5.02", Title: "Departure/Election of Directors or Officers", Snippet: "The CFO resigned <script>alert(1)</script>", IsPriority: true},
				},
			},
			{
				Record: types.FilingRecord{
					CIK:         "789019",
					CompanyName: "MICROSOFT CORP",
					FormType:    "DEF 14A",
					DateFiled:   "20260201",
					Ticker:      "MSFT",
					Accession:   "0000789019-26-000004",
				},
			},
		},
	}
}

func testIndexURL(rec types.FilingRecord) string {
	return "https://example.test/" + rec.Accession + "-index.html"
}

func TestRender(t *testing.T) {
	html, err := NewRenderer().Render(sampleResult(), "SEC Filing Summary Report", []string{"1.01", "5.02"}, testIndexURL)
	require.NoError(t, err)

	assert.Contains(t, html, "SEC Filing Summary Report")
	assert.Contains(t, html, "2026-02-01")
	assert.Contains(t, html, "Priority 8-K Filings")
	assert.Contains(t, html, "Other Filings")
	assert.Contains(t, html, "AAPL")
	assert.Contains(t, html, "Apple Inc.")
	assert.Contains(t, html, "Item 5.02")
	assert.Contains(t, html, "8-K, DEF 14A", "forms present are sorted and joined")
	assert.Contains(t, html, "1.01, 5.02")
	assert.Contains(t, html, "https://example.test/0000320193-26-000011-index.html")
	assert.Contains(t, html, "No item details extracted", "the MSFT card has no item sections")
	assert.NotContains(t, html, "No filings found")
}

func TestRenderEscapesSnippets(t *testing.T) {
	html, err := NewRenderer().Render(sampleResult(), "Report", nil, testIndexURL)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderEmptyResult(t *testing.T) {
	result := &types.ScanResult{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}

	html, err := NewRenderer().Render(result, "Report", nil, testIndexURL)
	require.NoError(t, err)

	assert.Contains(t, html, "No filings found")
	assert.NotContains(t, html, "Other Filings")
}

func TestWriteCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "report.html")

	require.NoError(t, Write(path, "<html></html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}
