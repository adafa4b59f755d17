package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shanehull/secscan/internal/ai"
	"github.com/shanehull/secscan/internal/types"
)

func TestFormatItems(t *testing.T) {
	assert.Equal(t, "Items:   (none extracted)\n", formatItems(nil))

	out := formatItems([]types.ExtractedItem{
		{Code: "Item 5.02", Title: "Departure/Election of Directors or Officers", Snippet: "The CFO resigned.", IsPriority: true},
		{Code: "Item 9.01", Title: "Financial Statements and Exhibits"},
	})
	assert.Contains(t, out, "! Item 5.02")
	assert.Contains(t, out, "The CFO resigned.")
	assert.Contains(t, out, "  Item 9.01")
}

func TestFormatAnalysis(t *testing.T) {
	assert.Empty(t, formatAnalysis(nil))

	out := formatAnalysis(&ai.Analysis{
		Summary: []string{"CFO resigned effective immediately."},
		PotentialCatalysts: []ai.CatalystObservation{
			{Category: "Management Change", Details: "CFO departure effective 2026-02-01."},
		},
	})
	assert.Contains(t, out, "AI Summary:")
	assert.Contains(t, out, "- CFO resigned effective immediately.")
	assert.Contains(t, out, "[Management Change] CFO departure effective 2026-02-01.")
}

func TestRenderPlainText(t *testing.T) {
	result := &types.ScanResult{
		Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Entries: []types.ScanEntry{
			{
				Record: types.FilingRecord{
					Ticker:      "AAPL",
					CompanyName: "Apple Inc.",
					FormType:    "8-K",
					DateFiled:   "20260201",
					Accession:   "0000320193-26-000011",
					DocumentURL: "https://www.sec.gov/Archives/edgar/data/320193/000032019326000011/aapl8k.htm",
				},
				Items: []types.ExtractedItem{
					{Code: "Item 5.02", Title: "Departure/Election of Directors or Officers", IsPriority: true},
				},
			},
		},
	}

	out := renderPlainText(result, nil)
	assert.Contains(t, out, "SEC filings for 2026-02-01")
	assert.Contains(t, out, "AAPL - Apple Inc. (8-K)")
	assert.Contains(t, out, "Item 5.02")
}
