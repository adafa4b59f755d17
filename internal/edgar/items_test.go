package edgar

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shanehull/secscan/internal/types"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("secscan tests (test@example.com)",
		WithArchivesBaseURL(server.URL+"/Archives"),
		WithCompanyTickersURL(server.URL+"/files/company_tickers.json"),
		WithRateLimit(10000, 10000),
	)
	return client, server
}

func TestScanItemsDocumentOrder(t *testing.T) {
	text := "Item 1.01 Entry into a Material Definitive Agreement\n" +
		"On February 1, 2026, the Company entered into a credit agreement with a syndicate of lenders.\n" +
		"Item 9.01 Financial Statements and Exhibits\n" +
		"Exhibit 99.1 Press release dated February 1, 2026."

	items := ScanItems(text, ItemLimits{})
	require.Len(t, items, 2)

	assert.Equal(t, "Item 1.01", items[0].Code)
	assert.Equal(t, "Entry into Material Agreement", items[0].Title)
	assert.True(t, items[0].IsPriority)
	assert.Contains(t, items[0].Snippet, "credit agreement")
	assert.NotContains(t, items[0].Snippet, "9.01", "first snippet must stop before the next item header")

	assert.Equal(t, "Item 9.01", items[1].Code)
	assert.Equal(t, "Financial Statements and Exhibits", items[1].Title)
	assert.False(t, items[1].IsPriority)
	assert.Contains(t, items[1].Snippet, "Exhibit 99.1")
}

func TestScanItemsPunctuationVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "colon", text: "Item 5.02: Departure of Directors. Jane Doe resigned."},
		{name: "dash", text: "ITEM 5.02 - Departure of Directors. Jane Doe resigned."},
		{name: "no space", text: "item5.02 Departure of Directors. Jane Doe resigned."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := ScanItems(tc.text, ItemLimits{})
			require.Len(t, items, 1)
			assert.Equal(t, "Item 5.02", items[0].Code)
			assert.True(t, items[0].IsPriority)
			assert.Contains(t, items[0].Snippet, "Jane Doe resigned")
		})
	}
}

func TestScanItemsDuplicateCodesRetained(t *testing.T) {
	text := "Item 7.01 Regulation FD Disclosure\nFirst mention.\n" +
		"Item 7.01 Regulation FD Disclosure\nSecond mention."

	items := ScanItems(text, ItemLimits{})
	require.Len(t, items, 2)
	assert.Equal(t, "Item 7.01", items[0].Code)
	assert.Equal(t, "Item 7.01", items[1].Code)
	assert.Contains(t, items[0].Snippet, "First mention")
	assert.Contains(t, items[1].Snippet, "Second mention")
}

func TestScanItemsUnknownCode(t *testing.T) {
	items := ScanItems("Item 6.03 Some future disclosure category text.", ItemLimits{})
	require.Len(t, items, 1)
	assert.Equal(t, "Other Item", items[0].Title)
}

func TestScanItemsStripsMarkup(t *testing.T) {
	text := `Item 2.02 <b>Results of Operations</b> announced today. R&amp;D spend grew. <span class="ix` // capture cut mid-tag

	items := ScanItems(text, ItemLimits{})
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Snippet, "Results of Operations")
	assert.Contains(t, items[0].Snippet, "R&D spend grew.")
	assert.NotContains(t, items[0].Snippet, "<")
	assert.NotContains(t, items[0].Snippet, "span")
}

func TestScanItemsSnippetBound(t *testing.T) {
	text := "Item 8.01 Other Events. " + strings.Repeat("word ", 200)

	items := ScanItems(text, ItemLimits{Snippet: 40})
	require.Len(t, items, 1)
	assert.True(t, strings.HasSuffix(items[0].Snippet, "..."))
	assert.LessOrEqual(t, len(items[0].Snippet), 43)
}

func TestScanItemsNoHeaders(t *testing.T) {
	assert.Empty(t, ScanItems("", ItemLimits{}))
	assert.Empty(t, ScanItems("Quarterly report with no item sections at all.", ItemLimits{}))
	assert.Empty(t, ScanItems("Item without a numeric code", ItemLimits{}))
}

func TestExtractItemsSkipsNonItemForms(t *testing.T) {
	var requests atomic.Int64
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))

	rec := types.FilingRecord{
		Ticker:   "MSFT",
		FormType: "DEF 14A",
		RawURL:   server.URL + "/Archives/edgar/data/789019/0000789019-26-000001.txt",
	}

	items := client.ExtractItems(t.Context(), &rec)
	assert.Empty(t, items)
	assert.Zero(t, requests.Load(), "non-8-K forms must not trigger a document fetch")
}

func TestExtractItemsFetchesEightK(t *testing.T) {
	body := "<SEC-DOCUMENT>\n<DOCUMENT>\n<TYPE>8-K\n<SEQUENCE>1\n<FILENAME>main8k.htm\n<TEXT>\n" +
		"Item 5.02 Departure of Directors or Certain Officers. The CFO resigned effective immediately.\n" +
		"</TEXT>\n</DOCUMENT>\n"

	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))

	rec := types.FilingRecord{
		CIK:       "320193",
		Ticker:    "AAPL",
		FormType:  "8-K",
		Accession: "0000320193-26-000011",
		RawURL:    server.URL + "/Archives/edgar/data/320193/0000320193-26-000011.txt",
	}

	items := client.ExtractItems(t.Context(), &rec)
	require.Len(t, items, 1)
	assert.Equal(t, "Item 5.02", items[0].Code)
	assert.Contains(t, items[0].Snippet, "CFO resigned")

	assert.True(t, strings.HasSuffix(rec.DocumentURL, "/main8k.htm"),
		"browser URL should be upgraded to the primary document, got %s", rec.DocumentURL)
}

func TestExtractItemsFailureIsolated(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "transport failure", status: http.StatusInternalServerError},
		{name: "missing document", status: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))

			rec := types.FilingRecord{
				Ticker:   "AAPL",
				FormType: "8-K",
				RawURL:   server.URL + "/Archives/edgar/data/320193/bad.txt",
			}

			assert.Empty(t, client.ExtractItems(t.Context(), &rec))
		})
	}
}
