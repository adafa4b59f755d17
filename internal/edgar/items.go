package edgar

import (
	"context"
	"log"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/shanehull/secscan/internal/types"
)

// itemDescriptions maps 8-K item codes to their disclosure categories.
// Partial list; unknown codes render as "Other Item".
var itemDescriptions = map[string]string{
	"1.01": "Entry into Material Agreement",
	"1.02": "Termination of Material Agreement",
	"1.03": "Bankruptcy or Receivership",
	"2.01": "Acquisition/Disposition of Assets",
	"2.02": "Results of Operations (Earnings)",
	"2.03": "Creation of Direct Financial Obligation",
	"2.04": "Triggering Events (Acceleration)",
	"2.05": "Exit/Disposal Activities (Restructuring)",
	"2.06": "Material Impairments",
	"3.01": "Delisting or Transfer Notice",
	"3.02": "Unregistered Sales of Equity",
	"3.03": "Material Modification of Rights",
	"4.01": "Change in Accountant",
	"4.02": "Non-Reliance on Financial Statements",
	"5.01": "Change in Control",
	"5.02": "Departure/Appointment of Directors or Officers",
	"5.03": "Amendments to Articles/Bylaws",
	"5.04": "Temporary Suspension of Trading",
	"5.05": "Amendments to Code of Ethics",
	"5.06": "Change in Shell Company Status",
	"5.07": "Shareholder Vote Submission",
	"5.08": "Shareholder Nominations",
	"7.01": "Regulation FD Disclosure",
	"8.01": "Other Events",
	"9.01": "Financial Statements and Exhibits",
}

// priorityItems are flagged prominently in the report.
var priorityItems = map[string]struct{}{
	"1.01": {},
	"2.05": {},
	"5.01": {},
	"5.02": {},
}

// PriorityItemCodes returns the priority codes in ascending order.
func PriorityItemCodes() []string {
	return []string{"1.01", "2.05", "5.01", "5.02"}
}

// Filings vary in punctuation and spacing around item headings, so the
// pattern is loose: "Item 5.02:", "ITEM 5.02 -", "item 5.02" all match.
var itemHeaderRe = regexp.MustCompile(`(?i)item\s*(\d+\.\d+)[:\s\-—]+`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ItemLimits bounds the heuristic section scan. Capture is how much raw text
// is taken after a heading before cleanup; Snippet bounds the cleaned text.
type ItemLimits struct {
	Capture int
	Snippet int
}

func (l ItemLimits) withDefaults() ItemLimits {
	if l.Capture <= 0 {
		l.Capture = 500
	}
	if l.Snippet <= 0 {
		l.Snippet = DefaultSnippetLength
	}
	return l
}

// ScanItems extracts labeled Item sections from 8-K body text. It is a pure
// function over the text so it can be exercised on fixtures without any
// fetching. Items come back in document order; duplicate codes are retained
// as distinct entries. Irregular formatting that matches nothing yields an
// empty result, not an error.
func ScanItems(text string, limits ItemLimits) []types.ExtractedItem {
	if text == "" {
		return nil
	}
	limits = limits.withDefaults()

	headers := itemHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		return nil
	}

	items := make([]types.ExtractedItem, 0, len(headers))
	for i, loc := range headers {
		code := text[loc[2]:loc[3]]

		// Capture the block following the heading, up to the next item
		// heading or the capture bound, whichever comes first.
		start := loc[1]
		end := start + limits.Capture
		if i+1 < len(headers) && headers[i+1][0] < end {
			end = headers[i+1][0]
		}
		if end > len(text) {
			end = len(text)
		}

		snippet := cleanSnippet(text[start:end], limits.Snippet)

		title, ok := itemDescriptions[code]
		if !ok {
			title = "Other Item"
		}
		_, priority := priorityItems[code]

		items = append(items, types.ExtractedItem{
			Code:       "Item " + code,
			Title:      title,
			Snippet:    snippet,
			IsPriority: priority,
		})
	}

	return items
}

// cleanSnippet strips markup and normalizes whitespace. The capture window
// can cut a tag in half; the tokenizer drops the trailing fragment rather
// than leaking it into the report.
func cleanSnippet(raw string, maxLen int) string {
	tok := html.NewTokenizer(strings.NewReader(raw))

	var sb strings.Builder
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tok.Text())
			sb.WriteByte(' ')
		}
	}

	snippet := strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
	if len(snippet) > maxLen {
		snippet = snippet[:maxLen] + "..."
	}
	return snippet
}

// IsItemForm reports whether a form type carries Item sections.
func IsItemForm(formType string) bool {
	return formType == "8-K" || formType == "8-K/A"
}

// ExtractItems fetches a filing's full submission text and extracts its Item
// sections. Only 8-K and 8-K/A bodies are fetched; every other form returns
// an empty result without network I/O. When the body yields a primary
// document filename, the record's browser URL is upgraded to point at it.
// Per-filing failures are logged and degrade to an empty result so one bad
// filing never aborts the batch.
func (c *Client) ExtractItems(ctx context.Context, rec *types.FilingRecord) []types.ExtractedItem {
	if !IsItemForm(rec.FormType) {
		return nil
	}

	content, err := c.fileContents(ctx, rec.RawURL)
	if err != nil {
		log.Printf("Warning: failed to fetch filing body for %s (%s): %v", rec.Ticker, rec.Accession, err)
		return nil
	}

	if name, ok := PrimaryDocumentFilename(content, rec.FormType); ok {
		rec.DocumentURL = c.filingFolderURL(rec.CIK, rec.Accession) + name
	}

	return ScanItems(content, ItemLimits{Snippet: c.snippetLen})
}
