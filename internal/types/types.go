package types

import (
	"time"
)

// FilingRecord is a single entry parsed from the EDGAR daily index,
// immutable once parsed. Ticker is not present in the raw index and is
// resolved by joining against the watchlist.
type FilingRecord struct {
	CIK         string
	CompanyName string
	FormType    string
	DateFiled   string
	Filename    string
	Accession   string
	Ticker      string
	DocumentURL string // best browser URL: primary document when discovered, else the filing index page
	RawURL      string // full submission text, used for item extraction
}

// ExtractedItem is one labeled "Item N.NN" section pulled from an 8-K body.
type ExtractedItem struct {
	Code       string
	Title      string
	Snippet    string
	IsPriority bool
}

// ScanEntry pairs a matched filing with the item sections extracted from it.
// Items is empty for non-8-K forms and for 8-K bodies the heuristic could
// not parse.
type ScanEntry struct {
	Record FilingRecord
	Items  []ExtractedItem
}

// ScanResult is the outcome of one scan. Entries appear in daily index order.
type ScanResult struct {
	Date    time.Time
	Entries []ScanEntry
}
