package edgar

import (
	"strings"

	"github.com/shanehull/secscan/internal/tickers"
	"github.com/shanehull/secscan/internal/types"
)

// FormSet is the accepted form types. Membership is exact, including the
// "/A" amendment suffix: "8-K" does not admit "8-K/A".
type FormSet map[string]struct{}

// NewFormSet builds a FormSet from form type strings, trimming whitespace
// and skipping blanks.
func NewFormSet(forms ...string) FormSet {
	set := make(FormSet, len(forms))
	for _, f := range forms {
		f = strings.TrimSpace(f)
		if f != "" {
			set[f] = struct{}{}
		}
	}
	return set
}

// MatchFilings filters records to those whose ticker is on the watchlist
// (case-insensitive) and whose form type is in the form set (exact). Pure:
// the result is an order-preserving subsequence of records.
func MatchFilings(records []types.FilingRecord, watchlist tickers.Set, forms FormSet) []types.FilingRecord {
	var matched []types.FilingRecord
	for _, rec := range records {
		if _, ok := forms[rec.FormType]; !ok {
			continue
		}
		if !watchlist.Contains(rec.Ticker) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}
