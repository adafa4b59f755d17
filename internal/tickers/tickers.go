/*
Package tickers loads and represents the ticker watchlist the scan pipeline
filters against.
*/
package tickers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Set holds uppercase ticker symbols. Lookups are case-insensitive exact
// matches.
type Set map[string]struct{}

// NewSet builds a Set, upper-casing and trimming each symbol.
func NewSet(symbols ...string) Set {
	s := make(Set, len(symbols))
	for _, sym := range symbols {
		s.Add(sym)
	}
	return s
}

// Add inserts a symbol; blanks are ignored.
func (s Set) Add(symbol string) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol != "" {
		s[symbol] = struct{}{}
	}
}

// Contains reports membership, case-insensitively.
func (s Set) Contains(symbol string) bool {
	_, ok := s[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}

// Sorted returns the symbols in ascending order, for logging.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for sym := range s {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// LoadCSV reads tickers from a CSV file with a header row. columnName picks
// the ticker column; when the header doesn't contain it, the first column is
// used. Rows may be ragged; blank cells are skipped.
func LoadCSV(path, columnName string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ticker CSV %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return NewSet(), nil
		}
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", path, err)
	}

	// Excel exports often prefix the header with a UTF-8 BOM.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := 0
	for i, name := range header {
		if strings.TrimSpace(name) == columnName {
			col = i
			break
		}
	}

	set := NewSet()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row from %s: %w", path, err)
		}
		if col < len(row) {
			set.Add(row[col])
		}
	}

	return set, nil
}
