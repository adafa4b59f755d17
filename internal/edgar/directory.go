package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shanehull/secscan/internal/tickers"
)

// TickerDirectory resolves daily-index records to watchlist tickers. The
// join key is CIK, with an exact upper-cased company-name fallback for
// filers the mapping file lists under a different CIK. Ambiguous keys (two
// watchlist tickers sharing a CIK or a name) resolve to nothing rather than
// guessing.
type TickerDirectory struct {
	cikToTicker    map[string]string
	nameToTicker   map[string]string
	ambiguousCIKs  map[string]struct{}
	ambiguousNames map[string]struct{}
}

// LoadTickerDirectory fetches the SEC ticker-to-CIK mapping and restricts it
// to the supplied watchlist.
func (c *Client) LoadTickerDirectory(ctx context.Context, watchlist tickers.Set) (*TickerDirectory, error) {
	resp, err := c.get(ctx, c.tickersURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticker mapping: %w", err)
	}
	defer resp.Body.Close()

	// Response shape: { "0": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."}, ... }
	var mapping map[string]struct {
		CIK    int    `json:"cik_str"`
		Ticker string `json:"ticker"`
		Title  string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&mapping); err != nil {
		return nil, fmt.Errorf("failed to parse ticker mapping: %w", err)
	}

	dir := newTickerDirectory()
	for _, entry := range mapping {
		ticker := strings.ToUpper(strings.TrimSpace(entry.Ticker))
		if ticker == "" || !watchlist.Contains(ticker) {
			continue
		}
		dir.add(strconv.Itoa(entry.CIK), entry.Title, ticker)
	}
	return dir, nil
}

func newTickerDirectory() *TickerDirectory {
	return &TickerDirectory{
		cikToTicker:    make(map[string]string),
		nameToTicker:   make(map[string]string),
		ambiguousCIKs:  make(map[string]struct{}),
		ambiguousNames: make(map[string]struct{}),
	}
}

func (d *TickerDirectory) add(cik, companyName, ticker string) {
	if existing, ok := d.cikToTicker[cik]; ok && existing != ticker {
		d.ambiguousCIKs[cik] = struct{}{}
	} else {
		d.cikToTicker[cik] = ticker
	}

	name := strings.ToUpper(strings.TrimSpace(companyName))
	if name == "" {
		return
	}
	if existing, ok := d.nameToTicker[name]; ok && existing != ticker {
		d.ambiguousNames[name] = struct{}{}
	} else {
		d.nameToTicker[name] = ticker
	}
}

// Lookup resolves a ticker for an index record. The second return is false
// when the record is not on the watchlist or the join is ambiguous.
func (d *TickerDirectory) Lookup(cik, companyName string) (string, bool) {
	key := strings.TrimLeft(strings.TrimSpace(cik), "0")
	if _, ambiguous := d.ambiguousCIKs[key]; !ambiguous {
		if ticker, ok := d.cikToTicker[key]; ok {
			return ticker, true
		}
	}

	name := strings.ToUpper(strings.TrimSpace(companyName))
	if _, ambiguous := d.ambiguousNames[name]; ambiguous {
		return "", false
	}
	ticker, ok := d.nameToTicker[name]
	return ticker, ok
}

// Len reports how many watchlist tickers resolved against the mapping.
func (d *TickerDirectory) Len() int {
	seen := make(map[string]struct{}, len(d.cikToTicker))
	for _, t := range d.cikToTicker {
		seen[t] = struct{}{}
	}
	return len(seen)
}
