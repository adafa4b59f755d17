package edgar

import (
	"context"
	"log"
	"time"

	"github.com/shanehull/secscan/internal/tickers"
	"github.com/shanehull/secscan/internal/types"
)

// ScanParams configures one scan run.
type ScanParams struct {
	Date         time.Time // zero means today
	LookbackDays int       // <=0 uses DefaultLookbackDays
	Watchlist    tickers.Set
	Forms        FormSet
}

// Scan runs the full pipeline: resolve the most recent daily index, filter
// it to the watchlist and form set, and extract Item sections from matched
// 8-K filings. Entries come back in index order. Filings are processed one
// at a time; the client's rate limiter spaces the document fetches.
func (c *Client) Scan(ctx context.Context, params ScanParams) (*types.ScanResult, error) {
	dir, err := c.LoadTickerDirectory(ctx, params.Watchlist)
	if err != nil {
		return nil, err
	}
	log.Printf("Resolved %d of %d watchlist tickers against the SEC company directory.", dir.Len(), len(params.Watchlist))

	date, records, err := c.ResolveDailyIndex(ctx, params.Date, params.LookbackDays, dir)
	if err != nil {
		return nil, err
	}

	matched := MatchFilings(records, params.Watchlist, params.Forms)
	log.Printf("Matched %d filings for %s.", len(matched), date.Format("2006-01-02"))

	result := &types.ScanResult{Date: date}
	for i := range matched {
		rec := matched[i]
		if IsItemForm(rec.FormType) {
			log.Printf("Processing %d/%d: %s (%s)", i+1, len(matched), rec.Ticker, rec.FormType)
		}
		items := c.ExtractItems(ctx, &rec)
		result.Entries = append(result.Entries, types.ScanEntry{Record: rec, Items: items})
	}

	return result, nil
}
