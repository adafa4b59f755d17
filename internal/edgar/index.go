package edgar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/shanehull/secscan/internal/types"
)

const dailyIndexDateLayout = "20060102"

// dailyIndexURL builds the master index path for a date. EDGAR shards the
// daily index by year and quarter.
func (c *Client) dailyIndexURL(date time.Time) string {
	quarter := (int(date.Month())-1)/3 + 1
	return fmt.Sprintf("%s/edgar/daily-index/%d/QTR%d/master.%s.idx",
		c.archivesBase, date.Year(), quarter, date.Format(dailyIndexDateLayout))
}

// FilingIndexURL is the filing's "all documents" page, derived from the
// accession number.
func (c *Client) FilingIndexURL(cik, accession string) string {
	folder := strings.ReplaceAll(accession, "-", "")
	return fmt.Sprintf("%s/edgar/data/%s/%s/%s-index.html", c.archivesBase, cik, folder, accession)
}

func (c *Client) filingFolderURL(cik, accession string) string {
	return fmt.Sprintf("%s/edgar/data/%s/%s/", c.archivesBase, cik, strings.ReplaceAll(accession, "-", ""))
}

// FetchDailyIndex downloads and parses the daily master index for a date.
// Records that do not resolve to a watchlist ticker through dir are dropped.
// A 403/404 means no index is published for that date and yields
// ErrIndexUnavailable; any other failure is a transport error.
func (c *Client) FetchDailyIndex(ctx context.Context, date time.Time, dir *TickerDirectory) ([]types.FilingRecord, error) {
	url := c.dailyIndexURL(date)

	resp, err := c.get(ctx, url)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("no daily index for %s: %w", date.Format("2006-01-02"), ErrIndexUnavailable)
		}
		return nil, fmt.Errorf("failed to fetch daily index for %s: %w", date.Format("2006-01-02"), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily index for %s: %w", date.Format("2006-01-02"), err)
	}

	return c.parseIndex(string(body), dir), nil
}

// parseIndex turns master index text into filing records. The format is
// pipe-delimited: CIK|Company Name|Form Type|Date Filed|File Name, preceded
// by a free-form header. Malformed or truncated lines are skipped, never
// fatal.
func (c *Client) parseIndex(text string, dir *TickerDirectory) []types.FilingRecord {
	var records []types.FilingRecord

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 5 {
			continue
		}

		cik := strings.TrimSpace(parts[0])
		if !isDigits(cik) {
			continue // header row or garbage
		}
		companyName := strings.TrimSpace(parts[1])
		formType := strings.TrimSpace(parts[2])
		dateFiled := strings.TrimSpace(parts[3])
		filename := strings.TrimSpace(parts[4])
		if filename == "" {
			continue
		}

		ticker, ok := dir.Lookup(cik, companyName)
		if !ok {
			continue
		}

		accession := strings.TrimSuffix(path.Base(filename), ".txt")

		records = append(records, types.FilingRecord{
			CIK:         cik,
			CompanyName: companyName,
			FormType:    formType,
			DateFiled:   dateFiled,
			Filename:    filename,
			Accession:   accession,
			Ticker:      ticker,
			DocumentURL: c.FilingIndexURL(cik, accession),
			RawURL:      fmt.Sprintf("%s/%s", c.archivesBase, filename),
		})
	}

	return records
}

// ResolveDailyIndex finds the most recent date with a published daily index,
// starting from requested (zero value means today) and stepping back one
// calendar day per attempt. Weekends and holidays are detected only by index
// absence, not calendar logic. The successful probe doubles as the fetch, so
// the index is downloaded once.
func (c *Client) ResolveDailyIndex(ctx context.Context, requested time.Time, maxLookback int, dir *TickerDirectory) (time.Time, []types.FilingRecord, error) {
	if maxLookback <= 0 {
		maxLookback = DefaultLookbackDays
	}
	start := requested
	if start.IsZero() {
		start = time.Now()
	}

	for attempt := 0; attempt < maxLookback; attempt++ {
		date := start.AddDate(0, 0, -attempt)

		records, err := c.FetchDailyIndex(ctx, date, dir)
		if err == nil {
			return date, records, nil
		}
		if errors.Is(err, ErrIndexUnavailable) {
			log.Printf("No index published for %s, stepping back.", date.Format("2006-01-02"))
			continue
		}
		return time.Time{}, nil, err
	}

	return time.Time{}, nil, fmt.Errorf("exhausted %d look-back attempts from %s: %w",
		maxLookback, start.Format("2006-01-02"), ErrNoAvailableIndex)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
