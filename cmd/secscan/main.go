package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shanehull/secscan/internal/ai"
	"github.com/shanehull/secscan/internal/edgar"
	"github.com/shanehull/secscan/internal/notify"
	"github.com/shanehull/secscan/internal/report"
	"github.com/shanehull/secscan/internal/tickers"
	"github.com/shanehull/secscan/internal/types"
)

var (
	tickersCSV   = flag.String("tickers-csv", "tickers.csv", "(-c) Path to a CSV with a Ticker column")
	tickerColumn = flag.String("ticker-column", "Ticker", "CSV column name that contains tickers")
	formsStr     = flag.String("forms", strings.Join(edgar.DefaultForms, ","), "Comma-separated form types to include")
	dateStr      = flag.String("date", "", "(-d) Report date YYYY-MM-DD; look-back applies from it (default: today)")
	lookbackDays = flag.Int("lookback-days", edgar.DefaultLookbackDays, "How many days back to search for a published index")
	snippetLen   = flag.Int("snippet-length", edgar.DefaultSnippetLength, "Maximum length of extracted item snippets")
	outputPath   = flag.String("output", "", "(-o) Output HTML file (default: sec_report_YYYY-MM-DD.html)")
	reportTitle  = flag.String("title", "SEC Filing Summary Report", "HTML report title")
	userAgent    = flag.String("user-agent", "", "SEC-compliant User-Agent string (default: $SEC_USER_AGENT)")
	aiModel      = flag.String("ai-model", "gemini-2.5-flash", "Gemini model for priority filing analysis ($GEMINI_API_KEY enables it)")

	smtpServer = flag.String("smtp-server", "smtp.gmail.com", "SMTP server address (default: smtp.gmail.com)")
	smtpPort   = flag.Int("smtp-port", 587, "SMTP server port (default: 587)")
	smtpUser   = flag.String("smtp-user", "", "SMTP username (email address)")
	smtpPass   = flag.String("smtp-pass", "", "SMTP password or App Password")
	toEmail    = flag.String("to-email", "", "Recipient email address")
	fromEmail  = flag.String("from-email", "", "Sender email address (default: smtp-user)")
)

func init() {
	flag.StringVar(tickersCSV, "c", "tickers.csv", "(-c) Path to a CSV with a Ticker column (shorthand)")
	flag.StringVar(dateStr, "d", "", "(-d) Report date YYYY-MM-DD (shorthand)")
	flag.StringVar(outputPath, "o", "", "(-o) Output HTML file (shorthand)")

	flag.Usage = func() {
		flagSet := flag.CommandLine
		fmt.Printf("Usage of %s:\n", "secscan")

		order := []string{
			"tickers-csv",
			"ticker-column",
			"forms",
			"date",
			"lookback-days",
			"snippet-length",
			"output",
			"title",
			"user-agent",
			"ai-model",
			"smtp-server",
			"smtp-port",
			"smtp-user",
			"smtp-pass",
			"to-email",
			"from-email",
		}

		for _, name := range order {
			f := flagSet.Lookup(name)
			if f != nil {
				fmt.Printf("  -%s\n", f.Name)
				fmt.Printf("    %s\n", f.Usage)
			}
		}
	}
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env file.")
	}
	flag.Parse()

	ua := strings.TrimSpace(*userAgent)
	if ua == "" {
		ua = strings.TrimSpace(os.Getenv("SEC_USER_AGENT"))
	}
	if ua == "" {
		// SEC wants contact info in the UA. Keep running, but warn loudly.
		ua = "secscan (set SEC_USER_AGENT with your email)"
		fmt.Println("WARNING: No SEC_USER_AGENT set. You should set it to include contact info.")
		fmt.Println(`Example: export SEC_USER_AGENT="secscan (you@example.com)"`)
		fmt.Println()
	}

	watchlist, err := tickers.LoadCSV(*tickersCSV, *tickerColumn)
	if err != nil {
		fmt.Printf("Failed to load tickers: %v\n", err)
		fmt.Println("Tip: create a CSV with a 'Ticker' column (e.g. AAPL, MSFT, ...)")
		os.Exit(2)
	}
	if len(watchlist) == 0 {
		fmt.Printf("No tickers found in %s. Check the column name.\n", *tickersCSV)
		os.Exit(2)
	}

	forms := edgar.NewFormSet(strings.Split(*formsStr, ",")...)

	var requested time.Time
	if *dateStr != "" {
		requested, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Println("Invalid -date. Use YYYY-MM-DD.")
			os.Exit(2)
		}
	}

	emailConfig := notify.EmailConfig{
		SMTPServer: *smtpServer,
		SMTPPort:   *smtpPort,
		SMTPUser:   *smtpUser,
		SMTPPass:   *smtpPass,
		ToEmail:    *toEmail,
		FromEmail:  *fromEmail,
		Enabled:    (*smtpServer != "" && *smtpUser != "" && *smtpPass != "" && *toEmail != ""),
	}
	if emailConfig.FromEmail == "" && emailConfig.SMTPUser != "" {
		emailConfig.FromEmail = emailConfig.SMTPUser
	}

	fmt.Printf("Starting SEC scan. Tickers: %s · Forms: %s\n", strings.Join(watchlist.Sorted(), ", "), *formsStr)

	client := edgar.NewClient(ua, edgar.WithSnippetLength(*snippetLen))

	result, err := client.Scan(context.Background(), edgar.ScanParams{
		Date:         requested,
		LookbackDays: *lookbackDays,
		Watchlist:    watchlist,
		Forms:        forms,
	})
	if err != nil {
		fmt.Printf("Fatal error during scan: %v\n", err)
		os.Exit(1)
	}

	analyses := runAIAnalyses(result)

	html, err := report.NewRenderer().Render(result, *reportTitle, edgar.PriorityItemCodes(), func(rec types.FilingRecord) string {
		return client.FilingIndexURL(rec.CIK, rec.Accession)
	})
	if err != nil {
		fmt.Printf("Fatal error rendering report: %v\n", err)
		os.Exit(1)
	}

	out := *outputPath
	if out == "" {
		out = fmt.Sprintf("sec_report_%s.html", result.Date.Format("2006-01-02"))
	}
	if err := report.Write(out, html); err != nil {
		fmt.Printf("Fatal error writing report: %v\n", err)
		os.Exit(1)
	}

	notify.ReportScan(result, analyses, out)

	if emailConfig.Enabled {
		_ = notify.EmailReport(emailConfig, result, analyses, html)
	}
}

// runAIAnalyses annotates priority 8-K filings when a Gemini key is
// configured. Failures degrade to a missing analysis, never a failed run.
func runAIAnalyses(result *types.ScanResult) map[string]*ai.Analysis {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}

	analyses := make(map[string]*ai.Analysis)
	for _, entry := range result.Entries {
		if !hasPriorityItem(entry.Items) {
			continue
		}

		var sb strings.Builder
		for _, item := range entry.Items {
			sb.WriteString(fmt.Sprintf("%s (%s)\n%s\n\n", item.Code, item.Title, item.Snippet))
		}

		analysis, err := ai.GenerateSummary(entry.Record.Ticker, entry.Record.FormType, sb.String(), apiKey, *aiModel)
		if err != nil {
			log.Printf("Warning: AI analysis failed for %s: %v", entry.Record.Ticker, err)
			continue
		}
		analyses[entry.Record.Accession] = analysis
	}
	return analyses
}

func hasPriorityItem(items []types.ExtractedItem) bool {
	for _, item := range items {
		if item.IsPriority {
			return true
		}
	}
	return false
}
