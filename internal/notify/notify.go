/*
Package notify handles reporting of scan results via console output and
email delivery of the rendered report.
*/
package notify

import (
	"fmt"
	"strings"

	"github.com/shanehull/secscan/internal/ai"
	"github.com/shanehull/secscan/internal/types"
)

// ReportScan prints the scan outcome to the console, including any AI
// analyses keyed by accession number.
func ReportScan(result *types.ScanResult, analyses map[string]*ai.Analysis, reportPath string) {
	if len(result.Entries) == 0 {
		fmt.Println("\n-------------------------------------------")
		fmt.Printf("No matching filings found for %s.\n", result.Date.Format("2006-01-02"))
		fmt.Println("-------------------------------------------")
		return
	}

	fmt.Println("\n===========================================")
	fmt.Printf("✅ %d MATCHING FILINGS (%s)\n", len(result.Entries), result.Date.Format("2006-01-02"))
	fmt.Println("===========================================")

	for i, entry := range result.Entries {
		rec := entry.Record

		consoleOutput := fmt.Sprintf("\n--- FILING #%d ---\n", i+1) +
			fmt.Sprintf("Ticker:  %s\n", rec.Ticker) +
			fmt.Sprintf("Company: %s\n", rec.CompanyName) +
			fmt.Sprintf("Form:    %s\n", rec.FormType) +
			fmt.Sprintf("Filed:   %s (CIK %s)\n", rec.DateFiled, rec.CIK) +
			fmt.Sprintf("URL:     %s\n", rec.DocumentURL) +
			formatItems(entry.Items) +
			formatAnalysis(analyses[rec.Accession])

		fmt.Print(consoleOutput)
	}

	fmt.Println("\n===========================================")
	fmt.Printf("Scan complete. Report saved to %s.\n", reportPath)
	fmt.Println("===========================================")
}

func formatItems(items []types.ExtractedItem) string {
	if len(items) == 0 {
		return "Items:   (none extracted)\n"
	}
	var sb strings.Builder
	sb.WriteString("Items:\n")
	for _, item := range items {
		marker := " "
		if item.IsPriority {
			marker = "!"
		}
		sb.WriteString(fmt.Sprintf("\t%s %s: %s\n", marker, item.Code, item.Title))
		if item.Snippet != "" {
			sb.WriteString(fmt.Sprintf("\t  %s\n", item.Snippet))
		}
	}
	return sb.String()
}

func formatAnalysis(analysis *ai.Analysis) string {
	if analysis == nil {
		return ""
	}

	var sb strings.Builder
	if len(analysis.Summary) > 0 {
		sb.WriteString("AI Summary:\n")
		for _, s := range analysis.Summary {
			sb.WriteString(fmt.Sprintf("\t- %s\n", s))
		}
	}
	if len(analysis.PotentialCatalysts) > 0 {
		sb.WriteString("Potential Catalysts:\n")
		for _, c := range analysis.PotentialCatalysts {
			sb.WriteString(fmt.Sprintf("\t- [%s] %s\n", c.Category, c.Details))
		}
	}
	return sb.String()
}

// renderPlainText produces a readable text version of the scan for email
// clients that don't support HTML.
func renderPlainText(result *types.ScanResult, analyses map[string]*ai.Analysis) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("SEC filings for %s\n", result.Date.Format("2006-01-02")))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, entry := range result.Entries {
		rec := entry.Record
		sb.WriteString(fmt.Sprintf("%s - %s (%s)\n", rec.Ticker, rec.CompanyName, rec.FormType))
		sb.WriteString(fmt.Sprintf("Filed: %s\n", rec.DateFiled))
		sb.WriteString(fmt.Sprintf("URL: %s\n", rec.DocumentURL))
		sb.WriteString(formatItems(entry.Items))
		sb.WriteString(formatAnalysis(analyses[rec.Accession]))
		sb.WriteString("\n")
	}

	return sb.String()
}
