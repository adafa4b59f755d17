/*
Package report renders scan results as a static HTML report.
*/
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shanehull/secscan/internal/types"
)

// Renderer renders a ScanResult with the default report template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a renderer with the default template.
func NewRenderer() *Renderer {
	t := template.Must(template.New("report").Parse(reportHTMLTemplate))
	return &Renderer{tmpl: t}
}

type filingView struct {
	types.ScanEntry
	IsPriority bool
	IndexURL   string
}

type reportData struct {
	Title         string
	Date          string
	TotalFilings  int
	FormsPresent  string
	PriorityCodes string
	Priority      []filingView
	Other         []filingView
}

// entryHasPriority reports whether any extracted item is a priority item.
func entryHasPriority(e types.ScanEntry) bool {
	for _, item := range e.Items {
		if item.IsPriority {
			return true
		}
	}
	return false
}

// Render produces the HTML report document. Priority 8-K filings come
// first; everything the pipeline matched appears, snippets escaped by the
// template so broken markup can't break the page.
func (r *Renderer) Render(result *types.ScanResult, title string, priorityCodes []string, indexURL func(types.FilingRecord) string) (string, error) {
	data := reportData{
		Title:         title,
		Date:          result.Date.Format("2006-01-02"),
		TotalFilings:  len(result.Entries),
		PriorityCodes: strings.Join(priorityCodes, ", "),
	}

	formsPresent := make(map[string]struct{})
	for _, entry := range result.Entries {
		formsPresent[entry.Record.FormType] = struct{}{}

		view := filingView{
			ScanEntry:  entry,
			IsPriority: entryHasPriority(entry),
			IndexURL:   indexURL(entry.Record),
		}
		if view.IsPriority {
			data.Priority = append(data.Priority, view)
		} else {
			data.Other = append(data.Other, view)
		}
	}

	forms := make([]string, 0, len(formsPresent))
	for f := range formsPresent {
		forms = append(forms, f)
	}
	sort.Strings(forms)
	data.FormsPresent = strings.Join(forms, ", ")

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

// Write saves the rendered report, creating parent directories as needed.
func Write(path, html string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
