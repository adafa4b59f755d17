/*
Package ai provides optional Gemini-backed analysis of extracted SEC filing
sections.
*/
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// CatalystObservation is a single categorized observation about a filing.
type CatalystObservation struct {
	Category string `json:"category"`
	Details  string `json:"details"`
}

// Analysis is the structured response produced for one filing.
type Analysis struct {
	Summary            []string              `json:"summary"`
	PotentialCatalysts []CatalystObservation `json:"potential_catalysts"`
}

const systemInstruction = `
You are a financial analyst reviewing SEC filings for material corporate events.

You will receive the extracted Item sections of a single 8-K (or 8-K/A) filing: each section's item code, its disclosure category, and a text snippet.

Summarize what the company disclosed and flag anything actionable. For "potential_catalysts", the "details" field must contain specific, verifiable data from the text: transaction terms, dollar amounts, share counts, dates, names of departing or appointed officers, or the nature of the agreement. Avoid generic statements; every claim must be tied to a number, date, name, or specific condition from the provided text.

Categories to use where applicable:

- **Management Change:** departures or appointments of directors and officers (Item 5.02), including roles and effective dates.
- **Material Agreement:** entry into or termination of material agreements (Items 1.01/1.02), including counterparties and terms.
- **M&A / Control:** acquisitions, dispositions, or changes in control (Items 2.01/5.01), including consideration and structure.
- **Restructuring:** exit or disposal activities (Item 2.05), including expected charges and timing.
- **Earnings:** results of operations (Item 2.02), including headline figures when present.
- **Financing:** direct financial obligations, unregistered equity sales, or triggering events (Items 2.03/3.02/2.04).
- **Distress:** bankruptcy, receivership, delisting notices, or non-reliance on prior financials (Items 1.03/3.01/4.02).
- **Other:** anything else material that doesn't fit the above.
`

// GenerateSummary analyzes one filing's extracted sections. The caller gates
// this on an API key; it is never required for a scan to complete.
func GenerateSummary(ticker, formType, sectionsText, apiKey, modelName string) (*Analysis, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	prompt := fmt.Sprintf("Ticker: %s\nForm: %s\n\nExtracted sections:\n\n%s", ticker, formType, sectionsText)

	systemContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: systemInstruction},
		},
		Role: "system",
	}

	userContent := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
		Role: "user",
	}

	contents := []*genai.Content{systemContent, userContent}

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   getResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}

	respText := resp.Text()

	var analysis Analysis
	if err := json.Unmarshal([]byte(respText), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gemini JSON response: %w. Raw text: %s", err, respText)
	}

	return &analysis, nil
}

func getResponseSchema() *genai.Schema {
	catalystSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {Type: genai.TypeString, Description: "One of the defined catalyst categories."},
			"details":  {Type: genai.TypeString, Description: "Specific data or transaction terms from the filing text."},
		},
		Required: []string{"category", "details"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "A list of 2-4 concise bullet points summarizing the disclosures.",
			},
			"potential_catalysts": {
				Type:        genai.TypeArray,
				Items:       catalystSchema,
				Description: "A list of specific, actionable observations.",
			},
		},
		Required: []string{"summary", "potential_catalysts"},
	}
}
