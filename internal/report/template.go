package report

const reportHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Title}} - {{.Date}}</title>
  <style>
    * { box-sizing: border-box; }

    body {
      margin: 0 auto;
      max-width: 950px;
      padding: 20px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    h1 {
      color: #1a365d;
      border-bottom: 3px solid #2563eb;
      padding-bottom: 10px;
      margin: 0 0 10px 0;
    }

    .summary {
      background: #ffffff;
      padding: 15px 20px;
      border-radius: 8px;
      margin-bottom: 20px;
      border: 1px solid #e5e7eb;
    }

    .summary strong { color: #2563eb; }

    .section { margin-bottom: 30px; }

    .section h2 {
      display: flex;
      align-items: center;
      gap: 8px;
    }

    .section.priority h2 { color: #dc2626; }
    .section.other h2 { color: #6b7280; }

    .badge {
      color: #ffffff;
      padding: 2px 8px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 600;
    }

    .section.priority .badge { background: #dc2626; }
    .section.other .badge { background: #6b7280; }

    .filing {
      background: #ffffff;
      margin-bottom: 16px;
      border-radius: 8px;
      overflow: hidden;
      border: 1px solid #e5e7eb;
      border-left: 4px solid #2563eb;
    }

    .filing.priority { border-left-color: #dc2626; }

    .filing-header {
      padding: 14px 16px;
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      gap: 12px;
      border-bottom: 1px solid #e5e7eb;
    }

    .company-info h3 {
      margin: 0 0 4px 0;
      color: #1a365d;
      font-size: 18px;
    }

    .ticker {
      display: inline-block;
      background: #2563eb;
      color: #ffffff;
      padding: 2px 8px;
      border-radius: 6px;
      font-weight: 700;
      font-size: 13px;
    }

    .cik {
      color: #6b7280;
      font-size: 12px;
    }

    .form-type {
      background: #e5e7eb;
      padding: 4px 10px;
      border-radius: 999px;
      font-size: 12px;
      font-weight: 700;
      white-space: nowrap;
    }

    .items { padding: 14px 16px; }

    .item {
      margin-bottom: 10px;
      padding: 10px 12px;
      background: #f9fafb;
      border-radius: 8px;
      border-left: 3px solid #e5e7eb;
    }

    .item.priority {
      border-left-color: #dc2626;
      background: #fef2f2;
    }

    .item-header {
      font-weight: 700;
      color: #1f2937;
      margin-bottom: 6px;
    }

    .item-snippet {
      color: #374151;
      font-size: 14px;
    }

    .no-items { color: #6b7280; }

    .filing-link {
      display: block;
      padding: 12px 16px;
      background: #f3f4f6;
      text-decoration: none;
      color: #2563eb;
      font-weight: 700;
      border-top: 1px solid #e5e7eb;
    }

    .filing-link:hover { background: #e5e7eb; }

    .no-filings {
      text-align: center;
      color: #6b7280;
      padding: 30px;
    }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="summary">
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Total Filings:</strong> {{.TotalFilings}}</p>
    <p><strong>Forms (present):</strong> {{if .FormsPresent}}{{.FormsPresent}}{{else}}&mdash;{{end}}</p>
    <p><strong>Priority 8-K Filings:</strong> {{len .Priority}} (8-K Items: {{.PriorityCodes}})</p>
  </div>
{{- if .Priority}}
  <div class="section priority">
    <h2>Priority 8-K Filings <span class="badge">{{len .Priority}}</span></h2>
{{- range .Priority}}
{{- template "filing" .}}
{{- end}}
  </div>
{{- end}}
{{- if .Other}}
  <div class="section other">
    <h2>Other Filings <span class="badge">{{len .Other}}</span></h2>
{{- range .Other}}
{{- template "filing" .}}
{{- end}}
  </div>
{{- end}}
{{- if eq .TotalFilings 0}}
  <div class="no-filings">No filings found for your criteria.</div>
{{- end}}
</body>
</html>
{{define "filing"}}
    <div class="filing{{if .IsPriority}} priority{{end}}">
      <div class="filing-header">
        <div class="company-info">
          <h3><span class="ticker">{{.Record.Ticker}}</span> {{.Record.CompanyName}}</h3>
          <div class="cik">CIK: {{.Record.CIK}} &middot; Filed: {{.Record.DateFiled}}</div>
        </div>
        <span class="form-type">{{.Record.FormType}}</span>
      </div>
      <div class="items">
{{- if .Items}}
{{- range .Items}}
        <div class="item{{if .IsPriority}} priority{{end}}">
          <div class="item-header">{{.Code}}: {{.Title}}</div>
          <div class="item-snippet">{{.Snippet}}</div>
        </div>
{{- end}}
{{- else}}
        <p class="no-items">No item details extracted</p>
{{- end}}
      </div>
      <a class="filing-link" href="{{.Record.DocumentURL}}" target="_blank" rel="noopener">View Full Filing &rarr;</a>
      <a class="filing-link" href="{{.IndexURL}}" target="_blank" rel="noopener">All documents</a>
    </div>
{{end}}
`
