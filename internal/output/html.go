package output

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/dgrist/revu/internal/review"
)

// HTMLWriter renders the styled document report. Findings follow the same
// category order and severity sort as the text report. The template engine
// escapes all user-controlled content (file paths, messages), so reviewed
// source can never inject markup into the document.
type HTMLWriter struct{}

type htmlSection struct {
	Title    string
	Count    int
	Findings []review.Finding
}

type htmlReport struct {
	Generated string
	Stats     review.Stats
	Sections  []htmlSection
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"upper": func(s review.Severity) string { return strings.ToUpper(string(s)) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Revu - Code Review Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 20px; }
        h1 { color: #333; border-bottom: 3px solid #4CAF50; padding-bottom: 10px; }
        h2 { color: #666; border-bottom: 2px solid #ddd; padding-bottom: 5px; }
        .stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 15px; margin: 20px 0; }
        .stat-box { background: #f9f9f9; padding: 15px; border-left: 4px solid #4CAF50; }
        .stat-label { color: #666; font-size: 14px; }
        .stat-value { font-size: 24px; font-weight: bold; color: #333; }
        .finding { margin: 15px 0; padding: 15px; border-radius: 5px; border-left: 4px solid #ddd; }
        .critical { border-left-color: #f44336; background: #ffebee; }
        .high { border-left-color: #ff9800; background: #fff3e0; }
        .medium { border-left-color: #ffeb3b; background: #fffde7; }
        .low { border-left-color: #2196f3; background: #e3f2fd; }
        .info { border-left-color: #9e9e9e; background: #f5f5f5; }
        .severity { display: inline-block; padding: 3px 8px; border-radius: 3px; font-size: 12px; font-weight: bold; color: white; }
        .severity.critical { background: #f44336; }
        .severity.high { background: #ff9800; }
        .severity.medium { background: #ffeb3b; color: #333; }
        .severity.low { background: #2196f3; }
        .severity.info { background: #9e9e9e; }
        .file { font-family: monospace; background: #eee; padding: 2px 5px; border-radius: 3px; }
        .line { color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Revu - Code Review Report</h1>
        <p>Generated: {{.Generated}}</p>

        <div class="stats">
            <div class="stat-box">
                <div class="stat-label">Files Reviewed</div>
                <div class="stat-value">{{.Stats.FilesReviewed}}</div>
            </div>
            <div class="stat-box">
                <div class="stat-label">Lines Reviewed</div>
                <div class="stat-value">{{.Stats.LinesReviewed}}</div>
            </div>
            <div class="stat-box">
                <div class="stat-label">Issues Found</div>
                <div class="stat-value">{{.Stats.IssuesFound}}</div>
            </div>
        </div>
{{range .Sections}}
        <h2>{{.Title}} ({{.Count}} issues)</h2>
{{range .Findings}}
        <div class="finding {{.Severity}}">
            <span class="severity {{.Severity}}">{{upper .Severity}}</span>
            <br>
            <span class="file">{{.File}}</span>{{if not .FileLevel}}<span class="line"> (Line {{.Line}})</span>{{end}}
            <p><strong>{{.Message}}</strong></p>
        </div>
{{end}}
{{end}}
    </div>
</body>
</html>
`))

func (h *HTMLWriter) Write(w io.Writer, report *review.Report) error {
	data := htmlReport{
		Generated: report.GeneratedAt.Format("2006-01-02 15:04:05"),
		Stats:     report.Stats,
	}
	for _, cat := range review.ReportOrder {
		findings := report.Findings[cat]
		if len(findings) == 0 {
			continue
		}
		data.Sections = append(data.Sections, htmlSection{
			Title:    strings.ToUpper(string(cat)),
			Count:    len(findings),
			Findings: sortBySeverity(findings),
		})
	}
	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}
