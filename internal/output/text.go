package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgrist/revu/internal/review"
)

// TextWriter renders the plain text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *review.Report) error {
	ew := &errWriter{w: w}
	banner := strings.Repeat("=", 80)
	rule := strings.Repeat("-", 80)

	ew.println(banner)
	ew.println("REVU - CODE REVIEW REPORT")
	ew.println(banner)
	ew.printf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	ew.println("")

	ew.println("SUMMARY")
	ew.println(rule)
	ew.printf("Files Reviewed: %d\n", report.Stats.FilesReviewed)
	ew.printf("Lines Reviewed: %d\n", report.Stats.LinesReviewed)
	ew.printf("Total Issues Found: %d\n", report.Stats.IssuesFound)
	ew.println("")

	counts := severityCounts(report.Findings)
	ew.println("Issues by Severity:")
	for _, sev := range review.SeverityOrder {
		if counts[sev] > 0 {
			ew.printf("  %s: %d\n", strings.ToUpper(string(sev)), counts[sev])
		}
	}
	ew.println("")

	for _, cat := range review.ReportOrder {
		findings := report.Findings[cat]
		if len(findings) == 0 {
			continue
		}
		ew.printf("\n%s ISSUES (%d)\n", strings.ToUpper(string(cat)), len(findings))
		ew.println(rule)

		for _, f := range sortBySeverity(findings) {
			ew.printf("\n%s %s\n", severityMarker(f.Severity), strings.ToUpper(string(f.Severity)))
			ew.printf("File: %s\n", f.File)
			if !f.FileLevel() {
				ew.printf("Line: %d\n", f.Line)
			}
			ew.printf("Issue: %s\n", f.Message)
		}
	}

	ew.println("\n" + banner)
	ew.println("END OF REPORT")
	ew.println(banner)
	return ew.err
}

func severityMarker(s review.Severity) string {
	switch s {
	case review.SeverityCritical:
		return "[!!!]"
	case review.SeverityHigh:
		return "[!!]"
	case review.SeverityMedium:
		return "[!]"
	case review.SeverityLow:
		return "[-]"
	case review.SeverityInfo:
		return "[i]"
	default:
		return "[?]"
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
