package output

import (
	"strings"
	"testing"
	"time"

	"github.com/dgrist/revu/internal/review"
)

func sampleReport() *review.Report {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return &review.Report{
		Findings: review.FindingsByCategory{
			review.CategorySecurity: {
				{Category: review.CategorySecurity, File: "app.py", Line: 12, Message: "os.system() is vulnerable to command injection", Severity: review.SeverityHigh, Timestamp: ts},
				{Category: review.CategorySecurity, File: "app.py", Line: 3, Message: "Use of eval() is dangerous - arbitrary code execution risk", Severity: review.SeverityCritical, Timestamp: ts},
			},
			review.CategoryPerformance: {
				{Category: review.CategoryPerformance, File: "job.py", Line: 7, Message: "Potential API calls in loop - consider batch operations", Severity: review.SeverityHigh, Timestamp: ts},
			},
			review.CategoryQuality: {
				{Category: review.CategoryQuality, File: "app.py", Line: 5, Message: "TODO/FIXME comment found - should be addressed", Severity: review.SeverityInfo, Timestamp: ts},
				{Category: review.CategoryQuality, File: "app.py", Line: 9, Message: "Trailing whitespace detected", Severity: review.SeverityLow, Timestamp: ts},
			},
			review.CategoryBestPractices: {
				{Category: review.CategoryBestPractices, File: "app.py", Line: review.FileScope, Message: "Functions found without docstrings", Severity: review.SeverityMedium, Timestamp: ts},
			},
		},
		Stats:       review.Stats{FilesReviewed: 2, LinesReviewed: 240, IssuesFound: 6},
		GeneratedAt: ts,
	}
}

func TestForFormatKnown(t *testing.T) {
	for _, format := range []string{"text", "json", "html"} {
		if _, err := ForFormat(format); err != nil {
			t.Errorf("ForFormat(%q) error: %v", format, err)
		}
	}
}

func TestForFormatUnsupported(t *testing.T) {
	_, err := ForFormat("xml")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported report format") {
		t.Errorf("error = %v", err)
	}
}

func TestRenderUnsupported(t *testing.T) {
	if _, err := Render("yaml", sampleReport()); err == nil {
		t.Fatal("Render should propagate the unsupported-format error")
	}
}

func TestSortBySeverityStable(t *testing.T) {
	findings := []review.Finding{
		{Message: "first medium", Severity: review.SeverityMedium},
		{Message: "a low", Severity: review.SeverityLow},
		{Message: "second medium", Severity: review.SeverityMedium},
		{Message: "a critical", Severity: review.SeverityCritical},
	}
	sorted := sortBySeverity(findings)

	want := []string{"a critical", "first medium", "second medium", "a low"}
	for i, w := range want {
		if sorted[i].Message != w {
			t.Errorf("position %d = %q, want %q", i, sorted[i].Message, w)
		}
	}
	if findings[0].Message != "first medium" {
		t.Error("input slice should not be mutated")
	}
}
