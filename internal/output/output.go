package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dgrist/revu/internal/review"
)

// Writer renders a report snapshot in a specific format.
type Writer interface {
	Write(w io.Writer, report *review.Report) error
}

// ForFormat returns a writer for the specified format. Unsupported formats
// are an explicit error, never a silent default.
func ForFormat(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "html":
		return &HTMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Render returns the fully rendered report string for the given format.
func Render(format string, report *review.Report) (string, error) {
	writer, err := ForFormat(format)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := writer.Write(&b, report); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile renders the report and writes it to path.
func WriteFile(path, format string, report *review.Report) error {
	out, err := Render(format, report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// sortBySeverity returns the findings ordered by ascending severity rank.
// The sort is stable so ties keep insertion (scan) order.
func sortBySeverity(findings []review.Finding) []review.Finding {
	sorted := make([]review.Finding, len(findings))
	copy(sorted, findings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Severity.Rank() < sorted[j].Severity.Rank()
	})
	return sorted
}

func severityCounts(findings review.FindingsByCategory) map[review.Severity]int {
	counts := make(map[review.Severity]int)
	for _, fs := range findings {
		for _, f := range fs {
			counts[f.Severity]++
		}
	}
	return counts
}
