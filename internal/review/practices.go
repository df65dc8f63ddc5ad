package review

import (
	"fmt"
	"strings"

	"github.com/dgrist/revu/internal/config"
)

// importHeadLines bounds how far into a file wildcard imports are searched.
const importHeadLines = 50

// maxFileLines is the line count above which a file is flagged for splitting.
const maxFileLines = 500

// ScanBestPractices runs the whole-file checks. Unlike the other scanners it
// is never gated by configuration. The docstring and wildcard-import checks
// are Python-specific surface heuristics and only fire for .py files.
func ScanBestPractices(file, content string, lines []string, cfg config.Config) []Finding {
	var out []Finding
	add := func(message string, severity Severity) {
		out = append(out, Finding{
			Category: CategoryBestPractices,
			File:     file,
			Line:     FileScope,
			Message:  message,
			Severity: severity,
		})
	}

	if strings.HasSuffix(file, ".py") {
		if strings.Contains(content, "def ") && !strings.Contains(content, `"""`) {
			add("Functions found without docstrings", SeverityMedium)
		}

		head := lines
		if len(head) > importHeadLines {
			head = head[:importHeadLines]
		}
		if strings.Contains(strings.Join(head, "\n"), "import *") {
			add("Wildcard imports (import *) discouraged", SeverityMedium)
		}
	}

	// Reported once regardless of how many bare handlers the file has.
	if strings.Count(content, "except:") > 0 {
		add("Bare except clause found - specify exception types", SeverityMedium)
	}

	if len(lines) > maxFileLines {
		add(fmt.Sprintf("Large file (%d lines) - consider splitting", len(lines)), SeverityLow)
	}
	return out
}
