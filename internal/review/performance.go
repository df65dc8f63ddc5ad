package review

import (
	"regexp"
	"strings"

	"github.com/dgrist/revu/internal/config"
)

var (
	rangeLenRe    = regexp.MustCompile(`for\s+\w+\s+in\s+range\s*\(\s*len\s*\(`)
	constAssignRe = regexp.MustCompile(`^[A-Z_]+\s*=\s*`)
)

// loopLookahead is how many lines past a loop header are inspected for
// HTTP-call-like tokens. Fixed, not configurable.
const loopLookahead = 10

// ScanPerformance runs the per-line performance heuristics. The all-caps
// constant check is a statement-start heuristic and accepts a file-level
// false-positive rate as a tradeoff.
func ScanPerformance(file, content string, lines []string, cfg config.Config) []Finding {
	var out []Finding
	add := func(line int, message string, severity Severity) {
		out = append(out, Finding{
			Category: CategoryPerformance,
			File:     file,
			Line:     line,
			Message:  message,
			Severity: severity,
		})
	}

	for i, line := range lines {
		n := i + 1

		if rangeLenRe.MatchString(line) {
			add(n, "Using range(len()) - consider enumerate() or direct iteration", SeverityLow)
		}

		if strings.Contains(line, "+=") && strings.Contains(strings.ToLower(line), "str") {
			add(n, "String concatenation with += can be slow - consider join()", SeverityMedium)
		}

		if constAssignRe.MatchString(line) && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			add(n, "Global variable detected - can impact performance and testing", SeverityLow)
		}

		if strings.Contains(line, "for ") || strings.Contains(line, "while ") {
			end := i + 1 + loopLookahead
			if end > len(lines) {
				end = len(lines)
			}
			for _, next := range lines[i+1 : end] {
				if strings.Contains(next, "requests.") || strings.Contains(strings.ToLower(next), "http") {
					add(n, "Potential API calls in loop - consider batch operations", SeverityHigh)
					break
				}
			}
		}
	}
	return out
}
