package review

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dgrist/revu/internal/config"
)

var printCallRe = regexp.MustCompile(`^\s*print\s*\(`)

// deadCodeTokens mark a comment as probable commented-out code. These are
// surface-text heuristics keyed to `#` comment syntax; on languages with
// other comment markers they simply never fire.
var deadCodeTokens = []string{"def ", "class ", "import ", "if ", "for ", "while "}

// ScanQuality runs the per-line quality checks. All checks are independent;
// a single line may yield several findings.
func ScanQuality(file, content string, lines []string, cfg config.Config) []Finding {
	var out []Finding
	add := func(line int, message string, severity Severity) {
		out = append(out, Finding{
			Category: CategoryQuality,
			File:     file,
			Line:     line,
			Message:  message,
			Severity: severity,
		})
	}

	for i, line := range lines {
		n := i + 1

		if count := utf8.RuneCountInString(line); count > cfg.MaxLineLength {
			add(n, fmt.Sprintf("Line exceeds %d characters (%d)", cfg.MaxLineLength, count), SeverityLow)
		}

		if strings.Contains(line, "TODO") || strings.Contains(line, "FIXME") {
			add(n, "TODO/FIXME comment found - should be addressed", SeverityInfo)
		}

		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			add(n, "Trailing whitespace detected", SeverityLow)
		}

		stripped := strings.TrimSpace(line)

		if printCallRe.MatchString(line) && !strings.HasPrefix(stripped, "#") {
			add(n, "Print statement detected - use logging instead", SeverityMedium)
		}

		if strings.HasPrefix(stripped, "#") && len(stripped) > 2 {
			rest := stripped[1:]
			for _, tok := range deadCodeTokens {
				if strings.Contains(rest, tok) {
					add(n, "Commented-out code detected - should be removed", SeverityLow)
					break
				}
			}
		}
	}
	return out
}
