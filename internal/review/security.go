package review

import (
	"regexp"
	"strings"

	"github.com/dgrist/revu/internal/config"
)

// secRule is one entry in the security pattern catalog: a pre-compiled
// case-insensitive matcher plus the message and severity it reports.
type secRule struct {
	pattern  *regexp.Regexp
	message  string
	severity Severity
}

// secRules is the ordered security pattern catalog. Each rule fires once per
// matching line; a line matching several rules yields several findings. The
// patterns and messages are fixed for report compatibility.
var secRules = []secRule{
	{regexp.MustCompile(`(?i)eval\s*\(`), "Use of eval() is dangerous - arbitrary code execution risk", SeverityCritical},
	{regexp.MustCompile(`(?i)exec\s*\(`), "Use of exec() is dangerous - arbitrary code execution risk", SeverityCritical},
	{regexp.MustCompile(`(?i)pickle\.loads?\s*\(`), "Pickle deserialization can be unsafe - consider alternatives", SeverityHigh},
	{regexp.MustCompile(`(?i)subprocess\.call\([^)]*shell\s*=\s*True`), "Shell=True in subprocess is dangerous", SeverityCritical},
	{regexp.MustCompile(`(?i)os\.system\s*\(`), "os.system() is vulnerable to command injection", SeverityHigh},
	{regexp.MustCompile(`(?i)password\s*=\s*["']`), "Hardcoded password detected", SeverityCritical},
	{regexp.MustCompile(`(?i)api[_-]?key\s*=\s*["']`), "Hardcoded API key detected", SeverityCritical},
	{regexp.MustCompile(`(?i)secret\s*=\s*["']`), "Hardcoded secret detected", SeverityCritical},
	{regexp.MustCompile(`(?i)md5\s*\(`), "MD5 is cryptographically broken - use SHA256 or better", SeverityHigh},
	{regexp.MustCompile(`(?i)random\.random\(\)`), "random.random() is not cryptographically secure - use secrets module", SeverityMedium},
	{regexp.MustCompile(`(?i)input\s*\([^)]*\)`), "input() without validation can be dangerous", SeverityMedium},
	{regexp.MustCompile(`(?i)\.format\s*\([^)]*request\.`), "String formatting with user input - SQL/command injection risk", SeverityHigh},
	{regexp.MustCompile(`(?i)SELECT\s+.*\s+.*\+\s*`), "Potential SQL injection - use parameterized queries", SeverityCritical},
	{regexp.MustCompile(`(?i)assert\s+`), "Assert statements can be disabled - use proper validation", SeverityMedium},
}

// ScanSecurity matches the security pattern catalog against each line and
// adds one file-level finding when input handling appears without any
// validation hint anywhere in the content.
func ScanSecurity(file, content string, lines []string, cfg config.Config) []Finding {
	var out []Finding
	for i, line := range lines {
		for _, rule := range secRules {
			if rule.pattern.MatchString(line) {
				out = append(out, Finding{
					Category: CategorySecurity,
					File:     file,
					Line:     i + 1,
					Message:  rule.message,
					Severity: rule.severity,
				})
			}
		}
	}

	if strings.Contains(content, "input(") && !strings.Contains(strings.ToLower(content), "validate") {
		out = append(out, Finding{
			Category: CategorySecurity,
			File:     file,
			Line:     FileScope,
			Message:  "User input detected without apparent validation",
			Severity: SeverityMedium,
		})
	}
	return out
}
