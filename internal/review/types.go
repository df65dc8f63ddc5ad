package review

import "time"

// Severity is the ranked urgency of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"
)

// SeverityOrder is the canonical display order, most severe first.
var SeverityOrder = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

var severityRanks = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
	SeverityInfo:     4,
}

// Rank returns the sort rank of a severity; lower sorts first. Severities
// outside the known set rank after info.
func (s Severity) Rank() int {
	if r, ok := severityRanks[s]; ok {
		return r
	}
	return len(severityRanks)
}

// Category groups findings by the scanner that produced them.
type Category string

const (
	CategoryQuality       Category = "quality"
	CategorySecurity      Category = "security"
	CategoryPerformance   Category = "performance"
	CategoryBestPractices Category = "best_practices"
)

// Categories is the closed set of valid categories.
var Categories = []Category{
	CategoryQuality,
	CategorySecurity,
	CategoryPerformance,
	CategoryBestPractices,
}

// ReportOrder is the fixed category order used by the text and HTML reports.
var ReportOrder = []Category{
	CategorySecurity,
	CategoryPerformance,
	CategoryQuality,
	CategoryBestPractices,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryQuality, CategorySecurity, CategoryPerformance, CategoryBestPractices:
		return true
	}
	return false
}

// FileScope is the line number of a finding that applies to a whole file
// rather than a specific line.
const FileScope = 0

// Finding is one detected issue. Findings are immutable once stored.
type Finding struct {
	Category  Category  `json:"category"`
	File      string    `json:"file"`
	Line      int       `json:"line"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// FileLevel reports whether the finding applies to the whole file.
func (f Finding) FileLevel() bool { return f.Line == FileScope }

// Stats are the run counters for a session. IssuesFound always equals the
// total number of findings across all categories.
type Stats struct {
	FilesReviewed int `json:"files_reviewed"`
	LinesReviewed int `json:"lines_reviewed"`
	IssuesFound   int `json:"issues_found"`
}

// FindingsByCategory maps each category to its findings in insertion order.
type FindingsByCategory map[Category][]Finding

// Report is a point-in-time snapshot handed to a renderer.
type Report struct {
	Findings    FindingsByCategory `json:"findings"`
	Stats       Stats              `json:"stats"`
	GeneratedAt time.Time          `json:"timestamp"`
}
