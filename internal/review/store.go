package review

import (
	"fmt"
	"sync"
	"time"
)

// Store accumulates findings per category plus run statistics. It is owned
// by exactly one session and safe for concurrent appends, so units may be
// scanned by parallel workers.
type Store struct {
	mu       sync.Mutex
	findings FindingsByCategory
	stats    Stats
}

// NewStore returns an empty store with every category initialized, so a
// rendered report always carries all four category keys.
func NewStore() *Store {
	s := &Store{findings: make(FindingsByCategory, len(Categories))}
	for _, c := range Categories {
		s.findings[c] = []Finding{}
	}
	return s
}

// AddFinding appends a finding stamped with the current instant and
// increments the issue counter. Passing a category outside the known set is
// a programming error, not a user error: the public scanner contract can
// never produce one, so it panics instead of reporting.
func (s *Store) AddFinding(category Category, file string, line int, message string, severity Severity) {
	if !category.Valid() {
		panic(fmt.Sprintf("review: unknown finding category %q", category))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findings[category] = append(s.findings[category], Finding{
		Category:  category,
		File:      file,
		Line:      line,
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now(),
	})
	s.stats.IssuesFound++
}

// RecordUnit counts one reviewed unit and its lines. A unit that failed to
// read is still recorded, with zero lines.
func (s *Store) RecordUnit(lineCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.FilesReviewed++
	s.stats.LinesReviewed += lineCount
}

// Stats returns a copy of the current counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Snapshot returns the current counters and a deep copy of the findings, so
// renderers never observe or mutate store internals.
func (s *Store) Snapshot() (Stats, FindingsByCategory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(FindingsByCategory, len(s.findings))
	for c, fs := range s.findings {
		cp := make([]Finding, len(fs))
		copy(cp, fs)
		out[c] = cp
	}
	return s.stats, out
}
