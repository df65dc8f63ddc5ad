package review

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dgrist/revu/internal/config"
)

// Scanner is a pure function producing findings from one unit's text and the
// active configuration. Scanners are stateless and independent of each other.
type Scanner func(file, content string, lines []string, cfg config.Config) []Finding

// Session drives the scanners over reviewed units and owns the finding
// store. A session is single-use: one file tree in, one report out.
type Session struct {
	cfg   config.Config
	store *Store
}

// New returns a session with an empty store and the given merged config.
func New(cfg config.Config) *Session {
	return &Session{cfg: cfg, store: NewStore()}
}

// Config returns the session's configuration.
func (s *Session) Config() config.Config { return s.cfg }

// ReviewUnit scans one unit of already-read content. It counts the unit and
// its lines, runs every enabled scanner, and forwards each produced finding
// to the store. Best-practices checks always run.
func (s *Session) ReviewUnit(identity, content string) {
	lines := strings.Split(content, "\n")
	s.store.RecordUnit(len(lines))

	if s.cfg.CheckQuality {
		s.forward(ScanQuality(identity, content, lines, s.cfg))
	}
	if s.cfg.CheckSecurity {
		s.forward(ScanSecurity(identity, content, lines, s.cfg))
	}
	if s.cfg.CheckPerformance {
		s.forward(ScanPerformance(identity, content, lines, s.cfg))
	}
	s.forward(ScanBestPractices(identity, content, lines, s.cfg))
}

// ReviewFile reads and scans one file. A read failure never aborts the run:
// it is converted into a single high-severity quality finding and the file
// still counts as reviewed.
func (s *Session) ReviewFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.store.RecordUnit(0)
		s.store.AddFinding(CategoryQuality, path, FileScope,
			fmt.Sprintf("Error reading file: %v", err), SeverityHigh)
		return
	}
	s.ReviewUnit(path, string(data))
}

func (s *Session) forward(findings []Finding) {
	for _, f := range findings {
		s.store.AddFinding(f.Category, f.File, f.Line, f.Message, f.Severity)
	}
}

// Stats returns the session's current run counters.
func (s *Session) Stats() Stats { return s.store.Stats() }

// Report snapshots the store into a renderable report stamped with the
// current instant.
func (s *Session) Report() *Report {
	stats, findings := s.store.Snapshot()
	return &Report{
		Findings:    findings,
		Stats:       stats,
		GeneratedAt: time.Now(),
	}
}
