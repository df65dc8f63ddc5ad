// Package review contains the core finding engine: the closed severity and
// category enumerations, the pattern scanners, and the session that
// aggregates findings with run statistics.
//
// Scanners are pure functions over (file identity, content, line slices,
// config) and never touch shared state; the session forwards their output to
// a mutex-guarded store, so units may be scanned by parallel workers.
// Findings within one unit stay line-ascending regardless of concurrency
// because a unit is always scanned whole by one caller.
//
// The security scanner is data-driven: an ordered table of pre-compiled
// case-insensitive matchers with attached messages and severities. The
// quality, performance, and best-practices scanners are line and whole-file
// heuristics with no semantic understanding of the source.
package review
