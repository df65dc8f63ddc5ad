// Command revu reviews source files and directory trees with pattern-based
// quality, security, performance, and best-practice scanners and renders the
// findings as a text, JSON, or HTML report.
//
// Usage:
//
//	revu review ./src -r -f html -o report.html
package main
