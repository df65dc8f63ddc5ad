package review

import (
	"strings"
	"testing"

	"github.com/dgrist/revu/internal/config"
)

func scan(t *testing.T, fn Scanner, file, content string) []Finding {
	t.Helper()
	return fn(file, content, strings.Split(content, "\n"), config.Default())
}

func TestSecurityEval(t *testing.T) {
	findings := scan(t, ScanSecurity, "a.py", "x = eval(user_input)")
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Severity != SeverityCritical {
		t.Errorf("severity = %s, want critical", f.Severity)
	}
	if f.Line != 1 {
		t.Errorf("line = %d, want 1", f.Line)
	}
	if !strings.Contains(f.Message, "eval") {
		t.Errorf("message %q should mention eval", f.Message)
	}
	if f.Category != CategorySecurity {
		t.Errorf("category = %s", f.Category)
	}
}

func TestSecurityMultipleRulesOneLine(t *testing.T) {
	// assert + eval on the same line: two rules, two findings.
	findings := scan(t, ScanSecurity, "a.py", "assert eval(x)")
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2: %+v", len(findings), findings)
	}
	for _, f := range findings {
		if f.Line != 1 {
			t.Errorf("line = %d, want 1", f.Line)
		}
	}
}

func TestSecurityCaseInsensitive(t *testing.T) {
	findings := scan(t, ScanSecurity, "a.py", `PASSWORD = "hunter2"`)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Message != "Hardcoded password detected" {
		t.Errorf("message = %q", findings[0].Message)
	}
}

func TestSecurityRuleTable(t *testing.T) {
	tests := []struct {
		line     string
		message  string
		severity Severity
	}{
		{"exec(cmd)", "Use of exec() is dangerous - arbitrary code execution risk", SeverityCritical},
		{"pickle.loads(blob)", "Pickle deserialization can be unsafe - consider alternatives", SeverityHigh},
		{"subprocess.call(cmd, shell=True)", "Shell=True in subprocess is dangerous", SeverityCritical},
		{"os.system(cmd)", "os.system() is vulnerable to command injection", SeverityHigh},
		{`api_key = "abc123"`, "Hardcoded API key detected", SeverityCritical},
		{`api-key = "abc123"`, "Hardcoded API key detected", SeverityCritical},
		{`secret = "abc123"`, "Hardcoded secret detected", SeverityCritical},
		{"h = md5(data)", "MD5 is cryptographically broken - use SHA256 or better", SeverityHigh},
		{"r = random.random()", "random.random() is not cryptographically secure - use secrets module", SeverityMedium},
		{"name = input(prompt)", "input() without validation can be dangerous", SeverityMedium},
		{`q.format(a, request.args)`, "String formatting with user input - SQL/command injection risk", SeverityHigh},
		{`query = "SELECT name FROM users WHERE id = " + uid`, "Potential SQL injection - use parameterized queries", SeverityCritical},
	}

	for _, tt := range tests {
		// "validate" suppresses only the file-level input finding; add it so
		// each case exercises exactly one rule.
		content := tt.line + "\n# validate"
		findings := scan(t, ScanSecurity, "a.py", content)
		if len(findings) != 1 {
			t.Errorf("%q: got %d findings, want 1: %+v", tt.line, len(findings), findings)
			continue
		}
		if findings[0].Message != tt.message {
			t.Errorf("%q: message = %q, want %q", tt.line, findings[0].Message, tt.message)
		}
		if findings[0].Severity != tt.severity {
			t.Errorf("%q: severity = %s, want %s", tt.line, findings[0].Severity, tt.severity)
		}
	}
}

func TestSecurityInputWithoutValidation(t *testing.T) {
	content := "name = input(prompt)\nprocess(name)"
	findings := scan(t, ScanSecurity, "a.py", content)

	var fileLevel []Finding
	for _, f := range findings {
		if f.FileLevel() {
			fileLevel = append(fileLevel, f)
		}
	}
	if len(fileLevel) != 1 {
		t.Fatalf("got %d file-level findings, want 1: %+v", len(fileLevel), findings)
	}
	f := fileLevel[0]
	if f.Message != "User input detected without apparent validation" {
		t.Errorf("message = %q", f.Message)
	}
	if f.Severity != SeverityMedium {
		t.Errorf("severity = %s, want medium", f.Severity)
	}
}

func TestSecurityInputWithValidation(t *testing.T) {
	content := "name = input(prompt)\nvalidate(name)"
	for _, f := range scan(t, ScanSecurity, "a.py", content) {
		if f.FileLevel() {
			t.Errorf("validation hint should suppress the file-level finding: %+v", f)
		}
	}
}

func TestSecurityClean(t *testing.T) {
	if findings := scan(t, ScanSecurity, "a.go", "package main\n\nfunc run() {}"); len(findings) != 0 {
		t.Errorf("clean content produced findings: %+v", findings)
	}
}
