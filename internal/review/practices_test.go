package review

import (
	"fmt"
	"strings"
	"testing"
)

func TestPracticesMissingDocstrings(t *testing.T) {
	findings := scan(t, ScanBestPractices, "a.py", "def handler(req):\n    return req")
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Message != "Functions found without docstrings" {
		t.Errorf("message = %q", f.Message)
	}
	if !f.FileLevel() {
		t.Errorf("docstring finding should be file-level, got line %d", f.Line)
	}
	if f.Severity != SeverityMedium {
		t.Errorf("severity = %s, want medium", f.Severity)
	}
}

func TestPracticesDocstringsPresent(t *testing.T) {
	content := "def handler(req):\n    \"\"\"Handle a request.\"\"\"\n    return req"
	if findings := scan(t, ScanBestPractices, "a.py", content); len(findings) != 0 {
		t.Errorf("documented file flagged: %+v", findings)
	}
}

func TestPracticesDocstringCheckPythonOnly(t *testing.T) {
	if findings := scan(t, ScanBestPractices, "a.go", "def handler(req):"); len(findings) != 0 {
		t.Errorf("docstring heuristic should only fire for .py files: %+v", findings)
	}
}

func TestPracticesWildcardImport(t *testing.T) {
	content := "from os import *\n\"\"\"doc\"\"\""
	findings := scan(t, ScanBestPractices, "a.py", content)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	if findings[0].Message != "Wildcard imports (import *) discouraged" {
		t.Errorf("message = %q", findings[0].Message)
	}
}

func TestPracticesWildcardImportBeyondHead(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, "x%d = %d\n", i, i)
	}
	b.WriteString("from os import *")
	if findings := scan(t, ScanBestPractices, "a.py", b.String()); len(findings) != 0 {
		t.Errorf("wildcard import past line 50 should not be flagged: %+v", findings)
	}
}

func TestPracticesBareExceptReportedOnce(t *testing.T) {
	content := "try:\n    a()\nexcept:\n    pass\ntry:\n    b()\nexcept:\n    pass\n\"\"\"doc\"\"\""
	findings := scan(t, ScanBestPractices, "a.py", content)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	if findings[0].Message != "Bare except clause found - specify exception types" {
		t.Errorf("message = %q", findings[0].Message)
	}
}

func TestPracticesLargeFile(t *testing.T) {
	content := strings.Repeat("x = 1\n", 501)
	findings := scan(t, ScanBestPractices, "a.go", content)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(findings), findings)
	}
	f := findings[0]
	if f.Severity != SeverityLow {
		t.Errorf("severity = %s, want low", f.Severity)
	}
	if !strings.Contains(f.Message, "502") {
		t.Errorf("message %q should contain the exact line count", f.Message)
	}
}
