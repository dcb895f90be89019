package analysis_test

import (
	"context"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/ludock-sim/ludock/pkg/analysis"
)

type fakeRunner struct {
	output map[string]string // file -> combined stdout text
}

func (f fakeRunner) Run(ctx context.Context, binary, file string) ([]byte, []byte, error) {
	return []byte(f.output[file]), nil, nil
}

// presentBinary names an executable that always exists (the test binary
// itself), so strict-mode binary lookup succeeds while fakeRunner supplies
// the analyzer output.
var presentBinary = os.Args[0]

func writeFile(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	if err := util.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestParseLuaDiagnosticUnknownProperty(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/proj/game/ServerScriptService/main.lua", "print('hi')")

	runner := fakeRunner{output: map[string]string{
		"/proj/game/ServerScriptService/main.lua": "/proj/game/ServerScriptService/main.lua:5:16: Key 'Szie' not found in class 'Part'. Did you mean 'Size'?",
	}}
	az := &analysis.Analyzer{Runner: runner, BinaryName: presentBinary}
	report, err := az.Analyze(context.Background(), fs, "/proj", false)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("Errors = %+v, want exactly one", report.Errors)
	}
	diag := report.Errors[0]
	if diag.Line != 5 {
		t.Errorf("Line = %d, want 5", diag.Line)
	}
	if diag.Code != "UnknownProperty" {
		t.Errorf("Code = %q, want UnknownProperty", diag.Code)
	}
	if diag.Severity != "error" {
		t.Errorf("Severity = %q, want error", diag.Severity)
	}
	if diag.Hint == "" {
		t.Errorf("expected a non-empty hint")
	}
}

func TestParseLuaDiagnosticTypeMismatch(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/proj/game/Workspace/s.lua", "")

	runner := fakeRunner{output: map[string]string{
		"/proj/game/Workspace/s.lua": "/proj/game/Workspace/s.lua:2: Type mismatch: expected number, got string",
	}}
	az := &analysis.Analyzer{Runner: runner, BinaryName: presentBinary}
	report, err := az.Analyze(context.Background(), fs, "/proj", false)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(report.Errors) != 1 || report.Errors[0].Code != "TypeMismatch" {
		t.Fatalf("Errors = %+v, want one TypeMismatch", report.Errors)
	}
}

func TestAnalyzeIgnoresUnparseableLines(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/proj/game/Workspace/s.lua", "")

	runner := fakeRunner{output: map[string]string{
		"/proj/game/Workspace/s.lua": "this line has no colons at all\nanother: but: too: few: parts: to: matter: maybe",
	}}
	az := &analysis.Analyzer{Runner: runner, BinaryName: presentBinary}
	report, err := az.Analyze(context.Background(), fs, "/proj", false)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	// Neither line has a numeric second field, so both are unparseable.
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %+v, want none", report.Errors)
	}
}

func TestAnalyzeMissingBinaryRelaxedIsEmpty(t *testing.T) {
	fs := memfs.New()
	writeFile(t, fs, "/proj/game/Workspace/s.lua", "")
	az := &analysis.Analyzer{Runner: fakeRunner{}}

	report, err := az.Analyze(context.Background(), fs, "/proj/does-not-exist-on-disk", true)
	if err != nil {
		t.Fatalf("Analyze() error = %v, want nil in relaxed mode", err)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %+v, want empty", report.Errors)
	}
}

func TestAnalyzeMissingBinaryStrictIsFatal(t *testing.T) {
	fs := memfs.New()
	az := &analysis.Analyzer{Runner: fakeRunner{}}

	_, err := az.Analyze(context.Background(), fs, "/proj/does-not-exist-on-disk", false)
	if err == nil {
		t.Fatalf("Analyze() expected an error in strict mode with no analyzer present")
	}
}
