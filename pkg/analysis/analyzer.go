package analysis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// Analyzer runs the external analyzer over a project's Lua files.
type Analyzer struct {
	Runner Runner
	// BinaryName overrides the binary LocateBinary searches for. Empty
	// means the default, "luau-analyze".
	BinaryName string
}

// NewAnalyzer creates an Analyzer backed by a real subprocess runner.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Runner: execRunner{}}
}

// Analyze locates the analyzer binary and runs it against every *.lua file
// under root/game on fsys. In relaxed mode, a missing binary yields an
// empty report instead of an error, and a failed invocation on one file
// skips that file's output; in strict mode both are fatal. Unparseable
// output lines are silently ignored.
func (a *Analyzer) Analyze(ctx context.Context, fsys billy.Filesystem, root string, relaxed bool) (*DiagnosticsReport, error) {
	binaryName := a.BinaryName
	if binaryName == "" {
		binaryName = "luau-analyze"
	}
	binary, err := LocateNamedBinary(root, binaryName)
	if err != nil {
		if relaxed {
			return NewDiagnosticsReport(), nil
		}
		return nil, err
	}

	files, err := collectLuaFiles(fsys, fsys.Join(root, "game"))
	if err != nil {
		if relaxed {
			return NewDiagnosticsReport(), nil
		}
		return nil, err
	}

	report := NewDiagnosticsReport()
	for _, file := range files {
		stdout, stderr, runErr := a.Runner.Run(ctx, binary, file)
		if runErr != nil {
			if relaxed {
				continue
			}
			return nil, fmt.Errorf("analysis: run %s on %s: %w", binary, file, runErr)
		}
		combined := string(stdout) + "\n" + string(stderr)
		for _, line := range strings.Split(combined, "\n") {
			if diag, ok := parseLine(line, file); ok {
				report.Errors = append(report.Errors, diag)
			}
		}
	}
	return report, nil
}

// collectLuaFiles walks dir for *.lua files, sorted for determinism.
func collectLuaFiles(fsys billy.Filesystem, dir string) ([]string, error) {
	if _, err := fsys.Stat(dir); err != nil {
		return nil, nil
	}
	var files []string
	if err := walk(fsys, dir, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func walk(fsys billy.Filesystem, dir string, out *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("analysis: read dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := fsys.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := walk(fsys, path, out); err != nil {
				return err
			}
			continue
		}
		if strings.HasSuffix(entry.Name(), ".lua") {
			*out = append(*out, path)
		}
	}
	return nil
}

// parseLine recognizes "<file>:<line>:<col>?:<message>" (column optional).
// filepath is the file actually being analyzed, not whatever header the
// analyzer's own output line carries.
func parseLine(line, filepath string) (Diagnostic, bool) {
	parts := strings.SplitN(line, ":", 4)
	if len(parts) < 3 {
		return Diagnostic{}, false
	}

	lineNum, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Diagnostic{}, false
	}

	messageStart := 2
	if _, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil {
		messageStart = 3
	}
	if len(parts) <= messageStart {
		return Diagnostic{}, false
	}
	message := strings.TrimSpace(strings.Join(parts[messageStart:], ":"))

	diag := Diagnostic{
		File:     filepath,
		Line:     lineNum,
		Message:  message,
		Severity: "error",
	}

	switch {
	case strings.Contains(message, "not found in class"):
		diag.Code = "UnknownProperty"
	case strings.Contains(message, "Type mismatch"):
		diag.Code = "TypeMismatch"
	}

	if idx := strings.Index(message, "Did you mean"); idx >= 0 {
		diag.Hint = strings.Trim(message[idx:], "'\"?. ")
	}

	return diag, true
}
