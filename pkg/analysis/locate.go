package analysis

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrAnalyzerMissing is returned when no analyzer binary can be found on
// PATH or in the project root.
var ErrAnalyzerMissing = errors.New("analysis: luau-analyze not found in PATH or project root")

// LocateBinary resolves the analyzer binary: PATH first, then a
// "luau-analyze"/"luau-analyze.exe" binary in root. Both checks hit the
// real OS filesystem/PATH regardless of the billy.Filesystem used for the
// project tree, since the binary must actually be executable on disk.
func LocateBinary(root string) (string, error) {
	return LocateNamedBinary(root, "luau-analyze")
}

// LocateNamedBinary is LocateBinary generalized to a caller-supplied binary
// name, so a project's ludock.config.yaml can point at a differently named
// or vendored analyzer.
func LocateNamedBinary(root, name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	for _, candidateName := range []string{name, name + ".exe"} {
		candidate := filepath.Join(root, candidateName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", ErrAnalyzerMissing
}
