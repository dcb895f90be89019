package analysis

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner invokes the analyzer binary against a single file and returns its
// combined-by-stream output. It exists so tests substitute a fake that
// returns canned diagnostic text instead of shelling out, the same seam
// style as pkg/carving's GraphAdapter in the teacher repo.
type Runner interface {
	Run(ctx context.Context, binary, file string) (stdout, stderr []byte, err error)
}

// execRunner is the production Runner: a real subprocess per file.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, binary, file string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, file)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
