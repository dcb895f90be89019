package pipeline_test

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/ludock-sim/ludock/pkg/pipeline"
	"github.com/ludock-sim/ludock/pkg/scene"
)

func writeFile(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	if err := util.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, fs billy.Filesystem, path string) []byte {
	t.Helper()
	f, err := fs.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

func newProjectFixture(t *testing.T) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	writeFile(t, fs, "/project/game/Workspace/Brick.part",
		"ClassName = Part\nSize = Vector3.new(4, 1, 2)\nCFrame = CFrame.new(0, 0.5, 0)\nColor = Color3.fromRGB(255, 0, 0)\n")
	return fs
}

func TestRunRelaxedProducesWorldJSONAndDiagnostics(t *testing.T) {
	fs := newProjectFixture(t)

	result, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.World == nil {
		t.Fatalf("result.World is nil")
	}
	if result.Diagnostics == nil {
		t.Fatalf("result.Diagnostics is nil")
	}
	if result.Rendered {
		t.Errorf("Rendered = true, want false (Render not requested)")
	}

	data := readFile(t, fs, "/project/results/world.json")
	var decoded scene.Instance
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("world.json did not decode: %v", err)
	}
	if decoded.ClassName != "DataModel" {
		t.Errorf("ClassName = %q, want DataModel", decoded.ClassName)
	}
}

func TestRunRenderWritesPNG(t *testing.T) {
	fs := newProjectFixture(t)

	result, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true, Render: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Rendered {
		t.Fatalf("Rendered = false, want true")
	}
	data := readFile(t, fs, "/project/results/render.png")
	if len(data) == 0 {
		t.Fatalf("render.png is empty")
	}
}

func TestRunSchematicWritesSVG(t *testing.T) {
	fs := newProjectFixture(t)

	_, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true, Schematic: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	data := readFile(t, fs, "/project/results/scene.svg")
	if len(data) == 0 {
		t.Fatalf("scene.svg is empty")
	}
}

func TestRunDiffComparesAgainstPreviousWorld(t *testing.T) {
	fs := newProjectFixture(t)

	if _, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true, Diff: true}); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	writeFile(t, fs, "/project/game/Workspace/Brick2.part",
		"ClassName = Part\nSize = Vector3.new(2, 2, 2)\nCFrame = CFrame.new(5, 0.5, 0)\nColor = Color3.fromRGB(0, 255, 0)\n")

	result, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true, Diff: true})
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if result.Diff == nil {
		t.Fatalf("result.Diff is nil on second run")
	}
	if len(result.Diff.Changes.AddedInstances) != 1 {
		t.Errorf("AddedInstances = %v, want exactly one entry", result.Diff.Changes.AddedInstances)
	}
}

func TestRunMissingProjectReturnsWorldError(t *testing.T) {
	fs := memfs.New()

	_, err := pipeline.Run(context.Background(), fs, "/project", pipeline.Options{Relaxed: true})
	pipelineErr, ok := err.(*pipeline.Error)
	if !ok {
		t.Fatalf("error type = %T, want *pipeline.Error", err)
	}
	if pipelineErr.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", pipelineErr.ExitCode())
	}
}

func TestApplyPresetCIDoesNotForceRenderOff(t *testing.T) {
	opts := pipeline.Options{Render: true}
	if err := pipeline.ApplyPreset(&opts, "ci"); err != nil {
		t.Fatalf("ApplyPreset() error = %v", err)
	}
	if !opts.Render {
		t.Errorf("Render = false, want true (ci preset must not override a caller-set Render)")
	}
	if !opts.Diff {
		t.Errorf("Diff = false, want true")
	}
}

func TestApplyPresetUnknownIsConfigError(t *testing.T) {
	opts := pipeline.Options{}
	err := pipeline.ApplyPreset(&opts, "bogus")
	pipelineErr, ok := err.(*pipeline.Error)
	if !ok {
		t.Fatalf("error type = %T, want *pipeline.Error", err)
	}
	if pipelineErr.ExitCode() != 4 {
		t.Errorf("ExitCode() = %d, want 4", pipelineErr.ExitCode())
	}
}
