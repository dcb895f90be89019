package schematic_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/ludock-sim/ludock/pkg/scene"
	"github.com/ludock-sim/ludock/pkg/schematic"
)

func partAt(name string, x, y, z float32) *scene.Instance {
	part := scene.New(name, "Part", uuid.Nil)
	part.FullPath = "game/Workspace/" + name
	part.Properties["CFrame"] = scene.NewCFrameFromPosition(x, y, z)
	part.Properties["Color"] = scene.Color3FromRGB(255, 0, 0)
	return part
}

func workspaceWithParts(parts ...*scene.Instance) *scene.Instance {
	root := scene.New("DataModel", "DataModel", uuid.Nil)
	root.FullPath = "game"
	workspace := scene.New("Workspace", "Workspace", uuid.Nil)
	workspace.FullPath = "game/Workspace"
	workspace.Children = parts
	root.Children = []*scene.Instance{workspace}
	return root
}

func TestExportContainsOneCirclePerPart(t *testing.T) {
	tree := workspaceWithParts(partAt("A", 0, 0, 0), partAt("B", 10, 0, 5))

	data, err := schematic.Export(tree, schematic.DefaultOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if count := bytes.Count(data, []byte("<circle")); count != 2 {
		t.Errorf("circle count = %d, want 2\n%s", count, data)
	}
}

func TestExportOmitsPartsWithoutPlacement(t *testing.T) {
	unplaced := scene.New("Floating", "Part", uuid.Nil)
	unplaced.FullPath = "game/Workspace/Floating"
	tree := workspaceWithParts(partAt("A", 0, 0, 0), unplaced)

	data, err := schematic.Export(tree, schematic.DefaultOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if count := bytes.Count(data, []byte("<circle")); count != 1 {
		t.Errorf("circle count = %d, want 1 (unplaced part must be omitted)", count)
	}
}

func TestExportEmptySceneProducesValidSVGShell(t *testing.T) {
	tree := workspaceWithParts()

	data, err := schematic.Export(tree, schematic.DefaultOptions())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("output does not contain an <svg> element:\n%s", data)
	}
}

func TestExportIncludesTitle(t *testing.T) {
	tree := workspaceWithParts(partAt("A", 0, 0, 0))
	opts := schematic.DefaultOptions()
	opts.Title = "Test Scene"

	data, err := schematic.Export(tree, opts)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.Contains(data, []byte("Test Scene")) {
		t.Errorf("output does not contain title text:\n%s", data)
	}
}
