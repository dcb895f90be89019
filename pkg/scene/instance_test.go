package scene_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ludock-sim/ludock/pkg/scene"
)

func buildTree() *scene.Instance {
	root := scene.New("DataModel", "DataModel", uuid.Nil)
	root.FullPath = "game"
	workspace := scene.New("Workspace", "Workspace", uuid.Nil)
	workspace.FullPath = "game/Workspace"
	brick := scene.New("Brick", "Part", uuid.Nil)
	brick.FullPath = "game/Workspace/Brick"
	workspace.Children = []*scene.Instance{brick}
	root.Children = []*scene.Instance{workspace}
	return root
}

func TestInstanceFlatten(t *testing.T) {
	tree := buildTree().Flatten()
	for _, path := range []string{"game", "game/Workspace", "game/Workspace/Brick"} {
		if _, ok := tree[path]; !ok {
			t.Errorf("missing path %q in flattened tree", path)
		}
	}
	if len(tree) != 3 {
		t.Errorf("len(tree) = %d, want 3", len(tree))
	}
}

func TestInstanceWalkVisitsEveryNode(t *testing.T) {
	var visited []string
	buildTree().Walk(func(i *scene.Instance) {
		visited = append(visited, i.FullPath)
	})
	want := []string{"game", "game/Workspace", "game/Workspace/Brick"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i, path := range want {
		if visited[i] != path {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], path)
		}
	}
}

func TestIsBasePart(t *testing.T) {
	part := scene.New("Brick", "Part", uuid.Nil)
	folder := scene.New("Group", "Folder", uuid.Nil)
	if !part.IsBasePart() {
		t.Errorf("Part should be a base part")
	}
	if folder.IsBasePart() {
		t.Errorf("Folder should not be a base part")
	}
}
