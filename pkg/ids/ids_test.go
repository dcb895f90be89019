package ids_test

import (
	"testing"

	"github.com/ludock-sim/ludock/pkg/ids"
)

func TestCanonicalPathNormalizesSeparators(t *testing.T) {
	got := ids.CanonicalPath(`game\Workspace\Brick`)
	want := "game/Workspace/Brick"
	if got != want {
		t.Fatalf("CanonicalPath() = %q, want %q", got, want)
	}
}

func TestDeriveIsDeterministic(t *testing.T) {
	a := ids.Derive("game/Workspace/Brick")
	b := ids.Derive("game/Workspace/Brick")
	if a != b {
		t.Fatalf("Derive() not deterministic: %s != %s", a, b)
	}
}

func TestDeriveDistinguishesPaths(t *testing.T) {
	a := ids.Derive("game/Workspace/Brick")
	b := ids.Derive("game/Workspace/OtherBrick")
	if a == b {
		t.Fatalf("Derive() collided for distinct paths: %s", a)
	}
}

func TestDeriveIndependentOfSeparatorStyle(t *testing.T) {
	a := ids.Derive(ids.CanonicalPath(`game\Workspace\Brick`))
	b := ids.Derive(ids.CanonicalPath("game/Workspace/Brick"))
	if a != b {
		t.Fatalf("Derive() differs by separator style: %s != %s", a, b)
	}
}
