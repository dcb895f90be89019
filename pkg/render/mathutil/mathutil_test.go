package mathutil_test

import (
	"math"
	"testing"

	"github.com/ludock-sim/ludock/pkg/render/mathutil"
)

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}

func TestTransformPoint3Translation(t *testing.T) {
	m := mathutil.FromTranslation(mathutil.Vec3{X: 1, Y: 2, Z: 3})
	p := m.TransformPoint3(mathutil.Vec3{X: 1, Y: 1, Z: 1})
	want := mathutil.Vec3{X: 2, Y: 3, Z: 4}
	if !almostEqual(p.X, want.X) || !almostEqual(p.Y, want.Y) || !almostEqual(p.Z, want.Z) {
		t.Errorf("TransformPoint3 = %+v, want %+v", p, want)
	}
}

func TestFromRotationZQuarterTurn(t *testing.T) {
	m := mathutil.FromRotationZ(float32(math.Pi / 2))
	p := m.TransformPoint3(mathutil.Vec3{X: 1, Y: 0, Z: 0})
	if !almostEqual(p.X, 0) || !almostEqual(p.Y, 1) || !almostEqual(p.Z, 0) {
		t.Errorf("rotated point = %+v, want (0, 1, 0)", p)
	}
}

func TestLookAtRHPlacesTargetDownNegativeZ(t *testing.T) {
	view := mathutil.LookAtRH(mathutil.Vec3{Z: 5}, mathutil.Vec3{}, mathutil.Vec3{Y: 1})
	origin := view.TransformPoint3(mathutil.Vec3{})
	if !almostEqual(origin.Z, -5) {
		t.Errorf("origin in view space Z = %v, want -5 (camera looks down -Z)", origin.Z)
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	v := mathutil.Vec3{X: 3, Y: 4, Z: 0}.Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("Length() = %v, want 1", v.Length())
	}
}
