// Package mathutil is the small Vec3/Vec4/Mat4 toolkit the renderer needs:
// column-major 4x4 matrices, a right-handed look-at view matrix, and a
// right-handed perspective projection — translated 1:1 from the calls the
// original implementation made against Rust's glam (from_cols, look_at_rh,
// perspective_rh, transform_point3), not redesigned.
package mathutil

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component (homogeneous) vector.
type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) MinElement() float32 {
	m := v.X
	if v.Y < m {
		m = v.Y
	}
	if v.Z < m {
		m = v.Z
	}
	return m
}

func (v Vec3) MaxElement() float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// Mat4 is a column-major 4x4 matrix: Col0..Col3 are its four columns, as
// in glam's representation.
type Mat4 struct {
	Col0, Col1, Col2, Col3 Vec4
}

// Identity is the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		Col0: Vec4{1, 0, 0, 0},
		Col1: Vec4{0, 1, 0, 0},
		Col2: Vec4{0, 0, 1, 0},
		Col3: Vec4{0, 0, 0, 1},
	}
}

// FromCols builds a matrix directly from its four columns.
func FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{Col0: c0, Col1: c1, Col2: c2, Col3: c3}
}

// FromTranslation builds a pure translation matrix.
func FromTranslation(t Vec3) Mat4 {
	m := Identity()
	m.Col3 = Vec4{t.X, t.Y, t.Z, 1}
	return m
}

// FromRotationZ builds a rotation of radians about the Z axis.
func FromRotationZ(radians float32) Mat4 {
	s, c := float32(math.Sin(float64(radians))), float32(math.Cos(float64(radians)))
	return Mat4{
		Col0: Vec4{c, s, 0, 0},
		Col1: Vec4{-s, c, 0, 0},
		Col2: Vec4{0, 0, 1, 0},
		Col3: Vec4{0, 0, 0, 1},
	}
}

// MulVec4 computes M * v for a column-major matrix.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m.Col0.X*v.X + m.Col1.X*v.Y + m.Col2.X*v.Z + m.Col3.X*v.W,
		Y: m.Col0.Y*v.X + m.Col1.Y*v.Y + m.Col2.Y*v.Z + m.Col3.Y*v.W,
		Z: m.Col0.Z*v.X + m.Col1.Z*v.Y + m.Col2.Z*v.Z + m.Col3.Z*v.W,
		W: m.Col0.W*v.X + m.Col1.W*v.Y + m.Col2.W*v.Z + m.Col3.W*v.W,
	}
}

// Mul computes m * o, i.e. applying o first, then m.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{
		Col0: m.MulVec4(o.Col0),
		Col1: m.MulVec4(o.Col1),
		Col2: m.MulVec4(o.Col2),
		Col3: m.MulVec4(o.Col3),
	}
}

// TransformPoint3 transforms p as a point (homogeneous w=1), assuming m is
// affine (no perspective row) — it does not divide by the resulting w.
func (m Mat4) TransformPoint3(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v.X, v.Y, v.Z}
}

// LookAtRH builds a right-handed view matrix.
func LookAtRH(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4{
		Col0: Vec4{s.X, u.X, -f.X, 0},
		Col1: Vec4{s.Y, u.Y, -f.Y, 0},
		Col2: Vec4{s.Z, u.Z, -f.Z, 0},
		Col3: Vec4{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}

// PerspectiveRH builds a right-handed perspective projection with NDC z
// in [-1, 1] (OpenGL convention), matching glam's perspective_rh.
func PerspectiveRH(fovYRadians, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovYRadians)/2))
	return Mat4{
		Col0: Vec4{f / aspect, 0, 0, 0},
		Col1: Vec4{0, f, 0, 0},
		Col2: Vec4{0, 0, (far + near) / (near - far), -1},
		Col3: Vec4{0, 0, (2 * far * near) / (near - far), 0},
	}
}
