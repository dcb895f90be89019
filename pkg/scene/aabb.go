package scene

import "fmt"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min Vector3Value `json:"min"`
	Max Vector3Value `json:"max"`
}

// Center returns the componentwise midpoint of Min and Max.
func (b AABB) Center() Vector3Value {
	return Vector3Value{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// Union returns the smallest AABB containing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vector3Value{
			X: min32(b.Min.X, other.Min.X),
			Y: min32(b.Min.Y, other.Min.Y),
			Z: min32(b.Min.Z, other.Min.Z),
		},
		Max: Vector3Value{
			X: max32(b.Max.X, other.Max.X),
			Y: max32(b.Max.Y, other.Max.Y),
			Z: max32(b.Max.Z, other.Max.Z),
		},
	}
}

func (b AABB) String() string {
	return fmt.Sprintf("AABB(min=%s, max=%s)", b.Min, b.Max)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
