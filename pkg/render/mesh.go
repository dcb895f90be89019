package render

import (
	"math"

	"github.com/ludock-sim/ludock/pkg/render/mathutil"
)

// mesh is a flat vertex/triangle-index buffer in local space, ready to be
// transformed by a model matrix and rasterized.
type mesh struct {
	Vertices []mathutil.Vec3
	Indices  []uint32
}

// cubeMesh returns a unit-cube mesh scaled to size, 12 triangles over its
// 6 faces. Vertex order and winding match the original implementation's
// draw_cube exactly.
func cubeMesh(size mathutil.Vec3) mesh {
	half := size.Scale(0.5)
	corners := []mathutil.Vec3{
		{X: -half.X, Y: -half.Y, Z: -half.Z}, // 0
		{X: half.X, Y: -half.Y, Z: -half.Z},   // 1
		{X: -half.X, Y: half.Y, Z: -half.Z},   // 2
		{X: half.X, Y: half.Y, Z: -half.Z},    // 3
		{X: -half.X, Y: -half.Y, Z: half.Z},   // 4
		{X: half.X, Y: -half.Y, Z: half.Z},    // 5
		{X: -half.X, Y: half.Y, Z: half.Z},    // 6
		{X: half.X, Y: half.Y, Z: half.Z},     // 7
	}
	indices := []uint32{
		4, 5, 7, 4, 7, 6, // Front
		1, 0, 2, 1, 2, 3, // Back
		0, 4, 6, 0, 6, 2, // Left
		5, 1, 3, 5, 3, 7, // Right
		6, 7, 3, 6, 3, 2, // Top
		0, 1, 5, 0, 5, 4, // Bottom
	}
	return mesh{Vertices: corners, Indices: indices}
}

// sphereMesh returns a UV sphere with 12 latitudinal and 12 longitudinal
// segments, radius = min(size.x, size.y, size.z) / 2.
func sphereMesh(size mathutil.Vec3) mesh {
	const latSegments = 12
	const lonSegments = 12
	radius := size.MinElement() * 0.5

	var vertices []mathutil.Vec3
	for lat := 0; lat <= latSegments; lat++ {
		theta := float64(lat) * math.Pi / latSegments
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for lon := 0; lon <= lonSegments; lon++ {
			phi := float64(lon) * 2 * math.Pi / lonSegments
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta
			vertices = append(vertices, mathutil.Vec3{
				X: float32(x) * radius,
				Y: float32(y) * radius,
				Z: float32(z) * radius,
			})
		}
	}

	var indices []uint32
	for lat := 0; lat < latSegments; lat++ {
		for lon := 0; lon < lonSegments; lon++ {
			first := uint32(lat*(lonSegments+1) + lon)
			second := first + lonSegments + 1

			indices = append(indices, first, second, first+1)
			indices = append(indices, second, second+1, first+1)
		}
	}

	return mesh{Vertices: vertices, Indices: indices}
}

// cylinderMesh returns a 16-segment tube with triangle-fan caps, radius
// min(size.x, size.z)/2 and height size.y, generated along Y then rotated
// 90 degrees about Z so its axis aligns with world X — do not drop this
// rotation, it's the reference platform's cylinder convention.
func cylinderMesh(size mathutil.Vec3) mesh {
	const segments = 16
	radius := min32(size.X, size.Z) * 0.5
	halfHeight := size.Y * 0.5

	var vertices []mathutil.Vec3
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * math.Pi / segments
		x := float32(math.Cos(theta)) * radius
		z := float32(math.Sin(theta)) * radius
		vertices = append(vertices, mathutil.Vec3{X: x, Y: -halfHeight, Z: z}) // bottom ring
		vertices = append(vertices, mathutil.Vec3{X: x, Y: halfHeight, Z: z})  // top ring
	}

	bottomCenterIdx := uint32(len(vertices))
	vertices = append(vertices, mathutil.Vec3{X: 0, Y: -halfHeight, Z: 0})
	topCenterIdx := uint32(len(vertices))
	vertices = append(vertices, mathutil.Vec3{X: 0, Y: halfHeight, Z: 0})

	var indices []uint32
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		nextBase := uint32((i + 1) * 2)

		indices = append(indices, base, base+1, nextBase)
		indices = append(indices, nextBase, base+1, nextBase+1)

		indices = append(indices, bottomCenterIdx, nextBase, base)
		indices = append(indices, topCenterIdx, base+1, nextBase+1)
	}

	rotation := mathutil.FromRotationZ(float32(90 * math.Pi / 180))
	for i, v := range vertices {
		vertices[i] = rotation.TransformPoint3(v)
	}

	return mesh{Vertices: vertices, Indices: indices}
}

// meshForShape picks the primitive generator for a shape name, defaulting
// to the cube/Block mesh for anything unrecognized.
func meshForShape(shape string, size mathutil.Vec3) mesh {
	switch shape {
	case "Ball":
		return sphereMesh(size)
	case "Cylinder":
		return cylinderMesh(size)
	default:
		return cubeMesh(size)
	}
}
