package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/ludock-sim/ludock/pkg/render/mathutil"
	"github.com/ludock-sim/ludock/pkg/scene"
)

// defaultPartSize and defaultPartColor mirror the loader's enrichment
// defaults and the original renderer's "medium stone grey" fallback.
var (
	defaultPartSize  = mathutil.Vec3{X: 4, Y: 1, Z: 2}
	defaultPartColor = color.RGBA{R: 163, G: 162, B: 165, A: 255}
)

const defaultShape = "Block"

// renderablePart is one collected BasePart ready to be meshed and
// rasterized: a world-space model transform, its local-space size, flat
// shading color, and shape name.
type renderablePart struct {
	Model mathutil.Mat4
	Size  mathutil.Vec3
	Color color.RGBA
	Shape string
}

// collectParts walks the scene tree for Part/BasePart instances. A part
// with neither CFrame nor Position is omitted from the render list
// entirely — it has no placement to render at, so it is skipped rather
// than defaulting to the origin.
func collectParts(root *scene.Instance) []renderablePart {
	var out []renderablePart
	var walk func(inst *scene.Instance)
	walk = func(inst *scene.Instance) {
		if inst.IsBasePart() {
			if part, ok := collectPart(inst); ok {
				out = append(out, part)
			}
		}
		for _, child := range inst.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

func collectPart(inst *scene.Instance) (renderablePart, bool) {
	_, hasCFrame := inst.Properties["CFrame"].(scene.CFrameValue)
	_, hasPosition := inst.Properties["Position"].(scene.Vector3Value)
	if !hasCFrame && !hasPosition {
		return renderablePart{}, false
	}

	size := defaultPartSize
	if v, ok := inst.Properties["Size"].(scene.Vector3Value); ok {
		size = mathutil.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	}

	col := defaultPartColor
	if c, ok := inst.Properties["Color"].(scene.Color3Value); ok {
		col = color.RGBA{
			R: toByte(c.R),
			G: toByte(c.G),
			B: toByte(c.B),
			A: 255,
		}
	}

	shape := defaultShape
	if e, ok := inst.Properties["Shape"].(scene.EnumValue); ok {
		segments := strings.Split(string(e), ".")
		shape = segments[len(segments)-1]
	}

	return renderablePart{
		Model: modelMatrix(inst.Properties),
		Size:  size,
		Color: col,
		Shape: shape,
	}, true
}

func toByte(v float32) uint8 {
	n := v * 255
	switch {
	case n <= 0:
		return 0
	case n >= 255:
		return 255
	default:
		return uint8(n)
	}
}

// modelMatrix derives the same world transform as the loader's enrichment
// pass (scene.WorldTransformFromProperties) and repacks it as a column-major
// mathutil.Mat4, so the two call sites can never disagree about the
// CFrame component layout.
func modelMatrix(props scene.Properties) mathutil.Mat4 {
	t := scene.WorldTransformFromProperties(props)
	return mathutil.Mat4{
		Col0: mathutil.Vec4{X: t.R00, Y: t.R10, Z: t.R20, W: 0},
		Col1: mathutil.Vec4{X: t.R01, Y: t.R11, Z: t.R21, W: 0},
		Col2: mathutil.Vec4{X: t.R02, Y: t.R12, Z: t.R22, W: 0},
		Col3: mathutil.Vec4{X: t.Translation.X, Y: t.Translation.Y, Z: t.Translation.Z, W: 1},
	}
}

// framingBox computes the AABB of every collected part's oriented bounding
// box corners, in world space, for auto-framing the camera.
func framingBox(parts []renderablePart) (min, max mathutil.Vec3) {
	inf := float32(math.Inf(1))
	min = mathutil.Vec3{X: inf, Y: inf, Z: inf}
	max = mathutil.Vec3{X: -inf, Y: -inf, Z: -inf}

	for _, part := range parts {
		half := part.Size.Scale(0.5)
		corners := [8]mathutil.Vec3{
			{X: -half.X, Y: -half.Y, Z: -half.Z},
			{X: half.X, Y: -half.Y, Z: -half.Z},
			{X: -half.X, Y: half.Y, Z: -half.Z},
			{X: half.X, Y: half.Y, Z: -half.Z},
			{X: -half.X, Y: -half.Y, Z: half.Z},
			{X: half.X, Y: -half.Y, Z: half.Z},
			{X: -half.X, Y: half.Y, Z: half.Z},
			{X: half.X, Y: half.Y, Z: half.Z},
		}
		for _, c := range corners {
			world := part.Model.TransformPoint3(c)
			min = mathutil.Vec3{X: min32(min.X, world.X), Y: min32(min.Y, world.Y), Z: min32(min.Z, world.Z)}
			max = mathutil.Vec3{X: max32(max.X, world.X), Y: max32(max.Y, world.Y), Z: max32(max.Z, world.Z)}
		}
	}
	return min, max
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
