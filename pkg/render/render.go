package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/ludock-sim/ludock/pkg/render/mathutil"
	"github.com/ludock-sim/ludock/pkg/scene"
)

var skyBlue = color.RGBA{R: 200, G: 230, B: 255, A: 255}

const (
	fieldOfViewDegrees = 70.0
	nearPlane          = 0.1
	farPlane           = 1000.0
)

// Render produces the 800x600 frame for root: a sky-blue-cleared,
// auto-framed perspective render of every collected BasePart, optional
// debug overlays, and the StarterGui/ScreenGui/Frame overlay on top.
func Render(root *scene.Instance, opts RenderOptions) image.Image {
	ctx := NewRenderContext(Width, Height)
	ctx.Clear(skyBlue)

	parts := collectParts(root)

	min, max := framingBox(parts)
	center := mathutil.Vec3{
		X: (min.X + max.X) / 2,
		Y: (min.Y + max.Y) / 2,
		Z: (min.Z + max.Z) / 2,
	}
	size := mathutil.Vec3{X: max.X - min.X, Y: max.Y - min.Y, Z: max.Z - min.Z}
	maxDim := size.MaxElement()
	if math.IsInf(float64(maxDim), 0) || math.IsNaN(float64(maxDim)) {
		maxDim = 0
		center = mathutil.Vec3{}
	}

	fovY := float32(fieldOfViewDegrees * math.Pi / 180)
	distance := (maxDim / 2) / float32(math.Tan(float64(fovY)/2))
	dir := mathutil.Vec3{X: 1, Y: 0.8, Z: 1}.Normalize()
	eye := center.Add(dir.Scale(distance*1.5 + 5.0))

	view := mathutil.LookAtRH(eye, center, mathutil.Vec3{Y: 1})
	projection := mathutil.PerspectiveRH(fovY, float32(Width)/float32(Height), nearPlane, farPlane)
	viewProj := projection.Mul(view)

	for _, part := range parts {
		m := meshForShape(part.Shape, part.Size)
		drawMesh(ctx, viewProj, part.Model, m, part.Color)
	}

	if opts.DebugAxes {
		drawAxes(ctx, viewProj, 5.0)
	}
	if opts.DebugBounds {
		for _, part := range parts {
			drawWireframeBox(ctx, viewProj, part.Model, part.Size, color.RGBA{R: 255, G: 255, A: 255})
		}
	}
	if opts.DebugOrigin {
		drawWireframeBox(ctx, viewProj, mathutil.Identity(), mathutil.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, color.RGBA{A: 255})
	}

	drawGUIOverlay(ctx, root)

	return ctx.Image()
}

// Encode writes img as a PNG to w.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
