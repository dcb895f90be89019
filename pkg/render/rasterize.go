package render

import (
	"image/color"

	"github.com/ludock-sim/ludock/pkg/render/mathutil"
)

// clipVertex is a vertex after model-view-projection, still in clip space.
type clipVertex = mathutil.Vec4

// screenPoint is a vertex after the perspective divide and NDC-to-screen
// mapping: x, y in pixel space, z the post-divide NDC depth.
type screenPoint struct {
	X, Y, Z float32
}

func toClipSpace(viewProj mathutil.Mat4, verts []mathutil.Vec3) []clipVertex {
	out := make([]clipVertex, len(verts))
	for i, v := range verts {
		out[i] = viewProj.MulVec4(mathutil.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1})
	}
	return out
}

// ndcToScreen performs the perspective divide and maps NDC x/y into pixel
// space, flipping Y so +Y-up NDC becomes top-down screen rows.
func ndcToScreen(v clipVertex, width, height int) screenPoint {
	x := v.X / v.W
	y := v.Y / v.W
	z := v.Z / v.W
	return screenPoint{
		X: (x + 1) * 0.5 * float32(width),
		Y: (1 - y) * 0.5 * float32(height),
		Z: z,
	}
}

// drawMesh transforms a local-space mesh by model and view-projection, then
// rasterizes each triangle with flat shading.
func drawMesh(ctx *RenderContext, viewProj, model mathutil.Mat4, m mesh, col color.RGBA) {
	worldVerts := make([]mathutil.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		worldVerts[i] = model.TransformPoint3(v)
	}
	clip := toClipSpace(viewProj, worldVerts)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		rasterizeTriangle(ctx, clip[i0], clip[i1], clip[i2], col)
	}
}

func edge(a, b, c screenPoint) float32 {
	return (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
}

// rasterizeTriangle implements the original's coarse-but-deliberate
// algorithm: reject any vertex with w<=0 (no near-plane clip refinement),
// compute the signed area via the edge function, skip zero-area triangles,
// and for each covered pixel linearly interpolate post-divide NDC Z for the
// Z-buffer test (not perspective-correct — matches the reference exactly).
func rasterizeTriangle(ctx *RenderContext, v0, v1, v2 clipVertex, col color.RGBA) {
	if v0.W <= 0 || v1.W <= 0 || v2.W <= 0 {
		return
	}

	p0 := ndcToScreen(v0, ctx.width, ctx.height)
	p1 := ndcToScreen(v1, ctx.width, ctx.height)
	p2 := ndcToScreen(v2, ctx.width, ctx.height)

	area := edge(p0, p1, p2)
	if area == 0 {
		return
	}

	minX, maxX := clampRange(minOf3(p0.X, p1.X, p2.X), maxOf3(p0.X, p1.X, p2.X), ctx.width)
	minY, maxY := clampRange(minOf3(p0.Y, p1.Y, p2.Y), maxOf3(p0.Y, p1.Y, p2.Y), ctx.height)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := screenPoint{X: float32(x) + 0.5, Y: float32(y) + 0.5}

			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)

			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				w0 /= area
				w1 /= area
				w2 /= area
				z := w0*p0.Z + w1*p1.Z + w2*p2.Z
				ctx.DrawPixel(x, y, z, col)
			}
		}
	}
}

func minOf3(a, b, c float32) float32 { return min32(min32(a, b), c) }
func maxOf3(a, b, c float32) float32 { return max32(max32(a, b), c) }

func clampRange(lo, hi float32, extent int) (int, int) {
	loI := int(lo)
	if loI < 0 {
		loI = 0
	}
	hiI := int(hi)
	if hiI > extent-1 {
		hiI = extent - 1
	}
	return loI, hiI
}

// drawLine draws a naive line between two screen points, no antialiasing.
func drawLine(ctx *RenderContext, p0, p1 screenPoint, col color.RGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := maxOf3(absF(dx), absF(dy), 1)
	for i := float32(0); i <= steps; i++ {
		t := i / steps
		x := int(p0.X + dx*t)
		y := int(p0.Y + dy*t)
		ctx.DrawPixelOverlay(x, y, col)
	}
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// drawWireframeBox draws the 12 edges of a size-scaled box transformed by
// model, through viewProj, skipping edges with either endpoint behind the
// camera (w<=0). No Z-test: debug overlays always draw over the scene.
func drawWireframeBox(ctx *RenderContext, viewProj, model mathutil.Mat4, size mathutil.Vec3, col color.RGBA) {
	half := size.Scale(0.5)
	corners := []mathutil.Vec3{
		{X: -half.X, Y: -half.Y, Z: -half.Z},
		{X: half.X, Y: -half.Y, Z: -half.Z},
		{X: -half.X, Y: half.Y, Z: -half.Z},
		{X: half.X, Y: half.Y, Z: -half.Z},
		{X: -half.X, Y: -half.Y, Z: half.Z},
		{X: half.X, Y: -half.Y, Z: half.Z},
		{X: -half.X, Y: half.Y, Z: half.Z},
		{X: half.X, Y: half.Y, Z: half.Z},
	}
	clip := make([]clipVertex, len(corners))
	for i, c := range corners {
		world := model.TransformPoint3(c)
		clip[i] = viewProj.MulVec4(mathutil.Vec4{X: world.X, Y: world.Y, Z: world.Z, W: 1})
	}

	edges := [12][2]int{
		{0, 1}, {1, 3}, {3, 2}, {2, 0},
		{4, 5}, {5, 7}, {7, 6}, {6, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		a, b := clip[e[0]], clip[e[1]]
		if a.W > 0 && b.W > 0 {
			sa := ndcToScreen(a, ctx.width, ctx.height)
			sb := ndcToScreen(b, ctx.width, ctx.height)
			drawLine(ctx, sa, sb, col)
		}
	}
}

// drawAxes draws red/green/blue lines from the world origin along X/Y/Z.
func drawAxes(ctx *RenderContext, viewProj mathutil.Mat4, length float32) {
	pts := []mathutil.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: length, Y: 0, Z: 0},
		{X: 0, Y: length, Z: 0},
		{X: 0, Y: 0, Z: length},
	}
	clip := toClipSpace(viewProj, pts)
	if clip[0].W <= 0 {
		return
	}
	origin := ndcToScreen(clip[0], ctx.width, ctx.height)

	axisColors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for i := 0; i < 3; i++ {
		if clip[i+1].W <= 0 {
			continue
		}
		tip := ndcToScreen(clip[i+1], ctx.width, ctx.height)
		drawLine(ctx, origin, tip, axisColors[i])
	}
}
