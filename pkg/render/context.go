package render

import (
	"image"
	"image/color"
	"math"
)

// Width and Height are the fixed output dimensions for a rendered frame.
const (
	Width  = 800
	Height = 600
)

// RenderOptions toggles optional debug overlays drawn after the 3D parts
// and before the GUI overlay.
type RenderOptions struct {
	DebugBounds bool
	DebugOrigin bool
	DebugAxes   bool
}

// RenderContext is the mutable pixel buffer plus Z-buffer a render pass
// writes into. Mirrors the teacher's plain-struct-with-methods RenderContext.
type RenderContext struct {
	buffer  *image.RGBA
	zBuffer []float32
	width   int
	height  int
}

// NewRenderContext allocates a buffer of the given dimensions, Z-buffer
// initialized to +Inf (nothing drawn yet beats it).
func NewRenderContext(width, height int) *RenderContext {
	ctx := &RenderContext{
		buffer:  image.NewRGBA(image.Rect(0, 0, width, height)),
		zBuffer: make([]float32, width*height),
		width:   width,
		height:  height,
	}
	ctx.Clear(color.RGBA{})
	return ctx
}

// Clear fills the buffer with c and resets the Z-buffer to +Inf.
func (c *RenderContext) Clear(col color.RGBA) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.buffer.SetRGBA(x, y, col)
		}
	}
	for i := range c.zBuffer {
		c.zBuffer[i] = float32(math.Inf(1))
	}
}

// DrawPixel writes color at (x, y) iff z is strictly less than whatever is
// already in the Z-buffer there. Out-of-bounds coordinates are a no-op.
func (c *RenderContext) DrawPixel(x, y int, z float32, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	idx := y*c.width + x
	if z < c.zBuffer[idx] {
		c.zBuffer[idx] = z
		c.buffer.SetRGBA(x, y, col)
	}
}

// DrawPixelOverlay writes color at (x, y) unconditionally, bypassing the
// Z-buffer entirely. Debug overlays and the GUI pass always draw over
// whatever 3D content is already there.
func (c *RenderContext) DrawPixelOverlay(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.buffer.SetRGBA(x, y, col)
}

// Image returns the backing pixel buffer for encoding.
func (c *RenderContext) Image() image.Image {
	return c.buffer
}
