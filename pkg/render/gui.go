package render

import (
	"image/color"

	"github.com/ludock-sim/ludock/pkg/scene"
)

// drawGUIOverlay finds every StarterGui -> ScreenGui child of root and
// draws its Frame tree, anchored to the full render surface.
func drawGUIOverlay(ctx *RenderContext, root *scene.Instance) {
	for _, child := range root.Children {
		if child.ClassName != "StarterGui" {
			continue
		}
		for _, screenGui := range child.Children {
			if screenGui.ClassName == "ScreenGui" {
				drawGUIRecursive(ctx, screenGui, 0, 0, float32(ctx.width), float32(ctx.height))
			}
		}
	}
}

// drawGUIRecursive resolves UDim2 Position/Size relative to the parent
// rect, fills Frame instances with BackgroundColor3 (default white), and
// recurses into every child with the resolved rect as its new parent —
// non-Frame classes are traversed but draw nothing themselves.
func drawGUIRecursive(ctx *RenderContext, inst *scene.Instance, parentX, parentY, parentW, parentH float32) {
	myX, myY, myW, myH := parentX, parentY, parentW, parentH

	if inst.ClassName == "Frame" {
		if pos, ok := inst.Properties["Position"].(scene.UDim2Value); ok {
			myX = parentX + pos.XScale*parentW + float32(pos.XOffset)
			myY = parentY + pos.YScale*parentH + float32(pos.YOffset)
		}
		if size, ok := inst.Properties["Size"].(scene.UDim2Value); ok {
			myW = size.XScale*parentW + float32(size.XOffset)
			myH = size.YScale*parentH + float32(size.YOffset)
		}

		col := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if c, ok := inst.Properties["BackgroundColor3"].(scene.Color3Value); ok {
			col = color.RGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: 255}
		}

		fillRect(ctx, myX, myY, myW, myH, col)
	}

	for _, child := range inst.Children {
		drawGUIRecursive(ctx, child, myX, myY, myW, myH)
	}
}

func fillRect(ctx *RenderContext, x, y, w, h float32, col color.RGBA) {
	x0, y0 := int(x), int(y)
	x1, y1 := int(x+w), int(y+h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			ctx.DrawPixelOverlay(px, py, col)
		}
	}
}
