package schematic

import (
	"bytes"
	"fmt"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/ludock-sim/ludock/pkg/scene"
)

// Options configures the SVG schematic export.
type Options struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels
	ShowLabels bool   // Label each part with its name
	ShowLegend bool   // Draw a small legend/title block
	Title      string // Optional title
}

// DefaultOptions returns sensible default export options.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     1000,
		Margin:     60,
		ShowLabels: true,
		ShowLegend: true,
		Title:      "Scene Schematic",
	}
}

type schematicPart struct {
	Name      string
	X, Z      float32
	Footprint float32 // larger of the XZ footprint dimensions, in world units
	Color     string
}

// Export renders root's renderable Parts as a top-down SVG schematic.
func Export(root *scene.Instance, opts Options) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	parts := collectSchematicParts(root)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	proj := newProjection(parts, opts)
	drawParts(canvas, parts, proj, opts)

	if opts.ShowLegend {
		drawLegend(canvas, len(parts), opts)
	}
	if opts.Title != "" {
		canvas.Text(opts.Width/2, 25, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}

	canvas.End()
	return buf.Bytes(), nil
}

func collectSchematicParts(root *scene.Instance) []schematicPart {
	var out []schematicPart
	var walk func(inst *scene.Instance)
	walk = func(inst *scene.Instance) {
		if inst.IsBasePart() {
			if p, ok := partFromInstance(inst); ok {
				out = append(out, p)
			}
		}
		for _, child := range inst.Children {
			walk(child)
		}
	}
	walk(root)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func partFromInstance(inst *scene.Instance) (schematicPart, bool) {
	_, hasCFrame := inst.Properties["CFrame"].(scene.CFrameValue)
	_, hasPosition := inst.Properties["Position"].(scene.Vector3Value)
	if !hasCFrame && !hasPosition {
		return schematicPart{}, false
	}

	t := scene.WorldTransformFromProperties(inst.Properties)

	size := scene.Vector3Value{X: 4, Y: 1, Z: 2}
	if v, ok := inst.Properties["Size"].(scene.Vector3Value); ok {
		size = v
	}
	footprint := size.X
	if size.Z > footprint {
		footprint = size.Z
	}

	color := "#a3a2a5"
	if c, ok := inst.Properties["Color"].(scene.Color3Value); ok {
		color = fmt.Sprintf("rgb(%d,%d,%d)", toByte(c.R), toByte(c.G), toByte(c.B))
	}

	return schematicPart{
		Name:      inst.Name,
		X:         t.Translation.X,
		Z:         t.Translation.Z,
		Footprint: footprint,
		Color:     color,
	}, true
}

func toByte(v float32) int {
	n := int(v * 255)
	switch {
	case n < 0:
		return 0
	case n > 255:
		return 255
	default:
		return n
	}
}

// projection maps world (x, z) to canvas pixel coordinates, auto-framed to
// the bounding box of every collected part.
type projection struct {
	minX, minZ float32
	scale      float32
	offsetX    int
	offsetY    int
}

func newProjection(parts []schematicPart, opts Options) projection {
	if len(parts) == 0 {
		return projection{scale: 1, offsetX: opts.Width / 2, offsetY: opts.Height / 2}
	}

	minX, maxX := parts[0].X, parts[0].X
	minZ, maxZ := parts[0].Z, parts[0].Z
	for _, p := range parts {
		minX, maxX = minOf(minX, p.X), maxOf(maxX, p.X)
		minZ, maxZ = minOf(minZ, p.Z), maxOf(maxZ, p.Z)
	}

	spanX := maxX - minX
	spanZ := maxZ - minZ
	if spanX <= 0 {
		spanX = 1
	}
	if spanZ <= 0 {
		spanZ = 1
	}

	drawW := float32(opts.Width - 2*opts.Margin)
	drawH := float32(opts.Height - 2*opts.Margin)
	scale := minOf(drawW/spanX, drawH/spanZ)

	return projection{
		minX:    minX,
		minZ:    minZ,
		scale:   scale,
		offsetX: opts.Margin,
		offsetY: opts.Margin,
	}
}

func (p projection) toCanvas(x, z float32) (int, int) {
	return p.offsetX + int((x-p.minX)*p.scale), p.offsetY + int((z-p.minZ)*p.scale)
}

func minOf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxOf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func drawParts(canvas *svg.SVG, parts []schematicPart, proj projection, opts Options) {
	for _, p := range parts {
		cx, cy := proj.toCanvas(p.X, p.Z)
		radius := int((p.Footprint/2)*proj.scale) + 1

		canvas.Circle(cx, cy, radius, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1;opacity:0.9", p.Color))

		if opts.ShowLabels {
			canvas.Text(cx, cy+radius+14, p.Name,
				"text-anchor:middle;font-size:11px;font-family:monospace;fill:#e2e8f0")
		}
	}
}

func drawLegend(canvas *svg.SVG, partCount int, opts Options) {
	legendX := opts.Margin
	legendY := opts.Height - opts.Margin/2
	canvas.Text(legendX, legendY, fmt.Sprintf("Parts: %d", partCount),
		"font-size:12px;fill:#a0aec0;font-family:monospace")
}
