// Package schematic renders a top-down 2D SVG schematic of a scene tree,
// complementary to pkg/render's perspective raster: every renderable Part
// becomes a circle at its (x, z) world position, sized by footprint and
// colored by its Color property.
package schematic
