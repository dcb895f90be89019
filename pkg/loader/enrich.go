package loader

import "github.com/ludock-sim/ludock/pkg/scene"

// defaultPartSize is the Size used when a Part/BasePart has none.
var defaultPartSize = scene.Vector3Value{X: 4, Y: 1, Z: 2}

// enrich runs the post-order bottom-up enrichment pass: every Part/BasePart
// gets world_bounds from its transformed corners; every instance's bounds
// (if any) fold in its children's bounds by componentwise min/max; center
// is the midpoint of the aggregated bounds.
func enrich(inst *scene.Instance) {
	for _, child := range inst.Children {
		enrich(child)
	}

	var bounds *scene.AABB
	if inst.IsBasePart() {
		b := partBounds(inst)
		bounds = &b
	}
	for _, child := range inst.Children {
		if child.WorldBounds == nil {
			continue
		}
		if bounds == nil {
			b := *child.WorldBounds
			bounds = &b
			continue
		}
		u := bounds.Union(*child.WorldBounds)
		bounds = &u
	}

	if bounds != nil {
		inst.WorldBounds = bounds
		c := bounds.Center()
		inst.Center = &c
	}
}

// partBounds transforms the eight local-space corners (±size/2) of a Part
// into world space and returns their AABB.
func partBounds(inst *scene.Instance) scene.AABB {
	transform := scene.WorldTransformFromProperties(inst.Properties)

	size := defaultPartSize
	if v, ok := inst.Properties["Size"].(scene.Vector3Value); ok {
		size = v
	}
	half := scene.Vector3Value{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}

	var result scene.AABB
	first := true
	for _, sx := range [2]float32{-1, 1} {
		for _, sy := range [2]float32{-1, 1} {
			for _, sz := range [2]float32{-1, 1} {
				local := scene.Vector3Value{X: sx * half.X, Y: sy * half.Y, Z: sz * half.Z}
				world := transform.TransformPoint(local)
				corner := scene.AABB{Min: world, Max: world}
				if first {
					result = corner
					first = false
					continue
				}
				result = result.Union(corner)
			}
		}
	}
	return result
}
