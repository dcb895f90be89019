package scene

import "github.com/google/uuid"

// Instance is a node in the scene tree. The root Instance has
// ClassName "DataModel", Name "DataModel", and FullPath "game". Children
// are owned by their parent; there is no parent back-pointer — callers that need
// ancestry walk down from the root with their own context.
type Instance struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ClassName  string     `json:"class_name"`
	Properties Properties `json:"properties"`
	Children   []*Instance `json:"children"`
	FullPath   string     `json:"full_path"`
	WorldBounds *AABB     `json:"world_bounds,omitempty"`
	Center      *Vector3Value `json:"center,omitempty"`
}

// New creates an Instance with the given id; the loader derives that id
// from the instance's canonical path (see pkg/ids). Properties and
// Children start empty.
func New(name, className string, id uuid.UUID) *Instance {
	return &Instance{
		ID:         id,
		Name:       name,
		ClassName:  className,
		Properties: make(Properties),
		Children:   nil,
	}
}

// IsBasePart reports whether the instance's class is one of the
// renderable/boundable base-part classes.
func (i *Instance) IsBasePart() bool {
	return i.ClassName == "Part" || i.ClassName == "BasePart"
}

// Flatten returns a path -> *Instance map for the whole subtree rooted at
// i, built by a depth-first walk (used by the diff engine).
func (i *Instance) Flatten() map[string]*Instance {
	out := make(map[string]*Instance)
	flattenInto(i, out)
	return out
}

func flattenInto(i *Instance, out map[string]*Instance) {
	out[i.FullPath] = i
	for _, child := range i.Children {
		flattenInto(child, out)
	}
}

// Walk calls fn for i and every descendant, depth-first, pre-order.
func (i *Instance) Walk(fn func(*Instance)) {
	fn(i)
	for _, child := range i.Children {
		child.Walk(fn)
	}
}
