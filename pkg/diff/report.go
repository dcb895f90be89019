package diff

import "github.com/ludock-sim/ludock/pkg/scene"

// SchemaVersion is carried by every DiffReport. Diagnostics reports carry
// the same value through their own analysis.SchemaVersion constant.
const SchemaVersion = "1.0"

// DiffReport is the top-level result of Compare.
type DiffReport struct {
	SchemaVersion string      `json:"schema_version"`
	Status        string      `json:"status"` // "changed" or "unchanged"
	Changes       DiffChanges `json:"changes"`
}

// DiffChanges groups the three classification buckets.
type DiffChanges struct {
	AddedInstances    []string       `json:"added_instances"`
	RemovedInstances  []string       `json:"removed_instances"`
	ModifiedInstances []InstanceDiff `json:"modified_instances"`
}

// InstanceDiff records the property-level and spatial changes for one
// full_path present in both trees.
type InstanceDiff struct {
	Path            string                   `json:"path"`
	PropertyChanges map[string]PropertyChange `json:"property_changes"`
	SpatialChange   *SpatialChange            `json:"spatial_change,omitempty"`
}

// PropertyChange is the stringified before/after of one property.
type PropertyChange struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// SpatialChange records a center displacement exceeding the threshold.
type SpatialChange struct {
	OldCenter    *scene.Vector3Value `json:"old_center,omitempty"`
	NewCenter    *scene.Vector3Value `json:"new_center,omitempty"`
	Displacement float32             `json:"displacement"`
}

// NewDiffReport creates an empty "unchanged" report with the current
// schema version.
func NewDiffReport() *DiffReport {
	return &DiffReport{
		SchemaVersion: SchemaVersion,
		Status:        "unchanged",
		Changes: DiffChanges{
			AddedInstances:    []string{},
			RemovedInstances:  []string{},
			ModifiedInstances: []InstanceDiff{},
		},
	}
}

// NewInstanceDiff creates an empty diff entry for path.
func NewInstanceDiff(path string) InstanceDiff {
	return InstanceDiff{
		Path:            path,
		PropertyChanges: make(map[string]PropertyChange),
	}
}
