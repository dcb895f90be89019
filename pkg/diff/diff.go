package diff

import (
	"math"

	"github.com/ludock-sim/ludock/pkg/scene"
)

// spatialEpsilon is the minimum center displacement that counts as a
// spatial change; a smaller displacement is treated as unchanged.
const spatialEpsilon = 1e-3

// Compare flattens old and new by full_path and classifies every path as
// added, removed, or (if present in both) possibly modified. Property
// removals are deliberately not tracked — only additions and value
// changes on the new side — matching the asymmetry documented in
// SPEC_FULL.md §7/§17. Added and modified paths are listed in the
// depth-first order of newTree, removed paths in that of oldTree.
func Compare(oldTree, newTree *scene.Instance) *DiffReport {
	report := NewDiffReport()

	oldMap := oldTree.Flatten()
	newMap := newTree.Flatten()

	var addedPaths, removedPaths, modifiedPaths []string
	newTree.Walk(func(inst *scene.Instance) {
		if _, ok := oldMap[inst.FullPath]; ok {
			modifiedPaths = append(modifiedPaths, inst.FullPath)
		} else {
			addedPaths = append(addedPaths, inst.FullPath)
		}
	})
	oldTree.Walk(func(inst *scene.Instance) {
		if _, ok := newMap[inst.FullPath]; !ok {
			removedPaths = append(removedPaths, inst.FullPath)
		}
	})
	report.Changes.AddedInstances = append(report.Changes.AddedInstances, addedPaths...)
	report.Changes.RemovedInstances = append(report.Changes.RemovedInstances, removedPaths...)

	for _, path := range modifiedPaths {
		oldInst := oldMap[path]
		newInst := newMap[path]
		entry := NewInstanceDiff(path)

		for key, newVal := range newInst.Properties {
			oldVal, ok := oldInst.Properties[key]
			switch {
			case !ok:
				entry.PropertyChanges[key] = PropertyChange{Old: "null", New: newVal.String()}
			case !newVal.Equal(oldVal):
				entry.PropertyChanges[key] = PropertyChange{Old: oldVal.String(), New: newVal.String()}
			}
		}

		if sc := spatialChange(oldInst.Center, newInst.Center); sc != nil {
			entry.SpatialChange = sc
		}

		if len(entry.PropertyChanges) > 0 || entry.SpatialChange != nil {
			report.Changes.ModifiedInstances = append(report.Changes.ModifiedInstances, entry)
		}
	}

	if len(report.Changes.AddedInstances) > 0 || len(report.Changes.RemovedInstances) > 0 || len(report.Changes.ModifiedInstances) > 0 {
		report.Status = "changed"
	}
	return report
}

// spatialChange reports a SpatialChange only when both centers are
// present and their Euclidean distance exceeds spatialEpsilon; a center
// appearing or disappearing between runs is not itself a spatial change.
func spatialChange(oldCenter, newCenter *scene.Vector3Value) *SpatialChange {
	if oldCenter == nil || newCenter == nil {
		return nil
	}
	dist := distance(*oldCenter, *newCenter)
	if dist <= spatialEpsilon {
		return nil
	}
	o := *oldCenter
	n := *newCenter
	return &SpatialChange{
		OldCenter:    &o,
		NewCenter:    &n,
		Displacement: dist,
	}
}

func distance(a, b scene.Vector3Value) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}
