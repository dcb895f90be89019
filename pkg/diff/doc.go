// Package diff computes a structured DiffReport between two enriched
// scene.Instance trees: added/removed instances by full_path, and
// per-instance property and spatial changes for paths present in both.
// See SPEC_FULL.md §7.
package diff
