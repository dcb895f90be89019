// Package loader walks a project's game/ directory tree into a canonical
// scene.Instance tree: directory/file class inference, DSL property
// merging, and the bottom-up world_bounds/center enrichment pass. See
// SPEC_FULL.md §6.
//
// The walk is expressed against billy.Filesystem rather than the os
// package directly so tests can build a project tree in memory
// (go-git/go-billy/v5's memfs) without touching disk; production callers
// pass osfs.New(root).
package loader
