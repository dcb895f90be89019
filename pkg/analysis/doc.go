// Package analysis invokes an external Luau static analyzer over every
// *.lua file under a project's game/ directory and parses its textual
// diagnostics into a structured DiagnosticsReport. The analyzer itself is
// a black box: only its combined stdout/stderr lines are interpreted. See
// SPEC_FULL.md §8.
package analysis
