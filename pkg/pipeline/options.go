package pipeline

import "fmt"

// Options is the flag bag a pipeline run is configured with, one field per
// CLI flag plus the domain-stack addition Schematic.
type Options struct {
	Render      bool
	Relaxed     bool
	Diff        bool
	DebugBounds bool
	DebugOrigin bool
	DebugAxes   bool
	Schematic   bool
}

// ApplyPreset mutates opts in place per one of the three named presets.
// "ci" deliberately does not touch Render — the caller's own --3d flag
// setting is preserved, matching the reference implementation exactly.
func ApplyPreset(opts *Options, preset string) error {
	switch preset {
	case "agent":
		opts.Relaxed = false
		opts.Render = true
		opts.Diff = true
		opts.DebugBounds = true
		opts.DebugOrigin = true
		opts.DebugAxes = true
	case "ci":
		opts.Relaxed = false
		opts.Diff = true
	case "debug":
		opts.Relaxed = true
		opts.Render = true
		opts.DebugBounds = true
		opts.DebugOrigin = true
		opts.DebugAxes = true
	default:
		return newError(KindConfig, fmt.Sprintf("unknown preset: %s", preset), nil)
	}
	return nil
}
