package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/ludock-sim/ludock/pkg/analysis"
	"github.com/ludock-sim/ludock/pkg/diff"
	"github.com/ludock-sim/ludock/pkg/loader"
	"github.com/ludock-sim/ludock/pkg/render"
	"github.com/ludock-sim/ludock/pkg/scene"
	"github.com/ludock-sim/ludock/pkg/schematic"
)

// Result is everything a Run produced, for callers that want the in-memory
// artifacts rather than just the files written under results/.
type Result struct {
	World       *scene.Instance
	Diff        *diff.DiffReport
	Diagnostics *analysis.DiagnosticsReport
	Rendered    bool
}

// Run executes the full build-and-inspect pipeline against the project
// rooted at root on fsys: load, write world.json, optionally diff against a
// prior run, analyze with strict/relaxed gating, then optionally render and
// export a schematic. Status lines go to stderr, matching the reference
// implementation's plain println/eprintln driver.
func Run(ctx context.Context, fsys billy.Filesystem, root string, opts Options) (*Result, error) {
	resultsDir := fsys.Join(root, "results")
	if err := fsys.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, newError(KindConfig, "failed to create results directory", err)
	}

	var oldWorld *scene.Instance
	if opts.Diff {
		if inst, ok := loadPreviousWorld(fsys, resultsDir); ok {
			oldWorld = inst
		}
	}

	fmt.Fprintln(os.Stderr, "Loading project...")
	world, warnings, err := loader.Load(fsys, root)
	if err != nil {
		return nil, newError(KindWorld, "failed to load project structure", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.Error())
	}

	result := &Result{World: world}

	fmt.Fprintln(os.Stderr, "Generating world.json...")
	if err := writeJSON(fsys, fsys.Join(resultsDir, "world.json"), world); err != nil {
		return nil, newError(KindConfig, "failed to write world.json", err)
	}

	if oldWorld != nil {
		fmt.Fprintln(os.Stderr, "Computing structured diff...")
		report := diff.Compare(oldWorld, world)
		result.Diff = report
		if err := writeJSON(fsys, fsys.Join(resultsDir, "diff.json"), report); err != nil {
			return nil, newError(KindConfig, "failed to write diff.json", err)
		}
		fmt.Fprintf(os.Stderr, "Diff report generated (Status: %s)\n", report.Status)
	}

	fmt.Fprintln(os.Stderr, "Running Luau analysis...")
	analyzer := analysis.NewAnalyzer()
	if cfg, err := LoadConfig(root); err == nil && cfg.AnalyzerBinary != "" {
		analyzer.BinaryName = cfg.AnalyzerBinary
	}
	diagnostics, analyzeErr := analyzer.Analyze(ctx, fsys, root, opts.Relaxed)
	if analyzeErr != nil {
		if !opts.Relaxed {
			return nil, newError(KindAnalysis, "strict mode analysis error", analyzeErr)
		}
		fmt.Fprintf(os.Stderr, "Analysis failed but continuing (relaxed): %v\n", analyzeErr)
		diagnostics = analysis.NewDiagnosticsReport()
	}
	result.Diagnostics = diagnostics
	if err := writeJSON(fsys, fsys.Join(resultsDir, "diagnostics.json"), diagnostics); err != nil {
		return nil, newError(KindConfig, "failed to write diagnostics.json", err)
	}
	if !opts.Relaxed && len(diagnostics.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "Strict Mode: %d errors found. Aborting render.\n", len(diagnostics.Errors))
		return result, newError(KindAnalysis, fmt.Sprintf("%d analysis errors in strict mode", len(diagnostics.Errors)), nil)
	}

	if opts.Render {
		fmt.Fprintln(os.Stderr, "Rendering 3D view...")
		img := render.Render(world, render.RenderOptions{
			DebugBounds: opts.DebugBounds,
			DebugOrigin: opts.DebugOrigin,
			DebugAxes:   opts.DebugAxes,
		})
		out, err := fsys.Create(fsys.Join(resultsDir, "render.png"))
		if err != nil {
			return result, newError(KindRenderer, "failed to open render.png", err)
		}
		defer out.Close()
		if err := render.Encode(out, img); err != nil {
			return result, newError(KindRenderer, "failed to encode render.png", err)
		}
		result.Rendered = true
		fmt.Fprintln(os.Stderr, "Render saved to results/render.png")
	}

	if opts.Schematic {
		fmt.Fprintln(os.Stderr, "Exporting schematic...")
		svgBytes, err := schematic.Export(world, schematic.DefaultOptions())
		if err != nil {
			return result, newError(KindRenderer, "failed to export schematic", err)
		}
		out, err := fsys.Create(fsys.Join(resultsDir, "scene.svg"))
		if err != nil {
			return result, newError(KindRenderer, "failed to open scene.svg", err)
		}
		defer out.Close()
		if _, err := out.Write(svgBytes); err != nil {
			return result, newError(KindRenderer, "failed to write scene.svg", err)
		}
	}

	fmt.Fprintln(os.Stderr, "LuDock run completed successfully.")
	return result, nil
}

// loadPreviousWorld reads and decodes a prior world.json, reporting ok=false
// (never an error) on any failure — a missing or corrupt previous run just
// means there's nothing to diff against.
func loadPreviousWorld(fsys billy.Filesystem, resultsDir string) (*scene.Instance, bool) {
	f, err := fsys.Open(fsys.Join(resultsDir, "world.json"))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var inst scene.Instance
	if err := json.NewDecoder(f).Decode(&inst); err != nil {
		return nil, false
	}
	return &inst, true
}

func writeJSON(fsys billy.Filesystem, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}
