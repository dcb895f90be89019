package main

import (
	"context"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/ludock-sim/ludock/pkg/pipeline"
)

var (
	flagRender      bool
	flagRelaxed     bool
	flagTarget      string
	flagDiff        bool
	flagDebugBounds bool
	flagDebugOrigin bool
	flagDebugAxes   bool
	flagPreset      string
	flagSchematic   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the load, diff, analyze, and render pipeline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		opts := pipeline.Options{
			Render:      flagRender,
			Relaxed:     flagRelaxed,
			Diff:        flagDiff,
			DebugBounds: flagDebugBounds,
			DebugOrigin: flagDebugOrigin,
			DebugAxes:   flagDebugAxes,
			Schematic:   flagSchematic,
		}

		preset := flagPreset
		if preset == "" {
			cfg, err := pipeline.LoadConfig(cwd)
			if err != nil {
				return err
			}
			preset = cfg.DefaultPreset
		}
		if preset != "" {
			if err := pipeline.ApplyPreset(&opts, preset); err != nil {
				return err
			}
		}

		// The project root is passed as the real cwd path so the config file
		// and a project-local analyzer binary are looked up there too.
		fsys := osfs.New("/")

		_, err = pipeline.Run(context.Background(), fsys, cwd, opts)
		return err
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagRender, "3d", false, "Enable 3D rendering")
	runCmd.Flags().BoolVar(&flagRelaxed, "relaxed", false, "Skip strict analysis checks, warn only")
	runCmd.Flags().StringVar(&flagTarget, "target", "", "Specific instance to render (currently unused)")
	runCmd.Flags().BoolVar(&flagDiff, "diff", false, "Enable diff mode (compare against previous results)")
	runCmd.Flags().BoolVar(&flagDebugBounds, "debug-bounds", false, "Draw bounding boxes in render")
	runCmd.Flags().BoolVar(&flagDebugOrigin, "debug-origin", false, "Draw origin point in render")
	runCmd.Flags().BoolVar(&flagDebugAxes, "debug-axes", false, "Draw axes in render")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Execution preset (agent, ci, debug)")
	runCmd.Flags().BoolVar(&flagSchematic, "schematic", false, "Export a top-down SVG schematic")

	rootCmd.AddCommand(runCmd)
}
