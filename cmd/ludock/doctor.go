package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/ludock-sim/ludock/pkg/analysis"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checkEnvironment()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func checkEnvironment() {
	fmt.Println("LuDock Doctor")
	fmt.Println("=============")

	fmt.Printf("LuDock Version: %s\n", Version)

	fmt.Print("luau-analyze: ")
	if _, err := exec.LookPath("luau-analyze"); err == nil {
		fmt.Println("Found (PATH)")
	} else if _, err := analysis.LocateBinary("."); err == nil {
		fmt.Println("Found (Local)")
	} else {
		fmt.Println("Not Found")
		fmt.Println("  -> Tip: Install luau-analyze or place it in the project root.")
	}

	fmt.Println("Renderer Backend: Software (CPU)")
	fmt.Println("Strict Mode: Enabled by default (use --relaxed to disable)")

	if _, err := os.Stat("ludock.json"); err != nil {
		fmt.Println("Project: no ludock.json in current directory")
	} else {
		fmt.Println("Project: ludock.json found")
	}
}
