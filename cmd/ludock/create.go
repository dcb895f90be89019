package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var projectDirs = []string{
	"game/Workspace",
	"game/Lighting",
	"game/ReplicatedFirst",
	"game/ReplicatedStorage",
	"game/ServerScriptService",
	"game/ServerStorage",
	"game/StarterGui",
	"game/StarterPack",
	"game/StarterPlayer/StarterPlayerScripts",
	"game/StarterPlayer/StarterCharacterScripts",
	"game/SoundService",
	"results",
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new LuDock project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func createProject(name string) error {
	root := name
	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	for _, dir := range projectDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	pluginsDir := filepath.Join(root, ".ludock", "plugins")
	if err := os.MkdirAll(pluginsDir, 0o755); err != nil {
		return fmt.Errorf("create plugins directory: %w", err)
	}
	manifest := map[string]interface{}{
		"manifestVersion": "1.0",
		"plugins":         []interface{}{},
	}
	if err := writeJSONFile(filepath.Join(pluginsDir, "manifest.json"), manifest); err != nil {
		return err
	}

	config := map[string]interface{}{
		"name":       name,
		"version":    "0.1.0",
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	if err := writeJSONFile(filepath.Join(root, "ludock.json"), config); err != nil {
		return fmt.Errorf("write ludock.json: %w", err)
	}

	fmt.Printf("Created LuDock project: %s\n", name)
	return nil
}

func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
