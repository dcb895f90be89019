package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for world.json, diagnostics.json, and diff.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateSchemas()
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaStubs is a minimal property-name listing per output document,
// standing in for a fully reflective JSON-schema generator: the point of
// this command is a stable boundary contract, not deep field validation.
var schemaStubs = map[string][]string{
	"world":       {"id", "name", "class_name", "properties", "children", "full_path", "world_bounds", "center"},
	"diagnostics": {"errors", "schema_version"},
	"diff":        {"schema_version", "status", "changes"},
}

func generateSchemas() error {
	schemaDir := "schemas"
	if err := os.MkdirAll(schemaDir, 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	for doc, fields := range schemaStubs {
		schema := map[string]interface{}{
			"$schema":    "http://json-schema.org/draft-07/schema#",
			"title":      doc,
			"type":       "object",
			"properties": fieldStubProperties(fields),
		}
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return err
		}
		path := filepath.Join(schemaDir, doc+".schema.json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	fmt.Println("Schemas generated in `schemas/`")
	return nil
}

func fieldStubProperties(fields []string) map[string]interface{} {
	props := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		props[f] = map[string]interface{}{}
	}
	return props
}
