package loader

import "strings"

// extensionClasses maps a DSL file/directory suffix to its class name.
// Case-sensitive, per SPEC_FULL.md §6.
var extensionClasses = map[string]string{
	"part":         "Part",
	"basepart":     "Part",
	"model":        "Model",
	"folder":       "Folder",
	"script":       "Script",
	"localscript":  "LocalScript",
	"modulescript": "ModuleScript",
	"gui":          "ScreenGui",
	"frame":        "Frame",
	"button":       "TextButton",
	"label":        "TextLabel",
}

// knownServices is the fixed table of service class names recognized only
// for direct children of game/.
var knownServices = map[string]bool{
	"Workspace":           true,
	"Lighting":            true,
	"ReplicatedStorage":   true,
	"ReplicatedFirst":     true,
	"ServerScriptService": true,
	"ServerStorage":       true,
	"StarterGui":          true,
	"StarterPack":         true,
	"StarterPlayer":       true,
	"SoundService":        true,
}

// splitSuffix splits name at its last '.' into (stem, extension). If name
// has no dot, ext is empty and stem is name unchanged.
func splitSuffix(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// classifyDirectory resolves a directory entry's class and clean (display)
// name: a recognized dotted suffix wins first (stripped from the name
// regardless of which class it maps to); a known service name wins only
// for direct children of game/; otherwise Folder with the name unchanged.
func classifyDirectory(name string, isTopLevel bool) (class, cleanName string) {
	if stem, ext := splitSuffix(name); ext != "" {
		if class, ok := extensionClasses[ext]; ok {
			return class, stem
		}
	}
	if isTopLevel && knownServices[name] {
		return name, name
	}
	return "Folder", name
}

// classifyFile resolves a declarative instance file's class from its
// extension. Unrecognized extensions default to Unknown (files never
// default to Folder, unlike directories).
func classifyFile(ext string) string {
	if class, ok := extensionClasses[ext]; ok {
		return class
	}
	return "Unknown"
}
