package loader

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/ludock-sim/ludock/pkg/dsl"
	"github.com/ludock-sim/ludock/pkg/ids"
	"github.com/ludock-sim/ludock/pkg/scene"
)

// ErrMissingProject is returned (wrapped) when root has no game/
// subdirectory.
var ErrMissingProject = errors.New("loader: project has no game/ directory")

// LoadWarning records a non-fatal per-file DSL parse failure. The loader logs
// these and keeps going; the affected instance is still created with
// whatever properties parsed before the failure.
type LoadWarning struct {
	Path string
	Err  error
}

func (w LoadWarning) Error() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// Load walks root's game/ subdirectory on fsys into an enriched scene
// tree, returning any accumulated non-fatal DSL warnings alongside it.
func Load(fsys billy.Filesystem, root string) (*scene.Instance, []LoadWarning, error) {
	gamePath := fsys.Join(root, "game")
	if info, err := fsys.Stat(gamePath); err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrMissingProject, gamePath)
	}

	rootInst := scene.New("DataModel", "DataModel", ids.Derive(ids.CanonicalPath("game")))
	rootInst.FullPath = "game"

	var warnings []LoadWarning
	children, err := loadChildren(fsys, gamePath, "game", true, &warnings)
	if err != nil {
		return nil, warnings, err
	}
	rootInst.Children = children

	enrich(rootInst)
	return rootInst, warnings, nil
}

func loadChildren(fsys billy.Filesystem, dirPath, parentFullPath string, isTopLevel bool, warnings *[]LoadWarning) ([]*scene.Instance, error) {
	entries, err := fsys.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("loader: read dir %s: %w", dirPath, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var children []*scene.Instance
	for _, entry := range entries {
		name := entry.Name()
		entryPath := fsys.Join(dirPath, name)

		if entry.IsDir() {
			class, cleanName := classifyDirectory(name, isTopLevel)
			fullPath := parentFullPath + "/" + cleanName
			inst := scene.New(cleanName, class, ids.Derive(ids.CanonicalPath(fullPath)))
			inst.FullPath = fullPath

			kids, err := loadChildren(fsys, entryPath, fullPath, false, warnings)
			if err != nil {
				return nil, err
			}
			inst.Children = kids
			children = append(children, inst)
			continue
		}

		inst, err := loadFile(fsys, entryPath, name, parentFullPath, warnings)
		if err != nil {
			return nil, err
		}
		if inst == nil {
			continue // *.json or extensionless: skipped
		}
		children = append(children, inst)
	}
	return children, nil
}

// scriptSuffixes maps a compound file suffix to the class it produces.
// Order matters only in that all three are checked before falling back to
// the generic declarative-file path.
var scriptSuffixes = []struct {
	suffix string
	class  string
}{
	{".server.lua", "Script"},
	{".local.lua", "LocalScript"},
	{".module.lua", "ModuleScript"},
}

func loadFile(fsys billy.Filesystem, entryPath, name, parentFullPath string, warnings *[]LoadWarning) (*scene.Instance, error) {
	for _, s := range scriptSuffixes {
		if !strings.HasSuffix(name, s.suffix) {
			continue
		}
		stem := strings.TrimSuffix(name, s.suffix)
		content, err := readFile(fsys, entryPath)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", entryPath, err)
		}
		fullPath := parentFullPath + "/" + stem
		inst := scene.New(stem, s.class, ids.Derive(ids.CanonicalPath(fullPath)))
		inst.FullPath = fullPath
		inst.Properties["Source"] = scene.StringValue(content)
		return inst, nil
	}

	stem, ext := splitSuffix(name)
	if ext == "" || ext == "json" {
		return nil, nil
	}

	content, err := readFile(fsys, entryPath)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", entryPath, err)
	}

	props, parseErr := dsl.Parse(content)
	if parseErr != nil {
		*warnings = append(*warnings, LoadWarning{Path: entryPath, Err: parseErr})
	}

	class := classifyFile(ext)
	if v, ok := props["ClassName"].(scene.StringValue); ok {
		class = string(v)
	}
	instName := stem
	if v, ok := props["Name"].(scene.StringValue); ok {
		instName = string(v)
	}

	fullPath := parentFullPath + "/" + instName
	inst := scene.New(instName, class, ids.Derive(ids.CanonicalPath(fullPath)))
	inst.FullPath = fullPath
	inst.Properties = props
	return inst, nil
}

func readFile(fsys billy.Filesystem, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
