// Package dag builds the crate dependency graph for a build rooted at one
// crate directory and orders it topologically: one manifest + one entry
// file per crate, deduplicated by directory, Kahn-ordered. There is no
// module-hash caching; incremental recompilation isn't a concern here.
package dag

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/DavisPL/inlet/internal/project"
)

// CrateID identifies a crate within a Graph.
type CrateID int

// ErrDependencyConflict indicates two crates in the transitive closure
// declared the same dependency name bound to different paths
// (spec.md §4.7).
var ErrDependencyConflict = errors.New("conflicting dependency declaration")

// ErrBinaryAsDependency indicates a crate with a main.inlet entry was
// reached as someone else's dependency (spec.md §4.7: "a binary may not
// appear as a dependency of another binary" — generalized here to "of
// any crate," since only the root of a build may be the binary).
var ErrBinaryAsDependency = errors.New("binary crate used as a dependency")

// Crate is one node of the graph: its manifest, its resolved entry file,
// and the CrateIDs of its direct dependencies keyed by declared name.
type Crate struct {
	ID        CrateID
	Manifest  *project.Manifest
	EntryPath string
	IsBinary  bool
	Deps      map[string]CrateID
}

// Graph is the crate dependency DAG for one build.
type Graph struct {
	Crates []*Crate
	edges  [][]CrateID
}

// Load walks the dependency closure starting at rootDir, loading each
// crate's manifest and entry file exactly once (crates are identified by
// their canonical absolute directory) and building the dependency edges
// between them.
func Load(rootDir string) (*Graph, error) {
	l := &loader{
		byDir:    make(map[string]CrateID),
		depNames: make(map[string]string),
	}
	rootID, err := l.load(rootDir, true)
	if err != nil {
		return nil, err
	}
	_ = rootID
	return &Graph{Crates: l.crates, edges: l.edges}, nil
}

type loader struct {
	byDir    map[string]CrateID
	depNames map[string]string // dependency name -> canonical path first seen
	crates   []*Crate
	edges    [][]CrateID
}

func (l *loader) load(dir string, isRoot bool) (CrateID, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", dir, err)
	}
	if id, ok := l.byDir[absDir]; ok {
		return id, nil
	}

	manifest, err := project.LoadManifest(absDir)
	if err != nil {
		return 0, err
	}
	entryPath, isBinary, err := project.ResolveEntryFile(absDir)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", absDir, err)
	}
	if isBinary && !isRoot {
		return 0, fmt.Errorf("%s: %w", manifest.Name, ErrBinaryAsDependency)
	}

	id := CrateID(len(l.crates))
	crate := &Crate{ID: id, Manifest: manifest, EntryPath: entryPath, IsBinary: isBinary, Deps: make(map[string]CrateID)}
	l.byDir[absDir] = id
	l.crates = append(l.crates, crate)
	l.edges = append(l.edges, nil)

	depNames := make([]string, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		depNames = append(depNames, name)
	}
	sort.Strings(depNames)

	for _, name := range depNames {
		dep := manifest.Dependencies[name]
		depDir := filepath.Join(absDir, dep.Path)
		depAbsDir, err := filepath.Abs(depDir)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", depDir, err)
		}
		if prev, ok := l.depNames[name]; ok && prev != depAbsDir {
			return 0, fmt.Errorf("%s: dependency %q: %w", manifest.Name, name, ErrDependencyConflict)
		}
		l.depNames[name] = depAbsDir

		depID, err := l.load(depAbsDir, false)
		if err != nil {
			return 0, err
		}
		crate.Deps[name] = depID
		l.edges[id] = append(l.edges[id], depID)
	}

	return id, nil
}
