// Package project loads an Inlet crate's manifest and resolves its single
// source entry file. The manifest shape is fixed: no module-install/fetch
// step, no module-hash caching.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrPackageSectionMissing indicates a manifest has no [package] table.
var ErrPackageSectionMissing = errors.New("missing [package]")

// ErrPackageNameMissing indicates [package] has no (or an empty) name key.
var ErrPackageNameMissing = errors.New("missing [package].name")

// Dependency is one entry of a manifest's [dependencies] table: a name
// mapped to a filesystem path relative to the manifest's directory
// (SPEC_FULL.md §6).
type Dependency struct {
	Path string `toml:"path"`
}

type rawManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Dependencies map[string]Dependency `toml:"dependencies"`
}

// Manifest is a parsed Inlet.toml: the crate's declared name, its
// directory, and its dependency table.
type Manifest struct {
	Name         string
	Dir          string
	Dependencies map[string]Dependency
}

// ManifestFileName is the fixed manifest file name every crate root must
// contain (SPEC_FULL.md §6).
const ManifestFileName = "Inlet.toml"

// LoadManifest parses the Inlet.toml in dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	var raw rawManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(raw.Package.Name)
	if !meta.IsDefined("package", "name") || name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	deps := raw.Dependencies
	if deps == nil {
		deps = map[string]Dependency{}
	}
	return &Manifest{Name: name, Dir: dir, Dependencies: deps}, nil
}
