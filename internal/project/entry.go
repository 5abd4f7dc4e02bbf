package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrEntryFileAmbiguous indicates a crate root has both main.inlet and
// lib.inlet.
var ErrEntryFileAmbiguous = errors.New("both main.inlet and lib.inlet present")

// ErrEntryFileMissing indicates a crate root has neither main.inlet nor
// lib.inlet.
var ErrEntryFileMissing = errors.New("neither main.inlet nor lib.inlet present")

const (
	mainFileName = "main.inlet"
	libFileName  = "lib.inlet"
)

// ResolveEntryFile locates dir's single source entry file (SPEC_FULL.md
// §6): exactly one of main.inlet (a binary crate) or lib.inlet (a
// library crate) must exist.
func ResolveEntryFile(dir string) (path string, isBinary bool, err error) {
	mainPath := filepath.Join(dir, mainFileName)
	libPath := filepath.Join(dir, libFileName)
	hasMain := fileExists(mainPath)
	hasLib := fileExists(libPath)
	switch {
	case hasMain && hasLib:
		return "", false, ErrEntryFileAmbiguous
	case hasMain:
		return mainPath, true, nil
	case hasLib:
		return libPath, false, nil
	default:
		return "", false, ErrEntryFileMissing
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
