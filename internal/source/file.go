package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
)

// FileID identifies a loaded source file within a Map.
type FileID uint32

// File holds the raw text of one source file plus its line table, used to
// resolve diagnostic spans back to printable source lines.
type File struct {
	ID    FileID
	Path  string
	Text  string
	lines []string
}

// GetLine returns the 1-based line, or "" if out of range.
func (f *File) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(f.lines) {
		return ""
	}
	return f.lines[lineNum-1]
}

// LineCount reports how many lines the file has.
func (f *File) LineCount() int {
	return len(f.lines)
}

func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

// Map is a read-only-after-construction collection of loaded source files,
// indexed by FileID, used for span-to-line resolution during diagnostic
// rendering. Inlet spans already carry (line, column) directly, so there
// is no byte-offset bookkeeping here.
type Map struct {
	files []*File
}

// NewMap creates an empty source map.
func NewMap() *Map {
	return &Map{}
}

// Add registers source text under a display path and returns its FileID.
func (m *Map) Add(path string, text string) FileID {
	id32, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("source: file count overflow: %w", err))
	}
	id := FileID(id32)
	m.files = append(m.files, &File{
		ID:    id,
		Path:  path,
		Text:  text,
		lines: splitLines(text),
	})
	return id
}

// Load reads a file from disk and registers it.
func (m *Map) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the crate driver, not untrusted input
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	display := path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		display = abs
	}
	return m.Add(display, string(content)), nil
}

// Get returns the file for id. Panics on an out-of-range id: ids are only
// ever handed out by this Map.
func (m *Map) Get(id FileID) *File {
	return m.files[id]
}
