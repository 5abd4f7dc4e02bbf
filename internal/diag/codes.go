package diag

import "fmt"

// Code classifies a diagnostic by the pass that raised it. Numbering uses
// a banded scheme (lexical/syntax/semantic/I/O/project bands).
// SynExpectIdentifier and the I/O and project codes have titles but are
// not reported by any package here: manifest and file-system failures
// are returned as Go errors instead.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000s)
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax (2000s)
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectToken      Code = 2003
	SynExpectExpression Code = 2004

	// Semantic (3000s)
	SemaUnresolvedFunction   Code = 3002
	SemaArityMismatch        Code = 3003
	SemaUnresolvedIdent      Code = 3004
	SemaReturnOriginMismatch Code = 3006
	SemaArgOriginMismatch    Code = 3007

	// Project / manifest (5000s)
	ProjManifestMissing    Code = 5001
	ProjPackageSection     Code = 5002
	ProjDependencyConflict Code = 5003
	ProjEntryFileAmbiguous Code = 5004
	ProjEntryFileMissing   Code = 5005
	ProjImportCycle        Code = 5006
	ProjBinaryAsDependency Code = 5007

	// I/O (4000s)
	IOReadError Code = 4001
)

var codeTitle = map[Code]string{
	UnknownCode:              "unknown error",
	LexUnknownChar:           "unknown character",
	LexBadNumber:             "malformed number literal",
	SynUnexpectedToken:       "unexpected token",
	SynExpectIdentifier:      "expected identifier",
	SynExpectToken:           "expected token",
	SynExpectExpression:      "expected expression",
	SemaUnresolvedFunction:   "unresolved function",
	SemaArityMismatch:        "argument count mismatch",
	SemaUnresolvedIdent:      "unresolved identifier",
	SemaReturnOriginMismatch: "return origin mismatch",
	SemaArgOriginMismatch:    "argument origin mismatch",
	ProjManifestMissing:      "missing manifest",
	ProjPackageSection:       "missing [package] section",
	ProjDependencyConflict:   "conflicting dependency declaration",
	ProjEntryFileAmbiguous:   "both main.inlet and lib.inlet present",
	ProjEntryFileMissing:     "neither main.inlet nor lib.inlet present",
	ProjImportCycle:          "dependency cycle",
	ProjBinaryAsDependency:   "binary crate used as a dependency",
	IOReadError:              "I/O error",
}

// ID renders the stable band-prefixed identifier used in rendered output,
// e.g. "SEM3004".
func (c Code) ID() string {
	switch n := int(c); {
	case n >= 1000 && n < 2000:
		return fmt.Sprintf("LEX%04d", n)
	case n >= 2000 && n < 3000:
		return fmt.Sprintf("SYN%04d", n)
	case n >= 3000 && n < 4000:
		return fmt.Sprintf("SEM%04d", n)
	case n >= 4000 && n < 5000:
		return fmt.Sprintf("IO%04d", n)
	case n >= 5000 && n < 6000:
		return fmt.Sprintf("PRJ%04d", n)
	default:
		return "E0000"
	}
}

// Title returns a short human-readable description of the code's category.
func (c Code) Title() string {
	if t, ok := codeTitle[c]; ok {
		return t
	}
	return codeTitle[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("%s: %s", c.ID(), c.Title())
}
