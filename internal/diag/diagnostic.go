// Package diag is Inlet's diagnostic channel: every lexical, syntax, and
// semantic error flows through a Diagnostic and is collected in a Bag,
// used in place of a structured-logging library. Manifest and file-system
// failures do not pass through it; they are returned as Go errors.
package diag

import "github.com/DavisPL/inlet/internal/source"

// Note is auxiliary context attached to a Diagnostic, rendered as a
// secondary "note:" line under the primary message.
type Note struct {
	File source.FileID
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported issue.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     source.FileID
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of d with an additional note appended.
func (d Diagnostic) WithNote(file source.FileID, span source.Span, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{File: file, Span: span, Msg: msg})
	return d
}
