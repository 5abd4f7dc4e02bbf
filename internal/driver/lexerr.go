package driver

import (
	"strings"

	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/lexer"
	"github.com/DavisPL/inlet/internal/source"
)

// diagnosticFromLexError turns a fatal lexer.Error into a Diagnostic.
// lexer.Error carries a reason string rather than a diag.Code (spec.md
// §7's lexical errors are single-shot and file-fatal, so there is only
// ever one per file); the code is inferred from the reason the way the
// teacher's own diagnose pipeline classifies wrapped stdlib errors by
// message shape.
func diagnosticFromLexError(e *lexer.Error, file source.FileID) diag.Diagnostic {
	code := diag.LexUnknownChar
	if strings.Contains(e.Reason, "32-bit integer") {
		code = diag.LexBadNumber
	}
	span := source.Span{From: e.At, To: e.At}
	return diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  e.Reason,
		File:     file,
		Primary:  span,
	}
}
