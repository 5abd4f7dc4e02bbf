package diag

import (
	"fmt"

	"github.com/DavisPL/inlet/internal/source"
)

// Reporter is the contract every semantic pass reports diagnostics
// through. Production code uses BagReporter; tests use a small
// recording fake.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// Errorf reports a SevError diagnostic with no notes, the shape every
// semantic-pass call site uses.
func Errorf(r Reporter, code Code, file source.FileID, span source.Span, format string, args ...any) {
	r.Report(Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
		Primary:  span,
	})
}
