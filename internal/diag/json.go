package diag

import (
	"encoding/json"
	"io"

	"github.com/DavisPL/inlet/internal/source"
)

// locationJSON is the wire shape of a source.Span resolved against a file.
type locationJSON struct {
	File      string `json:"file"`
	FromLine  int    `json:"from_line"`
	FromCol   int    `json:"from_col"`
	ToLine    int    `json:"to_line"`
	ToCol     int    `json:"to_col"`
}

type noteJSON struct {
	Message  string       `json:"message"`
	Location locationJSON `json:"location"`
}

type diagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location locationJSON `json:"location"`
	Notes    []noteJSON   `json:"notes,omitempty"`
}

type diagnosticsOutput struct {
	Diagnostics []diagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(files *source.Map, id source.FileID, span source.Span) locationJSON {
	return locationJSON{
		File:     files.Get(id).Path,
		FromLine: span.From.Line,
		FromCol:  span.From.Column,
		ToLine:   span.To.Line,
		ToCol:    span.To.Column,
	}
}

// JSON renders bag's diagnostics to w as one JSON object holding a
// "diagnostics" array of {severity, code, message, location, notes}
// objects and their "count", a tool-integration format alongside Pretty.
func JSON(w io.Writer, bag *Bag, files *source.Map) error {
	out := diagnosticsOutput{Diagnostics: make([]diagnosticJSON, 0, bag.Len())}
	for _, d := range bag.Items() {
		dj := diagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: makeLocation(files, d.File, d.Primary),
		}
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, noteJSON{Message: n.Msg, Location: makeLocation(files, n.File, n.Span)})
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
