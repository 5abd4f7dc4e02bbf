package ast

import "github.com/DavisPL/inlet/internal/source"

// Item is the tagged variant over top-level declarations: functions and
// modules (spec.md §3).
type Item interface {
	Span() source.Span
	itemNode()
}

// FnParam is a single function parameter: a name and its declared origin.
type FnParam struct {
	Ident  Ident
	Origin Origin
	Sp     source.Span
}

func (p FnParam) Span() source.Span { return p.Sp }

// FnItem is a function declaration.
type FnItem struct {
	Ident     Ident
	Params    []FnParam
	Body      Block
	RetOrigin Origin
	Sp        source.Span
}

func (f *FnItem) Span() source.Span { return f.Sp }
func (*FnItem) itemNode()           {}

// ModItem is a nested module declaration.
type ModItem struct {
	Ident Ident
	File  *File
	Sp    source.Span
}

func (m *ModItem) Span() source.Span { return m.Sp }
func (*ModItem) itemNode()           {}

// File is one parsed source text: an ordered sequence of items plus a
// span. One parsed source text produces exactly one File (spec.md §3).
type File struct {
	Items []Item
	Sp    source.Span
}

func (f *File) Span() source.Span { return f.Sp }
