// Package sema implements Inlet's three semantic passes over a parsed
// File: function collection, identifier resolution, and origin analysis
// (spec.md §4.4-4.6), each grounded on its original_source/src/semantics/
// counterpart and built on the shared internal/visitor traversal and
// internal/symtab tables.
package sema

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/symtab"
	"github.com/DavisPL/inlet/internal/visitor"
)

// ParamData is a function parameter's name and declared origin, recorded
// for later arity and origin checks.
type ParamData struct {
	Name   string
	Origin ast.Origin
}

// FunctionData is what the function-collection pass records for a
// function's canonical path (spec.md §3's FunctionData).
type FunctionData struct {
	Params    []ParamData
	RetOrigin ast.Origin
}

// functionCollector walks a File maintaining the canonical module-path
// prefix, inserting `prefix::ident` -> FunctionData for every FnItem it
// crosses. Grounded on original_source/src/semantics/function.rs's prefix
// push/pop around Mod.
type functionCollector struct {
	visitor.Base
	prefix string
	table  *symtab.Table[FunctionData]
}

func newFunctionCollector(prefix string, table *symtab.Table[FunctionData]) *functionCollector {
	c := &functionCollector{prefix: prefix, table: table}
	c.Base = visitor.NewBase(c)
	return c
}

// CollectFunctions runs the function-collection pass over file, extending
// table with every function declared under crateName (and its nested
// modules) and returning it. A function path already present is silently
// overwritten (spec.md §4.4, §9): last declaration wins, with no
// duplicate-function diagnostic.
func CollectFunctions(file *ast.File, crateName string, table *symtab.Table[FunctionData]) *symtab.Table[FunctionData] {
	c := newFunctionCollector(crateName, table)
	c.VisitFile(file)
	return table
}

func (c *functionCollector) VisitFnItem(fn *ast.FnItem) {
	path := c.prefix + "::" + fn.Ident.Raw
	params := make([]ParamData, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = ParamData{Name: p.Ident.Raw, Origin: p.Origin}
	}
	c.table.Insert(path, FunctionData{Params: params, RetOrigin: fn.RetOrigin})
}

func (c *functionCollector) VisitModItem(m *ast.ModItem) {
	saved := c.prefix
	c.prefix = c.prefix + "::" + m.Ident.Raw
	visitor.WalkModItem(c, m)
	c.prefix = saved
}
