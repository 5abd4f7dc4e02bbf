package sema

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/symtab"
	"github.com/DavisPL/inlet/internal/visitor"
)

// identResolver checks that every Path used as a value and every call's
// callee resolves, using a single per-function scope cleared on exit,
// grounded on original_source/src/semantics/ident.rs.
type identResolver struct {
	visitor.Base
	functions *symtab.Table[FunctionData]
	locals    *symtab.Table[struct{}]
	reporter  diag.Reporter
	file      source.FileID
}

// ResolveIdentifiers runs the identifier-resolution pass over file,
// reporting every unresolved path, unresolved callee, and arity mismatch
// to reporter. functions is the function table built by CollectFunctions
// across the whole crate graph so far (spec.md §4.5).
func ResolveIdentifiers(file *ast.File, functions *symtab.Table[FunctionData], reporter diag.Reporter, fileID source.FileID) {
	r := &identResolver{
		functions: functions,
		locals:    symtab.New[struct{}](),
		reporter:  reporter,
		file:      fileID,
	}
	r.Base = visitor.NewBase(r)
	r.VisitFile(file)
}

func (r *identResolver) VisitFnItem(fn *ast.FnItem) {
	for _, p := range fn.Params {
		r.locals.Insert(p.Ident.Raw, struct{}{})
	}
	visitor.WalkFnItem(r, fn)
	r.locals.Clear()
}

// VisitLocalStmt resolves the initializer before introducing the bound
// name, so `let x = x;` sees the outer x, not itself. spec.md §9
// explicitly overrides original_source's "bind before resolving"
// ordering; see DESIGN.md.
func (r *identResolver) VisitLocalStmt(s *ast.LocalStmt) {
	r.VisitExpr(s.Expr)
	r.locals.Insert(s.Ident.Raw, struct{}{})
}

func (r *identResolver) VisitPathExpr(e *ast.PathExpr) {
	name := e.Path.String()
	if _, ok := r.locals.Find(name); !ok {
		diag.Errorf(r.reporter, diag.SemaUnresolvedIdent, r.file, e.Sp, "Couldn't find a definition for '%s'", name)
	}
}

func (r *identResolver) VisitCallExpr(e *ast.CallExpr) {
	name := e.Callee.String()
	data, ok := r.functions.Find(name)
	if !ok {
		diag.Errorf(r.reporter, diag.SemaUnresolvedFunction, r.file, e.Callee.Span, "Couldn't find a definition for '%s'", name)
	} else if len(data.Params) != len(e.Args) {
		diag.Errorf(r.reporter, diag.SemaArityMismatch, r.file, e.Callee.Span,
			"Function '%s' expects %d argument(s), but %d were provided", name, len(data.Params), len(e.Args))
	}
	visitor.WalkCallExpr(r, e)
}
