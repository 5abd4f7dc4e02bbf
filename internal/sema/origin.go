package sema

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/symtab"
	"github.com/DavisPL/inlet/internal/visitor"
)

// LocalData is what the origin-analysis pass records for a bound local:
// the origin of the value it was bound to (spec.md §3).
type LocalData struct {
	Origin ast.Origin
}

// originAnalyzer proves that every value flowing into a position of
// declared origin satisfies it, grounded on
// original_source/src/semantics/origin.rs.
type originAnalyzer struct {
	visitor.Base
	functions *symtab.Table[FunctionData]
	locals    *symtab.Table[LocalData]
	prefix    string
	curFunc   string
	retOrigin ast.Origin
	reporter  diag.Reporter
	file      source.FileID
}

// AnalyzeOrigins runs the origin-analysis pass over file under the given
// crate prefix, checking every return and call argument against the
// function table built by CollectFunctions (spec.md §4.6).
func AnalyzeOrigins(file *ast.File, crateName string, functions *symtab.Table[FunctionData], reporter diag.Reporter, fileID source.FileID) {
	a := &originAnalyzer{
		prefix:    crateName,
		functions: functions,
		locals:    symtab.New[LocalData](),
		retOrigin: ast.UniversalOrigin(),
		reporter:  reporter,
		file:      fileID,
	}
	a.Base = visitor.NewBase(a)
	a.VisitFile(file)
}

func (a *originAnalyzer) VisitModItem(m *ast.ModItem) {
	saved := a.prefix
	a.prefix = a.prefix + "::" + m.Ident.Raw
	visitor.WalkModItem(a, m)
	a.prefix = saved
}

func (a *originAnalyzer) VisitFnItem(fn *ast.FnItem) {
	for _, p := range fn.Params {
		a.locals.Insert(p.Ident.Raw, LocalData{Origin: p.Origin})
	}
	savedFunc, savedRet := a.curFunc, a.retOrigin
	a.curFunc = fn.Ident.Raw
	a.retOrigin = fn.RetOrigin
	visitor.WalkFnItem(a, fn)
	a.curFunc, a.retOrigin = savedFunc, savedRet
	a.locals.Clear()
}

// VisitLocalStmt evaluates the initializer's origin and binds it to the
// name. Failures in the initializer are reported by evalExpr and leave
// the name unbound, matching spec.md §4.6's "x is not bound" rule.
func (a *originAnalyzer) VisitLocalStmt(s *ast.LocalStmt) {
	origin, ok := a.evalExpr(s.Expr)
	if ok {
		a.locals.Insert(s.Ident.Raw, LocalData{Origin: origin})
	}
}

func (a *originAnalyzer) VisitReturnStmt(s *ast.ReturnStmt) {
	origin, ok := a.evalExpr(s.Expr)
	if !ok {
		return
	}
	if !origin.Satisfies(a.retOrigin) {
		diag.Errorf(a.reporter, diag.SemaReturnOriginMismatch, a.file, s.Sp,
			"Function '%s' should return a value with origin '%s', but a value with origin '%s' is returned instead",
			a.curFunc, a.retOrigin, origin)
	}
}

// evalExpr computes e's origin per spec.md §4.6's expression-origin
// rules. It reports diagnostics for unresolved identifiers, unresolved
// callees, and argument-origin mismatches directly to a.reporter, and
// returns ok=false when e's own origin could not be determined.
func (a *originAnalyzer) evalExpr(e ast.Expr) (ast.Origin, bool) {
	switch ex := e.(type) {
	case *ast.NumLitExpr:
		return ast.ExactOrigin(ast.PathFromString(a.prefix, ex.Sp)), true
	case *ast.UnitExpr:
		return ast.ExactOrigin(ast.PathFromString(a.prefix, ex.Sp)), true
	case *ast.BinExpr:
		// Binary expressions take their origin from the containing scope,
		// not from their operands; operands are not recursed into for
		// origin purposes (spec.md §4.6).
		return ast.ExactOrigin(ast.PathFromString(a.prefix, ex.Sp)), true
	case *ast.PathExpr:
		name := ex.Path.String()
		if data, ok := a.locals.Find(name); ok {
			return data.Origin, true
		}
		diag.Errorf(a.reporter, diag.SemaUnresolvedIdent, a.file, ex.Sp, "Could not find definition of identifier '%s'", name)
		return ast.Origin{}, false
	case *ast.CallExpr:
		return a.evalCallExpr(ex)
	default:
		return ast.Origin{}, false
	}
}

func (a *originAnalyzer) evalCallExpr(ex *ast.CallExpr) (ast.Origin, bool) {
	name := ex.Callee.String()
	data, ok := a.functions.Find(name)
	if !ok {
		diag.Errorf(a.reporter, diag.SemaUnresolvedIdent, a.file, ex.Sp, "Could not find definition of identifier '%s'", name)
		return ast.Origin{}, false
	}
	for i, arg := range ex.Args {
		actual, argOk := a.evalExpr(arg)
		if !argOk || i >= len(data.Params) {
			continue
		}
		param := data.Params[i]
		if !actual.Satisfies(param.Origin) {
			diag.Errorf(a.reporter, diag.SemaArgOriginMismatch, a.file, arg.Span(),
				"Parameter '%s' of function '%s' must have an origin of '%s', but a value with origin '%s' was provided",
				param.Name, name, param.Origin, actual)
		}
	}
	return data.RetOrigin, true
}
