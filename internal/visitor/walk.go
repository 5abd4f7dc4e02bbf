package visitor

import "github.com/DavisPL/inlet/internal/ast"

// WalkFile visits every item in a file in order.
func WalkFile(v Visitor, f *ast.File) {
	if f == nil {
		return
	}
	for _, item := range f.Items {
		v.VisitItem(item)
	}
}

// WalkItem dispatches to the concrete item kind.
func WalkItem(v Visitor, item ast.Item) {
	switch it := item.(type) {
	case *ast.FnItem:
		v.VisitFnItem(it)
	case *ast.ModItem:
		v.VisitModItem(it)
	}
}

// WalkFnItem visits a function's identifier, its parameters, its return
// origin, and finally its body.
func WalkFnItem(v Visitor, fn *ast.FnItem) {
	if fn == nil {
		return
	}
	v.VisitIdent(fn.Ident)
	for _, param := range fn.Params {
		v.VisitFnParam(param)
	}
	v.VisitOrigin(fn.RetOrigin)
	v.VisitBlock(&fn.Body)
}

// WalkFnParam visits a parameter's identifier and declared origin.
func WalkFnParam(v Visitor, p ast.FnParam) {
	v.VisitIdent(p.Ident)
	v.VisitOrigin(p.Origin)
}

// WalkModItem visits a module's identifier, then descends into its file.
func WalkModItem(v Visitor, m *ast.ModItem) {
	if m == nil {
		return
	}
	v.VisitIdent(m.Ident)
	v.VisitFile(m.File)
}

// WalkBlock visits every statement in a block in order.
func WalkBlock(v Visitor, b *ast.Block) {
	if b == nil {
		return
	}
	for _, stmt := range b.Stmts {
		v.VisitStmt(stmt)
	}
}

// WalkStmt dispatches to the concrete statement kind.
func WalkStmt(v Visitor, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.LocalStmt:
		v.VisitLocalStmt(st)
	case *ast.ReturnStmt:
		v.VisitReturnStmt(st)
	}
}

// WalkLocalStmt visits a let-binding's identifier and initializer.
func WalkLocalStmt(v Visitor, s *ast.LocalStmt) {
	if s == nil {
		return
	}
	v.VisitIdent(s.Ident)
	v.VisitExpr(s.Expr)
}

// WalkReturnStmt visits a return statement's expression.
func WalkReturnStmt(v Visitor, s *ast.ReturnStmt) {
	if s == nil {
		return
	}
	v.VisitExpr(s.Expr)
}

// WalkExpr dispatches to the concrete expression kind.
func WalkExpr(v Visitor, e ast.Expr) {
	switch ex := e.(type) {
	case *ast.BinExpr:
		v.VisitBinExpr(ex)
	case *ast.CallExpr:
		v.VisitCallExpr(ex)
	case *ast.PathExpr:
		v.VisitPathExpr(ex)
	case *ast.NumLitExpr:
		v.VisitNumLitExpr(ex)
	case *ast.UnitExpr:
		v.VisitUnitExpr(ex)
	}
}

// WalkBinExpr visits both operands.
func WalkBinExpr(v Visitor, e *ast.BinExpr) {
	if e == nil {
		return
	}
	v.VisitExpr(e.Lhs)
	v.VisitExpr(e.Rhs)
}

// WalkCallExpr visits every positional argument. The callee path is not
// itself dispatched through a hook (it is never a standalone value
// expression); passes that need it read CallExpr.Callee directly.
func WalkCallExpr(v Visitor, e *ast.CallExpr) {
	if e == nil {
		return
	}
	for _, arg := range e.Args {
		v.VisitExpr(arg)
	}
}
