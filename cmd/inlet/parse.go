package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/lexer"
	"github.com/DavisPL/inlet/internal/parser"
	"github.com/DavisPL/inlet/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single file and print its AST as an indented tree",
	Args:  cobra.NoArgs,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("path", "", "source file to parse")
	_ = parseCmd.MarkFlagRequired("path")
}

func runParse(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}

	files := source.NewMap()
	fileID, err := files.Load(path)
	if err != nil {
		return failWithCode(2, fmt.Errorf("reading %s: %w", path, err))
	}

	tokens, lexErr := lexer.Lex(files.Get(fileID).Text)
	if lexErr != nil {
		return failWithCode(1, lexErr)
	}

	file, parseErr := parser.Parse(fileID, tokens)
	if parseErr != nil {
		return failWithCode(1, parseErr)
	}

	dumpFile(os.Stdout, file, 0)
	return nil
}

func indent(w *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("  ")
	}
}

func dumpFile(out *os.File, file *ast.File, depth int) {
	var b strings.Builder
	writeFile(&b, file, depth)
	fmt.Fprint(out, b.String())
}

func writeFile(b *strings.Builder, file *ast.File, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "File %s\n", file.Span())
	for _, item := range file.Items {
		writeItem(b, item, depth+1)
	}
}

func writeItem(b *strings.Builder, item ast.Item, depth int) {
	switch it := item.(type) {
	case *ast.FnItem:
		indent(b, depth)
		fmt.Fprintf(b, "Fn %s -> %s %s\n", it.Ident.Raw, it.RetOrigin, it.Sp)
		for _, p := range it.Params {
			indent(b, depth+1)
			fmt.Fprintf(b, "Param %s: %s %s\n", p.Ident.Raw, p.Origin, p.Sp)
		}
		writeBlock(b, &it.Body, depth+1)
	case *ast.ModItem:
		indent(b, depth)
		fmt.Fprintf(b, "Mod %s %s\n", it.Ident.Raw, it.Sp)
		if it.File != nil {
			writeFile(b, it.File, depth+1)
		}
	default:
		indent(b, depth)
		fmt.Fprintf(b, "<unknown item %T>\n", it)
	}
}

func writeBlock(b *strings.Builder, block *ast.Block, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "Block %s\n", block.Span())
	for _, stmt := range block.Stmts {
		writeStmt(b, stmt, depth+1)
	}
}

func writeStmt(b *strings.Builder, stmt ast.Stmt, depth int) {
	switch s := stmt.(type) {
	case *ast.LocalStmt:
		indent(b, depth)
		fmt.Fprintf(b, "Let %s %s\n", s.Ident.Raw, s.Sp)
		writeExpr(b, s.Expr, depth+1)
	case *ast.ReturnStmt:
		indent(b, depth)
		fmt.Fprintf(b, "Return %s\n", s.Sp)
		writeExpr(b, s.Expr, depth+1)
	default:
		indent(b, depth)
		fmt.Fprintf(b, "<unknown stmt %T>\n", s)
	}
}

func writeExpr(b *strings.Builder, expr ast.Expr, depth int) {
	switch e := expr.(type) {
	case *ast.NumLitExpr:
		indent(b, depth)
		fmt.Fprintf(b, "NumLit %d %s\n", e.Value, e.Sp)
	case *ast.UnitExpr:
		indent(b, depth)
		fmt.Fprintf(b, "Unit %s\n", e.Sp)
	case *ast.PathExpr:
		indent(b, depth)
		fmt.Fprintf(b, "Path %s %s\n", e.Path.String(), e.Sp)
	case *ast.BinExpr:
		indent(b, depth)
		fmt.Fprintf(b, "BinExpr %s %s\n", e.Op, e.Sp)
		writeExpr(b, e.Lhs, depth+1)
		writeExpr(b, e.Rhs, depth+1)
	case *ast.CallExpr:
		indent(b, depth)
		fmt.Fprintf(b, "Call %s %s\n", e.Callee.String(), e.Sp)
		for _, arg := range e.Args {
			writeExpr(b, arg, depth+1)
		}
	default:
		indent(b, depth)
		fmt.Fprintf(b, "<unknown expr %T>\n", e)
	}
}
