// Package driver implements the crate build pipeline: read each crate's
// manifest, recursively resolve its dependencies, and run lex -> parse ->
// function-collection -> identifier-resolution -> origin-analysis over
// the dependency closure with the function table threaded across crate
// boundaries. Independent crates are lexed and parsed with an errgroup
// fan-out; there is no module-path/pragma/cache machinery, since crates
// here are single-entry-file and incremental recompilation isn't a goal.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/lexer"
	"github.com/DavisPL/inlet/internal/parser"
	"github.com/DavisPL/inlet/internal/project/dag"
	"github.com/DavisPL/inlet/internal/sema"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/symtab"
)

// Options configures a Build.
type Options struct {
	// MaxDiagnostics bounds each crate's diag.Bag capacity.
	MaxDiagnostics int
	// Jobs bounds independent-crate lex/parse parallelism; 0 means
	// runtime.NumCPU() (SPEC_FULL.md §6's --jobs flag).
	Jobs int
}

// CrateResult is one crate's outcome: its parsed file (nil if lexing or
// parsing failed) and the diagnostics raised against it.
type CrateResult struct {
	Crate  *dag.Crate
	File   *ast.File
	FileID source.FileID
	Bag    *diag.Bag
}

// Result is a whole build: the loaded source files and one CrateResult
// per crate in the dependency graph, ordered topologically (dependencies
// before dependents).
type Result struct {
	Files  *source.Map
	Crates []CrateResult
}

// HasErrors reports whether any crate's bag contains a SevError-or-above
// diagnostic (SPEC_FULL.md §6's exit-code contract).
func (r *Result) HasErrors() bool {
	for _, c := range r.Crates {
		if c.Bag != nil && c.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Build runs the full pipeline over the crate rooted at rootDir and its
// transitive dependencies.
func Build(ctx context.Context, rootDir string, opts Options) (*Result, error) {
	graph, err := dag.Load(rootDir)
	if err != nil {
		return nil, err
	}
	order, err := dag.Sort(graph)
	if err != nil {
		return nil, err
	}

	files := source.NewMap()
	n := len(graph.Crates)
	results := make([]CrateResult, n)
	for i, crate := range graph.Crates {
		results[i] = CrateResult{Crate: crate}
	}

	// Phase 1: lex and parse every crate's entry file. Independent
	// crates have no data dependency at this stage, so this runs
	// concurrently; the dependency-ordered semantic passes below are
	// joined against the results.
	if err := lexAndParseAll(ctx, files, results, opts); err != nil {
		return nil, err
	}

	// Phase 2: function-collection, identifier-resolution, and
	// origin-analysis run per crate, one crate at a time, in topological
	// order. Each crate's own functions are folded into the shared table
	// immediately before that crate is resolved/analyzed against it, so
	// a crate only ever sees functions collected from itself and from
	// crates processed earlier in the order — never from crates still to
	// come, matching a true sequential walk.
	functions := symtab.New[sema.FunctionData]()
	for _, id := range order {
		res := &results[id]
		functions = sema.CollectFunctions(res.File, res.Crate.Manifest.Name, functions)
		if res.File == nil {
			continue
		}
		reporter := diag.BagReporter{Bag: res.Bag}
		sema.ResolveIdentifiers(res.File, functions, reporter, res.FileID)
		sema.AnalyzeOrigins(res.File, res.Crate.Manifest.Name, functions, reporter, res.FileID)
	}

	return &Result{Files: files, Crates: results}, nil
}

func lexAndParseAll(ctx context.Context, files *source.Map, results []CrateResult, opts Options) error {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	n := len(results)
	if n == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, n))

	// files.Add is not documented safe for concurrent use, so file
	// registration happens sequentially before the parallel lex/parse
	// fan-out.
	for i := range results {
		id, err := files.Load(results[i].Crate.EntryPath)
		if err != nil {
			return err
		}
		results[i].FileID = id
		results[i].Bag = diag.NewBag(opts.MaxDiagnostics)
	}

	for i := range results {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			lexAndParseOne(files, &results[i])
			return nil
		})
	}
	return g.Wait()
}

func lexAndParseOne(files *source.Map, res *CrateResult) {
	text := files.Get(res.FileID).Text
	tokens, err := lexer.Lex(text)
	if err != nil {
		if lexErr, ok := err.(*lexer.Error); ok {
			res.Bag.Add(diagnosticFromLexError(lexErr, res.FileID))
		}
		return
	}
	file, err := parser.Parse(res.FileID, tokens)
	if err != nil {
		if parseErr, ok := err.(*parser.Error); ok {
			res.Bag.Add(parseErr.Diag)
		}
		return
	}
	res.File = file
}
