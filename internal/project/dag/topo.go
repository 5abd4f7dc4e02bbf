package dag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrImportCycle indicates the crate dependency graph is not a DAG.
var ErrImportCycle = errors.New("dependency cycle")

// Sort returns g's crates in dependency order: every crate appears after
// all of its dependencies, using Kahn's algorithm over this build's
// (typically small) DAG. There is no module-hash or batch bookkeeping;
// incremental recompilation isn't a concern here.
func Sort(g *Graph) ([]CrateID, error) {
	n := len(g.Crates)
	indeg := make([]int, n)
	dependents := make([][]CrateID, n)
	for from, deps := range g.edges {
		indeg[from] = len(deps)
		for _, to := range deps {
			dependents[to] = append(dependents[to], CrateID(from))
		}
	}

	var ready []CrateID
	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, CrateID(i))
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make([]CrateID, 0, n)
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		next := dependents[id]
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		for _, d := range next {
			indeg[d]--
			if indeg[d] == 0 {
				ready = append(ready, d)
				sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })
			}
		}
	}

	if len(order) != n {
		stuck := make([]string, 0, n-len(order))
		seen := make(map[CrateID]bool, len(order))
		for _, id := range order {
			seen[id] = true
		}
		for i := 0; i < n; i++ {
			if !seen[CrateID(i)] {
				stuck = append(stuck, g.Crates[i].Manifest.Name)
			}
		}
		return nil, fmt.Errorf("%v: %w", stuck, ErrImportCycle)
	}
	return order, nil
}
