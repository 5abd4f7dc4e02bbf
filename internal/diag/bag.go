package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag holds a capacity-bounded collection of diagnostics, grounded on the
// teacher's internal/diag/bag.go. Capacity bounds a pathologically broken
// file from producing unbounded output.
type Bag struct {
	items   []Diagnostic
	maximum uint16
}

// NewBag creates a Bag that accepts at most maximum diagnostics.
func NewBag(maximum int) *Bag {
	cap16, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("diag: bag capacity overflow: %w", err))
	}
	return &Bag{items: make([]Diagnostic, 0, cap16), maximum: cap16}
}

// Add appends d, returning false if the bag is already at capacity.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.maximum) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len reports how many diagnostics are in the bag.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the bag's diagnostics. Callers must not mutate the backing
// array through the returned slice.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports whether any diagnostic is at SevError or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Merge appends other's diagnostics onto b, growing capacity if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total, err := safecast.Conv[uint16](len(b.items) + len(other.items))
	if err != nil {
		panic(fmt.Errorf("diag: bag merge overflow: %w", err))
	}
	if total > b.maximum {
		b.maximum = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, then primary span, then severity
// descending, then code, for deterministic rendering (spec requires
// byte-identical output across runs on the same input).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Primary.From != dj.Primary.From {
			return di.Primary.From.Less(dj.Primary.From)
		}
		if di.Primary.To != dj.Primary.To {
			return di.Primary.To.Less(dj.Primary.To)
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics that share a (Code, File, Primary) key with one
// already kept, preserving the first occurrence's position.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := b.items[:0:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%d:%d:%s", d.Code, d.File, d.Primary)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
