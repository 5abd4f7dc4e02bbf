package ast

// Origin is the compile-time tag naming the lexical module path that
// produced a value: either Universal (written '*') or an Exact path
// (spec.md §3).
type Origin struct {
	// Universal is true for the Universal variant; false means Exact, in
	// which case Path names the origin.
	Universal bool
	Path      Path
}

// UniversalOrigin is the Universal variant.
func UniversalOrigin() Origin {
	return Origin{Universal: true}
}

// ExactOrigin wraps path as an Exact origin.
func ExactOrigin(path Path) Origin {
	return Origin{Universal: false, Path: path}
}

// String renders the origin in its canonical source form: '*' for
// Universal, or the path's "::"-joined form for Exact.
func (o Origin) String() string {
	if o.Universal {
		return "*"
	}
	return o.Path.String()
}

// Equal reports origin equality: Universal = Universal; Exact(p) =
// Exact(q) iff their canonical string forms match; otherwise unequal
// (spec.md §3).
func (o Origin) Equal(other Origin) bool {
	if o.Universal != other.Universal {
		return false
	}
	if o.Universal {
		return true
	}
	return o.Path.String() == other.Path.String()
}

// Satisfies implements the central compatibility relation (spec.md §4.6):
//
//   - actual = Universal satisfies only expected = Universal. Universal
//     means "comes from anywhere" and cannot be narrowed.
//   - actual = Exact(pa) satisfies expected = Universal unconditionally,
//     and satisfies expected = Exact(pe) iff pe's canonical string is a
//     literal prefix of pa's canonical string.
//
// The prefix test operates on the literal "::"-joined string, not on
// segment boundaries: "a::bb" satisfies "a::b", because "a::b" is a
// string prefix of "a::bb". spec.md §9 records this explicitly as a
// language decision to preserve, not a bug to silently fix.
func (actual Origin) Satisfies(expected Origin) bool {
	if actual.Universal {
		return expected.Universal
	}
	if expected.Universal {
		return true
	}
	actualStr := actual.Path.String()
	expectedStr := expected.Path.String()
	return len(actualStr) >= len(expectedStr) && actualStr[:len(expectedStr)] == expectedStr
}
