package boolean

import "sort"

// Variables returns the distinct variable names referenced by e, sorted in
// ascending order. This order is canonical: variable i occupies bit i of an
// assignment everywhere in the package.
func Variables(e Expr) []string {
	seen := make(map[string]struct{})
	collectVars(e, seen)

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}

func collectVars(e Expr, seen map[string]struct{}) {
	switch e := e.(type) {
	case Var:
		seen[e.Name] = struct{}{}
	case Not:
		collectVars(e.X, seen)
	case And:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	case Or:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	case Xor:
		collectVars(e.L, seen)
		collectVars(e.R, seen)
	}
}

// unionVars merges two sorted variable lists.
func unionVars(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
