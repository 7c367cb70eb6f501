package boolean

// Equivalent reports whether a and b have identical truth tables over the
// union of their variables. limit caps the size of that union.
func Equivalent(a, b Expr, limit int) (bool, error) {
	vars := unionVars(Variables(a), Variables(b))
	ta, err := NewTable(a, vars, limit)
	if err != nil {
		return false, err
	}
	tb, err := NewTable(b, vars, limit)
	if err != nil {
		return false, err
	}
	for i := range ta.Results {
		if ta.Results[i] != tb.Results[i] {
			return false, nil
		}
	}
	return true, nil
}

// Counterexample returns the first assignment over the union of variables
// on which a and b disagree. ok is false when they are equivalent.
func Counterexample(a, b Expr, limit int) (row Row, ok bool, err error) {
	vars := unionVars(Variables(a), Variables(b))
	ta, err := NewTable(a, vars, limit)
	if err != nil {
		return Row{}, false, err
	}
	tb, err := NewTable(b, vars, limit)
	if err != nil {
		return Row{}, false, err
	}
	for i := range ta.Results {
		if ta.Results[i] != tb.Results[i] {
			return ta.Row(i), true, nil
		}
	}
	return Row{}, false, nil
}
