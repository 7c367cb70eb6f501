package boolean

// Eval evaluates e under env. A variable missing from env yields an
// *EvaluationError.
func Eval(e Expr, env map[string]bool) (bool, error) {
	return eval(e, func(name string) (bool, bool) {
		v, ok := env[name]
		return v, ok
	})
}

// evalAssignment evaluates e with variable values taken from the bits of
// assignment, using index for the bit position of each name.
func evalAssignment(e Expr, index map[string]int, assignment uint32) (bool, error) {
	return eval(e, func(name string) (bool, bool) {
		i, ok := index[name]
		if !ok {
			return false, false
		}
		return assignment&(1<<uint(i)) != 0, true
	})
}

func eval(e Expr, lookup func(string) (bool, bool)) (bool, error) {
	switch e := e.(type) {
	case Var:
		v, ok := lookup(e.Name)
		if !ok {
			return false, &EvaluationError{Var: e.Name}
		}
		return v, nil

	case Const:
		return e.Val, nil

	case Not:
		v, err := eval(e.X, lookup)
		if err != nil {
			return false, err
		}
		return !v, nil

	case And:
		l, r, err := evalPair(e.L, e.R, lookup)
		return l && r, err

	case Or:
		l, r, err := evalPair(e.L, e.R, lookup)
		return l || r, err

	case Xor:
		l, r, err := evalPair(e.L, e.R, lookup)
		return l != r, err

	default:
		return false, &EvaluationError{Var: "<unknown node>"}
	}
}

// evalPair evaluates both operands. There is no short-circuit so an unbound
// variable anywhere in the tree is always detected.
func evalPair(l, r Expr, lookup func(string) (bool, bool)) (bool, bool, error) {
	lv, err := eval(l, lookup)
	if err != nil {
		return false, false, err
	}
	rv, err := eval(r, lookup)
	if err != nil {
		return false, false, err
	}
	return lv, rv, nil
}
