package boolean

// Classification is the semantic class of an expression.
type Classification int

const (
	// Contingent expressions are true under some assignments and false under others.
	Contingent Classification = iota
	// Tautology expressions are true under every assignment.
	Tautology
	// Contradiction expressions are false under every assignment.
	Contradiction
)

func (c Classification) String() string {
	switch c {
	case Tautology:
		return "Tautology"
	case Contradiction:
		return "Contradiction"
	case Contingent:
		return "Contingent"
	default:
		return "?"
	}
}

// Classify derives the classification from a result column.
func Classify(results []bool) Classification {
	anyTrue, anyFalse := false, false
	for _, r := range results {
		if r {
			anyTrue = true
		} else {
			anyFalse = true
		}
	}
	switch {
	case anyTrue && !anyFalse:
		return Tautology
	case anyFalse && !anyTrue:
		return Contradiction
	default:
		return Contingent
	}
}
