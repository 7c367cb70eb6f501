package boolean

import (
	"context"
	"fmt"
)

const (
	// DefaultMaxVariables is the variable ceiling used when none is configured.
	DefaultMaxVariables = 20
	// HardMaxVariables bounds any configured ceiling. Assignments are encoded
	// in a uint32, and 2^24 results is the most a single analysis may allocate.
	HardMaxVariables = 24

	// enumeration checks for cancellation once per this many assignments
	cancelStride = 1 << 16
)

// Row is one line of a truth table.
type Row struct {
	Assignment uint32
	Values     []bool // Values[i] is the value of variable i
	Result     bool
}

// Table is the truth table of an expression over an ordered variable list.
// Results[a] is the value of the expression under assignment a, for every a
// in 0..2^n-1. With no variables there is exactly one entry.
type Table struct {
	Vars    []string
	Results []bool
}

// EffectiveLimit clamps a configured variable ceiling into
// [1, HardMaxVariables], mapping non-positive values to DefaultMaxVariables.
func EffectiveLimit(limit int) int {
	if limit <= 0 {
		return DefaultMaxVariables
	}
	if limit > HardMaxVariables {
		return HardMaxVariables
	}
	return limit
}

// CheckLimit fails with ErrVariableLimitExceeded when vars exceeds limit.
func CheckLimit(vars []string, limit int) error {
	limit = EffectiveLimit(limit)
	if len(vars) > limit {
		return fmt.Errorf("%w: expression has %d variables, the maximum is %d",
			ErrVariableLimitExceeded, len(vars), limit)
	}
	return nil
}

// NewTable enumerates every assignment of vars in ascending numeric order and
// evaluates e under each. The variable ceiling is checked before anything of
// size 2^n is allocated.
func NewTable(e Expr, vars []string, limit int) (*Table, error) {
	return NewTableContext(context.Background(), e, vars, limit)
}

// NewTableContext is NewTable with cancellation. A cancelled ctx stops the
// enumeration and its error is returned as is.
func NewTableContext(ctx context.Context, e Expr, vars []string, limit int) (*Table, error) {
	if err := CheckLimit(vars, limit); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(vars))
	for i, name := range vars {
		index[name] = i
	}

	size := uint32(1) << uint(len(vars))
	results := make([]bool, size)
	for a := uint32(0); a < size; a++ {
		if a%cancelStride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		v, err := evalAssignment(e, index, a)
		if err != nil {
			return nil, err
		}
		results[a] = v
	}

	return &Table{Vars: vars, Results: results}, nil
}

// Len returns the number of rows, always 2^len(Vars).
func (t *Table) Len() int {
	return len(t.Results)
}

// Row materializes row i.
func (t *Table) Row(i int) Row {
	a := uint32(i)
	values := make([]bool, len(t.Vars))
	for j := range t.Vars {
		values[j] = a&(1<<uint(j)) != 0
	}
	return Row{Assignment: a, Values: values, Result: t.Results[i]}
}

// Rows materializes every row in enumeration order.
func (t *Table) Rows() []Row {
	rows := make([]Row, t.Len())
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Minterms returns the assignments whose result is true, ascending.
func (t *Table) Minterms() []uint32 {
	var minterms []uint32
	for a, r := range t.Results {
		if r {
			minterms = append(minterms, uint32(a))
		}
	}
	return minterms
}

// Classify classifies the table's result column.
func (t *Table) Classify() Classification {
	return Classify(t.Results)
}
