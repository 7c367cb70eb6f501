package boolean

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Parallel()
	expr := MustParse("a and not b")
	table, err := NewTable(expr, Variables(expr), DefaultMaxVariables)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, table.Vars)
	assert.Equal(t, []bool{false, true, false, false}, table.Results)
	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []uint32{1}, table.Minterms())

	row := table.Row(1)
	assert.Equal(t, uint32(1), row.Assignment)
	assert.Equal(t, []bool{true, false}, row.Values)
	assert.True(t, row.Result)
}

func TestTableRowsAreUniqueAndComplete(t *testing.T) {
	t.Parallel()
	for _, input := range []string{"a", "a or b", "a and b ⊕ c", "(p or q) and (r or not s)"} {
		expr := MustParse(input)
		vars := Variables(expr)
		table, err := NewTable(expr, vars, DefaultMaxVariables)
		require.NoError(t, err)

		rows := table.Rows()
		require.Len(t, rows, 1<<len(vars), input)

		seen := make(map[string]bool)
		for i, row := range rows {
			assert.Equal(t, uint32(i), row.Assignment)
			key := fmt.Sprint(row.Values)
			assert.False(t, seen[key], "duplicate assignment %s in %q", key, input)
			seen[key] = true

			env := make(map[string]bool)
			for j, name := range vars {
				env[name] = row.Values[j]
			}
			want, err := Eval(expr, env)
			require.NoError(t, err)
			assert.Equal(t, want, row.Result)
		}
	}
}

func TestTableConstant(t *testing.T) {
	t.Parallel()
	table, err := NewTable(MustParse("true"), nil, DefaultMaxVariables)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, Tautology, table.Classify())

	table, err = NewTable(MustParse("false and true"), nil, DefaultMaxVariables)
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, Contradiction, table.Classify())
}

func TestTableVariableLimit(t *testing.T) {
	t.Parallel()
	names := make([]string, 21)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}
	expr := MustParse(strings.Join(names, " and "))

	table, err := NewTable(expr, Variables(expr), DefaultMaxVariables)
	require.Error(t, err)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrVariableLimitExceeded))
	assert.True(t, IsUserError(err))

	_, err = NewTable(MustParse("a or b or c"), []string{"a", "b", "c"}, 2)
	assert.True(t, errors.Is(err, ErrVariableLimitExceeded))
}

func TestEffectiveLimit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultMaxVariables, EffectiveLimit(0))
	assert.Equal(t, DefaultMaxVariables, EffectiveLimit(-3))
	assert.Equal(t, 5, EffectiveLimit(5))
	assert.Equal(t, HardMaxVariables, EffectiveLimit(64))
}

func TestEvalUnboundVariable(t *testing.T) {
	t.Parallel()
	_, err := Eval(MustParse("a and b"), map[string]bool{"a": true})
	require.Error(t, err)

	var ee *EvaluationError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, "b", ee.Var)
	assert.False(t, IsUserError(err))
}

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected Classification
	}{
		{"p or not p", Tautology},
		{"p and not p", Contradiction},
		{"p and q", Contingent},
		{"(p and q) or not p or not q", Tautology},
		{"p ⊕ p", Contradiction},
		{"True", Tautology},
		{"False", Contradiction},
	}

	for _, tt := range tests {
		expr := MustParse(tt.input)
		table, err := NewTable(expr, Variables(expr), DefaultMaxVariables)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, table.Classify(), tt.input)
		assert.Equal(t, tt.expected.String(), Classify(table.Results).String())
	}
}
