package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/internal/boolean"
	tt "github.com/gnolang/tlogic/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(boolean.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	return engine
}

func TestEngineAnalyze(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	report, err := engine.Analyze(context.Background(), "a and not b")
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, []string{"a", "b"}, report.Variables)
	assert.Equal(t, "Contingent", report.Classification)
	assert.Equal(t, "a and not b", report.Minimized)
	assert.Equal(t, []tt.Row{
		{Values: []int{0, 0}, Result: 0},
		{Values: []int{1, 0}, Result: 1},
		{Values: []int{0, 1}, Result: 0},
		{Values: []int{1, 1}, Result: 0},
	}, report.Rows)
}

func TestEngineAnalyzeUserErrors(t *testing.T) {
	t.Parallel()
	engine, err := NewEngine(boolean.Config{MaxVariables: 2}, nil)
	require.NoError(t, err)

	report, err := engine.Analyze(context.Background(), "p and")
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Contains(t, report.Error, "parse error")
	assert.Equal(t, 6, report.ErrorColumn)
	assert.Empty(t, report.Rows)

	report, err = engine.Analyze(context.Background(), "¬a $ b")
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Equal(t, 4, report.ErrorColumn)

	report, err = engine.Analyze(context.Background(), "a or b or c")
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Contains(t, report.Error, boolean.ErrVariableLimitExceeded.Error())
	assert.Equal(t, []string{"a", "b", "c"}, report.Variables)
	assert.Empty(t, report.Rows)
}

func TestReadExpressions(t *testing.T) {
	t.Parallel()
	source := []byte("# header comment\n\n  p and q  # trailing\nnot r\r\n   \n")
	lines := ReadExpressions(source)
	assert.Equal(t, []ExpressionLine{
		{Text: "p and q", Line: 3, Column: 3},
		{Text: "not r", Line: 4, Column: 1},
	}, lines)
}

func TestEngineRun(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "exprs.logic")
	content := strings.Join([]string{
		"p or not p",
		"# skipped",
		"p and (q",
		"(a and b) or (a and not b)",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reports, err := engine.Run(path)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, "Tautology", reports[0].Classification)
	assert.Equal(t, 1, reports[0].Source.Line)
	assert.Equal(t, path, reports[0].Source.Filename)

	assert.True(t, reports[1].Failed())
	assert.Equal(t, 3, reports[1].Source.Line)

	assert.Equal(t, "a", reports[2].Minimized)
	assert.Equal(t, 4, reports[2].Source.Line)
}

func TestEngineRunSource(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	reports, err := engine.RunSource([]byte("x ⊕ x\ntrue"))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Contradiction", reports[0].Classification)
	assert.Equal(t, "False", reports[0].Minimized)
	assert.Equal(t, "Tautology", reports[1].Classification)
	assert.Equal(t, []tt.Row{{Values: []int{}, Result: 1}}, reports[1].Rows)
	assert.Empty(t, reports[1].Location())
}

func TestEngineRunMissingFile(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	_, err := engine.Run(filepath.Join(t.TempDir(), "missing.logic"))
	assert.Error(t, err)
}

func TestEngineRunUsesCache(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	dir := t.TempDir()

	cache, err := NewCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	engine.UseCache(cache)

	path := filepath.Join(dir, "exprs.logic")
	require.NoError(t, os.WriteFile(path, []byte("a or b\n"), 0o644))

	first, err := engine.Run(path)
	require.NoError(t, err)

	cached, ok := cache.Get(path)
	require.True(t, ok)
	assert.Equal(t, first, cached)

	second, err := engine.Run(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, engine.ClearCache())
	_, ok = cache.Get(path)
	assert.False(t, ok)
}

func TestEngineClearCacheWithoutCache(t *testing.T) {
	t.Parallel()
	assert.NoError(t, newTestEngine(t).ClearCache())
}

func TestEngineAnalyzeTooComplex(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	names := make([]string, boolean.DefaultMaxVariables)
	for i := range names {
		names[i] = fmt.Sprintf("x%02d", i)
	}
	report, err := engine.Analyze(context.Background(), strings.Join(names, " or "))
	require.NoError(t, err)
	assert.True(t, report.Failed())
	assert.Contains(t, report.Error, boolean.ErrTooComplex.Error())
	assert.Equal(t, names, report.Variables)
	assert.Empty(t, report.Rows)
}

func TestEngineAnalyzeCancelled(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.Analyze(ctx, "a and b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, report.Failed())
}

func TestEngineEquivalent(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)
	ok, err := engine.Equivalent("not (a or b)", "not a and not b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEngineCompare(t *testing.T) {
	t.Parallel()
	engine := newTestEngine(t)

	cmp, err := engine.Compare("a or b", "a and b")
	require.NoError(t, err)
	assert.False(t, cmp.Equivalent)
	assert.Equal(t, []string{"a", "b"}, cmp.Variables)
	require.NotNil(t, cmp.Counterexample)
	assert.Equal(t, tt.Row{Values: []int{1, 0}, Result: 1}, *cmp.Counterexample)

	cmp, err = engine.Compare("a", "not not a")
	require.NoError(t, err)
	assert.True(t, cmp.Equivalent)
	assert.Nil(t, cmp.Counterexample)

	_, err = engine.Compare("(", "a")
	assert.True(t, boolean.IsUserError(err))
}
