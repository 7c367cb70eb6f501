package boolean

import (
	"context"
	"fmt"
)

// Config holds the tunables of an Analyzer.
type Config struct {
	// MaxVariables is the variable ceiling; see EffectiveLimit.
	MaxVariables int
	// Notation controls how minimized expressions are rendered.
	Notation Notation
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{
		MaxVariables: DefaultMaxVariables,
		Notation:     NotationText,
	}
}

// Analysis is the full result of analyzing one expression.
type Analysis struct {
	Input     string
	Expr      Expr
	Vars      []string
	Table     *Table
	Class     Classification
	Minimized Expr
	// MinimizedText is Minimized rendered in the analyzer's notation.
	MinimizedText string
}

// Analyzer runs the parse, extract, enumerate, classify and minimize
// pipeline. It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	config Config
}

// New creates a new Analyzer with default configuration.
func New() *Analyzer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new Analyzer with the given configuration.
func NewWithConfig(config Config) *Analyzer {
	config.MaxVariables = EffectiveLimit(config.MaxVariables)
	return &Analyzer{config: config}
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config {
	return a.config
}

// Analyze parses input and computes its variables, truth table,
// classification and minimized form.
//
// User mistakes come back as *ParseError, ErrVariableLimitExceeded or
// ErrTooComplex. Any other error is an engine defect.
func (a *Analyzer) Analyze(input string) (*Analysis, error) {
	return a.AnalyzeContext(context.Background(), input)
}

// AnalyzeContext is Analyze with cancellation. Enumeration and minimization
// both stop once ctx is done, returning ctx.Err().
func (a *Analyzer) AnalyzeContext(ctx context.Context, input string) (*Analysis, error) {
	expr, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeExprContext(ctx, input, expr)
}

// AnalyzeExpr runs the pipeline on an already parsed expression.
func (a *Analyzer) AnalyzeExpr(input string, expr Expr) (*Analysis, error) {
	return a.AnalyzeExprContext(context.Background(), input, expr)
}

// AnalyzeExprContext is AnalyzeExpr with cancellation.
func (a *Analyzer) AnalyzeExprContext(ctx context.Context, input string, expr Expr) (*Analysis, error) {
	vars := Variables(expr)
	table, err := NewTableContext(ctx, expr, vars, a.config.MaxVariables)
	if err != nil {
		return nil, err
	}

	minimized, err := MinimizeTableContext(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("minimizing %q: %w", input, err)
	}

	return &Analysis{
		Input:         input,
		Expr:          expr,
		Vars:          vars,
		Table:         table,
		Class:         table.Classify(),
		Minimized:     minimized,
		MinimizedText: Format(minimized, a.config.Notation),
	}, nil
}

// Equivalent parses both inputs and compares their truth tables.
func (a *Analyzer) Equivalent(x, y string) (bool, error) {
	ex, err := Parse(x)
	if err != nil {
		return false, err
	}
	ey, err := Parse(y)
	if err != nil {
		return false, err
	}
	return Equivalent(ex, ey, a.config.MaxVariables)
}

// Comparison is the outcome of comparing two expressions.
type Comparison struct {
	// Vars is the sorted union of both expressions' variables.
	Vars       []string
	Equivalent bool
	// Witness is the first assignment, over Vars, on which the expressions
	// disagree. Witness.Result is the left expression's value. It is the
	// zero Row when Equivalent is set.
	Witness Row
}

// Compare parses both inputs and looks for an assignment that tells them
// apart.
func (a *Analyzer) Compare(x, y string) (*Comparison, error) {
	ex, err := Parse(x)
	if err != nil {
		return nil, err
	}
	ey, err := Parse(y)
	if err != nil {
		return nil, err
	}
	row, differ, err := Counterexample(ex, ey, a.config.MaxVariables)
	if err != nil {
		return nil, err
	}
	return &Comparison{
		Vars:       unionVars(Variables(ex), Variables(ey)),
		Equivalent: !differ,
		Witness:    row,
	}, nil
}

// Analyze runs the pipeline with the default configuration.
func Analyze(input string) (*Analysis, error) {
	return New().Analyze(input)
}
