package internal

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/internal/boolean"
	tt "github.com/gnolang/tlogic/internal/types"
)

// Engine drives the analysis pipeline over single expressions and over
// expression files. Files hold one expression per line; blank lines and
// anything after a '#' are ignored.
type Engine struct {
	analyzer *boolean.Analyzer
	logger   *zap.Logger
	cache    *Cache

	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	isWatching bool
	onReports  ReportHandler
}

// NewEngine creates a new analysis engine. A nil logger discards logs.
func NewEngine(config boolean.Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		analyzer: boolean.NewWithConfig(config),
		logger:   logger,
	}, nil
}

// UseCache makes Run consult and fill c.
func (e *Engine) UseCache(c *Cache) {
	e.cache = c
}

// ClearCache drops every cached report. It is a no-op without a cache.
func (e *Engine) ClearCache() error {
	if e.cache == nil {
		return nil
	}
	if err := e.cache.InvalidateAll(); err != nil {
		return fmt.Errorf("error clearing cache: %w", err)
	}
	e.logger.Debug("Cache cleared")
	return nil
}

// Config returns the effective analyzer configuration.
func (e *Engine) Config() boolean.Config {
	return e.analyzer.Config()
}

// Analyze analyzes a single expression. Malformed input, oversized
// expressions and functions too complex to minimize are recorded on the
// report and are not errors. Otherwise a returned error is either ctx's
// error or an engine failure.
func (e *Engine) Analyze(ctx context.Context, expression string) (tt.Report, error) {
	report := tt.Report{Expression: expression}

	analysis, err := e.analyzer.AnalyzeContext(ctx, expression)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return report, err
		}
		if boolean.IsUserError(err) {
			report.Error = err.Error()
			var perr *boolean.ParseError
			if errors.As(err, &perr) {
				report.ErrorColumn = errorColumn(expression, perr.Pos)
			}
			if errors.Is(err, boolean.ErrVariableLimitExceeded) || errors.Is(err, boolean.ErrTooComplex) {
				if expr, perr := boolean.Parse(expression); perr == nil {
					report.Variables = boolean.Variables(expr)
				}
			}
			return report, nil
		}
		e.logger.Error("Internal analysis failure",
			zap.String("expression", expression), zap.Error(err))
		return report, fmt.Errorf("error analyzing %q: %w", expression, err)
	}

	return newReport(report, analysis), nil
}

// Equivalent reports whether two expressions have the same truth table.
func (e *Engine) Equivalent(a, b string) (bool, error) {
	return e.analyzer.Equivalent(a, b)
}

// Compare checks two expressions for equivalence and, when they differ,
// records the first distinguishing assignment.
func (e *Engine) Compare(a, b string) (tt.Comparison, error) {
	cmp, err := e.analyzer.Compare(a, b)
	if err != nil {
		return tt.Comparison{}, err
	}

	out := tt.Comparison{
		Left:       a,
		Right:      b,
		Variables:  cmp.Vars,
		Equivalent: cmp.Equivalent,
	}
	if !cmp.Equivalent {
		values := make([]int, len(cmp.Witness.Values))
		for i, v := range cmp.Witness.Values {
			values[i] = bit(v)
		}
		out.Counterexample = &tt.Row{Values: values, Result: bit(cmp.Witness.Result)}
	}
	return out, nil
}

// Run analyzes every expression in the given file.
func (e *Engine) Run(filename string) ([]tt.Report, error) {
	if e.cache != nil {
		if reports, ok := e.cache.Get(filename); ok {
			e.logger.Debug("Cache hit", zap.String("file", filename))
			return reports, nil
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	reports, err := e.run(filename, source)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(filename, reports); err != nil {
			e.logger.Warn("Failed to update cache", zap.String("file", filename), zap.Error(err))
		}
	}
	return reports, nil
}

// RunSource analyzes every expression in source.
func (e *Engine) RunSource(source []byte) ([]tt.Report, error) {
	return e.run("", source)
}

func (e *Engine) run(filename string, source []byte) ([]tt.Report, error) {
	var reports []tt.Report
	for _, line := range ReadExpressions(source) {
		report, err := e.Analyze(context.Background(), line.Text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, line.Line, err)
		}
		report.Source = token.Position{
			Filename: filename,
			Line:     line.Line,
			Column:   line.Column,
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ExpressionLine is one expression read from a source file.
type ExpressionLine struct {
	Text   string
	Line   int // 1-based
	Column int // 1-based, first non-blank byte
}

// ReadExpressions splits source into expressions, dropping comments and
// blank lines.
func ReadExpressions(source []byte) []ExpressionLine {
	var out []ExpressionLine
	for i, raw := range strings.Split(string(source), "\n") {
		if idx := strings.IndexByte(raw, '#'); idx >= 0 {
			raw = raw[:idx]
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		out = append(out, ExpressionLine{
			Text:   text,
			Line:   i + 1,
			Column: strings.Index(raw, text) + 1,
		})
	}
	return out
}

func newReport(report tt.Report, analysis *boolean.Analysis) tt.Report {
	report.Variables = analysis.Vars
	report.Classification = analysis.Class.String()
	report.Minimized = analysis.MinimizedText

	report.Rows = make([]tt.Row, analysis.Table.Len())
	for i := range report.Rows {
		row := analysis.Table.Row(i)
		values := make([]int, len(row.Values))
		for j, v := range row.Values {
			values[j] = bit(v)
		}
		report.Rows[i] = tt.Row{Values: values, Result: bit(row.Result)}
	}
	return report
}

// errorColumn converts a byte offset into a 1-based rune column.
func errorColumn(expression string, pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(expression) {
		pos = len(expression)
	}
	return utf8.RuneCountInString(expression[:pos]) + 1
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
