package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/formatter"
	tt "github.com/gnolang/tlogic/internal/types"
	"github.com/gnolang/tlogic/logic"
)

var (
	analyzeFiles    []string
	analyzeJSON     bool
	analyzeCSV      bool
	analyzeTable    bool
	analyzeSymbolic bool
	analyzeClear    bool
	outPath         string
)

type outputOptions struct {
	json       bool
	csv        bool
	table      bool
	clearCache bool
	outPath    string
}

var errCSVSingleReport = errors.New("CSV output needs exactly one expression")

var analyzeCmd = &cobra.Command{
	Use:   "analyze [expressions...]",
	Short: "Analyze expressions and expression files",
	Long: `Builds the truth table of each expression, classifies it and prints its
minimal sum-of-products form. Expression files hold one expression per line;
'#' starts a comment.

Example) tlogic analyze "a and (b or not a)" --file circuits.logic`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && len(analyzeFiles) == 0 {
			fmt.Println("error: Please provide expressions or --file paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(cfgFile, analyzeSymbolic, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		opts := outputOptions{
			json:       analyzeJSON,
			csv:        analyzeCSV,
			table:      analyzeTable,
			clearCache: analyzeClear,
			outPath:    outPath,
		}
		clean, err := runAnalyze(ctx, logger, engine, cmd.OutOrStdout(), args, analyzeFiles, opts)
		if err != nil {
			logger.Error("Error analyzing expressions", zap.Error(err))
			os.Exit(1)
		}
		if !clean {
			os.Exit(1)
		}
	},
}

func init() {
	analyzeCmd.Flags().StringSliceVarP(&analyzeFiles, "file", "f", nil, "Expression files or directories to analyze")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output reports in JSON format")
	analyzeCmd.Flags().BoolVar(&analyzeCSV, "csv", false, "Output the truth table as CSV (single expression)")
	analyzeCmd.Flags().BoolVarP(&analyzeTable, "table", "t", false, "Include the truth table")
	analyzeCmd.Flags().BoolVar(&analyzeSymbolic, "symbolic", false, "Render minimized forms with ¬ ∧ ∨")
	analyzeCmd.Flags().BoolVar(&analyzeClear, "clear-cache", false, "Drop cached file reports before analyzing")
	analyzeCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path")
}

// runAnalyze analyzes the expressions, then the files, and writes the
// reports. clean is false when any expression was rejected. With
// opts.clearCache, an engine that caches file reports starts empty.
func runAnalyze(
	ctx context.Context,
	logger *zap.Logger,
	engine logic.LogicEngine,
	stdout io.Writer,
	expressions []string,
	paths []string,
	opts outputOptions,
) (clean bool, err error) {
	if opts.clearCache {
		if c, ok := engine.(cacheClearer); ok {
			if err := c.ClearCache(); err != nil {
				return false, err
			}
		}
	}

	reports, err := logic.AnalyzeExpressions(ctx, logger, engine, expressions)
	if err != nil {
		return false, err
	}

	if len(paths) > 0 {
		fileReports, err := logic.ProcessFiles(ctx, logger, engine, paths, logic.ProcessFile)
		if err != nil {
			return false, err
		}
		reports = append(reports, fileReports...)
	}

	if err := withOutput(stdout, opts.outPath, func(w io.Writer) error {
		return writeReports(w, reports, opts)
	}); err != nil {
		return false, err
	}

	return !hasRejected(reports), nil
}

func writeReports(w io.Writer, reports []tt.Report, opts outputOptions) error {
	switch {
	case opts.csv:
		if len(reports) != 1 {
			return errCSVSingleReport
		}
		return formatter.WriteCSV(w, reports[0])
	case opts.json:
		return formatter.WriteJSON(w, reports, opts.table)
	default:
		_, err := io.WriteString(w, formatter.GenerateFormattedReport(reports, formatter.Options{ShowTable: opts.table}))
		return err
	}
}
