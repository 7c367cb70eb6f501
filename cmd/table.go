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
	"github.com/gnolang/tlogic/logic"
)

var tableOutput string

var tableCmd = &cobra.Command{
	Use:   "table EXPR",
	Short: "Write the truth table of an expression as CSV",
	Long: `Writes one header line with the variable names followed by RESULT, then
one 0/1 line per assignment.

Example) tlogic table "a ⊕ b" -o truth_table.csv`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(cfgFile, false, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		if err := runTable(ctx, engine, cmd.OutOrStdout(), args[0], tableOutput); err != nil {
			var rejected *rejectedError
			if errors.As(err, &rejected) {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", rejected.msg)
			} else {
				logger.Error("Error writing truth table", zap.Error(err))
			}
			os.Exit(1)
		}
	},
}

func init() {
	tableCmd.Flags().StringVarP(&tableOutput, "output", "o", "", "Output path for the CSV file")
}

// rejectedError carries the engine's message for an expression it refused.
type rejectedError struct {
	msg string
}

func (e *rejectedError) Error() string {
	return e.msg
}

func runTable(ctx context.Context, engine logic.LogicEngine, stdout io.Writer, expression string, out string) error {
	report, err := engine.Analyze(ctx, expression)
	if err != nil {
		return err
	}
	if report.Failed() {
		return &rejectedError{msg: report.Error}
	}

	return withOutput(stdout, out, func(w io.Writer) error {
		return formatter.WriteCSV(w, report)
	})
}
