package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/logic"
)

var minimizeSymbolic bool

var minimizeCmd = &cobra.Command{
	Use:   "minimize EXPR...",
	Short: "Print the minimal sum-of-products form of each expression",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(cfgFile, minimizeSymbolic, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		clean, err := runMinimize(ctx, logger, engine, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		if err != nil {
			logger.Error("Error minimizing expressions", zap.Error(err))
			os.Exit(1)
		}
		if !clean {
			os.Exit(1)
		}
	},
}

func init() {
	minimizeCmd.Flags().BoolVar(&minimizeSymbolic, "symbolic", false, "Render with ¬ ∧ ∨")
}

func runMinimize(
	ctx context.Context,
	logger *zap.Logger,
	engine logic.LogicEngine,
	stdout, stderr io.Writer,
	expressions []string,
) (bool, error) {
	reports, err := logic.AnalyzeExpressions(ctx, logger, engine, expressions)
	if err != nil {
		return false, err
	}

	for _, r := range reports {
		if r.Failed() {
			fmt.Fprintf(stderr, "error: %s: %s\n", r.Expression, r.Error)
			continue
		}
		fmt.Fprintln(stdout, r.Minimized)
	}
	return !hasRejected(reports), nil
}
