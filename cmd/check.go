package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/formatter"
	"github.com/gnolang/tlogic/logic"
)

var expectClass string

var checkCmd = &cobra.Command{
	Use:   "check EXPR...",
	Short: "Classify expressions as Tautology, Contradiction or Contingent",
	Long: `Prints the classification of each expression. With --expect the command
exits with status 1 unless every expression has the expected class; a bare
--expect asks for tautologies.

Example) tlogic check "p or not p" --expect`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine(cfgFile, false, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		ok, err := runCheck(ctx, logger, engine, cmd.OutOrStdout(), args, expectClass)
		if err != nil {
			logger.Error("Error checking expressions", zap.Error(err))
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&expectClass, "expect", "", "Fail unless every expression has this class (tautology, contradiction, contingent)")
	checkCmd.Flags().Lookup("expect").NoOptDefVal = "tautology"
}

// normalizeClass maps user spellings onto the engine's class names.
func normalizeClass(class string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "":
		return "", nil
	case "tautology", "valid":
		return formatter.Tautology, nil
	case "contradiction", "unsatisfiable":
		return formatter.Contradiction, nil
	case "contingent", "contingency":
		return formatter.Contingent, nil
	default:
		return "", fmt.Errorf("unknown classification %q", class)
	}
}

// runCheck prints one line per expression. ok is false when an expression
// was rejected or, with expect set, has another class.
func runCheck(
	ctx context.Context,
	logger *zap.Logger,
	engine logic.LogicEngine,
	stdout io.Writer,
	expressions []string,
	expect string,
) (bool, error) {
	want, err := normalizeClass(expect)
	if err != nil {
		return false, err
	}

	reports, err := logic.AnalyzeExpressions(ctx, logger, engine, expressions)
	if err != nil {
		return false, err
	}

	ok := true
	for _, r := range reports {
		if r.Failed() {
			fmt.Fprintf(stdout, "%s: error: %s\n", r.Expression, r.Error)
			ok = false
			continue
		}
		fmt.Fprintf(stdout, "%s: %s\n", r.Expression, r.Classification)
		if want != "" && r.Classification != want {
			ok = false
		}
	}
	return ok, nil
}
