package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/internal/boolean"
	tt "github.com/gnolang/tlogic/internal/types"
)

var equivJSON bool

// comparer is the part of the engine equiv needs.
type comparer interface {
	Compare(a, b string) (tt.Comparison, error)
}

var equivCmd = &cobra.Command{
	Use:   "equiv A B",
	Short: "Check whether two expressions have the same truth table",
	Long: `Compares the truth tables of A and B over the union of their variables.
Exits with status 1 and prints a distinguishing assignment when they differ.

Example) tlogic equiv "not (a and b)" "not a or not b"`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := newEngine(cfgFile, false, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		equivalent, err := runEquiv(engine, cmd.OutOrStdout(), args[0], args[1], equivJSON)
		if err != nil {
			if boolean.IsUserError(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
			} else {
				logger.Error("Error comparing expressions", zap.Error(err))
			}
			os.Exit(1)
		}
		if !equivalent {
			os.Exit(1)
		}
	},
}

func init() {
	equivCmd.Flags().BoolVar(&equivJSON, "json", false, "Output the comparison in JSON format")
}

func runEquiv(engine comparer, stdout io.Writer, a, b string, asJSON bool) (bool, error) {
	cmp, err := engine.Compare(a, b)
	if err != nil {
		return false, err
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return cmp.Equivalent, enc.Encode(cmp)
	}

	if cmp.Equivalent {
		fmt.Fprintln(stdout, "equivalent")
		return true, nil
	}

	fmt.Fprintln(stdout, "not equivalent")
	if ce := cmp.Counterexample; ce != nil {
		assignment := make([]string, len(cmp.Variables))
		for i, v := range cmp.Variables {
			assignment[i] = fmt.Sprintf("%s=%d", v, ce.Values[i])
		}
		fmt.Fprintf(stdout, "  counterexample: %s\n", strings.Join(assignment, " "))
		fmt.Fprintf(stdout, "  %s = %d\n", a, ce.Result)
		fmt.Fprintf(stdout, "  %s = %d\n", b, 1-ce.Result)
	}
	return false, nil
}
