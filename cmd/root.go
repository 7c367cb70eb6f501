package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/logic"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:              "tlogic [expressions...]",
	Short:            "tlogic - truth tables, classification and minimization of boolean expressions",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: tlogic [expr1 expr2 ...] => behaves like the analyze subcommand
		analyzeCmd.Run(analyzeCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", logic.DefaultConfigFile, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Give up after this long")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable development logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(minimizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(equivCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
}
