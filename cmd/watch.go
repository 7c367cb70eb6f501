package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/tlogic/formatter"
	"github.com/gnolang/tlogic/internal"
	tt "github.com/gnolang/tlogic/internal/types"
)

var watchTable bool

var watchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Re-analyze expression files whenever they change",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		engine, err := newEngine(cfgFile, false, logger)
		if err != nil {
			logger.Fatal("Failed to initialize engine", zap.Error(err))
		}

		if err := runWatch(ctx, logger, engine, cmd.OutOrStdout(), args, watchTable); err != nil {
			logger.Error("Error watching files", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	watchCmd.Flags().BoolVarP(&watchTable, "table", "t", false, "Include truth tables")
}

// runWatch prints the current reports of every file, then prints fresh ones
// on each change until ctx is done.
func runWatch(
	ctx context.Context,
	logger *zap.Logger,
	engine *internal.Engine,
	stdout io.Writer,
	files []string,
	showTable bool,
) error {
	var mu sync.Mutex
	show := func(filename string, reports []tt.Report) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(stdout, "== %s\n", filename)
		fmt.Fprint(stdout, formatter.GenerateFormattedReport(reports, formatter.Options{ShowTable: showTable}))
	}

	if err := engine.StartWatching(files, show); err != nil {
		return err
	}
	logger.Info("Watching for changes", zap.Strings("files", files))

	for _, f := range files {
		reports, err := engine.Run(f)
		if err != nil {
			_ = engine.StopWatching()
			return err
		}
		show(f, reports)
	}

	<-ctx.Done()
	return engine.StopWatching()
}
