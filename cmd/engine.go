package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/gnolang/tlogic/internal"
	"github.com/gnolang/tlogic/internal/boolean"
	tt "github.com/gnolang/tlogic/internal/types"
	"github.com/gnolang/tlogic/logic"
)

// cacheClearer is implemented by engines that keep a file report cache.
type cacheClearer interface {
	ClearCache() error
}

// newEngine builds an engine from the --config file. symbolic overrides the
// configured notation.
func newEngine(configPath string, symbolic bool, logger *zap.Logger) (*internal.Engine, error) {
	config, err := logic.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if symbolic {
		config.Notation = boolean.NotationSymbolic.String()
	}
	return logic.NewFromConfig(config, configPath, logger)
}

// withOutput runs write against stdout, or against the file at path when
// one is given.
func withOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func hasRejected(reports []tt.Report) bool {
	for _, r := range reports {
		if r.Failed() {
			return true
		}
	}
	return false
}
