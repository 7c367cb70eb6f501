package logic

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/tlogic/internal"
	tt "github.com/gnolang/tlogic/internal/types"
)

// LogicEngine is the part of the analysis engine the batch drivers need.
type LogicEngine interface {
	Analyze(ctx context.Context, expression string) (tt.Report, error)
	Run(filePath string) ([]tt.Report, error)
	RunSource(source []byte) ([]tt.Report, error)
}

// New builds an engine from the configuration file at configurationPath.
// A missing file selects the defaults.
func New(configurationPath string, logger *zap.Logger) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(config, configurationPath, logger)
}

// NewFromConfig builds an engine from an already loaded configuration.
// configurationPath, when it names an existing file, becomes a cache
// dependency so that editing the configuration drops cached reports.
func NewFromConfig(config Config, configurationPath string, logger *zap.Logger) (*internal.Engine, error) {
	analyzerConfig, err := config.AnalyzerConfig()
	if err != nil {
		return nil, err
	}

	engine, err := internal.NewEngine(analyzerConfig, logger)
	if err != nil {
		return nil, err
	}

	if config.CacheDir == "" {
		return engine, nil
	}

	cache, err := internal.NewCache(config.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("error opening cache: %w", err)
	}
	cache.SetFingerprint(config.Fingerprint())
	if config.CacheMaxAge > 0 {
		cache.SetMaxAge(config.CacheMaxAge)
	}
	if configurationPath != "" {
		if _, err := os.Stat(configurationPath); err == nil {
			if err := cache.AddDependency(configurationPath); err != nil {
				return nil, fmt.Errorf("error tracking %s: %w", configurationPath, err)
			}
		}
	}
	engine.UseCache(cache)

	return engine, nil
}

// AnalyzeExpressions analyzes each expression in order. It stops at the
// first engine failure or when ctx is done, including in the middle of a
// long analysis.
func AnalyzeExpressions(
	ctx context.Context,
	logger *zap.Logger,
	engine LogicEngine,
	expressions []string,
) ([]tt.Report, error) {
	reports := make([]tt.Report, 0, len(expressions))
	for i, expression := range expressions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, err := engine.Analyze(ctx, expression)
		if err != nil {
			if logger != nil {
				logger.Error("Error analyzing expression", zap.Int("index", i), zap.Error(err))
			}
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LogicEngine,
	sources [][]byte,
	processor func(LogicEngine, []byte) ([]tt.Report, error),
) ([]tt.Report, error) {
	var allReports []tt.Report
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reports, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allReports = append(allReports, reports...)
	}

	return allReports, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LogicEngine,
	paths []string,
	processor func(LogicEngine, string) ([]tt.Report, error),
) ([]tt.Report, error) {
	var allReports []tt.Report
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allReports = append(allReports, reports...)
	}

	return allReports, nil
}

// ProcessPath analyzes path, or every expression file below it when it is a
// directory. Files are processed concurrently; reports come back in file
// name order. A file that fails is logged and skipped.
//
// Directory walks only pick up .logic and .bool files. A file named
// directly is analyzed whatever its extension, with a warning.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LogicEngine,
	path string,
	processor func(LogicEngine, string) ([]tt.Report, error),
) ([]tt.Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) && logger != nil {
			logger.Warn("Analyzing file without a .logic or .bool extension", zap.String("file", path))
		}
		return processor(engine, path)
	}

	files, err := collectFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	// one slot per file keeps the output order independent of scheduling
	results := make([][]tt.Report, len(files))

	// limit the number of workers
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for i, filePath := range files {
		if err := ctx.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}

		i, filePath := i, filePath
		g.Go(func() error {
			defer func() { _ = bar.Add(1) }()

			fileReports, err := processor(engine, filePath)
			if err != nil {
				// broken files are logged and skipped
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", filePath), zap.Error(err))
				}
				return nil
			}
			results[i] = fileReports
			return nil
		})
	}

	_ = g.Wait()
	_ = bar.Finish()

	var reports []tt.Report
	for _, r := range results {
		reports = append(reports, r...)
	}
	return reports, nil
}

// collectFiles lists expression files below root in lexical order.
func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return nil
			}
			return err
		}
		if !d.IsDir() && hasDesiredExtension(filePath) {
			files = append(files, filePath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	return files, nil
}

func ProcessFile(engine LogicEngine, filePath string) ([]tt.Report, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine LogicEngine, source []byte) ([]tt.Report, error) {
	return engine.RunSource(source)
}

var desiredExtensions = map[string]bool{
	".logic": true,
	".bool":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}
