// Package internal drives the boolean analysis engine over expressions and
// expression files.
//
// Key components:
//
// Engine: runs parse, enumerate, classify and minimize for single
// expressions (Analyze), for every expression of a file (Run, RunSource)
// and for pairs of expressions (Equivalent, Compare). Rejected input is
// recorded on the report instead of being returned as an error.
//
// Cache: persists the reports of expression files with encoding/gob,
// keyed by file content and the analyzer settings.
//
// Watch: re-analyzes expression files when they change, using fsnotify.
//
// Usage:
//
//	engine, err := internal.NewEngine(boolean.DefaultConfig(), logger)
//	if err != nil {
//	    // handle error
//	}
//	reports, err := engine.Run("circuits.logic")
package internal
