package types

import "go/token"

// Report is the outcome of analyzing one expression. Reports are what the
// engine hands to formatters, the cache and the CLI; they hold no engine
// types so they can be gob and JSON encoded.
type Report struct {
	// Source locates the expression when it was read from a file.
	Source         token.Position `json:"source,omitempty"`
	Expression     string         `json:"expression"`
	Variables      []string       `json:"variables"`
	Rows           []Row          `json:"rows,omitempty"`
	Classification string         `json:"classification,omitempty"`
	Minimized      string         `json:"minimized,omitempty"`
	// Error is set when the expression was rejected as user input. Rows,
	// Classification and Minimized are empty in that case.
	Error string `json:"error,omitempty"`
	// ErrorColumn is the 1-based rune column of a parse error inside
	// Expression, or 0 when the error has no position.
	ErrorColumn int `json:"error_column,omitempty"`
}

// Row is a truth table row as 0/1 values, in variable order.
type Row struct {
	Values []int `json:"values"`
	Result int   `json:"result"`
}

// Failed reports whether the expression was rejected.
func (r Report) Failed() bool {
	return r.Error != ""
}

// Location renders file:line for reports that came from a file.
func (r Report) Location() string {
	if r.Source.Filename == "" {
		return ""
	}
	return r.Source.String()
}

// Comparison is the outcome of checking two expressions for equivalence.
type Comparison struct {
	Left       string   `json:"left"`
	Right      string   `json:"right"`
	Variables  []string `json:"variables"`
	Equivalent bool     `json:"equivalent"`
	// Counterexample is the first assignment on which the two differ.
	// Its Result is the left expression's value.
	Counterexample *Row `json:"counterexample,omitempty"`
}
