// Package boolean implements a propositional-logic analysis engine.
//
// An expression string is lexed and parsed into an explicit AST, its free
// variables are extracted in canonical (sorted) order, every assignment of
// those variables is enumerated into a truth table, and the table is then
// classified and minimized into a sum-of-products expression using the
// Quine-McCluskey algorithm.
//
// Supported syntax:
//   - identifiers: [A-Za-z_][A-Za-z0-9_]*
//   - constants: true, false, True, False
//   - negation: not, ¬, ~, !
//   - conjunction: and, ∧, ^, &
//   - exclusive or: ⊕
//   - disjunction: or, ∨, |
//
// Precedence from highest to lowest is not, and, ⊕, or. Parentheses group.
//
// Everything in this package is a pure function of its inputs. Analyses may
// run concurrently without synchronization.
package boolean
