package boolean

import (
	"fmt"
	"strings"
)

// Notation selects the connective spelling used by Format.
type Notation int

const (
	// NotationText spells connectives as keywords: not, and, or.
	NotationText Notation = iota
	// NotationSymbolic uses ¬, ∧, ∨.
	NotationSymbolic
)

func (n Notation) String() string {
	switch n {
	case NotationText:
		return "text"
	case NotationSymbolic:
		return "symbolic"
	default:
		return "?"
	}
}

// ParseNotation converts a configuration value into a Notation.
// The empty string selects NotationText.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "ascii":
		return NotationText, nil
	case "symbolic", "symbol", "unicode":
		return NotationSymbolic, nil
	default:
		return NotationText, fmt.Errorf("unknown notation %q", s)
	}
}

// binding strength, higher binds tighter
const (
	precOr = iota + 1
	precXor
	precAnd
	precNot
	precAtom
)

func precedence(e Expr) int {
	switch e.(type) {
	case Or:
		return precOr
	case Xor:
		return precXor
	case And:
		return precAnd
	case Not:
		return precNot
	default:
		return precAtom
	}
}

// Format renders e in the given notation, adding parentheses only where the
// tree shape differs from what precedence and left associativity would
// produce. The output parses back to an identical tree.
func Format(e Expr, n Notation) string {
	var sb strings.Builder
	writeExpr(&sb, e, n)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr, n Notation) {
	switch e := e.(type) {
	case Var:
		sb.WriteString(e.Name)
	case Const:
		if e.Val {
			sb.WriteString("True")
		} else {
			sb.WriteString("False")
		}
	case Not:
		if n == NotationSymbolic {
			sb.WriteString("¬")
		} else {
			sb.WriteString("not ")
		}
		writeOperand(sb, e.X, n, precedence(e.X) < precNot)
	case And:
		writeBinary(sb, e.L, e.R, precAnd, n, "and", "∧")
	case Xor:
		writeBinary(sb, e.L, e.R, precXor, n, "⊕", "⊕")
	case Or:
		writeBinary(sb, e.L, e.R, precOr, n, "or", "∨")
	}
}

func writeBinary(sb *strings.Builder, l, r Expr, prec int, n Notation, text, symbol string) {
	writeOperand(sb, l, n, precedence(l) < prec)
	sb.WriteByte(' ')
	if n == NotationSymbolic {
		sb.WriteString(symbol)
	} else {
		sb.WriteString(text)
	}
	sb.WriteByte(' ')
	// right operands of equal precedence need parentheses to keep the tree
	// shape, since all binary connectives associate to the left
	writeOperand(sb, r, n, precedence(r) <= prec)
}

func writeOperand(sb *strings.Builder, e Expr, n Notation, paren bool) {
	if paren {
		sb.WriteByte('(')
	}
	writeExpr(sb, e, n)
	if paren {
		sb.WriteByte(')')
	}
}
