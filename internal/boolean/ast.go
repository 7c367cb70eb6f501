package boolean

// Expr is a node of a boolean expression tree. Trees are immutable once
// built and never share subtrees with other expressions.
type Expr interface {
	isExpr()
	String() string
}

var (
	_ Expr = Var{}
	_ Expr = Const{}
	_ Expr = Not{}
	_ Expr = And{}
	_ Expr = Or{}
	_ Expr = Xor{}
)

// Var represents a variable reference.
type Var struct {
	Name string
}

// Const represents the constants true and false.
type Const struct {
	Val bool
}

// Not represents logical negation.
type Not struct {
	X Expr
}

// And represents conjunction.
type And struct {
	L, R Expr
}

// Or represents disjunction.
type Or struct {
	L, R Expr
}

// Xor represents exclusive disjunction.
type Xor struct {
	L, R Expr
}

func (Var) isExpr()   {}
func (Const) isExpr() {}
func (Not) isExpr()   {}
func (And) isExpr()   {}
func (Or) isExpr()    {}
func (Xor) isExpr()   {}

func (e Var) String() string   { return Format(e, NotationText) }
func (e Const) String() string { return Format(e, NotationText) }
func (e Not) String() string   { return Format(e, NotationText) }
func (e And) String() string   { return Format(e, NotationText) }
func (e Or) String() string    { return Format(e, NotationText) }
func (e Xor) String() string   { return Format(e, NotationText) }

// conj and disj fold products and sums left to right. A nil accumulator
// means the fold has not started yet.
func conj(acc, x Expr) Expr {
	if acc == nil {
		return x
	}
	return And{L: acc, R: x}
}

func disj(acc, x Expr) Expr {
	if acc == nil {
		return x
	}
	return Or{L: acc, R: x}
}
