package boolean

// Parser consumes tokens produced by the lexer and builds an Expr.
//
// Grammar, from lowest to highest precedence:
//
//	or    := xor ( OR xor )*
//	xor   := and ( XOR and )*
//	and   := unary ( AND unary )*
//	unary := NOT unary | primary
//	primary := IDENT | TRUE | FALSE | '(' or ')'
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse tokenizes and parses input. It never repairs input: any syntax
// problem aborts with a *ParseError and no tree.
func Parse(input string) (Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(input string) Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// Parse processes all tokens and builds the expression tree.
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, &ParseError{Pos: p.peek().Position, Msg: "empty expression"}
	}

	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	// everything must be consumed
	if tok := p.peek(); tok.Type != TokenEOF {
		if tok.Type == TokenRParen {
			return nil, &ParseError{Pos: tok.Position, Fragment: tok.Value, Msg: "unbalanced parenthesis"}
		}
		return nil, &ParseError{Pos: tok.Position, Fragment: tok.Value, Msg: "unexpected " + tok.Type.String()}
	}
	return expr, nil
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenOr {
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseXor() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenXor {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Xor{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == TokenAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Type == TokenNot {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{X: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.advance()
	switch tok.Type {
	case TokenIdent:
		return Var{Name: tok.Value}, nil
	case TokenTrue:
		return Const{Val: true}, nil
	case TokenFalse:
		return Const{Val: false}, nil
	case TokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing := p.advance()
		if closing.Type != TokenRParen {
			return nil, &ParseError{
				Pos:      tok.Position,
				Fragment: tok.Value,
				Msg:      "unbalanced parenthesis: expected ) but found " + closing.Type.String(),
			}
		}
		return inner, nil
	case TokenEOF:
		return nil, &ParseError{Pos: tok.Position, Msg: "missing operand at end of input"}
	default:
		return nil, &ParseError{
			Pos:      tok.Position,
			Fragment: tok.Value,
			Msg:      "missing operand before " + tok.Type.String(),
		}
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: p.endPosition()}
	}
	return p.tokens[p.current]
}

// advance consumes and returns the current token. It sticks at EOF.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens) && tok.Type != TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) endPosition() int {
	if len(p.tokens) == 0 {
		return 0
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Position + len(last.Value)
}
