package boolean

// TokenType defines the kinds of tokens produced by the lexer.
type TokenType int

const (
	TokenIdent  TokenType = iota // variable name
	TokenTrue                    // true, True
	TokenFalse                   // false, False
	TokenNot                     // not, ¬, ~, !
	TokenAnd                     // and, ∧, ^, &
	TokenXor                     // ⊕
	TokenOr                      // or, ∨, |
	TokenLParen                  // '('
	TokenRParen                  // ')'
	TokenEOF                     // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenNot:
		return "not"
	case TokenAnd:
		return "and"
	case TokenXor:
		return "xor"
	case TokenOr:
		return "or"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType // type of this token
	Value    string    // the literal text as it appeared in the input
	Position int       // byte offset into the input
}

// keywords maps reserved words to their token types. Only whole
// identifiers are looked up, so "android" or "notes" stay variables.
var keywords = map[string]TokenType{
	"and":   TokenAnd,
	"or":    TokenOr,
	"not":   TokenNot,
	"true":  TokenTrue,
	"false": TokenFalse,
	"True":  TokenTrue,
	"False": TokenFalse,
}

// symbols holds the single-rune operator aliases.
var symbols = map[rune]TokenType{
	'(': TokenLParen,
	')': TokenRParen,
	'^': TokenAnd,
	'&': TokenAnd,
	'∧': TokenAnd,
	'|': TokenOr,
	'∨': TokenOr,
	'~': TokenNot,
	'!': TokenNot,
	'¬': TokenNot,
	'⊕': TokenXor,
}
