package boolean

import (
	"unicode"
	"unicode/utf8"
)

// Lexer scans an expression string and produces tokens. Operator aliases are
// normalized here, at token level, so identifiers that merely contain a
// keyword are never rewritten.
type Lexer struct {
	input    string // the entire input to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF. An unrecognized character yields a *ParseError.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		switch {
		case unicode.IsSpace(r):
			l.position += size

		case isIdentStart(r):
			l.lexIdent()

		default:
			typ, ok := symbols[r]
			if !ok {
				return nil, &ParseError{
					Pos:      l.position,
					Fragment: string(r),
					Msg:      "unrecognized character",
				}
			}
			l.addToken(typ, l.input[l.position:l.position+size], l.position)
			l.position += size
		}
	}

	// At the end, add an EOF token to indicate we're done.
	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexIdent scans an identifier and classifies it as a keyword or variable.
func (l *Lexer) lexIdent() {
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	word := l.input[start:l.position]
	if typ, ok := keywords[word]; ok {
		l.addToken(typ, word, start)
		return
	}
	l.addToken(TokenIdent, word, start)
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
