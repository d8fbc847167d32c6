package expr

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenNumber is a numeric literal; the raw text is kept so the
	// evaluator can report the exact literal when parsing fails.
	TokenNumber TokenKind = iota
	// TokenOperator is a registered operator symbol.
	TokenOperator
	// TokenOpenParen is "(".
	TokenOpenParen
	// TokenCloseParen is ")".
	TokenCloseParen
	// TokenLexError marks an input the lexer could not tokenize; the
	// offending character is carried in Text.
	TokenLexError
)

// String returns a short name for the token kind, used in error
// messages and test output.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOperator:
		return "operator"
	case TokenOpenParen:
		return "open-paren"
	case TokenCloseParen:
		return "close-paren"
	case TokenLexError:
		return "lex-error"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit produced by Tokenize. Tokens are
// immutable once produced and consumed in the order they were
// emitted. Number and LexError tokens use Text; Operator tokens use
// Symbol (Text keeps the surface spelling, e.g. "√" for sqrt).
type Token struct {
	Kind   TokenKind
	Text   string
	Symbol rune
}
