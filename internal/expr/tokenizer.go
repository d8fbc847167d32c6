package expr

import (
	"strings"
	"unicode"
)

// Tokenize scans text left to right and returns its token sequence.
// It is total: an unrecognized character yields a sequence containing
// exactly one LexError token, never a partial result. Empty input
// yields an empty sequence; rejecting that is the evaluator's job.
func Tokenize(text string) []Token {
	var tokens []Token
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenNumber, Text: literal.String()})
			literal.Reset()
		}
	}

	for _, ch := range text {
		switch {
		case ch >= '0' && ch <= '9' || ch == '.':
			literal.WriteRune(ch)

		case unicode.IsSpace(ch):
			flush()

		case ch == '(':
			flush()
			tokens = append(tokens, Token{Kind: TokenOpenParen, Text: "("})

		case ch == ')':
			flush()
			tokens = append(tokens, Token{Kind: TokenCloseParen, Text: ")"})

		case isOperatorChar(ch):
			flush()
			sym := normalizeSymbol(ch)
			if sym == '-' && prefixPosition(tokens) {
				sym = SymbolNegate
			}
			tokens = append(tokens, Token{Kind: TokenOperator, Symbol: sym, Text: string(ch)})

		default:
			return []Token{{Kind: TokenLexError, Text: string(ch)}}
		}
	}
	flush()
	return tokens
}

// isOperatorChar reports whether ch is part of the surface operator
// alphabet. SymbolNegate is internal only and deliberately absent.
func isOperatorChar(ch rune) bool {
	return strings.ContainsRune("+-*/^%", ch) || ch == SymbolSqrt || ch == '√'
}

func normalizeSymbol(ch rune) rune {
	if ch == '√' {
		return SymbolSqrt
	}
	return ch
}

// prefixPosition reports whether a minus at the current position is a
// unary negation: at the start of the input, or directly after
// another operator or an open parenthesis.
func prefixPosition(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Kind {
	case TokenOperator, TokenOpenParen:
		return true
	}
	return false
}
