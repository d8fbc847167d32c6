package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeNumbersAndOperators(t *testing.T) {
	tokens := Tokenize("5 + 3.25")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: TokenNumber, Text: "5"}, tokens[0])
	assert.Equal(t, TokenOperator, tokens[1].Kind)
	assert.Equal(t, '+', tokens[1].Symbol)
	assert.Equal(t, Token{Kind: TokenNumber, Text: "3.25"}, tokens[2])
}

func TestTokenizeWithoutWhitespace(t *testing.T) {
	tokens := Tokenize("(5+3)*2")
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenOpenParen, TokenNumber, TokenOperator, TokenNumber,
		TokenCloseParen, TokenOperator, TokenNumber,
	}, kinds)
}

func TestTokenizeMinusDisambiguation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []rune // operator symbols in emission order
	}{
		{"leading minus is negation", "-5", []rune{SymbolNegate}},
		{"minus after number is subtraction", "5 - 3", []rune{'-'}},
		{"minus after operator is negation", "3 * -2", []rune{'*', SymbolNegate}},
		{"minus after open paren is negation", "(-5)", []rune{SymbolNegate}},
		{"minus after close paren is subtraction", "(5) - 3", []rune{'-'}},
		{"minus after sqrt is negation", "s -9", []rune{SymbolSqrt, SymbolNegate}},
		{"double minus", "5 - -3", []rune{'-', SymbolNegate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var symbols []rune
			for _, tok := range Tokenize(tt.input) {
				if tok.Kind == TokenOperator {
					symbols = append(symbols, tok.Symbol)
				}
			}
			assert.Equal(t, tt.want, symbols)
		})
	}
}

func TestTokenizeSqrtAlias(t *testing.T) {
	for _, input := range []string{"s 9", "√ 9", "√9"} {
		tokens := Tokenize(input)
		require.Len(t, tokens, 2, "input %q", input)
		assert.Equal(t, TokenOperator, tokens[0].Kind)
		assert.Equal(t, rune(SymbolSqrt), tokens[0].Symbol)
		assert.Equal(t, Token{Kind: TokenNumber, Text: "9"}, tokens[1])
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	tokens := Tokenize("abc + 3")
	require.Len(t, tokens, 1, "lex error must replace the whole sequence")
	assert.Equal(t, TokenLexError, tokens[0].Kind)
	assert.Equal(t, "a", tokens[0].Text)
}

func TestTokenizeInvalidCharacterAfterValidPrefix(t *testing.T) {
	// No partial sequence even when the bad character comes late.
	tokens := Tokenize("5 + x")
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenLexError, tokens[0].Kind)
	assert.Equal(t, "x", tokens[0].Text)
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("   \t "))
}

func TestTokenizeConsecutiveOperators(t *testing.T) {
	// "+*" tokenizes fine; rejecting the structure is the evaluator's
	// job.
	tokens := Tokenize("5 +* 3")
	require.Len(t, tokens, 4)
	assert.Equal(t, '+', tokens[1].Symbol)
	assert.Equal(t, '*', tokens[2].Symbol)
}

func TestTokenizeIsPure(t *testing.T) {
	const input = "(5 + -3.5) * √2 - 1"
	first := Tokenize(input)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Tokenize(input))
	}
}

func TestTokenizeFlushesTrailingLiteral(t *testing.T) {
	tokens := Tokenize("12.5")
	require.Len(t, tokens, 1)
	assert.Equal(t, Token{Kind: TokenNumber, Text: "12.5"}, tokens[0])
}
