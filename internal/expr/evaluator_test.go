package expr

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBasicOperators(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5 + 3", 8},
		{"10 - 3", 7},
		{"5 * 3", 15},
		{"10 / 2", 5},
		{"10 % 3", 1},
		{"2 ^ 3", 8},
		{"s 9", 3},
		{"√ 16", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluatePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"5 + 3 * 2", 11}, // not 16
		{"10 / 2 + 3", 8},
		{"2 ^ 3 + 1", 9},
		{"2 + 3 ^ 2", 11},
		{"s 9 + 1", 4}, // sqrt binds tighter than +
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateLeftAssociativity(t *testing.T) {
	got, err := Evaluate("10 - 3 - 2")
	require.NoError(t, err)
	assert.Equal(t, 5.0, got, "a - b - c must group as (a - b) - c")

	got, err = Evaluate("100 / 10 / 5")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestEvaluateParentheses(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"(5 + 3) * 2", 16},
		{"2 * (3 + 4)", 14},
		{"((2 + 3) * 4) - 1", 19},
		{"(((7)))", 7},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateUnaryNegation(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"-5", -5},
		{"-5 + 3", -2},
		{"3 * -2", -6},
		{"(-5)", -5},
		{"5 - -3", 8},
		{"-5 ^ 2", 25}, // negation binds tighter than ^
		{"- - 5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate("10 / 0")
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// Modulo by zero is treated the same as division by zero instead
	// of inheriting the platform's NaN remainder.
	_, err = Evaluate("10 % 0")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateSqrtOfNegative(t *testing.T) {
	got, err := Evaluate("s -4")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "sqrt of a negative value yields NaN, not an error")
}

func TestEvaluateMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"trailing operator", "5 +", ErrMissingOperand},
		{"lone operator", "*", ErrMissingOperand},
		{"unrecognized character", "abc + 3", ErrLexical},
		{"empty input", "", ErrIncorrectInput},
		{"two numbers no operator", "5 3", ErrIncorrectInput},
		{"consecutive operators", "5 +* 3", ErrMissingOperand},
		{"unmatched close paren", "5 + 3)", ErrUnbalancedParens},
		{"unmatched open paren", "(5 + 3", ErrUnbalancedParens},
		{"bad literal", "1.2.3 + 1", ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluateLexErrorIsTerminal(t *testing.T) {
	_, err := Evaluate("5 + @ + 3")
	require.ErrorIs(t, err, ErrLexical)
	assert.Contains(t, err.Error(), "@")
}

func TestEvaluateTokensUnknownOperator(t *testing.T) {
	// Unreachable through Tokenize; guards against a corrupted
	// sequence handed in directly.
	_, err := EvaluateTokens([]Token{
		{Kind: TokenNumber, Text: "1"},
		{Kind: TokenOperator, Symbol: '?'},
		{Kind: TokenNumber, Text: "2"},
	})
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestEvaluateConcurrentCallers(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Evaluate("(5 + 3) * 2 - s 16")
			assert.NoError(t, err)
			assert.Equal(t, 12.0, got)
		}()
	}
	wg.Wait()
}

func TestEvaluateFloatingPoint(t *testing.T) {
	got, err := Evaluate("0.1 + 0.2")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, got, 1e-9)

	got, err = Evaluate("10 / 4")
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}
