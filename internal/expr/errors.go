package expr

import "errors"

// Evaluation failures come from this closed set so callers can branch
// with errors.Is while still getting a descriptive message. Every
// error is terminal for the current call; there is no partial result.
var (
	// ErrLexical reports an unrecognized character in the input.
	ErrLexical = errors.New("invalid character")
	// ErrInvalidNumber reports a numeric literal that failed to parse.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMissingOperand reports an operator applied to too few values,
	// e.g. a trailing operator.
	ErrMissingOperand = errors.New("missing operand")
	// ErrDivisionByZero reports / or % with a zero right operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperator reports an operator symbol outside the
	// registered set reaching the evaluator.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrIncorrectInput reports a structurally malformed expression:
	// empty input, or leftover operands at termination.
	ErrIncorrectInput = errors.New("incorrect input")
	// ErrUnbalancedParens reports mismatched parentheses in either
	// direction.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
)
