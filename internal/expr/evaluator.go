// Package expr implements the calculator core: a tokenizer for infix
// arithmetic expressions and a two-stack shunting-yard evaluator.
// Both are pure functions with no state between calls, so independent
// callers may use them concurrently without coordination.
package expr

import (
	"fmt"
	"strconv"
)

// Evaluate tokenizes text and evaluates the resulting sequence. It is
// the composed entry point used by the session layer.
func Evaluate(text string) (float64, error) {
	return EvaluateTokens(Tokenize(text))
}

// EvaluateTokens consumes tokens left to right. Operands and pending
// operators live on two stacks; a stacked operator is applied eagerly
// as soon as precedence allows, so no expression tree is built. A nil
// entry on the operator stack marks an open parenthesis. Successful
// termination leaves exactly one operand and an empty operator stack.
func EvaluateTokens(tokens []Token) (float64, error) {
	var operands []float64
	var pending []*Operator

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			value, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, tok.Text)
			}
			operands = append(operands, value)

		case TokenOperator:
			op, ok := Lookup(tok.Symbol)
			if !ok {
				return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, tok.Symbol)
			}
			for len(pending) > 0 {
				top := pending[len(pending)-1]
				if top == nil || !yieldsTo(top, op) {
					break
				}
				if err := applyTop(&operands, &pending); err != nil {
					return 0, err
				}
			}
			pending = append(pending, op)

		case TokenOpenParen:
			pending = append(pending, nil)

		case TokenCloseParen:
			matched := false
			for len(pending) > 0 {
				if pending[len(pending)-1] == nil {
					pending = pending[:len(pending)-1]
					matched = true
					break
				}
				if err := applyTop(&operands, &pending); err != nil {
					return 0, err
				}
			}
			if !matched {
				return 0, fmt.Errorf("%w: unmatched %q", ErrUnbalancedParens, ")")
			}

		case TokenLexError:
			return 0, fmt.Errorf("%w %q", ErrLexical, tok.Text)

		default:
			return 0, fmt.Errorf("%w: unknown token %q", ErrIncorrectInput, tok.Text)
		}
	}

	for len(pending) > 0 {
		if pending[len(pending)-1] == nil {
			return 0, fmt.Errorf("%w: unmatched %q", ErrUnbalancedParens, "(")
		}
		if err := applyTop(&operands, &pending); err != nil {
			return 0, err
		}
	}

	if len(operands) != 1 {
		return 0, ErrIncorrectInput
	}
	return operands[0], nil
}

// yieldsTo reports whether the stacked operator top must be applied
// before incoming is pushed. Left-associative operators yield on
// equal precedence; the right-associative unary operators only on
// strictly greater, so nested prefixes stack up.
func yieldsTo(top, incoming *Operator) bool {
	if incoming.Assoc == AssocLeft {
		return top.Precedence >= incoming.Precedence
	}
	return top.Precedence > incoming.Precedence
}

// applyTop pops one operator and its operands and pushes the result.
func applyTop(operands *[]float64, pending *[]*Operator) error {
	op := (*pending)[len(*pending)-1]
	*pending = (*pending)[:len(*pending)-1]

	if len(*operands) < op.Arity {
		return fmt.Errorf("%w for operator %q", ErrMissingOperand, op.Symbol)
	}
	args := (*operands)[len(*operands)-op.Arity:]
	*operands = (*operands)[:len(*operands)-op.Arity]

	result, err := op.apply(args)
	if err != nil {
		return err
	}
	*operands = append(*operands, result)
	return nil
}
