package expr

import (
	"fmt"
	"math"
)

// Associativity controls how equal-precedence operators group.
type Associativity int

const (
	// AssocLeft groups left to right: a - b - c = (a - b) - c.
	AssocLeft Associativity = iota
	// AssocRight is used by the unary prefix operators.
	AssocRight
)

// Reserved operator symbols that are not plain ASCII punctuation.
const (
	// SymbolNegate is the internal symbol for unary negation. Users
	// type "-"; the lexer rewrites a minus in prefix position to this
	// symbol so negation and subtraction stay distinct tokens.
	SymbolNegate = '~'
	// SymbolSqrt is the reserved character for the square-root
	// operator. The lexer also accepts "√" as an alias.
	SymbolSqrt = 's'
)

// Operator describes one registered operator: its precedence rank
// (higher binds tighter), how many operands it consumes and the
// function applied to them. Adding an operator means adding a table
// entry and, for new surface characters, extending the lexer
// alphabet; the evaluator itself is table-driven.
type Operator struct {
	Symbol     rune
	Precedence int
	Arity      int
	Assoc      Associativity

	// apply receives the operands in left-to-right order.
	apply func(args []float64) (float64, error)
}

var operators = map[rune]*Operator{
	SymbolNegate: {
		Symbol: SymbolNegate, Precedence: 4, Arity: 1, Assoc: AssocRight,
		apply: func(args []float64) (float64, error) {
			return -args[0], nil
		},
	},
	SymbolSqrt: {
		Symbol: SymbolSqrt, Precedence: 4, Arity: 1, Assoc: AssocRight,
		// A negative operand follows math.Sqrt and yields NaN rather
		// than an error.
		apply: func(args []float64) (float64, error) {
			return math.Sqrt(args[0]), nil
		},
	},
	'^': {
		Symbol: '^', Precedence: 3, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			return math.Pow(args[0], args[1]), nil
		},
	},
	'*': {
		Symbol: '*', Precedence: 2, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			return args[0] * args[1], nil
		},
	},
	'/': {
		Symbol: '/', Precedence: 2, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			if args[1] == 0 {
				return 0, ErrDivisionByZero
			}
			return args[0] / args[1], nil
		},
	},
	'%': {
		Symbol: '%', Precedence: 2, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			if args[1] == 0 {
				return 0, fmt.Errorf("%w: modulo by zero", ErrDivisionByZero)
			}
			return math.Mod(args[0], args[1]), nil
		},
	},
	'+': {
		Symbol: '+', Precedence: 1, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			return args[0] + args[1], nil
		},
	},
	'-': {
		Symbol: '-', Precedence: 1, Arity: 2, Assoc: AssocLeft,
		apply: func(args []float64) (float64, error) {
			return args[0] - args[1], nil
		},
	},
}

// Lookup returns the registered operator for symbol, if any.
func Lookup(symbol rune) (*Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}
