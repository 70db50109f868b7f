package loop

import (
	"slices"

	"github.com/itsmostafa/replcalc/internal/operations"
)

// operators maps each supported symbol to its operation.
// Built once and never modified.
var operators = map[string]operations.Func{
	"+": operations.Binary(operations.Add),
	"-": operations.Binary(operations.Subtract),
	"*": operations.Binary(operations.Multiply),
	"/": operations.Divide,
}

// operatorOrder is the display order of the operator symbols
var operatorOrder = []string{"+", "-", "*", "/"}

// Operators returns the supported operator symbols in display order
func Operators() []string {
	return slices.Clone(operatorOrder)
}

// IsOperator reports whether symbol is a supported operator
func IsOperator(symbol string) bool {
	_, ok := operators[symbol]
	return ok
}
