package loop

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrInvalidFormat is returned when a line is not "<number> <operator> <number>"
	ErrInvalidFormat = errors.New("Invalid input. Format: <number> <operator> <number>. Include spaces between each component.")

	// ErrInvalidOperator is returned when the operator is not one of + - * /
	ErrInvalidOperator = errors.New("Invalid operator. Please use one of these: +, -, *, or /")
)

// ParseLine splits a line on whitespace into two operands and an operator.
// The token count and both operands are checked before the operator, so
// "five % one" is a format error rather than an operator error.
func ParseLine(line string) (Calculation, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Calculation{}, ErrInvalidFormat
	}

	left, err := parseOperand(fields[0])
	if err != nil {
		return Calculation{}, err
	}
	right, err := parseOperand(fields[2])
	if err != nil {
		return Calculation{}, err
	}

	if !IsOperator(fields[1]) {
		return Calculation{}, ErrInvalidOperator
	}

	return Calculation{Left: left, Operator: fields[1], Right: right}, nil
}

// parseOperand accepts decimal and exponent notation plus inf and nan.
// Values too large for float64 become ±inf instead of failing.
func parseOperand(token string) (float64, error) {
	// strconv also accepts hex floats; we don't
	if strings.ContainsAny(token, "xX") {
		return 0, ErrInvalidFormat
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, ErrInvalidFormat
	}
	return v, nil
}

// Evaluate applies the operation bound to calc.Operator
func Evaluate(calc Calculation) (float64, error) {
	op, ok := operators[calc.Operator]
	if !ok {
		return 0, ErrInvalidOperator
	}
	return op(calc.Left, calc.Right)
}

// EvaluateLine parses and evaluates a single line of input
func EvaluateLine(line string) (float64, error) {
	calc, err := ParseLine(line)
	if err != nil {
		return 0, err
	}
	return Evaluate(calc)
}
