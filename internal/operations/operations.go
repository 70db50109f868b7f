// Package operations provides the four binary arithmetic operations used by
// the calculator. Every function is pure and safe to call with any float64
// inputs, including negative numbers, zero and fractional values.
package operations

import "errors"

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("Division by zero is not allowed.")

// Func is the common signature shared by all operations
type Func func(a, b float64) (float64, error)

// Binary adapts an operation that cannot fail to a Func
func Binary(f func(a, b float64) float64) Func {
	return func(a, b float64) (float64, error) {
		return f(a, b), nil
	}
}

// Add returns the sum of two numbers.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of two numbers.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of two numbers.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of two numbers, or ErrDivisionByZero when b is
// zero, including negative zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
