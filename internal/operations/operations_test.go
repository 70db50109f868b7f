package operations

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "two positive integers", a: 5, b: 5, expected: 10},
		{name: "two negative integers", a: -3, b: -4, expected: -7},
		{name: "negative and positive integer", a: -8, b: 12, expected: 4},
		{name: "two zeros", a: 0, b: 0, expected: 0},
		{name: "two positive floats", a: 1.2, b: 3.8, expected: 5.0},
		{name: "two negative floats", a: -4.0, b: -2.5, expected: -6.5},
		{name: "negative and positive float", a: -3.2, b: 4.0, expected: 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Add(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "two positive integers", a: 2, b: 2, expected: 0},
		{name: "two negative integers", a: -3, b: -1, expected: -2},
		{name: "negative and positive integer", a: -8, b: 3, expected: -11},
		{name: "two zeros", a: 0, b: 0, expected: 0},
		{name: "two positive floats", a: 2.5, b: 1.5, expected: 1.0},
		{name: "two negative floats", a: -3.0, b: -2.0, expected: -1.0},
		{name: "negative and positive float", a: -5.0, b: 3.0, expected: -8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Subtract(tt.a, tt.b), 1e-9)
		})
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "two positive integers", a: 3, b: 3, expected: 9},
		{name: "two negative integers", a: -2, b: -2, expected: 4},
		{name: "negative and positive integer", a: -4, b: 3, expected: -12},
		{name: "two zeros", a: 0, b: 0, expected: 0},
		{name: "two positive floats", a: 2.0, b: 3.0, expected: 6.0},
		{name: "two negative floats", a: -1.0, b: -3.0, expected: 3.0},
		{name: "negative and positive float", a: -3.0, b: 8.0, expected: -24.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Multiply(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{name: "two positive integers", a: 4, b: 2, expected: 2},
		{name: "two negative integers", a: -4, b: -2, expected: 2},
		{name: "negative and positive integer", a: -8, b: 2, expected: -4},
		{name: "two positive floats", a: 3.0, b: 3.0, expected: 1.0},
		{name: "two negative floats", a: -9.0, b: -3.0, expected: 3.0},
		{name: "negative and positive float", a: -12.0, b: 4.0, expected: -3.0},
		{name: "fractional result", a: 1, b: 4, expected: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Divide(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestDivide_ByZero(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{name: "positive integer", a: 8, b: 0},
		{name: "negative integer", a: -3, b: 0},
		{name: "positive float", a: 5.0, b: 0},
		{name: "negative float", a: -3.5, b: 0},
		{name: "zero dividend", a: 0, b: 0},
		{name: "negative zero divisor", a: 1, b: math.Copysign(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Divide(tt.a, tt.b)
			require.ErrorIs(t, err, ErrDivisionByZero)
			assert.Equal(t, "Division by zero is not allowed.", err.Error())
		})
	}
}

func TestBinary(t *testing.T) {
	f := Binary(Multiply)

	got, err := f(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)
}

func TestProperties(t *testing.T) {
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}

	t.Run("add", func(t *testing.T) {
		f := func(a, b float64) bool {
			return !finite(a, b) || Add(a, b) == a+b
		}
		assert.NoError(t, quick.Check(f, nil))
	})

	t.Run("subtract", func(t *testing.T) {
		f := func(a, b float64) bool {
			return !finite(a, b) || Subtract(a, b) == a-b
		}
		assert.NoError(t, quick.Check(f, nil))
	})

	t.Run("multiply", func(t *testing.T) {
		f := func(a, b float64) bool {
			return !finite(a, b) || Multiply(a, b) == a*b
		}
		assert.NoError(t, quick.Check(f, nil))
	})

	t.Run("divide", func(t *testing.T) {
		f := func(a, b float64) bool {
			if !finite(a, b) || b == 0 {
				return true
			}
			got, err := Divide(a, b)
			return err == nil && got == a/b
		}
		assert.NoError(t, quick.Check(f, nil))
	})

	t.Run("divide by zero", func(t *testing.T) {
		f := func(a float64) bool {
			_, err := Divide(a, 0)
			return err == ErrDivisionByZero
		}
		assert.NoError(t, quick.Check(f, nil))
	})
}
