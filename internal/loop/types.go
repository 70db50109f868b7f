package loop

// Calculation is a single parsed input line: two operands and an operator
type Calculation struct {
	Left     float64
	Operator string
	Right    float64
}
