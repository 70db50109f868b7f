package loop

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v so that integral values keep a fractional part
// ("6.0"). Values with a decimal exponent outside [-4, 16) use scientific
// notation ("1e+16", "1e-05"). Infinities and NaN print as "inf", "-inf"
// and "nan".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	_, expStr, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expStr)
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatResult renders the result line printed after a successful calculation
func FormatResult(v float64) string {
	return "Result: " + FormatNumber(v)
}
