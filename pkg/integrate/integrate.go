package integrate

import (
	"errors"
	"math"
)

// ErrInvalidIntervals is returned when the interval count is not positive.
var ErrInvalidIntervals = errors.New("integrate: interval count must be positive")

// Result is the terminal artifact of one integration benchmark run.
type Result struct {
	Trapezoidal      float64 `json:"trapezoidal" yaml:"trapezoidal"`
	Simpson          float64 `json:"simpson" yaml:"simpson"`
	Analytical       float64 `json:"analytical" yaml:"analytical"`
	TrapezoidalError float64 `json:"trapezoidal_error" yaml:"trapezoidal_error"`
	SimpsonError     float64 `json:"simpson_error" yaml:"simpson_error"`
}

// testFunction is the integrand f(x) = x^2 + 2x + 1 = (x+1)^2.
func testFunction(x float64) float64 {
	return x*x + 2.0*x + 1.0
}

// Analytical returns the exact integral of (x+1)^2 from a to b,
// [(b+1)^3 - (a+1)^3] / 3.
func Analytical(a, b float64) float64 {
	upper := (b + 1.0) * (b + 1.0) * (b + 1.0)
	lower := (a + 1.0) * (a + 1.0) * (a + 1.0)
	return (upper - lower) / 3.0
}

// Trapezoidal approximates the integral of the test function from a to b
// using n trapezoids.
func Trapezoidal(a, b float64, n int) float64 {
	if n <= 0 {
		return 0.0
	}

	h := (b - a) / float64(n)
	sum := 0.5 * (testFunction(a) + testFunction(b))

	for i := 1; i < n; i++ {
		sum += testFunction(a + float64(i)*h)
	}

	return sum * h
}

// Simpson approximates the integral of the test function from a to b using
// Simpson's rule with n subintervals. n must be even; otherwise 0 is returned.
func Simpson(a, b float64, n int) float64 {
	if n <= 0 || n%2 != 0 {
		return 0.0
	}

	h := (b - a) / float64(n)
	sum := testFunction(a) + testFunction(b)

	for i := 1; i < n; i += 2 {
		sum += 4.0 * testFunction(a+float64(i)*h)
	}
	for i := 2; i < n; i += 2 {
		sum += 2.0 * testFunction(a+float64(i)*h)
	}

	return sum * h / 3.0
}

// Run executes the complete integration benchmark over [0, 1] with n
// intervals. Odd n is rounded down for Simpson's rule only, matching the
// reference behavior.
func Run(n int) (Result, error) {
	if n <= 0 {
		return Result{}, ErrInvalidIntervals
	}

	const a, b = 0.0, 1.0

	simpsonN := n
	if simpsonN%2 != 0 {
		simpsonN--
	}

	result := Result{
		Trapezoidal: Trapezoidal(a, b, n),
		Simpson:     Simpson(a, b, simpsonN),
		Analytical:  Analytical(a, b),
	}
	result.TrapezoidalError = math.Abs(result.Trapezoidal - result.Analytical)
	result.SimpsonError = math.Abs(result.Simpson - result.Analytical)

	return result, nil
}
