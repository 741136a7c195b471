package optimize

// Rosenbrock evaluates the n-dimensional Rosenbrock function
// f(x) = sum(100*(x[i+1] - x[i]^2)^2 + (1 - x[i])^2). The global minimum is 0
// at x[i] = 1 for all i.
func Rosenbrock(x []float64) float64 {
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		term1 := x[i+1] - x[i]*x[i]
		term2 := 1.0 - x[i]
		sum += 100.0*term1*term1 + term2*term2
	}
	return sum
}

// RosenbrockGradient writes the analytic gradient of Rosenbrock at x into
// grad. Both slices must have the same length.
func RosenbrockGradient(x, grad []float64) {
	for i := range grad {
		grad[i] = 0
	}

	for i := 0; i < len(x)-1; i++ {
		xi := x[i]
		xiNext := x[i+1]

		grad[i] += -400.0*xi*(xiNext-xi*xi) - 2.0*(1.0-xi)
		grad[i+1] += 200.0 * (xiNext - xi*xi)
	}
}
