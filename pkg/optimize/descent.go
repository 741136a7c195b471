package optimize

import (
	"errors"
	"math"
	"math/rand"
)

// DefaultSeed seeds the parameter initializer so repeated runs optimize the
// same starting point and results stay comparable across implementations.
const DefaultSeed = 12345

// Sentinel errors returned by optimizer operations.
var (
	ErrInvalidParamCount = errors.New("optimize: parameter count must be greater than one")
	ErrInvalidIterations = errors.New("optimize: iteration count must be positive")
)

// Result is the terminal artifact of one optimizer benchmark run.
type Result struct {
	FinalCost       float64   `json:"final_cost" yaml:"final_cost"`
	ConvergenceRate float64   `json:"convergence_rate" yaml:"convergence_rate"`
	AvgParam        float64   `json:"avg_param" yaml:"avg_param"`
	Params          []float64 `json:"params" yaml:"params"`
}

// InitParams draws n starting parameters uniformly from [-1, 1) using the
// given source. The generator is explicit state rather than the process-wide
// default so callers control reproducibility.
func InitParams(n int, rng *rand.Rand) []float64 {
	params := make([]float64, n)
	for i := range params {
		params[i] = (rng.Float64() - 0.5) * 2.0
	}
	return params
}

// Descend runs fixed-step gradient descent on the Rosenbrock function,
// updating params in place for the given number of iterations.
func Descend(params []float64, iterations int, learningRate float64) {
	grad := make([]float64, len(params))

	for iter := 0; iter < iterations; iter++ {
		RosenbrockGradient(params, grad)
		for i := range params {
			params[i] -= learningRate * grad[i]
		}
	}
}

// Run executes the complete optimizer benchmark: seed, initialize, descend,
// summarize. The learning rate adapts to the problem size as 0.001/sqrt(n).
func Run(paramCount, iterations int) (Result, error) {
	if paramCount <= 1 {
		return Result{}, ErrInvalidParamCount
	}
	if iterations <= 0 {
		return Result{}, ErrInvalidIterations
	}

	learningRate := 0.001 / math.Sqrt(float64(paramCount))

	rng := rand.New(rand.NewSource(DefaultSeed))
	params := InitParams(paramCount, rng)

	Descend(params, iterations, learningRate)

	finalCost := Rosenbrock(params)

	avgParam := 0.0
	for _, p := range params {
		avgParam += p
	}
	avgParam /= float64(paramCount)

	return Result{
		FinalCost: finalCost,
		// 1 at the optimum, approaching 0 as the cost grows
		ConvergenceRate: 1.0 / (1.0 + finalCost),
		AvgParam:        avgParam,
		Params:          params,
	}, nil
}
