package matrix

import (
	"errors"
	"math/rand"
)

// DefaultSeed fixes the random fill so benchmark runs are reproducible. The
// reference implementation seeded from the wall clock, which made checksums
// incomparable between runs.
const DefaultSeed = 42

// ErrInvalidSize is returned when a requested matrix dimension is not positive.
var ErrInvalidSize = errors.New("matrix: size must be positive")

// Matrix is a dense n×n matrix in row-major order.
type Matrix struct {
	N    int
	Data []float64
}

// Result is the terminal artifact of one matrix benchmark run.
type Result struct {
	Size     int     `json:"size" yaml:"size"`
	Checksum float64 `json:"checksum" yaml:"checksum"`
}

// NewRandom builds an n×n matrix with entries drawn uniformly from [0, 100)
// using the given source.
func NewRandom(n int, rng *rand.Rand) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64() * 100.0
	}

	return &Matrix{N: n, Data: data}, nil
}

// Mul computes the dense product a×b with the straightforward triple loop.
// This is deliberately the naive O(n^3) kernel; the benchmark measures raw
// scalar throughput, not a blocked or vectorized implementation.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil || a.N <= 0 {
		return nil, ErrInvalidSize
	}
	if a.N != b.N {
		return nil, ErrInvalidSize
	}

	n := a.N
	c := &Matrix{N: n, Data: make([]float64, n*n)}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a.Data[i*n+k] * b.Data[k*n+j]
			}
			c.Data[i*n+j] = sum
		}
	}

	return c, nil
}

// Sum returns the sum of all elements, used as the benchmark checksum.
func (m *Matrix) Sum() float64 {
	sum := 0.0
	for _, v := range m.Data {
		sum += v
	}
	return sum
}

// Run executes the complete matrix benchmark for the given size: generate two
// random matrices, multiply them, and reduce the product to a checksum.
func Run(size int) (Result, error) {
	if size <= 0 {
		return Result{}, ErrInvalidSize
	}

	rng := rand.New(rand.NewSource(DefaultSeed))

	a, err := NewRandom(size, rng)
	if err != nil {
		return Result{}, err
	}

	b, err := NewRandom(size, rng)
	if err != nil {
		return Result{}, err
	}

	c, err := Mul(a, b)
	if err != nil {
		return Result{}, err
	}

	return Result{Size: size, Checksum: c.Sum()}, nil
}
