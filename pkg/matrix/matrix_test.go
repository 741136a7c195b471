package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))

	for _, n := range []int{0, -1, -100} {
		m, err := NewRandom(n, rng)
		assert.ErrorIs(t, err, ErrInvalidSize, "n=%d", n)
		assert.Nil(t, m)
	}

	m, err := NewRandom(8, rng)
	require.NoError(t, err)
	require.Len(t, m.Data, 64)

	for i, v := range m.Data {
		assert.GreaterOrEqual(t, v, 0.0, "element %d", i)
		assert.Less(t, v, 100.0, "element %d", i)
	}
}

func TestMulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	a, err := NewRandom(4, rng)
	require.NoError(t, err)

	identity := &Matrix{N: 4, Data: make([]float64, 16)}
	for i := 0; i < 4; i++ {
		identity.Data[i*4+i] = 1
	}

	c, err := Mul(a, identity)
	require.NoError(t, err)
	assert.Equal(t, a.Data, c.Data)
}

func TestMulKnownProduct(t *testing.T) {
	a := &Matrix{N: 2, Data: []float64{1, 2, 3, 4}}
	b := &Matrix{N: 2, Data: []float64{5, 6, 7, 8}}

	c, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Data)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := &Matrix{N: 2, Data: make([]float64, 4)}
	b := &Matrix{N: 3, Data: make([]float64, 9)}

	_, err := Mul(a, b)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Mul(nil, b)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSum(t *testing.T) {
	m := &Matrix{N: 2, Data: []float64{1, 2, 3, 4}}
	assert.Equal(t, 10.0, m.Sum())
}

func TestRunReproducible(t *testing.T) {
	_, err := Run(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	first, err := Run(16)
	require.NoError(t, err)

	second, err := Run(16)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 16, first.Size)
	assert.Greater(t, first.Checksum, 0.0)
}

func BenchmarkMul(b *testing.B) {
	rng := rand.New(rand.NewSource(DefaultSeed))
	x, _ := NewRandom(128, rng)
	y, _ := NewRandom(128, rng)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Mul(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
