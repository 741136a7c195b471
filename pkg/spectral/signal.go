package spectral

import "math"

// Signal is a time-domain sequence of complex samples. Index i corresponds to
// time t = i/n for a signal of length n.
type Signal []complex128

// Tone frequencies and amplitudes of the synthetic test signal. The mix is
// chosen so the resulting spectrum has known, well-separated peaks that can be
// checked for correctness across implementations.
const (
	toneFreqA = 5.0
	toneFreqB = 10.0
	toneFreqC = 20.0

	toneAmpB = 0.5
	toneAmpC = 0.3
)

// GenerateSignal produces the deterministic three-tone benchmark signal of
// length n. The output depends only on n, so repeated runs are directly
// comparable. The imaginary components are zero.
func GenerateSignal(n int) (Signal, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	signal := make(Signal, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		re := math.Sin(2*math.Pi*toneFreqA*t) +
			toneAmpB*math.Sin(2*math.Pi*toneFreqB*t) +
			toneAmpC*math.Sin(2*math.Pi*toneFreqC*t)
		signal[i] = complex(re, 0)
	}

	return signal, nil
}
