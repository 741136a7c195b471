package spectral

import "math"

// Spectrum is a frequency-domain sequence of complex bins using the forward
// (negative exponent) DFT sign convention. Bin k corresponds to frequency k
// for a spectrum of length n.
type Spectrum []complex128

// Transform computes the discrete Fourier transform of signal via an iterative
// radix-2 decimation-in-time FFT. The signal length must be a power of two.
// The input is never modified; the transform runs in place on a working copy
// and returns it as the spectrum.
func Transform(signal Signal) (Spectrum, error) {
	n := len(signal)
	if signal == nil || n == 0 {
		return nil, ErrEmptySignal
	}
	if n&(n-1) != 0 {
		return nil, ErrInvalidSize
	}

	work := make(Spectrum, n)
	copy(work, signal)

	bitReverse(work)

	for length := 2; length <= n; length *= 2 {
		angle := -2 * math.Pi / float64(length)
		wlen := complex(math.Cos(angle), math.Sin(angle))

		for i := 0; i < n; i += length {
			// Twiddle factor advances by one complex multiplication per
			// butterfly rather than being recomputed trigonometrically,
			// matching the reference error accumulation.
			w := complex(1, 0)
			half := length / 2

			for j := 0; j < half; j++ {
				u := work[i+j]
				t := work[i+j+half] * w
				work[i+j] = u + t
				work[i+j+half] = u - t
				w *= wlen
			}
		}
	}

	return work, nil
}

// bitReverse permutes data so that the sample at index i moves to the index
// formed by reversing the bits of i in a log2(n)-bit field. The running
// counter j is advanced like a binary counter with its bits mirrored.
func bitReverse(data Spectrum) {
	n := len(data)
	j := 0
	for i := 0; i < n; i++ {
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
		k := n / 2
		for k > 0 && k <= j {
			j -= k
			k /= 2
		}
		j += k
	}
}
