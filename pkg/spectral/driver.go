package spectral

// Run generates the synthetic signal of length n and returns its spectrum.
// n must be a positive power of two. The returned spectrum is freshly
// allocated and owned by the caller; the intermediate signal buffer is not
// retained.
func Run(n int) (Spectrum, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrInvalidSize
	}

	signal, err := GenerateSignal(n)
	if err != nil {
		return nil, err
	}

	return Transform(signal)
}

// RunWithStats runs the transform benchmark for size n and reduces the
// spectrum to summary statistics. This is the terminal artifact of a single
// benchmark invocation.
func RunWithStats(n int) (Statistics, error) {
	spectrum, err := Run(n)
	if err != nil {
		return Statistics{}, err
	}

	return Analyze(spectrum), nil
}
