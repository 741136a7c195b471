package spectral

import "math"

// Statistics summarizes a computed spectrum. Values are derived once from a
// spectrum and never mutated afterwards.
type Statistics struct {
	PeakMagnitude float64 `json:"peak_magnitude" yaml:"peak_magnitude"`
	TotalEnergy   float64 `json:"total_energy" yaml:"total_energy"`
	AverageEnergy float64 `json:"average_energy" yaml:"average_energy"`
	PeakBin       int     `json:"peak_bin" yaml:"peak_bin"`
}

// Analyze reduces a spectrum to its summary statistics. The spectrum is read
// only; calling Analyze repeatedly on the same spectrum yields identical
// results. Magnitude ties are resolved in favor of the lowest bin index.
func Analyze(spectrum Spectrum) Statistics {
	var stats Statistics

	n := len(spectrum)
	if n == 0 {
		return stats
	}

	for k, bin := range spectrum {
		re := real(bin)
		im := imag(bin)
		magnitude := math.Sqrt(re*re + im*im)

		stats.TotalEnergy += magnitude * magnitude

		if magnitude > stats.PeakMagnitude {
			stats.PeakMagnitude = magnitude
			stats.PeakBin = k
		}
	}

	stats.AverageEnergy = stats.TotalEnergy / float64(n)

	return stats
}
