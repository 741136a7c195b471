package spectral

import (
	"fmt"
	"testing"
)

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{256, 1024, 4096, 16384} {
		signal, err := GenerateSignal(n)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Transform(signal); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRunWithStats(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := RunWithStats(4096); err != nil {
			b.Fatal(err)
		}
	}
}
