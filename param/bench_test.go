// SPDX-License-Identifier: MIT

package param_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/epsmap/field"
	"github.com/katalvlaran/epsmap/param"
	"gonum.org/v1/gonum/num/dual"
)

// benchSizes are the grid edge lengths to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkF *field.Field[float64]
	sinkD *field.Field[dual.Number]
)

// randField fills an n×n field from a fixed seed.
func randField(b *testing.B, n int, seed int64) *field.Field[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	f, err := field.FromSlice(n, n, vals)
	if err != nil {
		b.Fatal(err)
	}

	return f
}

func BenchmarkDensityEps(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			density := randField(b, n, 1337)
			background, _ := field.Filled(n, n, 1.0)
			region := halfRegion(b, n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eps, err := param.DensityEps(field.Real{}, density, background, region, 12.0)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = eps
			}
		})
	}
}

func BenchmarkSigmoid(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, err := field.Map(randField(b, n, 42), func(v float64) float64 { return 200*v - 100 })
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := param.Sigmoid(field.Real{}, x, 1)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = out
			}
		})
	}
}

func BenchmarkCircles_Composite(b *testing.B) {
	b.ReportAllocs()
	p := param.PackCircles([]param.Circle[float64]{
		{X: -1, Y: 0, R: 1, Value: 4},
		{X: 1, Y: 0.5, R: 0.8, Value: 9},
		{X: 0, Y: -1, R: 1.2, Value: 2},
	})
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("real/n=%d", n), func(b *testing.B) {
			background, _ := field.Filled(n, n, 1.0)
			c, err := param.NewCircles(field.Real{}, background, 6.0/float64(n))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eps, err := c.Eps(p)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = eps
			}
		})
		b.Run(fmt.Sprintf("dual/n=%d", n), func(b *testing.B) {
			background, _ := field.Filled(n, n, 1.0)
			c, err := param.NewCircles(field.Dual{}, background, 6.0/float64(n))
			if err != nil {
				b.Fatal(err)
			}
			pd := make([]dual.Number, len(p))
			for k := range p {
				pd[k] = dual.Number{Real: p[k]}
			}
			pd[2].Emag = 1
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eps, err := c.Eps(pd)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = eps
			}
		})
	}
}
