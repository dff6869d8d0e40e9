// Package gradcheck compares analytic gradients against central finite
// differences.
//
// Central difference:
//
//	∂f/∂w_ij ≈ (f(W + h·e_ij) - f(W - h·e_ij)) / 2h
//
// Numerical computes the full matrix; Sparse probes a random subset of
// coordinates, which is what you want for large weight matrices.
package gradcheck

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linclass/internal/parallel"
)

// Config controls Sparse.
type Config struct {
	// NumChecks is the number of random coordinates to probe.
	NumChecks int

	// Step is the finite-difference step h.
	Step float64

	// Seed for coordinate selection.
	Seed int64

	// Parallel fans probes out across goroutines. f must be safe for concurrent use.
	Parallel parallel.Config
}

// DefaultConfig returns a Config probing 10 coordinates with h = 1e-5.
func DefaultConfig() Config {
	return Config{
		NumChecks: 10,
		Step:      1e-5,
		Seed:      1,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Sample is the result of probing one coordinate.
type Sample struct {
	Row, Col  int
	Analytic  float64
	Numerical float64
	RelError  float64
}

// RelError returns |a - b| / (|a| + |b|), or 0 when both are zero.
func RelError(a, b float64) float64 {
	den := math.Abs(a) + math.Abs(b)
	if den == 0 {
		return 0
	}
	return math.Abs(a-b) / den
}

// MaxRelError returns the largest RelError among samples.
func MaxRelError(samples []Sample) float64 {
	worst := 0.0
	for _, s := range samples {
		worst = math.Max(worst, s.RelError)
	}
	return worst
}

// Numerical returns the central-difference gradient of f at w with step h.
// w is not modified; f must not modify its argument.
func Numerical(f func(w *mat.Dense) float64, w mat.Matrix, h float64) *mat.Dense {
	r, c := w.Dims()
	x := mat.DenseCopyOf(w).RawMatrix().Data

	grad := fd.Gradient(nil, func(x []float64) float64 {
		return f(mat.NewDense(r, c, x))
	}, x, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})

	return mat.NewDense(r, c, grad)
}

// Sparse probes cfg.NumChecks random coordinates of w and compares the
// central difference of f with analytic. Each probe works on its own copy
// of w.
func Sparse(f func(w *mat.Dense) float64, w, analytic mat.Matrix, cfg Config) []Sample {
	if cfg.NumChecks <= 0 {
		return nil
	}
	h := cfg.Step
	if h <= 0 {
		h = DefaultConfig().Step
	}

	r, c := w.Dims()
	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // coordinate sampling

	samples := make([]Sample, cfg.NumChecks)
	for k := range samples {
		i, j := rng.Intn(r), rng.Intn(c)
		samples[k] = Sample{Row: i, Col: j, Analytic: analytic.At(i, j)}
	}

	parallel.For(len(samples), func(k int) {
		s := &samples[k]
		probe := mat.DenseCopyOf(w)
		orig := probe.At(s.Row, s.Col)

		probe.Set(s.Row, s.Col, orig+h)
		plus := f(probe)
		probe.Set(s.Row, s.Col, orig-h)
		minus := f(probe)

		s.Numerical = (plus - minus) / (2 * h)
		s.RelError = RelError(s.Analytic, s.Numerical)
	}, cfg.Parallel)

	return samples
}
