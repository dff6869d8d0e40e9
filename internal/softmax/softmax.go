package softmax

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Func is the signature shared by Naive and Vectorized.
type Func func(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense)

// LogProbabilities returns log(softmax(row)) for every row of an [N, C] score
// matrix. Each row is shifted by its maximum before exponentiating, so the
// result stays finite for arbitrarily large scores.
//
//	log_p[i, c] = s[i, c] - max_i - log(Σ_c' exp(s[i, c'] - max_i))
func LogProbabilities(scores mat.Matrix) *mat.Dense {
	n, c := scores.Dims()

	// Subtract the per-row maximum (broadcast over columns).
	peaks := rowMax(scores)
	var shifted mat.Dense
	shifted.Apply(func(i, _ int, v float64) float64 {
		return v - peaks.AtVec(i)
	}, scores)

	var exps mat.Dense
	exps.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, &shifted)

	// Row sums as a matrix-vector product with a ones vector.
	ones := make([]float64, c)
	floats.AddConst(1, ones)
	var sums mat.VecDense
	sums.MulVec(&exps, mat.NewVecDense(c, ones))

	logSums := make([]float64, n)
	for i := range logSums {
		logSums[i] = math.Log(sums.AtVec(i))
	}

	var out mat.Dense
	out.Apply(func(i, _ int, v float64) float64 {
		return v - logSums[i]
	}, &shifted)
	return &out
}

// Probabilities returns softmax(row) for every row of an [N, C] score matrix.
// The input is left untouched.
func Probabilities(scores mat.Matrix) *mat.Dense {
	probs := LogProbabilities(scores)
	probs.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, probs)
	return probs
}

// logSoftmaxRow overwrites z with log(softmax(z)).
func logSoftmaxRow(z []float64) {
	maxZ := z[0]
	for _, v := range z[1:] {
		if v > maxZ {
			maxZ = v
		}
	}

	sumExp := 0.0
	for j := range z {
		z[j] -= maxZ
		sumExp += math.Exp(z[j])
	}

	logSumExp := math.Log(sumExp)
	for j := range z {
		z[j] -= logSumExp
	}
}

// rowMax returns the maximum of every row of m.
func rowMax(m mat.Matrix) *mat.VecDense {
	n, _ := m.Dims()
	row := rowReader(m)
	peaks := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		peaks.SetVec(i, floats.Max(row(i)))
	}
	return peaks
}

// oneHot returns the [N, C] indicator matrix with a single 1 per row at y[i].
func oneHot(y []int, c int) *mat.Dense {
	m := mat.NewDense(len(y), c, nil)
	for i, label := range y {
		m.Set(i, label, 1)
	}
	return m
}

// rowReader returns a row accessor for m that avoids copying when the
// matrix exposes its backing storage.
func rowReader(m mat.Matrix) func(i int) []float64 {
	if rv, ok := m.(mat.RawRowViewer); ok {
		return rv.RawRowView
	}
	return func(i int) []float64 {
		return mat.Row(nil, i, m)
	}
}
