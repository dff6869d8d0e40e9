package softmax

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vectorized computes the same loss and gradient as Naive using whole-matrix
// operations:
//
//	S  = X·W
//	P  = softmax(S)  (row-wise, max-shifted)
//	L  = -Σ(Y ⊙ log P) / N + penalty
//	dW = Xᵀ·(P - Y) / N + penalty gradient
//
// where Y is the one-hot label matrix. Panics if the shapes are inconsistent.
func Vectorized(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense) {
	mustCheckShapes(w, x, y)

	_, c := w.Dims()
	n := float64(len(y))

	var scores mat.Dense
	scores.Mul(x, w)

	logProbs := LogProbabilities(&scores)
	labels := oneHot(y, c)

	var picked mat.Dense
	picked.MulElem(labels, logProbs)
	loss := -mat.Sum(&picked) / n

	// P - Y, reusing the log-probability storage.
	delta := logProbs
	delta.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, logProbs)
	delta.Sub(delta, labels)

	var dW mat.Dense
	dW.Mul(x.T(), delta)
	dW.Scale(1/n, &dW)

	loss += Penalty(w, reg, kind)
	dW.Add(&dW, PenaltyGrad(w, reg, kind))

	return loss, &dW
}
