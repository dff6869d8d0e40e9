package softmax

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Naive computes the softmax loss and its gradient with explicit loops over
// the examples and, for the gradient, over the classes.
//
// Parameters:
//   - w: weights [D, C]
//   - x: minibatch [N, D]
//   - y: labels [N], y[i] in [0, C)
//   - reg: regularization strength (>= 0)
//   - kind: L1 or L2
//
// Returns the mean loss plus penalty and dL/dW [D, C].
// Panics if the shapes are inconsistent (see CheckShapes).
func Naive(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense) {
	mustCheckShapes(w, x, y)

	d, c := w.Dims()
	n := len(y)

	var scores mat.Dense
	scores.Mul(x, w)

	loss := 0.0
	dW := mat.NewDense(d, c, nil)
	logProbs := make([]float64, c)

	for i := 0; i < n; i++ {
		copy(logProbs, scores.RawRowView(i))
		logSoftmaxRow(logProbs)
		loss -= logProbs[y[i]]

		xi := x.RawRowView(i)
		for j := 0; j < c; j++ {
			// dL_i/ds_ij = p_ij - 1{j == y_i}
			g := math.Exp(logProbs[j])
			if j == y[i] {
				g--
			}
			for k := 0; k < d; k++ {
				dW.Set(k, j, dW.At(k, j)+g*xi[k])
			}
		}
	}

	loss /= float64(n)
	dW.Scale(1/float64(n), dW)

	loss += Penalty(w, reg, kind)
	dW.Add(dW, PenaltyGrad(w, reg, kind))

	return loss, dW
}
