package softmax

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Regularization selects the weight penalty added to the loss.
//
// The zero value is L2.
type Regularization int

const (
	// L2 penalizes the sum of squared weights.
	L2 Regularization = iota
	// L1 penalizes the sum of absolute weights.
	L1
)

// String returns "L1" or "L2".
func (r Regularization) String() string {
	switch r {
	case L2:
		return "L2"
	case L1:
		return "L1"
	default:
		return fmt.Sprintf("Regularization(%d)", int(r))
	}
}

// ParseRegularization converts a name such as "L1" or "l2" to a Regularization.
// An empty name selects L2.
func ParseRegularization(name string) (Regularization, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "L2":
		return L2, nil
	case "L1":
		return L1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegularization, name)
	}
}

// Penalty returns the regularization term for W.
//
//	L2: reg * Σ W²
//	L1: reg * Σ |W|
func Penalty(w mat.Matrix, reg float64, kind Regularization) float64 {
	if reg == 0 {
		return 0
	}
	d, _ := w.Dims()
	row := rowReader(w)

	var sum float64
	for i := 0; i < d; i++ {
		r := row(i)
		switch kind {
		case L2:
			sum += floats.Dot(r, r)
		case L1:
			sum += floats.Norm(r, 1)
		default:
			panic(fmt.Sprintf("softmax: penalty for %v", kind))
		}
	}
	return reg * sum
}

// PenaltyGrad returns the gradient of Penalty with respect to W as a new matrix.
//
//	L2: 2 * reg * W
//	L1: reg * sign(W), with sign(0) = 0
func PenaltyGrad(w mat.Matrix, reg float64, kind Regularization) *mat.Dense {
	d, c := w.Dims()
	grad := mat.NewDense(d, c, nil)
	if reg == 0 {
		return grad
	}

	switch kind {
	case L2:
		grad.Scale(2*reg, w)
	case L1:
		grad.Apply(func(_, _ int, v float64) float64 {
			return reg * sign(v)
		}, w)
	default:
		panic(fmt.Sprintf("softmax: penalty gradient for %v", kind))
	}
	return grad
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	case math.IsNaN(v):
		return v
	default:
		return 0
	}
}
