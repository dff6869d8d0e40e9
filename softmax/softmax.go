// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package softmax

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linclass/internal/softmax"
)

// Regularization selects the weight penalty. The zero value is L2.
type Regularization = softmax.Regularization

// Regularization kinds.
const (
	L2 = softmax.L2
	L1 = softmax.L1
)

// Func is the signature shared by LossNaive and LossVectorized.
type Func = softmax.Func

// Errors reported by CheckShapes, the Checked* evaluators and ParseRegularization.
var (
	ErrShapeMismatch         = softmax.ErrShapeMismatch
	ErrLabelOutOfRange       = softmax.ErrLabelOutOfRange
	ErrEmptyBatch            = softmax.ErrEmptyBatch
	ErrUnknownRegularization = softmax.ErrUnknownRegularization
)

// ParseRegularization converts "L1" or "L2" (case-insensitive) to a
// Regularization. An empty name selects L2.
func ParseRegularization(name string) (Regularization, error) {
	return softmax.ParseRegularization(name)
}

// LossNaive computes the loss and dL/dW with explicit loops.
//
// Example:
//
//	loss, dW := softmax.LossNaive(W, X, y, 5e-6, softmax.L2)
func LossNaive(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense) {
	return softmax.Naive(w, x, y, reg, kind)
}

// LossVectorized computes the loss and dL/dW with whole-matrix operations.
//
// Example:
//
//	loss, dW := softmax.LossVectorized(W, X, y, 5e-6, softmax.L1)
func LossVectorized(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense) {
	return softmax.Vectorized(w, x, y, reg, kind)
}

// CheckedLossNaive is LossNaive returning shape errors instead of panicking.
func CheckedLossNaive(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense, error) {
	return softmax.CheckedNaive(w, x, y, reg, kind)
}

// CheckedLossVectorized is LossVectorized returning shape errors instead of panicking.
func CheckedLossVectorized(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense, error) {
	return softmax.CheckedVectorized(w, x, y, reg, kind)
}

// CheckShapes verifies W [D, C], X [N, D] and y [N] agree and labels lie in [0, C).
func CheckShapes(w, x mat.Matrix, y []int) error {
	return softmax.CheckShapes(w, x, y)
}

// Penalty returns the regularization term reg * Σ W² (L2) or reg * Σ |W| (L1).
func Penalty(w mat.Matrix, reg float64, kind Regularization) float64 {
	return softmax.Penalty(w, reg, kind)
}

// PenaltyGrad returns the gradient of Penalty with respect to W.
func PenaltyGrad(w mat.Matrix, reg float64, kind Regularization) *mat.Dense {
	return softmax.PenaltyGrad(w, reg, kind)
}

// Probabilities returns the row-wise softmax of an [N, C] score matrix.
func Probabilities(scores mat.Matrix) *mat.Dense {
	return softmax.Probabilities(scores)
}
