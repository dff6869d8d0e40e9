// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package softmax provides the softmax cross-entropy loss of a linear
// classifier together with its gradient with respect to the weights.
//
// # Overview
//
// For weights W [D, C], a minibatch X [N, D] and labels y [N]:
//
//	scores = X·W
//	p      = softmax(scores)            (row-wise, max-shifted)
//	loss   = mean_i -log p[i, y[i]] + penalty(W)
//	dW     = Xᵀ·(p - onehot(y)) / N + penalty'(W)
//
// Two evaluators return identical results up to rounding:
//
//	loss, dW := softmax.LossNaive(W, X, y, 1e-3, softmax.L2)
//	loss, dW := softmax.LossVectorized(W, X, y, 1e-3, softmax.L2)
//
// LossNaive walks examples and classes with explicit loops and is the
// reference. LossVectorized uses whole-matrix gonum operations and is the one
// to call from an optimizer.
//
// # Regularization
//
//	L2: reg * Σ W²    gradient 2 * reg * W
//	L1: reg * Σ |W|   gradient reg * sign(W)
//
// Names coming from flags or config files can be converted with
// ParseRegularization ("L1", "L2", or "" for the L2 default).
//
// # Errors
//
// The evaluators panic on inconsistent shapes or out-of-range labels. Use
// CheckShapes up front, or the Checked* variants, to get an error instead.
package softmax
