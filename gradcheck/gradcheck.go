// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck validates analytic gradients against central finite
// differences.
//
// Example:
//
//	f := func(w *mat.Dense) float64 {
//	    loss, _ := softmax.LossVectorized(w, X, y, reg, softmax.L2)
//	    return loss
//	}
//	_, dW := softmax.LossVectorized(W, X, y, reg, softmax.L2)
//	samples := gradcheck.Sparse(f, W, dW, gradcheck.DefaultConfig())
//	if gradcheck.MaxRelError(samples) > 1e-5 {
//	    // analytic gradient is off
//	}
package gradcheck

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linclass/internal/gradcheck"
)

// Config controls Sparse.
type Config = gradcheck.Config

// Sample is the outcome of probing a single coordinate.
type Sample = gradcheck.Sample

// DefaultConfig probes 10 random coordinates with step 1e-5.
func DefaultConfig() Config {
	return gradcheck.DefaultConfig()
}

// Numerical returns the full central-difference gradient of f at w.
func Numerical(f func(w *mat.Dense) float64, w mat.Matrix, h float64) *mat.Dense {
	return gradcheck.Numerical(f, w, h)
}

// Sparse compares analytic against central differences at cfg.NumChecks
// random coordinates of w.
func Sparse(f func(w *mat.Dense) float64, w, analytic mat.Matrix, cfg Config) []Sample {
	return gradcheck.Sparse(f, w, analytic, cfg)
}

// RelError returns |a - b| / (|a| + |b|), or 0 when both are zero.
func RelError(a, b float64) float64 {
	return gradcheck.RelError(a, b)
}

// MaxRelError returns the largest relative error among samples.
func MaxRelError(samples []Sample) float64 {
	return gradcheck.MaxRelError(samples)
}
