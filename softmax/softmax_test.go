// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package softmax_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linclass/gradcheck"
	"github.com/born-ml/linclass/softmax"
)

func TestPublicAPI(t *testing.T) {
	rng := rand.New(rand.NewSource(2025))
	const d, c, n = 8, 3, 12

	w := mat.NewDense(d, c, nil)
	w.Apply(func(_, _ int, _ float64) float64 { return rng.NormFloat64() * 0.01 }, w)
	x := mat.NewDense(n, d, nil)
	x.Apply(func(_, _ int, _ float64) float64 { return rng.NormFloat64() }, x)
	y := make([]int, n)
	for i := range y {
		y[i] = rng.Intn(c)
	}

	require.NoError(t, softmax.CheckShapes(w, x, y))

	kind, err := softmax.ParseRegularization("l1")
	require.NoError(t, err)
	assert.Equal(t, softmax.L1, kind)

	lossN, gradN := softmax.LossNaive(w, x, y, 1e-2, kind)
	lossV, gradV, err := softmax.CheckedLossVectorized(w, x, y, 1e-2, kind)
	require.NoError(t, err)

	assert.InDelta(t, lossN, lossV, 1e-10)
	assert.True(t, mat.EqualApprox(gradN, gradV, 1e-10))

	// Small weights: close to uniform over 3 classes plus the penalty.
	assert.InDelta(t, math.Log(3)+softmax.Penalty(w, 1e-2, kind), lossV, 0.1)

	f := func(w *mat.Dense) float64 {
		loss, _ := softmax.LossVectorized(w, x, y, 1e-2, kind)
		return loss
	}
	samples := gradcheck.Sparse(f, w, gradV, gradcheck.DefaultConfig())
	assert.Less(t, gradcheck.MaxRelError(samples), 1e-4)

	probs := softmax.Probabilities(mat.NewDense(1, 2, []float64{0, 0}))
	assert.InDelta(t, 0.5, probs.At(0, 0), 1e-15)

	_, _, err = softmax.CheckedLossNaive(w, x, y[:1], 0, softmax.L2)
	assert.ErrorIs(t, err, softmax.ErrShapeMismatch)

	_, err = softmax.ParseRegularization("L0")
	assert.ErrorIs(t, err, softmax.ErrUnknownRegularization)
}
