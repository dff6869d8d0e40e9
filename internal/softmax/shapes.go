package softmax

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CheckShapes verifies that W [D, C], X [N, D] and y [N] are consistent and
// that every label lies in [0, C).
func CheckShapes(w, x mat.Matrix, y []int) error {
	if isNil(w) || isNil(x) {
		return fmt.Errorf("%w: nil matrix", ErrShapeMismatch)
	}
	if len(y) == 0 {
		return ErrEmptyBatch
	}

	d, c := w.Dims()
	n, dx := x.Dims()
	if dx != d {
		return fmt.Errorf("%w: X has %d features, W has %d rows", ErrShapeMismatch, dx, d)
	}
	if n != len(y) {
		return fmt.Errorf("%w: X has %d rows, y has %d labels", ErrShapeMismatch, n, len(y))
	}

	for i, label := range y {
		if label < 0 || label >= c {
			return fmt.Errorf("%w: y[%d] = %d, want [0, %d)", ErrLabelOutOfRange, i, label, c)
		}
	}
	return nil
}

func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*mat.Dense)
	return ok && d == nil
}

func mustCheckShapes(w, x mat.Matrix, y []int) {
	if err := CheckShapes(w, x, y); err != nil {
		panic(err)
	}
}

// CheckedNaive is Naive with the shape check reported as an error instead of a panic.
func CheckedNaive(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense, error) {
	return checked(Naive, w, x, y, reg, kind)
}

// CheckedVectorized is Vectorized with the shape check reported as an error instead of a panic.
func CheckedVectorized(w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense, error) {
	return checked(Vectorized, w, x, y, reg, kind)
}

func checked(f Func, w, x *mat.Dense, y []int, reg float64, kind Regularization) (float64, *mat.Dense, error) {
	if err := CheckShapes(w, x, y); err != nil {
		return 0, nil, err
	}
	if kind != L1 && kind != L2 {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnknownRegularization, kind)
	}
	loss, grad := f(w, x, y, reg, kind)
	return loss, grad, nil
}
