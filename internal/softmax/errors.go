package softmax

import "errors"

var (
	// ErrShapeMismatch is returned when W, X and y do not describe the same problem.
	ErrShapeMismatch = errors.New("softmax: shape mismatch")

	// ErrLabelOutOfRange is returned when a label is outside [0, C).
	ErrLabelOutOfRange = errors.New("softmax: label out of range")

	// ErrEmptyBatch is returned when the label vector is empty.
	ErrEmptyBatch = errors.New("softmax: empty batch")

	// ErrUnknownRegularization is returned by ParseRegularization for unrecognized names.
	ErrUnknownRegularization = errors.New("softmax: unknown regularization")
)
