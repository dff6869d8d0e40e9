// Package softmax implements the softmax cross-entropy loss of a linear
// classifier and its gradient with respect to the weight matrix.
//
// Shapes follow the usual minibatch convention:
//
//	W: [D, C]  weights (features x classes)
//	X: [N, D]  minibatch of N examples
//	y: [N]     class indices in [0, C)
//
// Two evaluators compute the same quantities:
//
//	loss, dW := softmax.Naive(W, X, y, reg, softmax.L2)       // explicit loops
//	loss, dW := softmax.Vectorized(W, X, y, reg, softmax.L2)  // whole-matrix ops
//
// Both shift every score row by its maximum before exponentiating, average the
// cross-entropy over the batch and then add the regularization penalty:
//
//	L2: reg * Σ W²    gradient 2 * reg * W
//	L1: reg * Σ |W|   gradient reg * sign(W), sign(0) = 0
//
// Inputs are never modified and dW is always a freshly allocated [D, C] matrix.
package softmax
