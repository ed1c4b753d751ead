// Package nn implements the building blocks of a dense feedforward network.
//
// This package provides:
//   - Activation: per-neuron nonlinearity (Linear, ReLU, LeakyReLU, Sigmoid, Tanh)
//   - Loss: per-output error measure (MSE, MAE, Huber)
//   - Layer: fully connected stage with its own weight, bias and gradient buffers
//   - OutputLayer: terminal stage that seeds backpropagation from targets
//
// Layers do their matrix work through a blas.Provider and fan per-neuron
// work out with the parallel package.
package nn
