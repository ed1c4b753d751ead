// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"

	"github.com/born-ml/feedforward/internal/nn"
	"github.com/born-ml/feedforward/internal/progress"
)

// Activations

// Activation is a per-neuron nonlinearity whose derivative is expressed in
// terms of its own output.
type Activation = nn.Activation

// Linear is the identity activation.
type Linear = nn.Linear

// ReLU is the rectified linear unit.
type ReLU = nn.ReLU

// LeakyReLU is a rectifier with a small negative slope.
type LeakyReLU = nn.LeakyReLU

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewLinear creates the identity activation.
func NewLinear() Linear { return nn.NewLinear() }

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return nn.NewReLU() }

// NewLeakyReLU creates a LeakyReLU; alpha 0 selects 0.01.
func NewLeakyReLU(alpha float32) LeakyReLU { return nn.NewLeakyReLU(alpha) }

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return nn.NewSigmoid() }

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return nn.NewTanh() }

// ActivationByName resolves linear, relu, leaky_relu, sigmoid or tanh.
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// Loss functions

// Loss compares a target value with a prediction.
type Loss = nn.Loss

// MSELoss is the squared error.
type MSELoss = nn.MSELoss

// MAELoss is the absolute error.
type MAELoss = nn.MAELoss

// HuberLoss is quadratic near zero and linear beyond delta.
type HuberLoss = nn.HuberLoss

// NewMSELoss creates a squared-error loss.
func NewMSELoss() MSELoss { return nn.NewMSELoss() }

// NewMAELoss creates an absolute-error loss.
func NewMAELoss() MAELoss { return nn.NewMAELoss() }

// NewHuberLoss creates a Huber loss; delta 0 selects 1.0.
func NewHuberLoss(delta float32) HuberLoss { return nn.NewHuberLoss(delta) }

// LossByName resolves mse, mae or huber.
func LossByName(name string) (Loss, error) {
	return nn.LossByName(name)
}

// Layers

// Layer is a fully connected stage with its own parameter and gradient buffers.
type Layer = nn.Layer

// OutputLayer is the terminal stage holding the loss function.
type OutputLayer = nn.OutputLayer

// Errors

var (
	ErrOutputInitialized    = nn.ErrOutputInitialized
	ErrOutputNotInitialized = nn.ErrOutputNotInitialized
	ErrNoForwardPass        = nn.ErrNoForwardPass
	ErrShapeMismatch        = nn.ErrShapeMismatch
	ErrInvalidSize          = nn.ErrInvalidSize
	ErrUnknownActivation    = nn.ErrUnknownActivation
	ErrUnknownLoss          = nn.ErrUnknownLoss
)

// Progress

// ProgressBar renders one line per epoch during Train.
type ProgressBar = progress.Bar

// NewProgressBar creates a ProgressBar writing to w.
func NewProgressBar(w io.Writer) *ProgressBar {
	return progress.New(w)
}
