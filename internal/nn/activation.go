package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation is a per-neuron nonlinearity.
//
// Derivative receives the activated value y = Activate(x), not the raw
// input, so layers can compute slopes from the activations they already
// store.
type Activation interface {
	// Activate maps a weighted sum to the neuron output.
	Activate(x float32) float32

	// Derivative returns dActivate/dx expressed in terms of y = Activate(x).
	Derivative(y float32) float32
}

// Linear is the identity activation: f(x) = x.
type Linear struct{}

// NewLinear creates a Linear activation.
func NewLinear() Linear {
	return Linear{}
}

// Activate returns x unchanged.
func (Linear) Activate(x float32) float32 {
	return x
}

// Derivative is always 1.
func (Linear) Derivative(float32) float32 {
	return 1
}

// ReLU is a Rectified Linear Unit activation.
//
// Applies the element-wise function: f(x) = max(0, x)
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() ReLU {
	return ReLU{}
}

// Activate applies f(x) = max(0, x).
func (ReLU) Activate(x float32) float32 {
	return max(0, x)
}

// Derivative is 1 for positive outputs and 0 otherwise.
func (ReLU) Derivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return 0
}

// DefaultLeakyReLUAlpha is the negative slope used when none is given.
const DefaultLeakyReLUAlpha = 0.01

// LeakyReLU keeps a small slope alpha for negative inputs:
// f(x) = x for x > 0, alpha*x otherwise.
type LeakyReLU struct {
	alpha float32
}

// NewLeakyReLU creates a LeakyReLU with the given negative slope.
// A zero alpha selects DefaultLeakyReLUAlpha.
func NewLeakyReLU(alpha float32) LeakyReLU {
	if alpha == 0 {
		alpha = DefaultLeakyReLUAlpha
	}
	return LeakyReLU{alpha: alpha}
}

// Alpha returns the negative slope.
func (l LeakyReLU) Alpha() float32 {
	return l.alpha
}

// Activate applies the leaky rectifier.
func (l LeakyReLU) Activate(x float32) float32 {
	if x > 0 {
		return x
	}
	return l.alpha * x
}

// Derivative is 1 for positive outputs and alpha otherwise.
func (l LeakyReLU) Derivative(y float32) float32 {
	if y > 0 {
		return 1
	}
	return l.alpha
}

// Sigmoid is the logistic activation.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
//
// Sigmoid squashes values to the range (0, 1).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid {
	return Sigmoid{}
}

// Activate applies σ(x) = 1 / (1 + exp(-x)).
func (Sigmoid) Activate(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

// Derivative returns y * (1 - y).
func (Sigmoid) Derivative(y float32) float32 {
	return y * (1 - y)
}

// Tanh is the hyperbolic tangent activation.
//
// Tanh squashes values to the range (-1, 1).
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() Tanh {
	return Tanh{}
}

// Activate applies tanh(x).
func (Tanh) Activate(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// Derivative returns 1 - y².
func (Tanh) Derivative(y float32) float32 {
	return 1 - y*y
}

// ActivationByName resolves a configuration name to an Activation.
// Accepted names: linear, relu, leaky_relu, sigmoid, tanh.
func ActivationByName(name string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "identity":
		return NewLinear(), nil
	case "relu":
		return NewReLU(), nil
	case "leaky_relu", "leakyrelu":
		return NewLeakyReLU(DefaultLeakyReLUAlpha), nil
	case "sigmoid":
		return NewSigmoid(), nil
	case "tanh":
		return NewTanh(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
}
