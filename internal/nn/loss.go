package nn

import (
	"fmt"
	"math"
	"strings"
)

// Loss compares one target value with one prediction.
type Loss interface {
	// Calculate returns the loss for a single output neuron.
	Calculate(real, predicted float32) float32

	// Derivative returns dLoss/dpredicted.
	Derivative(real, predicted float32) float32
}

// MSELoss computes the squared error of a single output.
//
// Loss = (real - predicted)²
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() MSELoss {
	return MSELoss{}
}

// Calculate returns (real - predicted)².
func (MSELoss) Calculate(real, predicted float32) float32 {
	d := real - predicted
	return d * d
}

// Derivative returns 2 * (predicted - real).
func (MSELoss) Derivative(real, predicted float32) float32 {
	return 2 * (predicted - real)
}

// MAELoss computes the absolute error: |real - predicted|.
type MAELoss struct{}

// NewMAELoss creates a new MAE loss function.
func NewMAELoss() MAELoss {
	return MAELoss{}
}

// Calculate returns |real - predicted|.
func (MAELoss) Calculate(real, predicted float32) float32 {
	return float32(math.Abs(float64(real - predicted)))
}

// Derivative returns 1 when the prediction overshoots and -1 otherwise.
func (MAELoss) Derivative(real, predicted float32) float32 {
	if predicted > real {
		return 1
	}
	return -1
}

// DefaultHuberDelta is the quadratic/linear switch point used when none is given.
const DefaultHuberDelta = 1.0

// HuberLoss is quadratic for errors up to delta and linear beyond it.
type HuberLoss struct {
	delta float32
}

// NewHuberLoss creates a Huber loss. A zero delta selects DefaultHuberDelta.
func NewHuberLoss(delta float32) HuberLoss {
	if delta == 0 {
		delta = DefaultHuberDelta
	}
	return HuberLoss{delta: delta}
}

// Delta returns the switch point between the quadratic and linear regions.
func (h HuberLoss) Delta() float32 {
	return h.delta
}

// Calculate returns 0.5e² for |e| <= delta, delta(|e| - delta/2) otherwise.
func (h HuberLoss) Calculate(real, predicted float32) float32 {
	e := real - predicted
	abs := float32(math.Abs(float64(e)))
	if abs <= h.delta {
		return 0.5 * e * e
	}
	return h.delta * (abs - 0.5*h.delta)
}

// Derivative returns e for |e| <= delta and delta*sign(e) otherwise,
// with e = predicted - real.
func (h HuberLoss) Derivative(real, predicted float32) float32 {
	e := predicted - real
	if float32(math.Abs(float64(e))) <= h.delta {
		return e
	}
	if e > 0 {
		return h.delta
	}
	return -h.delta
}

// LossByName resolves a configuration name to a Loss.
// Accepted names: mse, mae, huber.
func LossByName(name string) (Loss, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mse":
		return NewMSELoss(), nil
	case "mae":
		return NewMAELoss(), nil
	case "huber":
		return NewHuberLoss(DefaultHuberDelta), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLoss, name)
	}
}
