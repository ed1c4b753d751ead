package nn

import (
	"fmt"

	"github.com/born-ml/feedforward/internal/parallel"
)

// OutputLayer is the terminal stage of a network. It wraps a Layer with a
// loss function and seeds the backward pass from targets instead of from a
// following layer.
type OutputLayer struct {
	layer        *Layer
	lossFunction Loss
	loss         []float32 // per-neuron loss of the last Backward
}

// NewOutputLayer creates an output stage of perceptronSize neurons reading
// inputSize values.
func NewOutputLayer(perceptronSize, inputSize int, activation Activation, loss Loss, cfg LayerConfig) (*OutputLayer, error) {
	if loss == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnknownLoss)
	}
	layer, err := NewLayer(perceptronSize, inputSize, activation, cfg)
	if err != nil {
		return nil, err
	}
	return &OutputLayer{
		layer:        layer,
		lossFunction: loss,
		loss:         make([]float32, perceptronSize),
	}, nil
}

// Forward runs the wrapped layer's forward pass.
func (o *OutputLayer) Forward(inputs []float32) []float32 {
	return o.layer.Forward(inputs)
}

// Backward computes per-neuron loss and the error gradient
// dE[i] = L'(t_i, a_i) * f'(a_i), then the weight and bias gradients
// against inputs.
//
// Panics if len(targets) != PerceptronSize() or len(inputs) != InputSize().
func (o *OutputLayer) Backward(inputs, targets []float32) *OutputLayer {
	l := o.layer
	if len(targets) != l.perceptronSize {
		panic(fmt.Sprintf("OutputLayer.Backward: expected %d targets, got %d", l.perceptronSize, len(targets)))
	}
	if len(inputs) != l.inputSize {
		panic(fmt.Sprintf("OutputLayer.Backward: expected %d inputs, got %d", l.inputSize, len(inputs)))
	}

	parallel.Range(l.perceptronSize, func(start, end int) {
		for i := start; i < end; i++ {
			a := l.activations[i]
			o.loss[i] = o.lossFunction.Calculate(targets[i], a)
			l.errorGradient[i] = o.lossFunction.Derivative(targets[i], a) * l.activation.Derivative(a)
		}
	}, l.par)

	l.accumulateGradients(inputs)

	return o
}

// Update applies the wrapped layer's parameter update.
func (o *OutputLayer) Update(lr float32) {
	o.layer.Update(lr)
}

// Layer returns the wrapped layer. The previous hidden layer uses it as the
// next layer in its own Backward.
func (o *OutputLayer) Layer() *Layer {
	return o.layer
}

// LossFunction returns the loss strategy.
func (o *OutputLayer) LossFunction() Loss {
	return o.lossFunction
}

// Loss returns the per-neuron loss of the most recent Backward.
// The slice is overwritten by the next call.
func (o *OutputLayer) Loss() []float32 {
	return o.loss
}
