package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/feedforward/internal/blas"
	"github.com/born-ml/feedforward/internal/parallel"
)

// LayerConfig holds the collaborators a Layer is built with.
type LayerConfig struct {
	Rand     *rand.Rand      // Weight initialisation source (default: NewRand(0))
	BLAS     blas.Provider   // Linear algebra provider (default: blas.Gonum())
	Parallel parallel.Config // Per-neuron fan-out (default: parallel.DefaultConfig())
}

func (c LayerConfig) withDefaults() LayerConfig {
	if c.Rand == nil {
		c.Rand = NewRand(0)
	}
	if c.BLAS == nil {
		c.BLAS = blas.Gonum()
	}
	if c.Parallel == (parallel.Config{}) {
		c.Parallel = parallel.DefaultConfig()
	}
	return c
}

// Layer is one fully connected stage: a = f(W·x + b).
//
// Buffers are owned by the layer and reused across calls:
//   - weights: [perceptronSize, inputSize] row-major, one row per neuron
//   - activations: post-activation output of the last Forward
//   - errorGradient, weightGradient, biasGradient: written by Backward,
//     consumed and cleared by Update
//
// A Layer is not safe for concurrent use. Forward, Backward and Update on
// the same layer must be sequenced by the caller.
type Layer struct {
	perceptronSize int
	inputSize      int
	activation     Activation

	weights     []float32
	biases      []float32
	activations []float32

	errorGradient  []float32
	weightGradient []float32
	biasGradient   []float32

	// propagated holds W_next^T · dE_next before the local slope is applied;
	// slope holds f'(a) per neuron.
	propagated []float32
	slope      []float32

	blas blas.Provider
	par  parallel.Config
}

// NewLayer creates a layer of perceptronSize neurons, each reading inputSize
// values. Weights are drawn from U[-1, 1) using cfg.Rand; biases start at zero.
func NewLayer(perceptronSize, inputSize int, activation Activation, cfg LayerConfig) (*Layer, error) {
	if perceptronSize <= 0 || inputSize <= 0 {
		return nil, fmt.Errorf("%w: %d neurons x %d inputs", ErrInvalidSize, perceptronSize, inputSize)
	}
	if activation == nil {
		return nil, fmt.Errorf("%w: nil", ErrUnknownActivation)
	}
	cfg = cfg.withDefaults()

	l := &Layer{
		perceptronSize: perceptronSize,
		inputSize:      inputSize,
		activation:     activation,
		weights:        make([]float32, perceptronSize*inputSize),
		biases:         make([]float32, perceptronSize),
		activations:    make([]float32, perceptronSize),
		errorGradient:  make([]float32, perceptronSize),
		weightGradient: make([]float32, perceptronSize*inputSize),
		biasGradient:   make([]float32, perceptronSize),
		propagated:     make([]float32, perceptronSize),
		slope:          make([]float32, perceptronSize),
		blas:           cfg.BLAS,
		par:            cfg.Parallel,
	}
	Uniform(cfg.Rand, l.weights, -1, 1)

	return l, nil
}

// Forward computes activations[i] = f(W_i · inputs + b_i) and returns the
// activations buffer. The returned slice is overwritten by the next call.
//
// Panics if len(inputs) != InputSize().
func (l *Layer) Forward(inputs []float32) []float32 {
	if len(inputs) != l.inputSize {
		panic(fmt.Sprintf("Layer.Forward: expected %d inputs, got %d", l.inputSize, len(inputs)))
	}

	l.blas.Gemv(false, l.perceptronSize, l.inputSize, 1, l.weights, inputs, 0, l.activations)

	parallel.Range(l.perceptronSize, func(start, end int) {
		for i := start; i < end; i++ {
			l.activations[i] = l.activation.Activate(l.activations[i] + l.biases[i])
		}
	}, l.par)

	return l.activations
}

// Backward propagates next's error gradient through next's weights, scales
// it by this layer's activation slope, and accumulates weight and bias
// gradients against inputs (the activations that fed this layer).
//
// next must read this layer's output, i.e. next.InputSize() == PerceptronSize().
// Returns l so the caller can continue with the previous layer.
func (l *Layer) Backward(next *Layer, inputs []float32) *Layer {
	if next.inputSize != l.perceptronSize {
		panic(fmt.Sprintf("Layer.Backward: next layer reads %d values, this layer produces %d",
			next.inputSize, l.perceptronSize))
	}
	if len(inputs) != l.inputSize {
		panic(fmt.Sprintf("Layer.Backward: expected %d inputs, got %d", l.inputSize, len(inputs)))
	}

	// propagated = W_next^T · dE_next
	l.blas.Gemv(true, next.perceptronSize, next.inputSize, 1, next.weights, next.errorGradient, 0, l.propagated)

	parallel.Range(l.perceptronSize, func(start, end int) {
		for i := start; i < end; i++ {
			l.slope[i] = l.activation.Derivative(l.activations[i])
		}
	}, l.par)

	l.blas.Mul(l.perceptronSize, l.slope, l.propagated, l.errorGradient)
	l.accumulateGradients(inputs)

	return l
}

// accumulateGradients sets dW = dE ⊗ inputs and adds dE into dB.
func (l *Layer) accumulateGradients(inputs []float32) {
	l.blas.Gemm(false, false, l.perceptronSize, l.inputSize, 1,
		1, l.errorGradient, inputs, 0, l.weightGradient)
	l.blas.Axpy(l.perceptronSize, 1, l.errorGradient, l.biasGradient)
}

// Update applies W -= lr*dW and b -= lr*dB, then clears all gradients.
func (l *Layer) Update(lr float32) {
	l.blas.Axpy(len(l.weights), -lr, l.weightGradient, l.weights)
	l.blas.Axpy(l.perceptronSize, -lr, l.biasGradient, l.biases)
	l.ZeroGrad()
}

// ZeroGrad clears the error, weight and bias gradients.
func (l *Layer) ZeroGrad() {
	clear(l.errorGradient)
	clear(l.weightGradient)
	clear(l.biasGradient)
}

// PerceptronSize returns the number of neurons (output width).
func (l *Layer) PerceptronSize() int {
	return l.perceptronSize
}

// InputSize returns the expected input width.
func (l *Layer) InputSize() int {
	return l.inputSize
}

// Activation returns the layer's activation strategy.
func (l *Layer) Activation() Activation {
	return l.activation
}

// Weights returns the weight buffer, row-major [PerceptronSize, InputSize].
// The slice aliases layer state.
func (l *Layer) Weights() []float32 {
	return l.weights
}

// Biases returns the bias buffer. The slice aliases layer state.
func (l *Layer) Biases() []float32 {
	return l.biases
}

// Activations returns the output of the most recent Forward.
func (l *Layer) Activations() []float32 {
	return l.activations
}

// ErrorGradient returns dE from the most recent Backward.
func (l *Layer) ErrorGradient() []float32 {
	return l.errorGradient
}

// WeightGradient returns the pending weight gradient.
func (l *Layer) WeightGradient() []float32 {
	return l.weightGradient
}

// BiasGradient returns the pending bias gradient.
func (l *Layer) BiasGradient() []float32 {
	return l.biasGradient
}
