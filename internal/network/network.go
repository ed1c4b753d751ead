// Package network assembles nn layers into a trainable feedforward network.
//
// A Network is built in a fixed order: hidden layers first via AddHidden,
// then exactly one output stage via InitializeOutput. After that it can run
// Forward, Backward and Update steps, or the whole online training loop via
// Train.
//
// Example:
//
//	net, _ := network.New(2, 1, network.Config{Seed: 1})
//	_ = net.AddHidden(4, nn.NewTanh())
//	_ = net.InitializeOutput(nn.NewSigmoid(), nn.NewMSELoss())
//	history, err := net.Train(inputs, targets, network.TrainConfig{
//	    Epochs:       1000,
//	    LearningRate: 0.1,
//	})
package network

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/feedforward/internal/blas"
	"github.com/born-ml/feedforward/internal/nn"
	"github.com/born-ml/feedforward/internal/parallel"
)

// Config holds the collaborators shared by every layer of a network.
type Config struct {
	Seed     int64           // Seed for weight initialisation when Rand is nil (0: wall clock)
	Rand     *rand.Rand      // Explicit weight initialisation source
	BLAS     blas.Provider   // Linear algebra provider (default: blas.Gonum())
	Parallel parallel.Config // Per-neuron and per-layer fan-out (default: parallel.DefaultConfig())
}

// Network is an ordered stack of hidden layers followed by one output layer.
//
// A Network is not safe for concurrent use.
type Network struct {
	inputSize  int
	outputSize int

	hidden            []*nn.Layer
	output            *nn.OutputLayer
	outputInitialized bool

	// input is the last Forward input; the first hidden layer (or the output
	// layer when there are none) computes its weight gradient against it.
	input []float32

	layerCfg nn.LayerConfig
}

// New creates an empty network reading inputSize values and producing
// outputSize values.
func New(inputSize, outputSize int, cfg Config) (*Network, error) {
	if inputSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("network: %w: %d inputs, %d outputs", nn.ErrInvalidSize, inputSize, outputSize)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = nn.NewRand(cfg.Seed)
	}
	if cfg.BLAS == nil {
		cfg.BLAS = blas.Gonum()
	}
	if cfg.Parallel == (parallel.Config{}) {
		cfg.Parallel = parallel.DefaultConfig()
	}

	return &Network{
		inputSize:  inputSize,
		outputSize: outputSize,
		layerCfg: nn.LayerConfig{
			Rand:     rng,
			BLAS:     cfg.BLAS,
			Parallel: cfg.Parallel,
		},
	}, nil
}

// lastWidth is the width the next stage will read.
func (n *Network) lastWidth() int {
	if len(n.hidden) == 0 {
		return n.inputSize
	}
	return n.hidden[len(n.hidden)-1].PerceptronSize()
}

// AddHidden appends a hidden layer of perceptronSize neurons reading the
// previous stage's output. Fails with nn.ErrOutputInitialized once the
// output stage is attached; the layer list is left unchanged on error.
func (n *Network) AddHidden(perceptronSize int, activation nn.Activation) error {
	if n.outputInitialized {
		return fmt.Errorf("network: add hidden layer: %w", nn.ErrOutputInitialized)
	}

	layer, err := nn.NewLayer(perceptronSize, n.lastWidth(), activation, n.layerCfg)
	if err != nil {
		return fmt.Errorf("network: add hidden layer %d: %w", len(n.hidden), err)
	}
	n.hidden = append(n.hidden, layer)

	return nil
}

// InitializeOutput attaches the output layer, sized to the network's output
// width and wired to the last hidden layer (or the network input when there
// are no hidden layers). It completes the build sequence.
func (n *Network) InitializeOutput(activation nn.Activation, loss nn.Loss) error {
	if n.outputInitialized {
		return fmt.Errorf("network: initialize output: %w", nn.ErrOutputInitialized)
	}

	output, err := nn.NewOutputLayer(n.outputSize, n.lastWidth(), activation, loss, n.layerCfg)
	if err != nil {
		return fmt.Errorf("network: initialize output: %w", err)
	}
	n.output = output
	n.outputInitialized = true

	return nil
}

// Forward threads input through every hidden layer and then the output
// layer, returning the output activations. The returned slice is owned by
// the output layer and overwritten by the next Forward; use Predict for a
// copy.
func (n *Network) Forward(input []float32) ([]float32, error) {
	if !n.outputInitialized {
		return nil, fmt.Errorf("network: forward: %w", nn.ErrOutputNotInitialized)
	}
	if len(input) != n.inputSize {
		return nil, fmt.Errorf("network: forward: %w: expected %d inputs, got %d",
			nn.ErrShapeMismatch, n.inputSize, len(input))
	}

	n.input = append(n.input[:0], input...)

	out := n.input
	for _, layer := range n.hidden {
		out = layer.Forward(out)
	}

	return n.output.Forward(out), nil
}

// Predict runs Forward and returns a copy of the output.
func (n *Network) Predict(input []float32) ([]float32, error) {
	out, err := n.Forward(input)
	if err != nil {
		return nil, err
	}
	return append([]float32(nil), out...), nil
}

// Backward computes gradients for the most recent Forward against targets
// and returns the per-neuron loss. Layers are visited strictly from the
// output back to the first hidden layer.
func (n *Network) Backward(targets []float32) ([]float32, error) {
	if !n.outputInitialized {
		return nil, fmt.Errorf("network: backward: %w", nn.ErrOutputNotInitialized)
	}
	if n.input == nil {
		return nil, fmt.Errorf("network: backward: %w", nn.ErrNoForwardPass)
	}
	if len(targets) != n.outputSize {
		return nil, fmt.Errorf("network: backward: %w: expected %d targets, got %d",
			nn.ErrShapeMismatch, n.outputSize, len(targets))
	}

	n.output.Backward(n.layerInput(len(n.hidden)), targets)

	next := n.output.Layer()
	for i := len(n.hidden) - 1; i >= 0; i-- {
		next = n.hidden[i].Backward(next, n.layerInput(i))
	}

	return n.output.Loss(), nil
}

// layerInput returns what stage i read during Forward; stage len(hidden)
// is the output layer.
func (n *Network) layerInput(i int) []float32 {
	if i == 0 {
		return n.input
	}
	return n.hidden[i-1].Activations()
}

// Update applies one gradient descent step with learning rate lr to every
// layer and clears the gradients. Hidden layers own disjoint buffers and
// are updated concurrently; the output layer follows.
func (n *Network) Update(lr float32) {
	parallel.Each(len(n.hidden), func(i int) {
		n.hidden[i].Update(lr)
	}, n.layerCfg.Parallel)

	if n.output != nil {
		n.output.Update(lr)
	}
}

// InputSize returns the declared input width.
func (n *Network) InputSize() int {
	return n.inputSize
}

// OutputSize returns the declared output width.
func (n *Network) OutputSize() int {
	return n.outputSize
}

// Hidden returns the hidden layers in forward order.
func (n *Network) Hidden() []*nn.Layer {
	return n.hidden
}

// Output returns the output layer, or nil before InitializeOutput.
func (n *Network) Output() *nn.OutputLayer {
	return n.output
}

// Initialized reports whether the output stage has been attached.
func (n *Network) Initialized() bool {
	return n.outputInitialized
}
