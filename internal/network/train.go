package network

import (
	"fmt"

	"github.com/born-ml/feedforward/internal/nn"
	"github.com/samber/lo"
)

// DefaultLearningRate is used when TrainConfig.LearningRate is zero.
const DefaultLearningRate = 0.001

// Reporter receives the mean per-sample loss at the end of every epoch.
// epoch is 1-based.
type Reporter interface {
	Report(epoch, epochs int, meanLoss float32)
}

// TrainConfig holds configuration for Train.
type TrainConfig struct {
	Epochs       int      // Number of full passes over the dataset
	LearningRate float32  // Gradient descent step size (default: 0.001)
	Reporter     Reporter // Progress sink; nil disables reporting
}

// Train runs online gradient descent: for every epoch, each sample in order
// goes through Forward, Backward and Update. Samples are never shuffled.
//
// Returns the mean per-sample loss of every epoch, where a sample's loss is
// the sum of its per-neuron losses.
func (n *Network) Train(inputs, targets [][]float32, cfg TrainConfig) ([]float32, error) {
	if err := n.validateDataset(inputs, targets); err != nil {
		return nil, err
	}
	if cfg.Epochs < 0 {
		return nil, fmt.Errorf("network: train: negative epoch count %d", cfg.Epochs)
	}
	lr := cfg.LearningRate
	if lr == 0 {
		lr = DefaultLearningRate
	}

	history := make([]float32, 0, cfg.Epochs)
	for epoch := range cfg.Epochs {
		var total float32
		for i := range inputs {
			if _, err := n.Forward(inputs[i]); err != nil {
				return history, err
			}
			loss, err := n.Backward(targets[i])
			if err != nil {
				return history, err
			}
			total += lo.Sum(loss)
			n.Update(lr)
		}

		var mean float32
		if len(inputs) > 0 {
			mean = total / float32(len(inputs))
		}
		history = append(history, mean)

		if cfg.Reporter != nil {
			cfg.Reporter.Report(epoch+1, cfg.Epochs, mean)
		}
	}

	return history, nil
}

// validateDataset checks the whole dataset up front so a bad sample cannot
// abort training halfway through an epoch.
func (n *Network) validateDataset(inputs, targets [][]float32) error {
	if !n.outputInitialized {
		return fmt.Errorf("network: train: %w", nn.ErrOutputNotInitialized)
	}
	if len(inputs) != len(targets) {
		return fmt.Errorf("network: train: %w: %d inputs, %d targets",
			nn.ErrShapeMismatch, len(inputs), len(targets))
	}
	for i := range inputs {
		if len(inputs[i]) != n.inputSize {
			return fmt.Errorf("network: train: sample %d: %w: expected %d inputs, got %d",
				i, nn.ErrShapeMismatch, n.inputSize, len(inputs[i]))
		}
		if len(targets[i]) != n.outputSize {
			return fmt.Errorf("network: train: sample %d: %w: expected %d targets, got %d",
				i, nn.ErrShapeMismatch, n.outputSize, len(targets[i]))
		}
	}
	return nil
}
