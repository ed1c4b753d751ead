package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/feedforward/nn"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type trainOptions struct {
	data             string
	inputCols        int
	header           bool
	hidden           []int
	activation       string
	outputActivation string
	loss             string
	epochs           int
	lr               float32
	seed             int64
	quiet            bool
}

func newTrainCmd() *cobra.Command {
	opts := trainOptions{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a network and print its predictions",
		Long: `Train a dense feedforward network with online gradient descent.

Without --data the built-in XOR problem is used. A CSV dataset holds one
sample per row: the first --inputs columns are features, the rest targets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.data, "data", "", "CSV dataset path (default: XOR)")
	f.IntVar(&opts.inputCols, "inputs", 0, "number of leading input columns in --data")
	f.BoolVar(&opts.header, "header", false, "skip the first CSV line")
	f.IntSliceVar(&opts.hidden, "hidden", []int{4}, "hidden layer widths")
	f.StringVar(&opts.activation, "activation", "tanh", "hidden activation: linear|relu|leaky_relu|sigmoid|tanh")
	f.StringVar(&opts.outputActivation, "output-activation", "sigmoid", "output activation")
	f.StringVar(&opts.loss, "loss", "mse", "loss function: mse|mae|huber")
	f.IntVar(&opts.epochs, "epochs", 2000, "number of epochs")
	f.Float32Var(&opts.lr, "lr", 0.1, "learning rate")
	f.Int64Var(&opts.seed, "seed", 0, "weight initialisation seed (0: random)")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "disable the progress bar")

	return cmd
}

func runTrain(out io.Writer, opts trainOptions) error {
	ds := xorDataset()
	if opts.data != "" {
		var err error
		if ds, err = loadCSV(opts.data, opts.inputCols, opts.header); err != nil {
			return err
		}
	}

	net, err := buildNetwork(ds.inputWidth(), ds.targetWidth(), opts)
	if err != nil {
		return err
	}

	cfg := nn.TrainConfig{Epochs: opts.epochs, LearningRate: opts.lr}
	if !opts.quiet {
		cfg.Reporter = nn.NewProgressBar(out)
	}

	history, err := net.Train(ds.inputs, ds.targets, cfg)
	if err != nil {
		return err
	}
	if len(history) > 0 {
		fmt.Fprintf(out, "final loss: %.6f\n", history[len(history)-1])
	}

	for i, x := range ds.inputs {
		pred, err := net.Predict(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s -> %s (target %s)\n", formatVector(x), formatVector(pred), formatVector(ds.targets[i]))
	}
	return nil
}

func buildNetwork(inputs, outputs int, opts trainOptions) (*nn.Network, error) {
	act, err := nn.ActivationByName(opts.activation)
	if err != nil {
		return nil, err
	}
	outAct, err := nn.ActivationByName(opts.outputActivation)
	if err != nil {
		return nil, err
	}
	loss, err := nn.LossByName(opts.loss)
	if err != nil {
		return nil, err
	}

	net, err := nn.NewNetwork(inputs, outputs, nn.NetworkConfig{Seed: opts.seed})
	if err != nil {
		return nil, err
	}
	for _, width := range opts.hidden {
		if err := net.AddHidden(width, act); err != nil {
			return nil, err
		}
	}
	if err := net.InitializeOutput(outAct, loss); err != nil {
		return nil, err
	}
	return net, nil
}

func formatVector(v []float32) string {
	parts := lo.Map(v, func(x float32, _ int) string {
		return strconv.FormatFloat(float64(x), 'f', 3, 32)
	})
	return "[" + strings.Join(parts, " ") + "]"
}
