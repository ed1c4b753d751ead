// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides dense feedforward networks trained by backpropagation
// and plain gradient descent.
//
// # Overview
//
// This package contains:
//   - Activations: Linear, ReLU, LeakyReLU, Sigmoid, Tanh
//   - Loss functions: MSELoss, MAELoss, HuberLoss
//   - Layers: Layer (hidden stage), OutputLayer (terminal stage with a loss)
//   - Network: ordered stack of layers with Forward, Backward, Update, Train
//   - ProgressBar: console reporter for Train
//
// # Basic Usage
//
//	import "github.com/born-ml/feedforward/nn"
//
//	func main() {
//	    net, _ := nn.NewNetwork(2, 1, nn.NetworkConfig{Seed: 1})
//	    _ = net.AddHidden(4, nn.NewTanh())
//	    _ = net.InitializeOutput(nn.NewSigmoid(), nn.NewMSELoss())
//
//	    _, _ = net.Train(inputs, targets, nn.TrainConfig{
//	        Epochs:       1000,
//	        LearningRate: 0.1,
//	        Reporter:     nn.NewProgressBar(os.Stdout),
//	    })
//
//	    prediction, _ := net.Predict([]float32{1, 0})
//	}
//
// # Build Order
//
// Hidden layers are added first, then the output stage is attached exactly
// once. AddHidden after InitializeOutput returns ErrOutputInitialized;
// Forward, Backward and Train before InitializeOutput return
// ErrOutputNotInitialized.
//
// # Training
//
// Train performs online gradient descent (batch size 1) over the samples in
// their given order. Numeric overflow is not trapped: a learning rate that
// is too large shows up as NaN or Inf in the loss history.
package nn
