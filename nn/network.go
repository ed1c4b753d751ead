// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/feedforward/internal/network"
)

// Network is an ordered stack of hidden layers plus one output layer.
type Network = network.Network

// NetworkConfig holds the seed, linear algebra provider and parallelism
// settings shared by all layers of a network.
type NetworkConfig = network.Config

// TrainConfig configures Network.Train.
type TrainConfig = network.TrainConfig

// Reporter receives the mean loss after every training epoch.
type Reporter = network.Reporter

// NewNetwork creates an empty network with the given input and output widths.
//
// Example:
//
//	net, err := nn.NewNetwork(784, 10, nn.NetworkConfig{Seed: 42})
//	if err != nil {
//	    return err
//	}
//	_ = net.AddHidden(128, nn.NewReLU())
//	_ = net.InitializeOutput(nn.NewSigmoid(), nn.NewMSELoss())
func NewNetwork(inputSize, outputSize int, cfg NetworkConfig) (*Network, error) {
	return network.New(inputSize, outputSize, cfg)
}
