package trainer

import "fmt"
import "math/rand"

import "github.com/neurlang/layered/net/layered"
import "github.com/pkg/errors"

// Generate creates a network with the given input size, hidden layer sizes and
// output size. Hidden layers are wired in order, the output layer last, and
// every parameter is randomised.
func Generate(inputs int, hidden []int, outputs int, rng *rand.Rand) *layered.Network {
	net := layered.New()
	net.InputLayer().Generate(inputs)
	net.OutputLayer().Generate(outputs)

	for _, size := range hidden {
		mid := net.CreateLayer()
		mid.Generate(size)
		mid.SetInputLinkType(layered.All)
	}
	net.OutputLayer().SetInputLinkType(layered.All)

	net.RandomiseWeightsAndBiases(rng)
	return net
}

// Resume reads the network saved at dst
func Resume(dst string, compressed bool) (*layered.Network, error) {
	fmt.Println("Reading net state...")
	if compressed {
		return layered.ReadCompressedFromFile(dst)
	}
	return layered.ReadFromFile(dst)
}

// Save writes the network to dst
func Save(net *layered.Network, dst string, compressed bool) error {
	if compressed {
		return net.WriteCompressedToFile(dst)
	}
	return net.WriteToFile(dst)
}

// Open resumes the network saved at h.Dst when resume is set and generates a
// fresh one otherwise. A resumed network must have the requested input and
// output sizes.
func (h *HyperParameters) Open(resume bool, inputs int, hidden []int, outputs int) (*layered.Network, error) {
	if !resume {
		return Generate(inputs, hidden, outputs, h.prng()), nil
	}
	net, err := Resume(h.Dst, h.Compress)
	if err != nil {
		return nil, err
	}
	if net.InputLayer().Len() != inputs || net.OutputLayer().Len() != outputs {
		return nil, errors.Wrapf(layered.ErrShape, "network %s has %d inputs and %d outputs, want %d and %d",
			h.Dst, net.InputLayer().Len(), net.OutputLayer().Len(), inputs, outputs)
	}
	return net, nil
}
