// Package layered implements a layered feedforward network of sigmoid neurons
// trained by mini-batch backpropagation under the quadratic cost.
//
// A Network always has at least two layers. Layer 0 is the input layer, layer 1 is
// the output layer and layers 2 and above are hidden layers in creation order.
// Hidden layers chain in creation order starting at the input layer, and the output
// layer reads from the last hidden layer, so the output layer has to be wired after
// every hidden layer exists:
//
//	net := layered.New()
//	net.InputLayer().Generate(784)
//	net.OutputLayer().Generate(10)
//	hidden := net.CreateLayer()
//	hidden.Generate(30)
//	hidden.SetInputLinkType(layered.All)
//	net.OutputLayer().SetInputLinkType(layered.All)
//	net.RandomiseWeightsAndBiases(rng)
//
// Training runs in batches:
//
//	net.BeginTraining()
//	for _, s := range batch {
//		if err := net.Train(s.Input, target[s.Label], out); err != nil {
//			return err
//		}
//	}
//	net.ApplyTraining(learningRate)
package layered

import "math"

import "github.com/pkg/errors"

// LinkType is the input linking policy of a layer or neuron
type LinkType uint16

const (
	// None means no incoming connections
	None LinkType = 0
	// All means fully connected to every neuron of one upstream layer
	All LinkType = 1
)

func (t LinkType) String() string {
	switch t {
	case None:
		return "none"
	case All:
		return "all"
	}
	return "invalid"
}

// ErrShape is returned when an input or output vector length differs from the corresponding layer size
var ErrShape = errors.New("layered: vector length does not match layer size")

// ErrTopology is returned when the layer wiring cannot be evaluated or trained
var ErrTopology = errors.New("layered: invalid topology")

// ErrMalformed is matched by every error returned while decoding a network
var ErrMalformed = errors.New("layered: malformed network data")

// ErrInvalidNetwork is returned when a network cannot be encoded
var ErrInvalidNetwork = errors.New("layered: invalid network")

// ByteReader is the decoding side of the network codec
type ByteReader interface {
	ReadUint16() (uint16, error)
	ReadUint32() (uint32, error)
	ReadFloat64() (float64, error)
}

// ByteWriter is the encoding side of the network codec
type ByteWriter interface {
	EnsureSpace(n int)
	WriteUint16(v uint16)
	WriteUint32(v uint32)
	WriteFloat64(v float64)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func sigmoidPrime(x float64) float64 {
	sig := sigmoid(x)
	return sig * (1.0 - sig)
}
