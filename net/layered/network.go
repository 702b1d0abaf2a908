package layered

import "math/rand"

import "gonum.org/v1/gonum/floats"

// Network is an ordered sequence of layers: input, output, then hidden layers
type Network struct {
	layers  []*Layer
	samples int

	state *State
}

// New creates a network with an empty input and an empty output layer
func New() *Network {
	net := new(Network)
	net.CreateLayer()
	net.CreateLayer()
	return net
}

// CreateLayer appends an empty hidden layer to the network
func (net *Network) CreateLayer() *Layer {
	l := &Layer{net: net, index: len(net.layers)}
	net.layers = append(net.layers, l)
	return l
}

// LenLayers returns the number of layers including input and output
func (net *Network) LenLayers() int {
	return len(net.layers)
}

// Layer returns the layer stored at position i
func (net *Network) Layer(i int) *Layer {
	return net.layers[i]
}

// InputLayer returns layer 0
func (net *Network) InputLayer() *Layer {
	return net.layers[0]
}

// OutputLayer returns layer 1
func (net *Network) OutputLayer() *Layer {
	return net.layers[1]
}

// MidLayer returns the i-th hidden layer in creation order
func (net *Network) MidLayer(i int) *Layer {
	return net.layers[2+i]
}

// Len returns the total number of neurons
func (net *Network) Len() (o int) {
	for _, l := range net.layers {
		o += len(l.neurons)
	}
	return
}

// Samples returns the number of samples accumulated since BeginTraining
func (net *Network) Samples() int {
	return net.samples
}

// RandomiseWeightsAndBiases randomises every layer except the input layer
func (net *Network) RandomiseWeightsAndBiases(rng *rand.Rand) {
	for _, l := range net.layers[1:] {
		l.RandomiseWeightsAndBiases(rng)
	}
}

// ArgMax returns the index of the largest activation in out, or -1 when out is empty
func ArgMax(out []float64) int {
	if len(out) == 0 {
		return -1
	}
	return floats.MaxIdx(out)
}
