package layered

import "math/rand"

// Layer is an ordered group of neurons sharing one link policy
type Layer struct {
	net      *Network
	index    int
	linkType LinkType
	neurons  []Neuron
}

// Len returns the number of neurons in the layer
func (l *Layer) Len() int {
	return len(l.neurons)
}

// Index returns the position of the layer in its network
func (l *Layer) Index() int {
	return l.index
}

// LinkType returns the link policy last applied to the layer
func (l *Layer) LinkType() LinkType {
	return l.linkType
}

// Neuron returns the i-th neuron of the layer
func (l *Layer) Neuron(i int) *Neuron {
	return &l.neurons[i]
}

// Generate replaces the neurons of the layer by size fresh neurons. When the
// layer has a link policy other than None, the policy is applied again.
func (l *Layer) Generate(size int) {
	if size < 0 {
		size = 0
	}
	l.neurons = make([]Neuron, size)
	for i := range l.neurons {
		l.neurons[i] = newNeuron()
	}
	if l.linkType != None {
		l.SetInputLinkType(l.linkType)
	}
}

// upstreamFor resolves the layer an All-linked layer at position pos reads from, or -1.
func (net *Network) upstreamFor(pos int) int {
	prev := pos - 1
	switch {
	case prev < 0:
		return -1
	case prev == 0:
		// output layer reads the last hidden layer
		if len(net.layers) > 2 {
			return len(net.layers) - 1
		}
		return -1
	case prev == 1:
		// first hidden layer reads the input layer
		return 0
	default:
		return prev
	}
}

// SetInputLinkType applies the link policy to every neuron of the layer. For All,
// the upstream layer is resolved from the layer position and the weights are reset
// to zeros sized to the upstream layer. When no upstream layer exists, the neurons
// are left unconnected.
func (l *Layer) SetInputLinkType(linkType LinkType) {
	l.linkType = linkType

	if linkType == All {
		if up := l.net.upstreamFor(l.index); up >= 0 {
			inputs := len(l.net.layers[up].neurons)
			for i := range l.neurons {
				l.neurons[i].link(up, inputs)
			}
			return
		}
	}

	for i := range l.neurons {
		l.neurons[i].unlink()
	}
}

// RandomiseWeightsAndBiases draws every bias and weight uniformly from [-1, 1).
// Gradient accumulators are left untouched.
func (l *Layer) RandomiseWeightsAndBiases(rng *rand.Rand) {
	for i := range l.neurons {
		n := &l.neurons[i]
		n.bias = rng.Float64()*2.0 - 1.0
		for j := range n.weights {
			n.weights[j] = rng.Float64()*2.0 - 1.0
		}
	}
}
