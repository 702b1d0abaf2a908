package layered

// Neuron holds the parameters of one unit and its gradient accumulators.
// Weights and gradients are index aligned with the neurons of the upstream layer.
type Neuron struct {
	bias     float64
	linkType LinkType
	upstream int

	weights   []float64
	gradients []float64

	biasGradient float64
}

func newNeuron() Neuron {
	return Neuron{upstream: -1}
}

// Bias returns the neuron bias
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetBias sets the neuron bias
func (n *Neuron) SetBias(bias float64) {
	n.bias = bias
}

// LinkType returns the neuron input link type
func (n *Neuron) LinkType() LinkType {
	return n.linkType
}

// Upstream returns the index of the layer the neuron reads from, or -1
func (n *Neuron) Upstream() int {
	return n.upstream
}

// Weights returns the incoming weights. The slice aliases the neuron, writes are visible to it.
func (n *Neuron) Weights() []float64 {
	return n.weights
}

// SetWeight sets the i-th incoming weight
func (n *Neuron) SetWeight(i int, value float64) {
	n.weights[i] = value
}

// Gradients returns the accumulated weight gradients of the current batch
func (n *Neuron) Gradients() []float64 {
	return n.gradients
}

// BiasGradient returns the accumulated bias gradient of the current batch
func (n *Neuron) BiasGradient() float64 {
	return n.biasGradient
}

func (n *Neuron) link(upstream, inputs int) {
	n.linkType = All
	n.upstream = upstream
	n.weights = make([]float64, inputs)
	n.gradients = make([]float64, inputs)
}

func (n *Neuron) unlink() {
	n.linkType = None
	n.upstream = -1
	n.weights = nil
	n.gradients = nil
}

func (n *Neuron) zeroGradients() {
	n.biasGradient = 0
	for i := range n.gradients {
		n.gradients[i] = 0
	}
}
