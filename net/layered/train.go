package layered

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

// BeginTraining zeroes every gradient accumulator and the sample counter.
// Call it once per batch before the Train calls of the batch.
func (net *Network) BeginTraining() {
	for _, l := range net.layers {
		for i := range l.neurons {
			l.neurons[i].zeroGradients()
		}
	}
	net.samples = 0
}

// chain returns the layers visited by backpropagation, starting at the output
// layer and following the single upstream layer of each layer until the input
// layer or an unconnected layer is reached. Every neuron of a visited layer must
// read from the same upstream layer.
func (net *Network) chain() ([]int, error) {
	var order []int
	var seen = make(map[int]struct{})

	for layer := 1; layer > 0; {
		if _, ok := seen[layer]; ok {
			return nil, errors.Wrapf(ErrTopology, "layer %d reached twice during backpropagation", layer)
		}
		seen[layer] = struct{}{}
		order = append(order, layer)

		next := -1
		for i := range net.layers[layer].neurons {
			up := net.layers[layer].neurons[i].upstream
			if i > 0 && up != next {
				return nil, errors.Wrapf(ErrTopology,
					"training does not support layers which take input from more than one layer (layer %d reads %d and %d)",
					layer, next, up)
			}
			next = up
			if up >= 0 || net.layers[layer].neurons[i].linkType == All {
				if err := net.checkUpstream(layer, i); err != nil {
					return nil, err
				}
			}
		}
		layer = next
	}
	return order, nil
}

// Train runs one sample forward, writes the output activations into out and
// accumulates the quadratic cost gradients of every bias and weight.
// On a shape or topology error nothing is accumulated.
func (net *Network) Train(in, desired, out []float64) error {
	if err := net.checkShape(in, out); err != nil {
		return err
	}
	if len(desired) != len(out) {
		return errors.Wrapf(ErrShape, "desired output length %d, output layer size %d", len(desired), len(out))
	}
	order, err := net.chain()
	if err != nil {
		return err
	}

	st := net.defaultState()
	st.reset(net)
	st.seed(in)

	for i := range out {
		v, err := net.evaluate(st, 1, i)
		if err != nil {
			return err
		}
		out[i] = v
		// derivative of the quadratic cost with respect to the activation
		st.errors[1][i] = v - desired[i]
	}

	for _, layer := range order {
		for i := range net.layers[layer].neurons {
			neuron := &net.layers[layer].neurons[i]

			e := st.errors[layer][i] * sigmoidPrime(st.inputs[layer][i])
			st.errors[layer][i] = e
			neuron.biasGradient += e

			if neuron.linkType != All || len(neuron.weights) == 0 {
				continue
			}
			up := neuron.upstream
			floats.AddScaled(st.errors[up], e, neuron.weights)
			floats.AddScaled(neuron.gradients, e, st.outputs[up])
		}
	}

	net.samples++
	return nil
}

// ApplyTraining moves every non-input bias and weight against its gradient
// averaged over the accumulated samples. It does nothing without samples.
func (net *Network) ApplyTraining(learningRate float64) {
	if net.samples <= 0 {
		return
	}

	f := learningRate / float64(net.samples)

	for _, l := range net.layers[1:] {
		for i := range l.neurons {
			neuron := &l.neurons[i]
			neuron.bias -= f * neuron.biasGradient
			floats.AddScaled(neuron.weights, -f, neuron.gradients)
		}
	}
}
