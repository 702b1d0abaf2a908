package layered

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

// Evaluate computes the output layer activations for the input vector in. The
// length of in must equal the input layer size and the length of out the output
// layer size, otherwise ErrShape is returned and nothing is touched.
func (net *Network) Evaluate(in, out []float64) error {
	return net.EvaluateState(net.defaultState(), in, out)
}

// EvaluateState is Evaluate using the caller owned scratch st
func (net *Network) EvaluateState(st *State, in, out []float64) error {
	if err := net.checkShape(in, out); err != nil {
		return err
	}

	st.reset(net)
	st.seed(in)

	for i := range out {
		v, err := net.evaluate(st, 1, i)
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (net *Network) checkShape(in, out []float64) error {
	if len(in) != len(net.layers[0].neurons) {
		return errors.Wrapf(ErrShape, "input length %d, input layer size %d", len(in), len(net.layers[0].neurons))
	}
	if len(out) != len(net.layers[1].neurons) {
		return errors.Wrapf(ErrShape, "output length %d, output layer size %d", len(out), len(net.layers[1].neurons))
	}
	return nil
}

// checkUpstream verifies that neuron n of layer l can read its upstream layer
func (net *Network) checkUpstream(l, n int) error {
	neuron := &net.layers[l].neurons[n]
	up := neuron.upstream
	if up < 0 || up >= len(net.layers) {
		return errors.Wrapf(ErrTopology, "neuron %d of layer %d links to missing layer %d", n, l, up)
	}
	if len(neuron.weights) != len(net.layers[up].neurons) {
		return errors.Wrapf(ErrTopology, "neuron %d of layer %d has %d weights, layer %d has %d neurons",
			n, l, len(neuron.weights), up, len(net.layers[up].neurons))
	}
	return nil
}

// evaluate returns the activation of neuron n in layer l, computing it and every
// upstream activation it depends on at most once per pass.
func (net *Network) evaluate(st *State, l, n int) (float64, error) {
	switch st.marks[l][n] {
	case valid:
		return st.outputs[l][n], nil
	case pending:
		return 0, errors.Wrapf(ErrTopology, "cycle through neuron %d of layer %d", n, l)
	}
	st.marks[l][n] = pending

	neuron := &net.layers[l].neurons[n]
	input := neuron.bias

	if neuron.linkType == All && l > 0 {
		if err := net.checkUpstream(l, n); err != nil {
			return 0, err
		}
		up := neuron.upstream
		for i := range neuron.weights {
			if _, err := net.evaluate(st, up, i); err != nil {
				return 0, err
			}
		}
		input += floats.Dot(neuron.weights, st.outputs[up])
	}

	if l == 0 {
		println("layered warning: input layer being evaluated while invalid")
	}

	st.inputs[l][n] = input
	st.outputs[l][n] = sigmoid(input)
	st.marks[l][n] = valid
	return st.outputs[l][n], nil
}
