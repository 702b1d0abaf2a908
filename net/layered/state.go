package layered

const (
	invalid byte = iota
	pending
	valid
)

// State is the per call scratch of an evaluation or training pass: cached
// activations, pre-activation sums, propagated errors and validity marks.
// A State belongs to one caller at a time. Distinct States can evaluate the
// same network concurrently as long as nobody mutates the network.
type State struct {
	outputs [][]float64
	inputs  [][]float64
	errors  [][]float64
	marks   [][]byte
}

// NewState allocates a State shaped for the network
func (net *Network) NewState() *State {
	st := new(State)
	st.reset(net)
	return st
}

// Output returns the cached activation of neuron n in layer l from the last pass
func (st *State) Output(l, n int) float64 {
	return st.outputs[l][n]
}

// Input returns the cached pre-activation sum of neuron n in layer l from the last pass
func (st *State) Input(l, n int) float64 {
	return st.inputs[l][n]
}

// Error returns the propagated error of neuron n in layer l from the last training pass
func (st *State) Error(l, n int) float64 {
	return st.errors[l][n]
}

// Valid reports whether neuron n in layer l was evaluated in the last pass
func (st *State) Valid(l, n int) bool {
	return st.marks[l][n] == valid
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

// reset shapes the scratch to the network and invalidates every neuron
func (st *State) reset(net *Network) {
	if len(st.outputs) != len(net.layers) {
		st.outputs = make([][]float64, len(net.layers))
		st.inputs = make([][]float64, len(net.layers))
		st.errors = make([][]float64, len(net.layers))
		st.marks = make([][]byte, len(net.layers))
	}
	for l, layer := range net.layers {
		n := len(layer.neurons)
		st.outputs[l] = resize(st.outputs[l], n)
		st.inputs[l] = resize(st.inputs[l], n)
		st.errors[l] = resize(st.errors[l], n)
		if cap(st.marks[l]) < n {
			st.marks[l] = make([]byte, n)
		} else {
			st.marks[l] = st.marks[l][:n]
			for i := range st.marks[l] {
				st.marks[l][i] = invalid
			}
		}
	}
}

// seed stores the input vector as the input layer activations
func (st *State) seed(in []float64) {
	copy(st.outputs[0], in)
	for i := range in {
		st.marks[0][i] = valid
	}
}

func (net *Network) defaultState() *State {
	if net.state == nil {
		net.state = new(State)
	}
	return net.state
}
