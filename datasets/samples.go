// Package datasets implements labelled sample sets used to train and evaluate networks
package datasets

import "math/rand"

// Sample is one input vector with its class label
type Sample struct {
	Input []float64
	Label byte
}

// Samples is a labelled dataset
type Samples []Sample

// Shuffle shuffles the samples in place
func (s Samples) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Classes returns one more than the largest label
func (s Samples) Classes() (o int) {
	for _, v := range s {
		if int(v.Label) >= o {
			o = int(v.Label) + 1
		}
	}
	return
}

// OneHot returns a vector of length classes with 1 at label and 0 elsewhere
func OneHot(label byte, classes int) []float64 {
	o := make([]float64, classes)
	if int(label) < classes {
		o[label] = 1
	}
	return o
}

// OneHotTable returns the one hot vectors of every label below classes
func OneHotTable(classes int) [][]float64 {
	o := make([][]float64, classes)
	for i := range o {
		o[i] = OneHot(byte(i), classes)
	}
	return o
}

// Normalize maps pixel intensities to [0, 1]
func Normalize(pixels []byte) []float64 {
	o := make([]float64, len(pixels))
	for i, p := range pixels {
		o[i] = float64(p) / 255.0
	}
	return o
}
