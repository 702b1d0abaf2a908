// Package main provides a demo program for running inference with a trained MNIST digit
// classifier. It loads a saved network, reports its success rate on the test set and
// can print the output vector of a single test image.
package main
