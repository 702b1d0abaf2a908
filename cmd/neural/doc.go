// Package main provides an interactive console for generating, training and
// evaluating a handwritten digit recogniser on the MNIST dataset.
package main
