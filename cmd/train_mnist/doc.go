// Package main provides a demo program for training a handwritten digit classifier on
// the MNIST dataset. It generates a fresh sigmoid network (or resumes a saved one),
// trains it with mini-batch gradient descent and saves the learned parameters.
package main
