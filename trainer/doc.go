// Package trainer provides high-level training orchestration for layered networks.
// It generates or resumes a network, runs shuffled mini-batch gradient descent over
// a labelled dataset, measures test accuracy in parallel and saves the result.
package trainer
