package trainer

import crypto_rand "crypto/rand"
import "encoding/binary"
import "fmt"
import "math/rand"

import "github.com/google/uuid"
import "github.com/neurlang/layered/datasets"
import "github.com/neurlang/layered/net/layered"
import "github.com/neurlang/layered/parallel"
import "github.com/pkg/errors"

// Result summarises a training run
type Result struct {
	Name        string
	Matched     []int    // test matches after each iteration
	Total       int      // test set size
	Fingerprint [32]byte // prediction fingerprint after the last iteration
	Path        string   // where the network was saved
}

func (h *HyperParameters) prng() *rand.Rand {
	if h.Seed {
		var b [8]byte
		if _, err := crypto_rand.Read(b[:]); err == nil {
			return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}
	return rand.New(rand.NewSource(h.SeedValue))
}

// Training trains net on train for h.Iterations shuffled passes of mini-batches,
// evaluates it on test after every pass and saves it at the end.
func (h *HyperParameters) Training(net *layered.Network, train, test datasets.Samples) (*Result, error) {
	batchSize := h.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}
	if h.Name == "" {
		h.Name = uuid.New().String()
	}
	threads := h.Threads
	if threads <= 0 {
		threads = parallel.Threads()
	}

	classes := net.OutputLayer().Len()
	targets := datasets.OneHotTable(classes)
	for _, set := range []datasets.Samples{train, test} {
		if c := set.Classes(); c > classes {
			return nil, errors.Errorf("label %d does not fit %d outputs", c-1, classes)
		}
	}

	fmt.Println("Begin training for", h.Iterations, "iterations")
	fmt.Println("batch size =", batchSize)
	fmt.Println("learning rate =", h.LearningRate)
	fmt.Println("run =", h.Name, "on", threads, "threads of", parallel.CPUName())
	h.logf("run %s: %d iterations, batch size %d, learning rate %v", h.Name, h.Iterations, batchSize, h.LearningRate)

	var result = &Result{Name: h.Name, Total: len(test)}
	var rng = h.prng()
	var out = make([]float64, classes)

	var order = make([]int, len(train))
	for i := range order {
		order[i] = i
	}
	dotStep := len(order) / 10
	if dotStep == 0 {
		dotStep = 1
	}

	for iteration := 0; iteration < h.Iterations; iteration++ {
		fmt.Print("ITERATION ", iteration)

		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for batchStart := 0; batchStart < len(order); batchStart += batchSize {
			batchEnd := batchStart + batchSize
			if batchEnd > len(order) {
				batchEnd = len(order)
			}

			net.BeginTraining()
			for batchIndex := batchStart; batchIndex < batchEnd; batchIndex++ {
				s := train[order[batchIndex]]
				if err := net.Train(s.Input, targets[s.Label], out); err != nil {
					fmt.Println()
					return result, errors.Wrapf(err, "training sample %d", order[batchIndex])
				}
				if batchIndex%dotStep == 0 {
					if !h.Quiet {
						fmt.Print(".")
					}
					if h.Preview != nil {
						h.Preview(s)
					}
				}
			}
			net.ApplyTraining(h.LearningRate)
		}

		matched, fingerprint, err := Evaluate(net, test, threads)
		if err != nil {
			fmt.Println()
			return result, errors.Wrap(err, "evaluating test set")
		}
		result.Matched = append(result.Matched, matched)
		result.Fingerprint = fingerprint

		fmt.Printf("| Matched %d/%d\n", matched, len(test))
		h.logf("run %s: iteration %d matched %d/%d %x", h.Name, iteration, matched, len(test), fingerprint[:8])
	}

	result.Path = h.Dst
	if result.Path == "" {
		last := 0
		if len(result.Matched) > 0 {
			last = result.Matched[len(result.Matched)-1]
		}
		result.Path = fmt.Sprintf("output.%s.%d.bin", h.Name, last)
	}
	if err := Save(net, result.Path, h.Compress); err != nil {
		return result, errors.Wrapf(err, "saving network to %s", result.Path)
	}
	fmt.Println("Saved", result.Path)
	return result, nil
}
