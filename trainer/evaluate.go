package trainer

import "crypto/sha256"
import "sync"

import "github.com/neurlang/layered/codec"
import "github.com/neurlang/layered/datasets"
import "github.com/neurlang/layered/net/layered"
import "github.com/neurlang/layered/parallel"

// Evaluate classifies every sample by the arg-max of the network output and
// counts the matches. The fingerprint is a sha256 of the prediction sequence.
// Samples are split between threads goroutines, each with its own scratch state.
func Evaluate(net *layered.Network, samples datasets.Samples, threads int) (matched int, fingerprint [32]byte, err error) {
	if threads <= 0 {
		threads = parallel.Threads()
	}

	var predicted = make([]uint16, len(samples))
	var mut sync.Mutex

	parallel.Chunks(len(samples), threads, func(lo, hi int) {
		st := net.NewState()
		out := make([]float64, net.OutputLayer().Len())
		hits := 0
		for j := lo; j < hi; j++ {
			if e := net.EvaluateState(st, samples[j].Input, out); e != nil {
				mut.Lock()
				if err == nil {
					err = e
				}
				mut.Unlock()
				return
			}
			predicted[j] = uint16(layered.ArgMax(out))
			if int(predicted[j]) == int(samples[j].Label) {
				hits++
			}
		}
		mut.Lock()
		matched += hits
		mut.Unlock()
	})
	if err != nil {
		return 0, fingerprint, err
	}

	w := codec.NewWriter(codec.LittleEndian)
	w.EnsureSpace(2 * len(predicted))
	for _, p := range predicted {
		w.WriteUint16(p)
	}
	return matched, sha256.Sum256(w.Bytes()), nil
}
