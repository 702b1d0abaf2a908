package trainer

import (
	"log"
	"os"

	"github.com/neurlang/layered/datasets"
	"github.com/pkg/errors"
)

// DefaultLayerSize is the hidden layer size of generated networks
const DefaultLayerSize = 30

// Defaults returns the default hyper parameters
func Defaults() HyperParameters {
	return HyperParameters{
		Iterations:   10,
		BatchSize:    10,
		LearningRate: 3.0,
	}
}

// SetLogger appends a line per iteration to the file filename. A previously
// set log file is closed.
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrapf(err, "opening log file %s", filename)
	}
	if err := h.CloseLogger(); err != nil {
		outfile.Close()
		return err
	}
	h.logfile = outfile
	h.l = log.New(outfile, "", log.LstdFlags)
	return nil
}

// CloseLogger closes the log file, if any
func (h *HyperParameters) CloseLogger() error {
	if h.logfile == nil {
		return nil
	}
	err := h.logfile.Close()
	h.logfile, h.l = nil, nil
	return errors.Wrap(err, "closing log file")
}

func (h *HyperParameters) logf(format string, args ...interface{}) {
	if h.l != nil {
		h.l.Printf(format, args...)
	}
}

// HyperParameters configure a training run
type HyperParameters struct {
	Iterations   int     // passes over the training set
	BatchSize    int     // samples per gradient step
	LearningRate float64 // gradient step size

	Threads int // number of threads for evaluation, 0 means all cores

	Seed      bool  // seed prng using true rng
	SeedValue int64 // prng seed when Seed is false

	Name     string // run name, a random uuid when empty
	Dst      string // network file written after training, output.<name>.<matched>.bin when empty
	Compress bool   // lzw compress the written network file

	Quiet bool // do not print progress dots

	Preview func(s datasets.Sample) // called with the sample trained at each progress dot

	l       *log.Logger
	logfile *os.File
}
