package main

import "flag"
import "fmt"
import "os"
import "strconv"
import "strings"

import "github.com/neurlang/layered/datasets/mnist"
import "github.com/neurlang/layered/trainer"

func parseSizes(s string) (o []int, err error) {
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad layer size %q", f)
		}
		o = append(o, n)
	}
	return
}

func main() {
	def := trainer.Defaults()

	data := flag.String("data", "Data", "directory with the MNIST idx files")
	dstmodel := flag.String("dstmodel", "Data/net-state.bin", "model destination file")
	resume := flag.Bool("resume", false, "resume training of the model at dstmodel")
	iterations := flag.Int("iterations", def.Iterations, "passes over the training set")
	batch := flag.Int("batch", def.BatchSize, "mini-batch size")
	layers := flag.String("layer", strconv.Itoa(trainer.DefaultLayerSize), "comma separated hidden layer sizes")
	rate := flag.Float64("rate", def.LearningRate, "learning rate")
	threads := flag.Int("threads", 0, "evaluation threads, 0 means all cores")
	seed := flag.Int64("seed", 0, "prng seed, 0 seeds from the system rng")
	compress := flag.Bool("compress", false, "lzw compress the model file")
	logfile := flag.String("log", "", "append per iteration results to this file")
	pgo := flag.Bool("pgo", false, "collect a cpu profile into default.pgo")
	flag.Parse()

	hidden, err := parseSizes(*layers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	h := def
	h.Iterations = *iterations
	h.BatchSize = *batch
	h.LearningRate = *rate
	h.Threads = *threads
	h.Seed = *seed == 0
	h.SeedValue = *seed
	h.Dst = *dstmodel
	h.Compress = *compress

	if err := run(&h, *data, *resume, *logfile, *pgo, hidden); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(h *trainer.HyperParameters, data string, resume bool, logfile string, pgo bool, hidden []int) error {
	if pgo {
		stop := startProfile()
		defer stop()
	}
	if logfile != "" {
		if err := h.SetLogger(logfile); err != nil {
			return err
		}
		defer h.CloseLogger()
	}

	fmt.Println("Reading training/testing data...")
	train, test, err := mnist.Load(data)
	if err != nil {
		return err
	}
	fmt.Printf("training: found %d images, testing: found %d images\n", len(train), len(test))

	inputs := mnist.ImgSize * mnist.ImgSize
	if len(train) > 0 {
		inputs = len(train[0].Input)
	}
	net, err := h.Open(resume, inputs, hidden, mnist.Classes)
	if err != nil {
		return err
	}

	_, err = h.Training(net, train, test)
	return err
}
