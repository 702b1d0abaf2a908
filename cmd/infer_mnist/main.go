package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/layered/datasets/mnist"
import "github.com/neurlang/layered/net/layered"
import "github.com/neurlang/layered/trainer"

func main() {
	data := flag.String("data", "Data", "directory with the MNIST idx files")
	dstmodel := flag.String("dstmodel", "Data/net-state.bin", "model file")
	compress := flag.Bool("compress", false, "the model file is lzw compressed")
	threads := flag.Int("threads", 0, "evaluation threads, 0 means all cores")
	index := flag.Int("index", -1, "print the output vector of this test image")
	flag.Parse()

	if err := run(*data, *dstmodel, *compress, *threads, *index); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(data, dstmodel string, compress bool, threads, index int) error {
	net, err := trainer.Resume(dstmodel, compress)
	if err != nil {
		return err
	}
	test, err := mnist.LoadTest(data)
	if err != nil {
		return err
	}

	if index >= 0 {
		if index >= len(test) {
			return fmt.Errorf("index %d out of %d test images", index, len(test))
		}
		out := make([]float64, net.OutputLayer().Len())
		if err := net.Evaluate(test[index].Input, out); err != nil {
			return err
		}
		for i, v := range out {
			fmt.Printf("%d: %.4f\n", i, v)
		}
		fmt.Println("[predicted]", layered.ArgMax(out), "[label]", test[index].Label)
		return nil
	}

	matched, fingerprint, err := trainer.Evaluate(net, test, threads)
	if err != nil {
		return err
	}
	success := 0
	if len(test) > 0 {
		success = matched * 100 / len(test)
	}
	fmt.Println("[infer success rate]", success, "%", "with", matched, "of", len(test), "matched")
	fmt.Printf("%x\n", fingerprint)
	return nil
}
