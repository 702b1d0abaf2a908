package main

import "fmt"
import "io"
import "math"
import "strings"

import "github.com/neurlang/layered/console"
import "github.com/neurlang/layered/datasets"
import "github.com/neurlang/layered/datasets/mnist"
import "github.com/neurlang/layered/trainer"

// digits holds the console session: data set location, network file and the
// data loaded by the first command that needed it
type digits struct {
	data    string
	netfile string
	threads int
	out     io.Writer

	train, test datasets.Samples
}

// shades renders pixel intensities from dark to bright
const shades = " .:-=+*#%@"

// preview draws a square training sample as text, the label first
func (d *digits) preview(s datasets.Sample) {
	width := int(math.Sqrt(float64(len(s.Input))))
	if width == 0 {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nlabel %d\n", s.Label)
	for y := 0; y+width <= len(s.Input); y += width {
		for _, v := range s.Input[y : y+width] {
			i := int(v * float64(len(shades)-1))
			if i < 0 {
				i = 0
			} else if i >= len(shades) {
				i = len(shades) - 1
			}
			b.WriteByte(shades[i])
		}
		b.WriteByte('\n')
	}
	io.WriteString(d.out, b.String())
}

func (d *digits) load() error {
	if d.train != nil {
		return nil
	}
	fmt.Println("Reading training/testing data...")
	train, test, err := mnist.Load(d.data)
	if err != nil {
		return err
	}
	d.train, d.test = train, test
	fmt.Printf("training: found %d images\ntesting: found %d images\n", len(train), len(test))
	return nil
}

func (d *digits) inputs() int {
	if len(d.train) > 0 {
		return len(d.train[0].Input)
	}
	return mnist.ImgSize * mnist.ImgSize
}

// run trains a generated network when layerSize is positive and the saved one
// otherwise. With debug set, the samples being trained are drawn as they pass.
func (d *digits) run(iterations, batchSize, layerSize int, learningRate float64, debug bool) error {
	if err := d.load(); err != nil {
		return err
	}

	h := trainer.Defaults()
	h.Iterations = iterations
	h.BatchSize = batchSize
	h.LearningRate = learningRate
	h.Threads = d.threads
	h.Seed = true
	h.Dst = d.netfile

	if debug {
		h.Preview = d.preview
	}

	if layerSize > 0 {
		fmt.Println("layer size =", layerSize)
	}

	net, err := h.Open(layerSize <= 0, d.inputs(), []int{layerSize}, mnist.Classes)
	if err != nil {
		return err
	}
	_, err = h.Training(net, d.train, d.test)
	return err
}

func (d *digits) gen(args []string) error {
	def := trainer.Defaults()
	iterations, err := console.IntArg(args, 0, def.Iterations)
	if err != nil {
		return err
	}
	batchSize, err := console.IntArg(args, 1, def.BatchSize)
	if err != nil {
		return err
	}
	layerSize, err := console.IntArg(args, 2, trainer.DefaultLayerSize)
	if err != nil {
		return err
	}
	if layerSize <= 0 {
		return fmt.Errorf("layer size must be positive, got %d", layerSize)
	}
	learningRate, err := console.FloatArg(args, 3, def.LearningRate)
	if err != nil {
		return err
	}
	debug, err := console.BoolArg(args, 4, false)
	if err != nil {
		return err
	}
	return d.run(iterations, batchSize, layerSize, learningRate, debug)
}

func (d *digits) trainExisting(args []string) error {
	def := trainer.Defaults()
	iterations, err := console.IntArg(args, 0, def.Iterations)
	if err != nil {
		return err
	}
	batchSize, err := console.IntArg(args, 1, def.BatchSize)
	if err != nil {
		return err
	}
	learningRate, err := console.FloatArg(args, 2, def.LearningRate)
	if err != nil {
		return err
	}
	debug, err := console.BoolArg(args, 3, false)
	if err != nil {
		return err
	}
	return d.run(iterations, batchSize, -1, learningRate, debug)
}

func (d *digits) eval(args []string) error {
	if err := d.load(); err != nil {
		return err
	}
	net, err := trainer.Resume(d.netfile, false)
	if err != nil {
		return err
	}
	matched, _, err := trainer.Evaluate(net, d.test, d.threads)
	if err != nil {
		return err
	}
	fmt.Printf("Matched %d/%d\n", matched, len(d.test))
	return nil
}

func (d *digits) console(c *console.Console) {
	c.Title = "DIGIT RECOGNISER"
	d.out = c.Out
	c.Add("gen", console.Command{
		Usage: "[iterations=10] [batch_size=10] [layer_size=30] [learning_rate=3] [debug=0]",
		Help:  "generate a new network",
		Run:   d.gen,
	})
	c.Add("train", console.Command{
		Usage: "[iterations=10] [batch_size=10] [learning_rate=3] [debug=0]",
		Help:  "train existing network",
		Run:   d.trainExisting,
	})
	c.Add("eval", console.Command{
		Help: "evaluate existing network on the test set",
		Run:  d.eval,
	})
}
