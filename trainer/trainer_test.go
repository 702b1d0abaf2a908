package trainer

import "math/rand"
import "os"
import "path/filepath"
import "testing"

import "github.com/neurlang/layered/datasets"
import "github.com/neurlang/layered/net/layered"
import "github.com/pkg/errors"

// two well separated classes in four dimensions
func toy(rng *rand.Rand, n int) (o datasets.Samples) {
	for i := 0; i < n; i++ {
		label := byte(i % 2)
		in := []float64{1, 1, 0, 0}
		if label == 1 {
			in = []float64{0, 0, 1, 1}
		}
		for j := range in {
			in[j] += rng.Float64()*0.2 - 0.1
		}
		o = append(o, datasets.Sample{Input: in, Label: label})
	}
	return
}

func TestGenerate(t *testing.T) {
	net := Generate(4, []int{5, 3}, 2, rand.New(rand.NewSource(1)))
	if net.LenLayers() != 4 {
		t.Fatalf("%d layers", net.LenLayers())
	}
	if up := net.OutputLayer().Neuron(0).Upstream(); up != 3 {
		t.Errorf("output reads layer %d", up)
	}
	if up := net.MidLayer(1).Neuron(0).Upstream(); up != 2 {
		t.Errorf("second hidden layer reads layer %d", up)
	}
	if up := net.MidLayer(0).Neuron(0).Upstream(); up != 0 {
		t.Errorf("first hidden layer reads layer %d", up)
	}
}

func TestTraining(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	train, test := toy(rng, 40), toy(rng, 20)
	net := Generate(4, []int{6}, 2, rng)

	dst := filepath.Join(t.TempDir(), "net-state.bin")
	h := Defaults()
	h.Iterations = 30
	h.BatchSize = 4
	h.SeedValue = 3
	h.Threads = 2
	h.Dst = dst
	h.Quiet = true
	if err := h.SetLogger(filepath.Join(t.TempDir(), "train.log")); err != nil {
		t.Fatal(err)
	}
	defer h.CloseLogger()

	result, err := h.Training(net, train, test)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Matched) != 30 || result.Total != 20 || result.Name == "" {
		t.Errorf("result %+v", result)
	}
	if last := result.Matched[len(result.Matched)-1]; last < 18 {
		t.Errorf("only %d/20 matched after training", last)
	}

	saved, err := Resume(dst, false)
	if err != nil {
		t.Fatal(err)
	}
	matched, fingerprint, err := Evaluate(saved, test, 1)
	if err != nil {
		t.Fatal(err)
	}
	if matched != result.Matched[len(result.Matched)-1] || fingerprint != result.Fingerprint {
		t.Errorf("saved network evaluates differently: %d %x", matched, fingerprint)
	}
}

// evaluation gives the same answer whatever the thread count
func TestEvaluateThreads(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	samples := toy(rng, 101)
	net := Generate(4, []int{3}, 2, rng)
	m1, f1, err := Evaluate(net, samples, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, threads := range []int{2, 7, 200, 0} {
		m, f, err := Evaluate(net, samples, threads)
		if err != nil || m != m1 || f != f1 {
			t.Errorf("%d threads: %d %x %v, want %d %x", threads, m, f, err, m1, f1)
		}
	}
}

func TestTrainingErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	h := Defaults()
	h.Iterations = 1
	h.Quiet = true
	h.Dst = filepath.Join(t.TempDir(), "net.bin")

	// labels beyond the output layer
	net := Generate(4, []int{3}, 1, rng)
	if _, err := h.Training(net, toy(rng, 4), toy(rng, 4)); err == nil {
		t.Errorf("expected label error")
	}

	// inputs of the wrong length
	net = Generate(3, []int{3}, 2, rng)
	if _, err := h.Training(net, toy(rng, 4), nil); !errors.Is(err, layered.ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestCompressedSave(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	net := Generate(2, []int{2}, 2, rng)
	dst := filepath.Join(t.TempDir(), "net.bin.lzw")
	if err := Save(net, dst, true); err != nil {
		t.Fatal(err)
	}
	if _, err := Resume(dst, true); err != nil {
		t.Fatal(err)
	}
	if _, err := Resume(dst, false); err == nil {
		t.Errorf("compressed file decoded as raw")
	}
}

func TestOpen(t *testing.T) {
	h := Defaults()
	h.Dst = filepath.Join(t.TempDir(), "net.bin")
	if _, err := h.Open(true, 4, nil, 2); err == nil {
		t.Errorf("resumed a missing network")
	}
	net, err := h.Open(false, 4, []int{3}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(net, h.Dst, false); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Open(true, 4, nil, 2); err != nil {
		t.Errorf("resume: %v", err)
	}
	if _, err := h.Open(true, 5, nil, 2); !errors.Is(err, layered.ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestSetLoggerReplacesFile(t *testing.T) {
	dir := t.TempDir()
	h := Defaults()
	if err := h.SetLogger(filepath.Join(dir, "first.log")); err != nil {
		t.Fatal(err)
	}
	first := h.logfile
	if err := h.SetLogger(filepath.Join(dir, "second.log")); err != nil {
		t.Fatal(err)
	}
	if _, err := first.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("first log file still open: %v", err)
	}
	h.logf("line")
	if err := h.CloseLogger(); err != nil {
		t.Fatal(err)
	}
	if err := h.CloseLogger(); err != nil {
		t.Errorf("second close: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "second.log"))
	if err != nil || len(data) == 0 {
		t.Errorf("second log file empty: %q %v", data, err)
	}
}

func TestPreview(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := Defaults()
	h.Iterations = 2
	h.Quiet = true
	h.Dst = filepath.Join(t.TempDir(), "net.bin")

	var previewed int
	h.Preview = func(s datasets.Sample) {
		if len(s.Input) != 4 {
			t.Errorf("previewed sample of %d inputs", len(s.Input))
		}
		previewed++
	}
	if _, err := h.Training(Generate(4, []int{3}, 2, rng), toy(rng, 20), toy(rng, 4)); err != nil {
		t.Fatal(err)
	}
	// one preview per tenth of the training set, every iteration
	if previewed != 20 {
		t.Errorf("%d previews, want 20", previewed)
	}
}
