package main

import "bytes"
import "os"
import "path/filepath"
import "strings"
import "testing"

import "github.com/neurlang/layered/console"
import "github.com/neurlang/layered/datasets/mnist"

func writeSet(t *testing.T, dir, images, labels string, count int) {
	im := mnist.NewImages(4, 4)
	var l mnist.Labels
	for i := 0; i < count; i++ {
		px := make([]byte, 16)
		px[i%mnist.Classes] = 255
		if err := im.AddImage(px); err != nil {
			t.Fatal(err)
		}
		l = append(l, byte(i%mnist.Classes))
	}
	var buf bytes.Buffer
	if err := im.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, images), buf.Bytes(), 0666); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := l.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, labels), buf.Bytes(), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestConsoleSession(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "train-images.idx3-ubyte", "train-labels.idx1-ubyte", 30)
	writeSet(t, dir, "test-images.idx3-ubyte", "test-labels.idx1-ubyte", 10)
	netfile := filepath.Join(dir, "net-state.bin")

	var out bytes.Buffer
	d := &digits{data: dir, netfile: netfile, threads: 2}
	c := &console.Console{
		In:  strings.NewReader("train 1\ngen 2 5 8 3\ntrain 1 5 1 1\neval\ngen 1 1 0\nexit\n"),
		Out: &out,
	}
	d.console(c)
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}

	s := out.String()
	// training before any network exists fails, gen creates one, train resumes it
	if strings.Count(s, "error:") != 2 {
		t.Errorf("expected two errors (missing network, zero layer size):\n%s", s)
	}
	// debug=1 draws the trained samples into the console output
	if !strings.Contains(s, "\nlabel ") {
		t.Errorf("no sample preview in debug training:\n%s", s)
	}
	if _, err := os.Stat(netfile); err != nil {
		t.Errorf("network file not written: %v", err)
	}
}
