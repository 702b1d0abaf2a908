package main

import "flag"
import "fmt"
import "os"

import "github.com/neurlang/layered/console"

func main() {
	data := flag.String("data", "Data", "directory with the MNIST idx files")
	netfile := flag.String("netfile", "Data/net-state.bin", "network state file")
	threads := flag.Int("threads", 0, "evaluation threads, 0 means all cores")
	flag.Parse()

	d := &digits{data: *data, netfile: *netfile, threads: *threads}
	c := &console.Console{In: os.Stdin, Out: os.Stdout, Prompt: "NEURAL>"}
	d.console(c)

	if err := c.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
