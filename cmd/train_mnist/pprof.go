package main

import "os"
import "os/signal"
import "runtime/pprof"
import "syscall"

// startProfile collects a cpu profile into default.pgo until the returned
// function is called or the process receives SIGINT or SIGTERM
func startProfile() (stop func()) {
	f, err := os.Create("default.pgo")
	if err != nil {
		println(err.Error())
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		println(err.Error())
		f.Close()
		return func() {}
	}

	stop = func() {
		pprof.StopCPUProfile()
		f.Close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		stop()
		os.Exit(130)
	}()
	return stop
}
