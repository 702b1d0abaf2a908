package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Threads returns the number of logical cores, as reported by cpuid when it knows
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// CPUName returns the processor brand string for logs
func CPUName() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return runtime.GOARCH
}
