// Package profile provides optional runtime profiling for the lamb
// command.
//
// The package wraps [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), every operation is a no-op with
// zero runtime overhead, and the command exposes no profiling flags.
//
// # Available Profiling Modes
//
// The following modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Command-Line Usage
//
// Build with the tag and select a mode at run time:
//
//	go build -tags pprof .
//
//	# CPU profile of a large batch, written to the default cache directory
//	lamb --pprof-mode cpu check terms.txt
//
//	# Heap profile with a custom output directory
//	lamb --pprof-mode heap --pprof-dir ./profiles check terms.txt
//
// Profile files are written to the output directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof), ready for analysis with
//
//	go tool pprof ./lamb ./profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
