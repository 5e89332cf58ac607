// Package profile provides optional runtime profiling for the schemer
// application.
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation support. Profiling must be enabled at build time using the
// "pprof" build tag:
//
//	go build -tags pprof .
//
// When built without the tag (default), all operations are no-ops with zero
// runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
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
// The schemer command supports profiling through command-line flags when
// built with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./schemer --pprof-mode cpu parse '3/4'
//
//	# Enable heap profiling with custom output directory
//	./schemer --pprof-mode heap --pprof-dir ./profiles parse '#x1f'
//
// Profile files are written to the output directory with names matching the
// profiling mode (e.g., cpu.pprof, mem.pprof). Analyze them with:
//
//	go tool pprof ./schemer /path/to/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
