// benchmark.go
// A reusable benchmarking module for Protein Lab
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// Run wraps a tool invocation and reports its runtime and memory usage.
// Panel generation is pure CPU work, so the goroutine counts should stay
// flat; a growing count means a tool leaked background work.
func Run(label string, f func()) {
	fmt.Printf("[Benchmark] Running: %s\n", label)

	// Snapshot environment info
	fmt.Println("[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	host, err := os.Hostname()
	if err == nil {
		fmt.Println("[Benchmark] Hostname:", host)
	}
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()
	startGoroutines := runtime.NumGoroutine()

	// Run benchmarked tool
	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	endGoroutines := runtime.NumGoroutine()

	// Report resource usage
	fmt.Printf("[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Printf("[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Printf("[Benchmark] Goroutines: %d → %d\n", startGoroutines, endGoroutines)
	fmt.Println("[Benchmark] ----------------------------------------")
}
