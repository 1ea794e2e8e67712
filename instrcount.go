package instrcount

import "github.com/cwbudde/instrcount/internal/pmu"

// Current returns the number of CPU instructions the process has retired
// since it was launched.
//
// The value is non-decreasing across calls, takes no locks, performs no
// allocation, and is safe to call concurrently from multiple goroutines.
// On platforms without a counting backend it returns 0 on every call; see
// the package documentation for the sentinel convention.
func Current() uint64 {
	return pmu.ReadCount()
}

// Supported reports whether a real instruction-counting backend was selected
// at initialization. When it returns false, Current always returns 0.
func Supported() bool {
	return pmu.Supported()
}

// Backend returns the name of the counting backend selected at
// initialization: "perf_event" on Linux when the event could be opened,
// "none" otherwise. The choice is fixed for the process lifetime.
func Backend() string {
	return pmu.Backend()
}

// Measure runs fn and returns the number of instructions retired while it
// executed. It is the sample-run-sample-subtract bracket as a convenience;
// on unsupported platforms it returns 0.
func Measure(fn func()) uint64 {
	start := pmu.ReadCount()
	fn()

	return pmu.ReadCount() - start
}
