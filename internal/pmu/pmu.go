// Package pmu selects and reads a per-process retired-instruction counter.
//
// The backend is probed exactly once, at package load, and held as a fixed
// function variable so the hot path is a single indirect call plus the
// underlying counter read. When no backend is available the read returns a
// sentinel 0 that never advances.
package pmu

// Backend names reported by Backend.
const (
	backendPerfEvent = "perf_event"
	backendNone      = "none"
)

// readInstructions is the counting strategy chosen at init.
// It is never reassigned afterwards, so concurrent reads need no coordination.
var readInstructions func() uint64

// backendName identifies the selected strategy for callers that want to
// report or assert on it.
var backendName string

func init() {
	initBackend()
}

// ReadCount returns the current retired-instruction count for this process,
// or 0 when no backend is available.
func ReadCount() uint64 {
	return readInstructions()
}

// Supported reports whether a real counting backend was selected.
func Supported() bool {
	return backendName != backendNone
}

// Backend returns the name of the selected backend.
func Backend() string {
	return backendName
}

// readUnsupported is the sentinel backend.
func readUnsupported() uint64 {
	return 0
}
