//go:build !linux

package pmu

// initBackend selects the sentinel backend on platforms without a usable
// per-process instruction counter. Darwin exposes one through
// proc_pid_rusage, but reaching it requires cgo.
func initBackend() {
	readInstructions = readUnsupported
	backendName = backendNone
}
