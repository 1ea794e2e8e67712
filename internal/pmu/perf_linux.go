//go:build linux

package pmu

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// perfFD is the perf_event file descriptor for the retired-instruction
// counter. It is opened once at init and stays open for the process
// lifetime; the kernel keeps the count running whether or not we read it.
var perfFD = -1

func initBackend() {
	fd, err := openInstructionCounter()
	if err != nil {
		// No permission, seccomp filter, missing PMU, or a hypervisor that
		// hides the counters. The contract is an unconditional value, so the
		// probe error is not surfaced.
		readInstructions = readUnsupported
		backendName = backendNone

		return
	}

	perfFD = fd
	readInstructions = readPerfEvent
	backendName = backendPerfEvent
}

// openInstructionCounter configures a perf_event counter for retired
// user-space instructions, scoped to this process.
//
// Inherit is set so that threads cloned after init are aggregated into the
// same count; threads that existed before init are outside this accounting
// model. Counts from exited threads remain in the aggregate, so reads never
// go backwards.
func openInstructionCounter() (int, error) {
	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Config: unix.PERF_COUNT_HW_INSTRUCTIONS,
		Size:   uint32(unsafe.Sizeof(unix.PerfEventAttr{})),
		Bits: unix.PerfBitDisabled | unix.PerfBitInherit |
			unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}

	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		return -1, err
	}

	if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
		unix.Close(fd)

		return -1, err
	}

	if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
		unix.Close(fd)

		return -1, err
	}

	return fd, nil
}

// readPerfEvent reads the running counter value: one read(2) of eight bytes,
// no allocation.
func readPerfEvent() uint64 {
	var buf [8]byte

	n, err := unix.Read(perfFD, buf[:])
	if err != nil || n != len(buf) {
		return 0
	}

	return binary.NativeEndian.Uint64(buf[:])
}
