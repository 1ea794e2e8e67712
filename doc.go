// Package instrcount reports the number of CPU instructions retired by the
// calling process since it was launched.
//
// The intended use is cost measurement of a bounded unit of work: sample
// Current before and after the work and take the difference. The counter is
// maintained by the operating system's performance-monitoring facility and is
// monotonically non-decreasing for the lifetime of the process.
//
// The counting backend is chosen once, at package initialization, and never
// re-probed. On Linux the backend is a perf_event counter configured for
// retired user-space instructions; it covers the thread that ran package
// initialization and every thread created afterwards. On platforms without a
// usable facility, or when the perf event cannot be opened (insufficient
// privilege, seccomp, missing PMU), Current returns 0 on every call. This
// sentinel never advances, so two calls bracketing known CPU-bound work
// yielding a zero delta indicate an unsupported configuration; Supported
// reports the same condition directly.
package instrcount
