//go:build linux

package pmu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfCounterHeldOpen(t *testing.T) {
	if !Supported() {
		t.Skipf("perf_event unavailable (backend=%q)", Backend())
	}

	require.GreaterOrEqual(t, perfFD, 0, "backend active but fd not open")

	// The event was enabled at init, so by the time a test runs the running
	// count must already be nonzero and advancing.
	v1 := readPerfEvent()
	v2 := readPerfEvent()

	assert.NotZero(t, v1)
	assert.GreaterOrEqual(t, v2, v1)
}
