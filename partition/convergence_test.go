package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborix/partkit/partition"
)

func TestConvergenceDetectorNeverHaltsWhenNotEnforced(t *testing.T) {
	d := partition.NewConvergenceDetector(2, 0.5, false)
	for i := 0; i < 20; i++ {
		d.Observe(100)
		require.False(t, d.Halt())
	}
}

func TestConvergenceDetectorNeedsAWarmupWindow(t *testing.T) {
	d := partition.NewConvergenceDetector(5, 0.1, true)
	for i := 0; i < 7; i++ {
		d.Observe(100)
		require.False(t, d.Halt(), "must not fire before 3+windowSize observations")
	}
}

func TestConvergenceDetectorFiresOnSmallRelativeStep(t *testing.T) {
	d := partition.NewConvergenceDetector(2, 0.05, true)
	// 3+windowSize == 5 observations required before Halt can fire.
	d.Observe(100)
	d.Observe(100)
	d.Observe(100)
	d.Observe(100)
	d.Observe(100.1) // best = historical max = 100.1, so step = |1 - 100.1/100.1| = 0 < 0.05
	require.True(t, d.Halt())
}

func TestConvergenceDetectorDoesNotFireOnLargeStep(t *testing.T) {
	d := partition.NewConvergenceDetector(2, 0.01, true)
	d.Observe(100)
	d.Observe(100)
	d.Observe(100)
	d.Observe(100)
	d.Observe(50) // step = 0.5, nowhere near threshold
	require.False(t, d.Halt())
}
