package partition

// ConvergenceDetector maintains the full, unbounded history of
// score-and-propose state values and implements spec §4.6's step/threshold rule, including
// the dual behavior of Open Question 1: EnforceConvergence selects whether
// Halt actually fires on a small step, or only ever records history
// (reproducing the observed "always run to maxIterations" behavior).
type ConvergenceDetector struct {
	windowSize int
	threshold  float64
	enforce    bool
	history    []float64
	supersteps int // number of score-and-propose observations recorded
}

// NewConvergenceDetector builds a detector per Config's window/threshold and
// Open-Question-1 flag.
func NewConvergenceDetector(windowSize int, threshold float64, enforce bool) *ConvergenceDetector {
	return &ConvergenceDetector{windowSize: windowSize, threshold: threshold, enforce: enforce}
}

// Observe records a new state value produced by a score-and-propose stage.
// Call once per odd (propose) superstep, after the superstep's Aggregates.State
// has been finalized.
func (c *ConvergenceDetector) Observe(state float64) {
	c.history = append(c.history, state)
	c.supersteps++
}

// Halt reports whether the convergence rule fires: after superstep
// 3+windowSize observations, step = |1 - newState/best| where best is the
// historical max; step < threshold signals convergence. When enforce is
// false (spec §9 Open Question 1's observed default), Halt always returns
// false regardless of step — the detector still records history, it just
// never acts on it.
func (c *ConvergenceDetector) Halt() bool {
	if !c.enforce {
		return false
	}
	if c.supersteps < 3+c.windowSize {
		return false
	}
	best := c.history[0]
	for _, s := range c.history {
		if s > best {
			best = s
		}
	}
	if best == 0 {
		return false
	}
	newState := c.history[len(c.history)-1]
	step := 1 - newState/best
	if step < 0 {
		step = -step
	}
	return step < c.threshold
}
