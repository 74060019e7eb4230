package automaton

import "math/rand"

// nearDeterministicSlack is the spec's §4.4 shortcut threshold: when the
// probability mass is this close to a single action, skip bisection and
// return the argmax directly.
const nearDeterministicSlack = 1e-6

// bisectionFactor is the branching factor of the recursive halving; the
// recursion stops once a half holds at most this many candidates.
const bisectionFactor = 2

// Select performs bisection action selection over p (spec §4.4): recursively
// halves the candidate index range, each half carrying the (renormalized)
// probability mass of its members, until at most bisectionFactor indices
// remain, then samples directly. The result's marginal distribution equals p
// up to numeric tolerance (tested via χ² in select_test.go).
//
// Returns ErrEmptyVector for a zero-length p. rng must not be nil; callers
// derive one per vertex (see partition's per-vertex RNG streams) so runs are
// reproducible.
func Select(p Vector, rng *rand.Rand) (int, error) {
	if len(p) == 0 {
		return 0, ErrEmptyVector
	}
	if len(p) == 1 {
		return 0, nil
	}

	if 1-p.Max() < nearDeterministicSlack {
		return p.ArgMax(), nil
	}

	indices := make([]int, len(p))
	probs := make(Vector, len(p))
	copy(probs, p)
	for i := range indices {
		indices[i] = i
	}

	return selectBisect(indices, probs, rng), nil
}

// selectBisect recurses on a (indices, probs) pair where probs sums to 1
// over exactly len(indices) candidates.
func selectBisect(indices []int, probs Vector, rng *rand.Rand) int {
	if len(indices) <= bisectionFactor {
		return selectSmall(indices, probs, rng)
	}

	const separator = 1.0 / float64(bisectionFactor)

	sum := 0.0
	splitAt := len(probs) - 1
	for i, pr := range probs {
		sum += pr
		if sum >= separator {
			splitAt = i
			break
		}
	}

	// The left half's raw mass may overshoot the separator; shave the
	// overshoot off the boundary element and carry it into the right half
	// under the boundary element's own index (which then appears in both
	// halves) so both halves sum to exactly 1/2 before doubling.
	overshoot := sum - separator
	if overshoot < 0 {
		overshoot = 0
	}

	leftIndices := indices[:splitAt+1]
	leftProbs := make(Vector, splitAt+1)
	copy(leftProbs, probs[:splitAt+1])
	leftProbs[splitAt] -= overshoot

	rightIndices := indices[splitAt+1:]
	rightProbs := make(Vector, len(probs)-splitAt-1)
	copy(rightProbs, probs[splitAt+1:])
	if overshoot > 0 {
		rightIndices = append([]int{indices[splitAt]}, rightIndices...)
		rightProbs = append(Vector{overshoot}, rightProbs...)
	}

	if rng.Float64() < 0.5 {
		for i := range leftProbs {
			leftProbs[i] *= float64(bisectionFactor)
		}
		return selectBisect(leftIndices, leftProbs, rng)
	}
	for i := range rightProbs {
		rightProbs[i] *= float64(bisectionFactor)
	}
	return selectBisect(rightIndices, rightProbs, rng)
}

// selectSmall handles the one- or two-element base case of the recursion.
func selectSmall(indices []int, probs Vector, rng *rand.Rand) int {
	if len(indices) == 1 {
		return indices[0]
	}
	total := probs[0] + probs[1]
	if total <= 0 {
		return indices[0]
	}
	if rng.Float64()*total < probs[0] {
		return indices[0]
	}
	return indices[1]
}
