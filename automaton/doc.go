// Package automaton implements the learning-automaton engine described in
// spec §4.4: a probability-vector action selector (bisection selection) and
// a reward/penalty update rule (the L_R-P scheme) that together let each
// vertex adapt its migration preferences as the partitioning converges.
//
// What
//
//   - Vector: a probability-simplex or signal-accumulator slice.
//   - Select: samples an action (partition index) from a Vector via
//     recursive bisection, matching the vector's marginal distribution.
//   - Update: applies the reward/penalty rule given accumulated signals,
//     boosting the best-performing action and redistributing probability
//     mass, then clears the signal accumulator.
//
// Why
//
//   - A plain argmax on neighborhood frequency converges fast but can get
//     stuck oscillating at partition boundaries; folding the LA's
//     probability vector into the decision (spec §4.2 step 5) damps that
//     oscillation by remembering which moves paid off historically.
//
// Determinism
//
//	Both Select and Update are deterministic given their *rand.Rand / inputs;
//	reproducibility across runs requires the caller to seed one RNG stream
//	per vertex ID (spec §5, exercised end-to-end by partition's
//	TestCoordinatorRunIsDeterministicForAFixedSeed).
package automaton
