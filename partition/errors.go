package partition

import "errors"

// Sentinel errors for partition engine configuration and operation.
var (
	// ErrInvalidPartitionCount indicates numberOfPartitions <= 0.
	ErrInvalidPartitionCount = errors.New("partition: numberOfPartitions must be positive")

	// ErrInvalidRescale indicates a repartition delta that would leave fewer
	// than one partition (k+Δ <= 0).
	ErrInvalidRescale = errors.New("partition: repartition delta out of range")

	// ErrInvalidWindowSize indicates windowSize <= 0.
	ErrInvalidWindowSize = errors.New("partition: windowSize must be positive")

	// ErrInvalidRate indicates alpha or beta outside [0,1].
	ErrInvalidRate = errors.New("partition: alpha/beta must be in [0,1]")

	// ErrInvalidMaxIterations indicates maxIterations <= 0.
	ErrInvalidMaxIterations = errors.New("partition: maxIterations must be positive")

	// ErrVertexNotFound indicates an operation referenced a vertex the
	// coordinator never initialized.
	ErrVertexNotFound = errors.New("partition: vertex not found")

	// ErrProtocolViolation indicates a vertex received messages tagged for
	// the wrong stage (spec §7: "a migration-stage vertex receives
	// propose-stage messages, or vice versa").
	ErrProtocolViolation = errors.New("partition: message received in wrong stage")
)
