package partition

import "github.com/arborix/partkit/automaton"

// Config holds the recognized configuration options from spec §6, with
// defaults matching the spec exactly. Build one with NewConfig and Option
// functions, following the teacher's functional-options convention
// (builder.BuilderOption, bfs.Option).
type Config struct {
	// NumberOfPartitions (k) is the target partition count. Default 32.
	NumberOfPartitions int

	// Repartition (Δ) shifts the candidate action space to k+Δ and selects
	// the Rescaler instead of the Initializer at superstep 2 when nonzero.
	// Default 0 (-k < Δ).
	Repartition int

	// AdditionalCapacity (ε) inflates totalCapacity beyond the even split.
	// Default 0.05.
	AdditionalCapacity float64

	// Lambda (λ) is the penalty-term baseline. Default 1.0.
	Lambda float64

	// Alpha (α) is the LA reward rate. Default 0.98.
	Alpha float64

	// Beta (β) is the LA penalty rate. Default 0.02.
	Beta float64

	// MaxIterations bounds the superstep count. Default 290.
	MaxIterations int

	// ConvergenceThreshold is the §4.6 relative-improvement threshold.
	// Default 0.001.
	ConvergenceThreshold float64

	// WindowSize is the convergence history window. Default 5.
	WindowSize int

	// EdgeWeight is the default weight applied when the input format omits
	// one. Default 1.
	EdgeWeight int8

	// EnforceConvergence resolves Open Question 1 (spec §9): the observed
	// implementation records convergence history but halts only on
	// maxIterations. false (default) reproduces that behavior; true enables
	// the documented step < ConvergenceThreshold halt rule.
	EnforceConvergence bool

	// ReinforceArgmax resolves Open Question 3 (spec §9): whether the signal
	// broadcast to neighbors reinforces the argmax-score partition (true,
	// the observed broadcast behavior) or the LA-sampled newPartition
	// (false). Default true.
	ReinforceArgmax bool
}

// DefaultConfig returns a Config with every field at its spec §6 default.
func DefaultConfig() Config {
	return Config{
		NumberOfPartitions:   32,
		Repartition:          0,
		AdditionalCapacity:   0.05,
		Lambda:               1.0,
		Alpha:                automaton.DefaultAlpha,
		Beta:                 automaton.DefaultBeta,
		MaxIterations:        290,
		ConvergenceThreshold: 0.001,
		WindowSize:           5,
		EdgeWeight:           1,
		EnforceConvergence:   false,
		ReinforceArgmax:      true,
	}
}

// Option mutates a Config during NewConfig construction.
type Option func(*Config)

// WithNumberOfPartitions sets k.
func WithNumberOfPartitions(k int) Option {
	return func(c *Config) { c.NumberOfPartitions = k }
}

// WithRepartition sets Δ, switching the coordinator to the Rescale path.
func WithRepartition(delta int) Option {
	return func(c *Config) { c.Repartition = delta }
}

// WithAdditionalCapacity sets ε.
func WithAdditionalCapacity(epsilon float64) Option {
	return func(c *Config) { c.AdditionalCapacity = epsilon }
}

// WithLambda sets λ.
func WithLambda(lambda float64) Option {
	return func(c *Config) { c.Lambda = lambda }
}

// WithRates sets the LA reward/penalty rates α, β.
func WithRates(alpha, beta float64) Option {
	return func(c *Config) { c.Alpha, c.Beta = alpha, beta }
}

// WithMaxIterations sets the superstep cap.
func WithMaxIterations(n int) Option {
	return func(c *Config) { c.MaxIterations = n }
}

// WithConvergence sets the convergence threshold and history window.
func WithConvergence(threshold float64, windowSize int) Option {
	return func(c *Config) { c.ConvergenceThreshold, c.WindowSize = threshold, windowSize }
}

// WithEdgeWeight sets the default edge weight used by the input reader.
func WithEdgeWeight(w int8) Option {
	return func(c *Config) { c.EdgeWeight = w }
}

// WithEnforceConvergence toggles Open Question 1's behavior flag.
func WithEnforceConvergence(enforce bool) Option {
	return func(c *Config) { c.EnforceConvergence = enforce }
}

// WithReinforceArgmax toggles Open Question 3's behavior flag.
func WithReinforceArgmax(argmax bool) Option {
	return func(c *Config) { c.ReinforceArgmax = argmax }
}

// NewConfig builds a Config from DefaultConfig plus opts, then validates it.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration-fault class of errors from spec §7:
// k<=0, windowSize<=0, α/β outside [0,1], maxIterations<=0, or a Δ that
// would leave fewer than one partition.
func (c Config) Validate() error {
	if c.NumberOfPartitions <= 0 {
		return ErrInvalidPartitionCount
	}
	if c.NumberOfPartitions+c.Repartition <= 0 {
		return ErrInvalidRescale
	}
	if c.WindowSize <= 0 {
		return ErrInvalidWindowSize
	}
	if c.Alpha < 0 || c.Alpha > 1 || c.Beta < 0 || c.Beta > 1 {
		return ErrInvalidRate
	}
	if c.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	return nil
}

// K returns the effective candidate-partition count k+Δ.
func (c Config) K() int {
	return c.NumberOfPartitions + c.Repartition
}
