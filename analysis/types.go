// Package analysis defines options, results, and sentinel errors for the
// analysis subpackage of github.com/katalvlaran/permnet.
package analysis

import (
	"errors"

	"github.com/katalvlaran/permnet/kway"
)

// Sentinel errors for harness configuration.
var (
	// ErrNoTrials indicates a non-positive trial count.
	ErrNoTrials = errors.New("analysis: trials must be positive")
)

const (
	// defaultTrials matches the historical acceptance runs.
	defaultTrials = 10000
	// defaultSamplePositions bounds the per-position entropy scan.
	defaultSamplePositions = 5
	// maxExactFactorialN is the largest n for which n! is computed exactly
	// (20! is the largest factorial fitting a signed 64-bit int).
	maxExactFactorialN = 20
)

// Options contains tunable parameters for one Analyze run.
type Options struct {
	// Trials is the number of independent randomized builds (default 10000).
	Trials int
	// Workers is the number of goroutines sharing the trials
	// (default runtime.NumCPU(); capped at Trials).
	Workers int
	// Seed is the base seed; trial t draws from kway.DeriveSeed(Seed, t),
	// making the whole run reproducible and worker-count independent.
	Seed int64
	// Strategy selects the network construction under test
	// (default kway.StrategyContiguous).
	Strategy kway.Strategy
	// SamplePositions is how many leading output positions feed the
	// entropy estimate (default 5, clamped to n).
	SamplePositions int
}

// DefaultOptions returns the canonical harness configuration:
// 10000 trials, NumCPU workers, seed 0 (deterministic default stream),
// the supported contiguous strategy, 5 sampled positions.
func DefaultOptions() Options {
	return Options{
		Trials:          defaultTrials,
		Strategy:        kway.StrategyContiguous,
		SamplePositions: defaultSamplePositions,
	}
}

// Report aggregates one Analyze run. All fields are deterministic given
// (spec, Options) including the worker count.
type Report struct {
	// Spec is the analyzed network shape.
	Spec kway.NetworkSpec
	// Trials is the number of builds performed.
	Trials int
	// Valid counts trials whose realized vector was a bijection.
	Valid int
	// ValidityRate is Valid/Trials in [0, 1].
	ValidityRate float64
	// Unique counts distinct realized permutation vectors.
	Unique int
	// TotalPossible is n! when n ≤ 20, else -1 (too large to compute exactly).
	TotalPossible int
	// Coverage is Unique/TotalPossible in [0, 1]; 0 when TotalPossible is unknown.
	Coverage float64
	// AvgEntropyBits is the mean per-position Shannon entropy, in bits,
	// over the first SamplePositions output positions.
	AvgEntropyBits float64
	// MaxEntropyBits is log2(n), the entropy of a perfectly uniform position.
	MaxEntropyBits float64
	// UniformityRatio is AvgEntropyBits/MaxEntropyBits in [0, 1];
	// a soft quality signal, never a correctness criterion.
	UniformityRatio float64
}
