// Package analysis measures the empirical behavior of kway permutation
// networks over many independent randomized trials: validity rate,
// unique-permutation coverage relative to n!, and per-position Shannon
// entropy as a soft uniformity signal.
//
// What:
//
//   - Analyze builds opts.Trials independent tables for one NetworkSpec,
//     each from its own derived RNG stream, and tallies the realized
//     permutation vectors.
//   - Report carries the aggregated statistics; nothing is asserted —
//     bijectivity is the caller's invariant to check, uniformity is a
//     measured quality property and deliberately NOT a guarantee.
//
// Why:
//
//   - Regression evidence: the contiguous-chunk network must stay at a
//     100% validity rate for any shape; a dip is an algorithmic defect.
//   - Comparing strategies: the experimental group-stride network is
//     kept precisely so its historical (broken) numbers reproduce.
//
// Concurrency:
//
//	Trials are spread across opts.Workers goroutines. Every trial seeds
//	its own *rand.Rand via kway.DeriveSeed(opts.Seed, trial), so results
//	are byte-identical regardless of worker count and no RNG is ever
//	shared between goroutines.
//
// Complexity:
//
//   - Analyze: O(Trials · n·log_k n) time, O(Trials · n) unique-set
//     memory in the worst case (every trial distinct).
//
// Options:
//
//   - Options.Trials: number of independent builds (default 10000).
//   - Options.Workers: goroutine count (default runtime.NumCPU()).
//   - Options.Seed: base seed for the per-trial stream derivation.
//   - Options.Strategy: network construction under test.
//   - Options.SamplePositions: output positions sampled for entropy (default 5).
//
// Errors:
//
//   - ErrNoTrials: Options.Trials < 1.
//   - kway.ErrInvalidRadix / kway.ErrInvalidSize / kway.ErrUnknownStrategy
//     forwarded from spec and strategy validation.
package analysis
