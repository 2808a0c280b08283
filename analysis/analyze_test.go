package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/permnet/analysis"
	"github.com/katalvlaran/permnet/kway"
)

// TestAnalyze_ContiguousIsAlwaysValid runs the supported strategy on the
// acceptance shape (n=11, k=5) and demands a 100% validity rate — the
// hard invariant the harness exists to watch.
func TestAnalyze_ContiguousIsAlwaysValid(t *testing.T) {
	spec, err := kway.NewNetworkSpec(11, 5)
	require.NoError(t, err)

	opts := analysis.DefaultOptions()
	opts.Trials = 2000
	opts.Seed = 11

	rep, err := analysis.Analyze(spec, opts)
	require.NoError(t, err)

	assert.Equal(t, opts.Trials, rep.Trials)
	assert.Equal(t, opts.Trials, rep.Valid)
	assert.Equal(t, 1.0, rep.ValidityRate)
	assert.Greater(t, rep.Unique, 1, "independent trials must explore multiple vectors")
	assert.Equal(t, spec, rep.Spec)
}

// TestAnalyze_ReportBoundsAndCoverage checks the statistical fields stay
// inside their documented ranges on a small fully-enumerable shape.
func TestAnalyze_ReportBoundsAndCoverage(t *testing.T) {
	spec, err := kway.NewNetworkSpec(5, 5)
	require.NoError(t, err)

	opts := analysis.DefaultOptions()
	opts.Trials = 3000
	opts.Seed = 5

	rep, err := analysis.Analyze(spec, opts)
	require.NoError(t, err)

	assert.Equal(t, 120, rep.TotalPossible, "5! exact count")
	assert.GreaterOrEqual(t, rep.Coverage, 0.0)
	assert.LessOrEqual(t, rep.Coverage, 1.0)
	assert.LessOrEqual(t, rep.Unique, rep.TotalPossible)

	assert.InDelta(t, math.Log2(5), rep.MaxEntropyBits, 1e-12)
	assert.GreaterOrEqual(t, rep.AvgEntropyBits, 0.0)
	assert.LessOrEqual(t, rep.AvgEntropyBits, rep.MaxEntropyBits+1e-9)
	assert.GreaterOrEqual(t, rep.UniformityRatio, 0.0)
	assert.LessOrEqual(t, rep.UniformityRatio, 1.0+1e-9)
}

// TestAnalyze_WorkerCountDoesNotChangeResults is the reproducibility
// contract: per-trial seed derivation makes the Report identical for any
// parallelism degree.
func TestAnalyze_WorkerCountDoesNotChangeResults(t *testing.T) {
	spec, err := kway.NewNetworkSpec(12, 3)
	require.NoError(t, err)

	base := analysis.DefaultOptions()
	base.Trials = 500
	base.Seed = 77

	serial := base
	serial.Workers = 1
	parallel := base
	parallel.Workers = 8

	a, err := analysis.Analyze(spec, serial)
	require.NoError(t, err)
	b, err := analysis.Analyze(spec, parallel)
	require.NoError(t, err)
	assert.Equal(t, a, b, "reports must not depend on worker count")
}

// TestAnalyze_GroupStrideShowsTheDefect runs the experimental strategy on
// its known-bad shape and expects a validity rate strictly below 1 —
// reproducing the historical benchmark numbers is this strategy's only job.
func TestAnalyze_GroupStrideShowsTheDefect(t *testing.T) {
	spec, err := kway.NewNetworkSpec(3, 2)
	require.NoError(t, err)

	opts := analysis.DefaultOptions()
	opts.Trials = 500
	opts.Seed = 3
	opts.Strategy = kway.StrategyGroupStride

	rep, err := analysis.Analyze(spec, opts)
	require.NoError(t, err)
	assert.Less(t, rep.ValidityRate, 1.0)
	assert.Positive(t, rep.Valid, "the identity group setting keeps some trials valid")
}

// TestAnalyze_OptionValidation covers the harness's own failure modes and
// the forwarded spec/strategy sentinels.
func TestAnalyze_OptionValidation(t *testing.T) {
	spec, err := kway.NewNetworkSpec(8, 2)
	require.NoError(t, err)

	_, err = analysis.Analyze(spec, analysis.Options{Trials: 0})
	assert.ErrorIs(t, err, analysis.ErrNoTrials)

	_, err = analysis.Analyze(kway.NetworkSpec{N: 8, K: 1}, analysis.DefaultOptions())
	assert.ErrorIs(t, err, kway.ErrInvalidRadix)

	bad := analysis.DefaultOptions()
	bad.Trials = 10
	bad.Strategy = kway.Strategy(99)
	_, err = analysis.Analyze(spec, bad)
	assert.ErrorIs(t, err, kway.ErrUnknownStrategy)
}

// TestAnalyze_Boundaries checks the degenerate shapes: n=0 has one
// (empty) permutation and no entropy; n=1 is always the identity.
func TestAnalyze_Boundaries(t *testing.T) {
	empty, err := kway.NewNetworkSpec(0, 2)
	require.NoError(t, err)
	opts := analysis.DefaultOptions()
	opts.Trials = 50

	rep, err := analysis.Analyze(empty, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep.ValidityRate)
	assert.Equal(t, 1, rep.Unique)
	assert.Equal(t, 1, rep.TotalPossible, "0! = 1")
	assert.Zero(t, rep.AvgEntropyBits)
	assert.Zero(t, rep.MaxEntropyBits)

	single, err := kway.NewNetworkSpec(1, 2)
	require.NoError(t, err)
	rep, err = analysis.Analyze(single, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep.ValidityRate)
	assert.Equal(t, 1, rep.Unique)
	assert.Zero(t, rep.AvgEntropyBits, "a single fixed position carries no entropy")
}
