package analysis_test

import (
	"testing"

	"github.com/katalvlaran/permnet/analysis"
	"github.com/katalvlaran/permnet/kway"
)

// BenchmarkAnalyze measures a full 1000-trial harness run on the
// acceptance shape; the trial loop dominates, so this tracks the cost of
// Build+Permutation end to end.
func BenchmarkAnalyze(b *testing.B) {
	spec, err := kway.NewNetworkSpec(11, 5)
	if err != nil {
		b.Fatalf("setup NewNetworkSpec failed: %v", err)
	}
	opts := analysis.DefaultOptions()
	opts.Trials = 1000
	opts.Seed = 42

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := analysis.Analyze(spec, opts); err != nil {
			b.Fatalf("Analyze failed: %v", err)
		}
	}
}
