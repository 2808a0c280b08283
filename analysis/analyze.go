// Package analysis - the trial loop and statistics aggregation.
package analysis

import (
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/permnet/kway"
)

// Analyze runs opts.Trials independent randomized builds of spec and
// aggregates validity, coverage, and entropy statistics.
//
// Determinism: trial t always draws from kway.DeriveSeed(opts.Seed, t),
// so the Report is identical for any worker count.
//
// Errors: ErrNoTrials; spec/strategy sentinels forwarded from kway.
//
// Complexity: O(Trials · n·log_k n) time spread over opts.Workers goroutines.
func Analyze(spec kway.NetworkSpec, opts Options) (Report, error) {
	if err := spec.Validate(); err != nil {
		return Report{}, err
	}
	if opts.Trials < 1 {
		return Report{}, ErrNoTrials
	}
	if opts.Strategy != kway.StrategyContiguous && opts.Strategy != kway.StrategyGroupStride {
		return Report{}, kway.ErrUnknownStrategy
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, opts.Trials)

	sample := opts.SamplePositions
	if sample < 1 {
		sample = defaultSamplePositions
	}
	sample = min(sample, spec.N)

	// Per-worker tallies; merged after the wait so no locking is needed
	// inside the trial loop.
	tallies := make([]*tally, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		tallies[w] = newTally(spec.N, sample)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			runTrials(spec, opts, w, workers, tallies[w])
		}(w)
	}
	wg.Wait()

	total := newTally(spec.N, sample)
	for _, tl := range tallies {
		total.merge(tl)
	}
	return total.report(spec, opts.Trials, sample), nil
}

// tally accumulates statistics for a subset of trials.
type tally struct {
	valid  int
	unique map[string]struct{}
	// counts[i][v] counts trials whose output position i held input v.
	counts [][]float64
}

func newTally(n, sample int) *tally {
	t := &tally{
		unique: make(map[string]struct{}),
		counts: make([][]float64, sample),
	}
	for i := range t.counts {
		t.counts[i] = make([]float64, n)
	}
	return t
}

// runTrials executes trials w, w+stride, w+2·stride, … into tl.
func runTrials(spec kway.NetworkSpec, opts Options, w, stride int, tl *tally) {
	for trial := w; trial < opts.Trials; trial += stride {
		rng := kway.NewRNG(kway.DeriveSeed(opts.Seed, uint64(trial)))
		// The strategy was validated up front; Build cannot fail here.
		tab, _ := kway.BuildStrategy(spec, opts.Strategy, rng)
		perm := kway.Permutation(tab)

		if kway.CheckValidity(perm) {
			tl.valid++
		}
		tl.unique[permKey(perm)] = struct{}{}
		for i := range tl.counts {
			// Group-stride vectors may carry -1 holes; skip them.
			if v := perm[i]; v >= 0 && v < spec.N {
				tl.counts[i][v]++
			}
		}
	}
}

// merge folds other into tl.
func (tl *tally) merge(other *tally) {
	tl.valid += other.valid
	for key := range other.unique {
		tl.unique[key] = struct{}{}
	}
	for i := range tl.counts {
		for v := range tl.counts[i] {
			tl.counts[i][v] += other.counts[i][v]
		}
	}
}

// report converts raw tallies into the final Report.
func (tl *tally) report(spec kway.NetworkSpec, trials, sample int) Report {
	r := Report{
		Spec:          spec,
		Trials:        trials,
		Valid:         tl.valid,
		ValidityRate:  float64(tl.valid) / float64(trials),
		Unique:        len(tl.unique),
		TotalPossible: -1,
	}

	if spec.N <= maxExactFactorialN {
		r.TotalPossible = combin.NumPermutations(spec.N, spec.N)
		r.Coverage = float64(r.Unique) / float64(r.TotalPossible)
	}

	if sample > 0 {
		var sum float64
		probs := make([]float64, spec.N)
		for i := 0; i < sample; i++ {
			for v := range probs {
				probs[v] = tl.counts[i][v] / float64(trials)
			}
			sum += stat.Entropy(probs) / math.Ln2
		}
		r.AvgEntropyBits = sum / float64(sample)
	}
	if spec.N > 1 {
		r.MaxEntropyBits = math.Log2(float64(spec.N))
		r.UniformityRatio = r.AvgEntropyBits / r.MaxEntropyBits
	}
	return r
}

// permKey flattens a permutation vector into a map key.
func permKey(perm []int) string {
	var b strings.Builder
	b.Grow(len(perm) * 3)
	for i, p := range perm {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}
