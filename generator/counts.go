package generator

import (
	"fmt"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

// sampleOppCounts gives each account an independently sampled opportunity
// count within the configured per-account band.
func sampleOppCounts(g *rng.Rng, cfg Config, numAccounts int) []int {
	counts := make([]int, numAccounts)
	for i := range counts {
		counts[i] = g.IntBetween(cfg.OppsPerAccountMin, cfg.OppsPerAccountMax)
	}
	return counts
}

// reconcileOppCounts nudges the sampled counts until their sum equals target
// exactly: while under, a random account still below the max gains one;
// while over, a random account still above the min loses one. An empty
// eligible set in either direction means the band cannot reach the target
// given this many accounts, which is a hard configuration failure.
func reconcileOppCounts(g *rng.Rng, counts []int, lo, hi, target int) error {
	total := 0
	for _, c := range counts {
		total += c
	}

	for total < target {
		eligible := indexesWhere(counts, func(c int) bool { return c < hi })
		if len(eligible) == 0 {
			return fmt.Errorf("%w: need %d opportunities but every account is at its max of %d",
				ErrInfeasibleReconciliation, target, hi)
		}
		counts[rng.Choice(g, eligible)]++
		total++
	}

	for total > target {
		eligible := indexesWhere(counts, func(c int) bool { return c > lo })
		if len(eligible) == 0 {
			return fmt.Errorf("%w: need %d opportunities but every account is at its min of %d",
				ErrInfeasibleReconciliation, target, lo)
		}
		counts[rng.Choice(g, eligible)]--
		total--
	}

	return nil
}

func indexesWhere(counts []int, keep func(int) bool) []int {
	var idx []int
	for i, c := range counts {
		if keep(c) {
			idx = append(idx, i)
		}
	}
	return idx
}
