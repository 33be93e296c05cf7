package generator

import (
	"fmt"
	"math"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

func buildAccountName(g *rng.Rng, voc *vocab.Bundle) string {
	return rng.Choice(g, voc.AccountNouns) + " " + rng.Choice(g, voc.AccountSuffixes)
}

func buildRepName(g *rng.Rng, voc *vocab.Bundle) string {
	return rng.Choice(g, voc.FirstNames) + " " + rng.Choice(g, voc.LastNames)
}

// ensureUniqueNames rewrites duplicate names in occurrence order: the first
// occurrence keeps the sampled name, later ones get " (2)", " (3)", ...
// appended. Empty names are a bug in the sampling vocabulary.
func ensureUniqueNames(names []string, kind string) error {
	seen := make(map[string]bool, len(names))
	counts := make(map[string]int)
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%s %d has missing name", kind, i+1)
		}
		if !seen[name] {
			seen[name] = true
			continue
		}
		n := counts[name]
		if n < 2 {
			n = 2
		}
		candidate := fmt.Sprintf("%s (%d)", name, n)
		// The suffixed form can itself collide with a sampled name.
		for seen[candidate] {
			n++
			candidate = fmt.Sprintf("%s (%d)", name, n)
		}
		counts[name] = n + 1
		names[i] = candidate
		seen[candidate] = true
	}
	return nil
}

func clampInt(x float64, lo, hi int) int {
	if x < float64(lo) {
		return lo
	}
	if x > float64(hi) {
		return hi
	}
	return int(x)
}

func roundHalfUp(x float64) int {
	return int(math.Round(x))
}
