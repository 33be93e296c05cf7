package generator

import (
	"fmt"
	"math"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
)

// enforceTAM scales the amounts down so their sum never exceeds tam. After
// the proportional scale, rounding can still leave the sum a few dollars
// over; the overflow is shaved off the largest remaining positive amounts.
func enforceTAM(amounts []int, tam int) []int {
	total := 0
	for _, a := range amounts {
		total += a
	}
	if total <= tam || total <= 0 {
		return amounts
	}

	factor := float64(tam) / float64(total)
	scaled := make([]int, len(amounts))
	sum := 0
	for i, a := range amounts {
		scaled[i] = roundHalfUp(float64(a) * factor)
		sum += scaled[i]
	}

	for sum > tam {
		largest := -1
		for i, a := range scaled {
			if a > 0 && (largest < 0 || a > scaled[largest]) {
				largest = i
			}
		}
		if largest < 0 {
			break
		}
		scaled[largest]--
		sum--
	}
	return scaled
}

// generateAmounts samples raw opportunity amounts per account and enforces
// the per-account TAM cap. For an account with n opportunities the target
// pipeline is X = TAM x coverage; each raw amount is X x U with U drawn from
// the configured multiplier range, so amounts cluster around X but vary.
// Returns one amount slice per account, indexed like accounts/counts.
func generateAmounts(g *rng.Rng, cfg Config, accounts []Account, counts []int) [][]int {
	perAccount := make([][]int, len(accounts))
	for i, a := range accounts {
		n := counts[i]
		if n <= 0 {
			continue
		}

		tam := cfg.AccountTAM(a)
		coverage := g.UniformFloat(cfg.CoveragePctMin, cfg.CoveragePctMax)
		x := float64(tam) * coverage

		raw := make([]int, n)
		for j := range raw {
			u := g.UniformFloat(cfg.AmountMultiplierMin, cfg.AmountMultiplierMax)
			raw[j] = roundHalfUp(x * u)
		}
		perAccount[i] = enforceTAM(raw, tam)
	}
	return perAccount
}

// applyGlobalScale multiplies every amount by a single factor k that moves
// the dataset total toward the pipeline target. Shrinking (k < 1) can never
// violate a TAM cap; growing is capped at the smallest per-account headroom
// ratio so no cap is breached. The TAM rounding fix-up runs again after
// scaling.
func applyGlobalScale(cfg Config, accounts []Account, perAccount [][]int) [][]int {
	total := 0
	accountTotals := make([]int, len(accounts))
	for i, amounts := range perAccount {
		for _, a := range amounts {
			accountTotals[i] += a
		}
		total += accountTotals[i]
	}
	if total <= 0 {
		return perAccount
	}

	kIdeal := float64(cfg.TotalPipelineTarget) / float64(total)
	kApplied := kIdeal
	if kIdeal >= 1.0 {
		kMax := math.Inf(1)
		for i, a := range accounts {
			if accountTotals[i] <= 0 {
				continue
			}
			headroom := float64(cfg.AccountTAM(a)) / float64(accountTotals[i])
			if headroom < kMax {
				kMax = headroom
			}
		}
		kApplied = math.Min(kIdeal, kMax)
	}

	if math.Abs(kApplied-1.0) < 1e-12 {
		return perAccount
	}

	scaled := make([][]int, len(accounts))
	for i, a := range accounts {
		amounts := perAccount[i]
		if len(amounts) == 0 {
			continue
		}
		next := make([]int, len(amounts))
		for j, amt := range amounts {
			next[j] = roundHalfUp(float64(amt) * kApplied)
		}
		scaled[i] = enforceTAM(next, cfg.AccountTAM(a))
	}
	return scaled
}

// generatePipelineAmounts retries the whole amount-generation and
// global-scaling pipeline up to the configured attempt limit, keeping the
// attempt whose total lands closest to the target. Fails when no attempt
// lands inside the acceptable range, reporting the closest total achieved.
func generatePipelineAmounts(g *rng.Rng, cfg Config, accounts []Account, counts []int) ([][]int, error) {
	var best [][]int
	bestDist := math.Inf(1)

	for attempt := 0; attempt < cfg.AmountRetryLimit; attempt++ {
		perAccount := applyGlobalScale(cfg, accounts, generateAmounts(g, cfg, accounts, counts))

		total := 0
		for _, amounts := range perAccount {
			for _, a := range amounts {
				total += a
			}
		}

		dist := math.Abs(float64(total - cfg.TotalPipelineTarget))
		if dist < bestDist {
			bestDist = dist
			best = perAccount
		}
		if total >= cfg.TotalPipelineMin && total <= cfg.TotalPipelineMax {
			return perAccount, nil
		}
	}

	closest := 0
	for _, amounts := range best {
		for _, a := range amounts {
			closest += a
		}
	}
	return nil, fmt.Errorf(
		"%w: closest total %d after %d attempts, wanted [%d, %d] (widen the range or adjust TAM/coverage)",
		ErrPipelineTargetUnreachable, closest, cfg.AmountRetryLimit, cfg.TotalPipelineMin, cfg.TotalPipelineMax)
}
