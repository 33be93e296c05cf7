package generator

// assignQuotas derives each rep's quota from the realized pipeline of their
// territory: the territory's opportunity total is split evenly across its
// reps, multiplied by the quota multiplier, and clamped into the configured
// range. The clamp floor keeps every quota strictly positive even for a
// territory with no pipeline.
func assignQuotas(cfg Config, reps []Rep, accounts []Account, opps []Opportunity, territories []Territory) {
	accountTotals := make(map[int]int, len(accounts))
	for _, o := range opps {
		accountTotals[o.AccountID] += o.Amount
	}

	territoryPipeline := make(map[int]int, len(territories))
	for _, a := range accounts {
		territoryPipeline[a.TerritoryID] += accountTotals[a.ID]
	}

	repsInTerritory := make(map[int]int, len(territories))
	for _, r := range reps {
		repsInTerritory[r.TerritoryID]++
	}

	for i := range reps {
		// A rep's own territory always counts at least the rep itself.
		n := repsInTerritory[reps[i].TerritoryID]
		perRep := float64(territoryPipeline[reps[i].TerritoryID]) / float64(n)
		quota := perRep * cfg.QuotaMultiplier
		reps[i].Quota = clampInt(float64(roundHalfUp(quota)), cfg.QuotaMin, cfg.QuotaMax)
	}
}
