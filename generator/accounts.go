package generator

import (
	"github.com/blwy10/cognition-revops-agent/generator/rng"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// paretoRevenue samples an annual revenue figure with a heavy tail: a few
// whales, many small accounts. The Pareto draw is scaled into dollars and
// hard-capped.
func paretoRevenue(g *rng.Rng, cfg Config) int {
	r := g.Pareto(cfg.ParetoAlpha)
	dollars := int(float64(cfg.RevenueScaleDollars) * r)
	if dollars > cfg.RevenueCapDollars {
		dollars = cfg.RevenueCapDollars
	}
	return dollars
}

// numDevelopers derives a developer headcount from annual revenue using a
// sampled revenue-per-employee ratio and a sampled developer fraction of the
// workforce. Always at least 1.
func numDevelopers(g *rng.Rng, cfg Config, annualRevenue int) int {
	revenuePerEmployee := g.UniformFloat(cfg.RevenuePerEmployeeMin, cfg.RevenuePerEmployeeMax)
	totalEmployees := float64(annualRevenue) / revenuePerEmployee
	developerPct := g.UniformFloat(cfg.DeveloperPctMin, cfg.DeveloperPctMax)
	devs := roundHalfUp(totalEmployees * developerPct)
	if devs < 1 {
		return 1
	}
	return devs
}

// generateAccounts builds the account population with its core attributes.
// State, territory, and ownership stay unset here; they are derived from the
// owning rep in later passes so they can never contradict each other.
func generateAccounts(g *rng.Rng, cfg Config, voc *vocab.Bundle) ([]Account, error) {
	accounts := make([]Account, 0, cfg.NumAccounts)
	names := make([]string, 0, cfg.NumAccounts)
	for id := 1; id <= cfg.NumAccounts; id++ {
		industry := rng.Choice(g, voc.Industries)
		revenue := paretoRevenue(g, cfg)
		devs := numDevelopers(g, cfg, revenue)
		isCustomer := g.Float64() < cfg.IsCustomerRate
		name := buildAccountName(g, voc)

		accounts = append(accounts, Account{
			ID:            id,
			Name:          name,
			AnnualRevenue: revenue,
			NumDevelopers: devs,
			Industry:      industry,
			IsCustomer:    isCustomer,
		})
		names = append(names, name)
	}

	if err := ensureUniqueNames(names, "account"); err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Name = names[i]
	}
	return accounts, nil
}
