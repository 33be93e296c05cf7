package generator

import (
	"fmt"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// Generate runs the full generation pass and returns the five collections.
// It is a pure function of the configuration and vocabulary: randomness is
// consumed strictly in slice order from a single seeded source, so equal
// inputs always produce deeply equal datasets.
//
// Entities are built in dependency order (accounts, territories, reps,
// ownership, opportunity counts, amounts, opportunities, close dates,
// history), with regions/states and quotas stamped on last because they
// depend on everything before them.
func Generate(cfg Config, voc *vocab.Bundle) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := rng.New(cfg.Seed)

	accounts, err := generateAccounts(g, cfg, voc)
	if err != nil {
		return nil, err
	}

	territories := deriveTerritories(accounts)

	reps, err := generateReps(g, cfg, voc, territories)
	if err != nil {
		return nil, err
	}
	byTerritory := repsByTerritory(reps)

	if err := assignOwnership(g, accounts, byTerritory); err != nil {
		return nil, err
	}

	counts := sampleOppCounts(g, cfg, len(accounts))
	if err := reconcileOppCounts(g, counts, cfg.OppsPerAccountMin, cfg.OppsPerAccountMax, cfg.NumOpportunities); err != nil {
		return nil, err
	}

	amounts, err := generatePipelineAmounts(g, cfg, accounts, counts)
	if err != nil {
		return nil, err
	}

	opps, err := buildOpportunities(g, cfg, voc, accounts, counts, amounts)
	if err != nil {
		return nil, err
	}

	// Derived flag: an account is in the pipeline iff it has opportunities.
	for i := range accounts {
		accounts[i].InPipeline = counts[i] > 0
	}

	if err := assignCloseDates(g, cfg, opps); err != nil {
		return nil, err
	}

	history, err := generateHistory(g, cfg, opps, voc)
	if err != nil {
		return nil, err
	}

	if err := assignRegions(g, reps, accounts, territories, voc); err != nil {
		return nil, err
	}

	assignQuotas(cfg, reps, accounts, opps, territories)

	return &Dataset{
		Reps:          reps,
		Accounts:      accounts,
		Opportunities: opps,
		Territories:   territories,
		History:       history,
	}, nil
}

// buildOpportunities materializes the opportunity records once relationships
// and amounts are fixed: sequential ids, a name derived from the account and
// a product, a sampled stage, and a created date.
func buildOpportunities(g *rng.Rng, cfg Config, voc *vocab.Bundle, accounts []Account, counts []int, amounts [][]int) ([]Opportunity, error) {
	opps := make([]Opportunity, 0, cfg.NumOpportunities)
	names := make([]string, 0, cfg.NumOpportunities)

	id := 1
	for i, a := range accounts {
		n := counts[i]
		if len(amounts[i]) != n {
			return nil, fmt.Errorf("internal error: account %d has %d amounts for %d opportunities",
				a.ID, len(amounts[i]), n)
		}
		for j := 0; j < n; j++ {
			product := rng.Choice(g, cfg.Products)
			name := a.Name + " " + product
			opps = append(opps, Opportunity{
				ID:        id,
				Name:      name,
				Amount:    amounts[i][j],
				Stage:     rng.Choice(g, voc.Stages),
				RepID:     a.RepID,
				AccountID: a.ID,
			})
			names = append(names, name)
			id++
		}
	}

	if err := ensureUniqueNames(names, "opportunity"); err != nil {
		return nil, err
	}
	for i := range opps {
		opps[i].Name = names[i]
	}

	if err := assignCreatedDates(g, cfg, opps); err != nil {
		return nil, err
	}
	return opps, nil
}
