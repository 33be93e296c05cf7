package generator

import (
	"fmt"
	"sort"

	"github.com/blwy10/cognition-revops-agent/generator/rng"
	"github.com/blwy10/cognition-revops-agent/generator/vocab"
)

// deriveTerritories builds one territory per distinct industry actually
// present among the accounts, in sorted industry order so territory ids are
// deterministic, and stamps each account with its territory id.
func deriveTerritories(accounts []Account) []Territory {
	present := make(map[string]bool)
	for _, a := range accounts {
		present[a.Industry] = true
	}
	industries := make([]string, 0, len(present))
	for ind := range present {
		industries = append(industries, ind)
	}
	sort.Strings(industries)

	territories := make([]Territory, 0, len(industries))
	byIndustry := make(map[string]int, len(industries))
	for i, ind := range industries {
		id := i + 1
		byIndustry[ind] = id
		territories = append(territories, Territory{ID: id, Name: ind + " Territory"})
	}

	for i := range accounts {
		accounts[i].TerritoryID = byIndustry[accounts[i].Industry]
	}
	return territories
}

// generateReps builds the rep population and binds each rep to exactly one
// territory, round-robin over a shuffled territory order so every territory
// gets a rep whenever the rep count allows. Home state, region, and quota
// are assigned in later passes.
func generateReps(g *rng.Rng, cfg Config, voc *vocab.Bundle, territories []Territory) ([]Rep, error) {
	territoryIDs := make([]int, len(territories))
	for i, t := range territories {
		territoryIDs[i] = t.ID
	}
	rng.Shuffle(g, territoryIDs)

	reps := make([]Rep, 0, cfg.NumReps)
	names := make([]string, 0, cfg.NumReps)
	for id := 1; id <= cfg.NumReps; id++ {
		name := buildRepName(g, voc)
		reps = append(reps, Rep{
			ID:          id,
			Name:        name,
			TerritoryID: territoryIDs[(id-1)%len(territoryIDs)],
		})
		names = append(names, name)
	}

	if err := ensureUniqueNames(names, "rep"); err != nil {
		return nil, err
	}
	for i := range reps {
		reps[i].Name = names[i]
	}
	return reps, nil
}

// repsByTerritory indexes rep ids by territory id.
func repsByTerritory(reps []Rep) map[int][]int {
	byTerritory := make(map[int][]int)
	for _, r := range reps {
		byTerritory[r.TerritoryID] = append(byTerritory[r.TerritoryID], r.ID)
	}
	return byTerritory
}

// assignOwnership binds every account to a uniformly chosen rep from the
// account's territory. A territory with zero reps is a configuration error,
// not something to retry.
func assignOwnership(g *rng.Rng, accounts []Account, byTerritory map[int][]int) error {
	for i := range accounts {
		candidates := byTerritory[accounts[i].TerritoryID]
		if len(candidates) == 0 {
			return fmt.Errorf("%w: territoryId=%d (raise the rep count)",
				ErrNoRepsAvailable, accounts[i].TerritoryID)
		}
		accounts[i].RepID = rng.Choice(g, candidates)
	}
	return nil
}

// assignRegions picks one region per territory, samples each rep's home
// state from that region's states, and copies the home state onto every
// owned account. Running this last avoids the chicken-and-egg ordering
// between regions, states, and accounts.
func assignRegions(g *rng.Rng, reps []Rep, accounts []Account, territories []Territory, voc *vocab.Bundle) error {
	regions, statesByRegion := voc.RegionStates()
	if len(regions) == 0 {
		return fmt.Errorf("%w: no regions found in states/regions mapping", vocab.ErrInvalidRegionMapping)
	}

	regionByTerritory := make(map[int]string, len(territories))
	for _, t := range territories {
		regionByTerritory[t.ID] = rng.Choice(g, regions)
	}

	homeStateByRep := make(map[int]string, len(reps))
	for i := range reps {
		region := regionByTerritory[reps[i].TerritoryID]
		states := statesByRegion[region]
		if len(states) == 0 {
			return fmt.Errorf("%w: region %q has no states", vocab.ErrInvalidRegionMapping, region)
		}
		reps[i].Region = region
		reps[i].HomeState = rng.Choice(g, states)
		homeStateByRep[reps[i].ID] = reps[i].HomeState
	}

	for i := range accounts {
		accounts[i].State = homeStateByRep[accounts[i].RepID]
	}
	return nil
}
